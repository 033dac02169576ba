// Package world provides the in-memory game state backing the mission
// simulator: team inventories, build and unit statistics, the tile grid,
// unlockable content, and the session's logic-flag set. It implements
// mission.World and the flag-subsystem side of objective completion.
package world

import (
	"github.com/emberworks/skirmish/internal/mission"
)

// World is a single session's mutable game state. It is not safe for
// concurrent use; the simulator mutates and reads it from one goroutine, the
// same contract the mission executor runs under.
type World struct {
	defaultTeam mission.Team
	enemyTeam   mission.Team

	items     map[mission.Team]map[mission.Item]int
	coreItems map[mission.Team]map[mission.Item]int
	placed    map[mission.Block]int
	builds    map[mission.Point]mission.Build
	units     map[mission.Team]map[mission.Unit]int
	cores     map[mission.Team]int
	unlocked  map[mission.Content]struct{}
	flags     map[string]struct{}
	destroyed int

	authoritative bool
	headless      bool
	commanded     bool
	delta         float64
}

// New returns an empty world for the given factions. The session starts
// authoritative and headless with a zero tick delta.
func New(defaultTeam, enemyTeam mission.Team) *World {
	return &World{
		defaultTeam:   defaultTeam,
		enemyTeam:     enemyTeam,
		items:         map[mission.Team]map[mission.Item]int{},
		coreItems:     map[mission.Team]map[mission.Item]int{},
		placed:        map[mission.Block]int{},
		builds:        map[mission.Point]mission.Build{},
		units:         map[mission.Team]map[mission.Unit]int{},
		cores:         map[mission.Team]int{},
		unlocked:      map[mission.Content]struct{}{},
		flags:         map[string]struct{}{},
		authoritative: true,
		headless:      true,
	}
}

// SetAuthoritative toggles whether this session decides completion locally.
func (w *World) SetAuthoritative(v bool) { w.authoritative = v }

// SetHeadless toggles whether the session runs without player input.
func (w *World) SetHeadless(v bool) { w.headless = v }

// SetUnitCommandIssued records whether a selected unit has an active command.
func (w *World) SetUnitCommandIssued(v bool) { w.commanded = v }

// SetDelta sets the simulated seconds the next tick represents.
func (w *World) SetDelta(seconds float64) { w.delta = seconds }

// GiveItems adds items to a team's storage.
func (w *World) GiveItems(t mission.Team, i mission.Item, amount int) {
	if w.items[t] == nil {
		w.items[t] = map[mission.Item]int{}
	}
	w.items[t][i] += amount
}

// DeliverToCore records a core delivery: the items land in storage and the
// cumulative delivery statistic advances.
func (w *World) DeliverToCore(t mission.Team, i mission.Item, amount int) {
	w.GiveItems(t, i, amount)
	if w.coreItems[t] == nil {
		w.coreItems[t] = map[mission.Item]int{}
	}
	w.coreItems[t][i] += amount
}

// PlaceBlock puts a block on the grid and advances the placed statistic.
func (w *World) PlaceBlock(t mission.Team, b mission.Block, x, y int) {
	w.builds[mission.Point{X: x, Y: y}] = mission.Build{Team: t, Block: b}
	w.placed[b]++
}

// RemoveBlock vacates a tile. Removing an empty tile is a no-op.
func (w *World) RemoveBlock(x, y int) {
	delete(w.builds, mission.Point{X: x, Y: y})
}

// Unlock marks content as researched/produced.
func (w *World) Unlock(c mission.Content) {
	w.unlocked[c] = struct{}{}
}

// AddUnits spawns units for a team.
func (w *World) AddUnits(t mission.Team, u mission.Unit, count int) {
	if w.units[t] == nil {
		w.units[t] = map[mission.Unit]int{}
	}
	w.units[t][u] += count
}

// DestroyEnemyUnits advances the cumulative destroyed-enemy statistic.
func (w *World) DestroyEnemyUnits(count int) {
	w.destroyed += count
}

// AddCore grants a team one core structure.
func (w *World) AddCore(t mission.Team) {
	w.cores[t]++
}

// RemoveCore destroys one of a team's cores, if any remain.
func (w *World) RemoveCore(t mission.Team) {
	if w.cores[t] > 0 {
		w.cores[t]--
	}
}

// SetFlag adds a logic flag to the session's flag set.
func (w *World) SetFlag(name string) {
	w.flags[name] = struct{}{}
}

// ClearFlag removes a logic flag from the session's flag set.
func (w *World) ClearFlag(name string) {
	delete(w.flags, name)
}

// ObjectiveCompleted applies an objective completion notification to the
// flag set: removals first, then additions. Wire it to
// mission.Hooks.ObjectiveCompleted.
func (w *World) ObjectiveCompleted(flagsRemoved, flagsAdded []string) {
	for _, name := range flagsRemoved {
		w.ClearFlag(name)
	}
	for _, name := range flagsAdded {
		w.SetFlag(name)
	}
}

// mission.World accessors.

func (w *World) Unlocked(c mission.Content) bool {
	_, ok := w.unlocked[c]
	return ok
}

func (w *World) ItemCount(t mission.Team, i mission.Item) int {
	return w.items[t][i]
}

func (w *World) CoreItemCount(t mission.Team, i mission.Item) int {
	return w.coreItems[t][i]
}

func (w *World) BlocksPlaced(b mission.Block) int {
	return w.placed[b]
}

func (w *World) UnitCount(t mission.Team, u mission.Unit) int {
	return w.units[t][u]
}

func (w *World) EnemyUnitsDestroyed() int {
	return w.destroyed
}

func (w *World) BuildAt(x, y int) (mission.Build, bool) {
	build, ok := w.builds[mission.Point{X: x, Y: y}]
	return build, ok
}

func (w *World) CoreCount(t mission.Team) int {
	return w.cores[t]
}

func (w *World) HasObjectiveFlag(name string) bool {
	_, ok := w.flags[name]
	return ok
}

func (w *World) DefaultTeam() mission.Team { return w.defaultTeam }
func (w *World) EnemyTeam() mission.Team { return w.enemyTeam }
func (w *World) Authoritative() bool { return w.authoritative }
func (w *World) Headless() bool { return w.headless }
func (w *World) UnitCommandIssued() bool { return w.commanded }
func (w *World) Delta() float64 { return w.delta }
