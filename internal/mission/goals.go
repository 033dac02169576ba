package mission

import (
	"fmt"
	"strings"

	"github.com/emberworks/skirmish/internal/platform/i18n"
)

// The built-in goal catalog. Every predicate is a pure read of the supplied
// World; only Timer carries internal state, and that state is fed entirely
// by the injected per-tick delta.

// Research is satisfied once the target content has been researched.
type Research struct {
	Content Content
}

func (g *Research) Kind() string { return "Research" }

func (g *Research) Update(w World) bool {
	return w.Unlocked(g.Content)
}

func (g *Research) Describe(w World, b *i18n.Bundle) string {
	return b.Format("objective.research", string(g.Content))
}

// Produce is satisfied once the target content has been produced. Identical
// predicate to Research with different mission text.
type Produce struct {
	Content Content
}

func (g *Produce) Kind() string { return "Produce" }

func (g *Produce) Update(w World) bool {
	return w.Unlocked(g.Content)
}

func (g *Produce) Describe(w World, b *i18n.Bundle) string {
	return b.Format("objective.produce", string(g.Content))
}

// ItemCount is satisfied when the default team stores at least Amount of
// Item.
type ItemCount struct {
	Item   Item
	Amount int
}

func (g *ItemCount) Kind() string { return "Item" }

func (g *ItemCount) Update(w World) bool {
	return w.ItemCount(w.DefaultTeam(), g.Item) >= g.Amount
}

func (g *ItemCount) Describe(w World, b *i18n.Bundle) string {
	return b.Format("objective.item", w.ItemCount(w.DefaultTeam(), g.Item), g.Amount, string(g.Item))
}

// CoreItemCount is satisfied when the default team's cumulative
// core-delivered quantity of Item reaches Amount.
type CoreItemCount struct {
	Item   Item
	Amount int
}

func (g *CoreItemCount) Kind() string { return "CoreItem" }

func (g *CoreItemCount) Update(w World) bool {
	return w.CoreItemCount(w.DefaultTeam(), g.Item) >= g.Amount
}

func (g *CoreItemCount) Describe(w World, b *i18n.Bundle) string {
	return b.Format("objective.coreitem", w.CoreItemCount(w.DefaultTeam(), g.Item), g.Amount, string(g.Item))
}

// BuildCount is satisfied when the cumulative placed count of Block reaches
// Count. Destroyed blocks do not decrement the statistic.
type BuildCount struct {
	Block Block
	Count int
}

func (g *BuildCount) Kind() string { return "BuildCount" }

func (g *BuildCount) Update(w World) bool {
	return w.BlocksPlaced(g.Block) >= g.Count
}

func (g *BuildCount) Describe(w World, b *i18n.Bundle) string {
	return b.Format("objective.build", g.Count-w.BlocksPlaced(g.Block), string(g.Block))
}

// UnitCount is satisfied when the default team's live count of Unit reaches
// Count.
type UnitCount struct {
	Unit  Unit
	Count int
}

func (g *UnitCount) Kind() string { return "UnitCount" }

func (g *UnitCount) Update(w World) bool {
	return w.UnitCount(w.DefaultTeam(), g.Unit) >= g.Count
}

func (g *UnitCount) Describe(w World, b *i18n.Bundle) string {
	return b.Format("objective.buildunit", g.Count-w.UnitCount(w.DefaultTeam(), g.Unit), string(g.Unit))
}

// DestroyUnits is satisfied when the cumulative count of destroyed enemy
// units reaches Count.
type DestroyUnits struct {
	Count int
}

func (g *DestroyUnits) Kind() string { return "DestroyUnits" }

func (g *DestroyUnits) Update(w World) bool {
	return w.EnemyUnitsDestroyed() >= g.Count
}

func (g *DestroyUnits) Describe(w World, b *i18n.Bundle) string {
	return b.Format("objective.destroyunits", g.Count-w.EnemyUnitsDestroyed())
}

// Timer is satisfied once Duration seconds of injected delta accumulate.
// Reset restarts the accumulation while the objective is still running.
type Timer struct {
	// Text is an optional inline template; its single argument is the
	// remaining time formatted as m:ss. A leading "@" resolves the rest as a
	// bundle key instead.
	Text     string
	Duration float64

	countup float64
}

func (g *Timer) Kind() string { return "Timer" }

func (g *Timer) Update(w World) bool {
	g.countup += w.Delta()
	return g.countup >= g.Duration
}

func (g *Timer) Reset() {
	g.countup = 0
}

func (g *Timer) Describe(w World, b *i18n.Bundle) string {
	if g.Text == "" {
		return ""
	}
	remaining := int(g.Duration - g.countup)
	if remaining < 0 {
		remaining = 0
	}
	clock := fmt.Sprintf("%d:%02d", remaining/60, remaining%60)
	if remaining < 60 {
		clock = fmt.Sprintf("%d", remaining)
	}
	if key, ok := strings.CutPrefix(g.Text, "@"); ok {
		return b.Format(key, clock)
	}
	return b.FormatString(g.Text, clock)
}

// DestroyBlock is satisfied when the tracked tile no longer holds a block of
// the given team and type: vacated, captured, or replaced all count.
type DestroyBlock struct {
	Pos   Point
	Team  Team
	Block Block
}

func (g *DestroyBlock) Kind() string { return "DestroyBlock" }

func (g *DestroyBlock) Update(w World) bool {
	build, ok := w.BuildAt(g.Pos.X, g.Pos.Y)
	return !ok || build.Team != g.Team || build.Block != g.Block
}

func (g *DestroyBlock) Describe(w World, b *i18n.Bundle) string {
	return b.Format("objective.destroyblock", string(g.Block))
}

// DestroyBlocks applies the DestroyBlock test to every tracked position.
// World state is re-checked live each tick rather than latched per position,
// so a tile rebuilt with an identical block re-arms its slot; this matches
// the engine's original behavior.
type DestroyBlocks struct {
	Positions []Point
	Team      Team
	Block     Block
}

func (g *DestroyBlocks) Kind() string { return "DestroyBlocks" }

// Progress returns how many tracked positions currently pass the destroy
// test, and the total tracked.
func (g *DestroyBlocks) Progress(w World) (done, total int) {
	for _, pos := range g.Positions {
		build, ok := w.BuildAt(pos.X, pos.Y)
		if !ok || build.Team != g.Team || build.Block != g.Block {
			done++
		}
	}
	return done, len(g.Positions)
}

func (g *DestroyBlocks) Update(w World) bool {
	done, total := g.Progress(w)
	return done >= total
}

func (g *DestroyBlocks) Describe(w World, b *i18n.Bundle) string {
	done, total := g.Progress(w)
	return b.Format("objective.destroyblocks", done, total, string(g.Block))
}

// DestroyCore is satisfied when the enemy team holds no core structures.
type DestroyCore struct{}

func (g *DestroyCore) Kind() string { return "DestroyCore" }

func (g *DestroyCore) Update(w World) bool {
	return w.CoreCount(w.EnemyTeam()) == 0
}

func (g *DestroyCore) Describe(w World, b *i18n.Bundle) string {
	return b.Get("objective.destroycore", "")
}

// CommandMode is satisfied once any selected controllable unit has an issued
// command. Headless sessions have no player input, so it always completes
// there.
type CommandMode struct{}

func (g *CommandMode) Kind() string { return "CommandMode" }

func (g *CommandMode) Update(w World) bool {
	return w.Headless() || w.UnitCommandIssued()
}

func (g *CommandMode) Describe(w World, b *i18n.Bundle) string {
	return b.Get("objective.command", "")
}

// FlagSet is satisfied while a named logic flag is present in the session's
// flag set.
type FlagSet struct {
	Flag string
	// Text is optional mission text; a leading "@" resolves a bundle key.
	Text string
}

func (g *FlagSet) Kind() string { return "Flag" }

func (g *FlagSet) Update(w World) bool {
	return w.HasObjectiveFlag(g.Flag)
}

func (g *FlagSet) Describe(w World, b *i18n.Bundle) string {
	if key, ok := strings.CutPrefix(g.Text, "@"); ok && key != "" {
		return b.Get(key, key)
	}
	return g.Text
}
