package mission

// Identifier types for externally owned game content. The engine never
// resolves these to anything; goal predicates only compare them through the
// World accessors supplied by the host.
type (
	// Team identifies a faction in the session.
	Team string
	// Item identifies a resource type.
	Item string
	// Block identifies a building type.
	Block string
	// Unit identifies a unit type.
	Unit string
	// Content identifies any unlockable content (item, block, or unit).
	Content string
)

// Point is a tile coordinate on the map grid.
type Point struct {
	X, Y int
}

// Build describes the occupant of a tile.
type Build struct {
	Team  Team
	Block Block
}

// World is the game-state surface goal predicates read from. Implementations
// must be total: every accessor answers for any input, and none of them block
// or fail. All calls happen synchronously inside Executor.Update.
type World interface {
	// Unlocked reports whether the content has been researched or produced.
	Unlocked(c Content) bool

	// ItemCount returns the team's stored quantity of an item.
	ItemCount(t Team, i Item) int
	// CoreItemCount returns the team's cumulative core-delivered quantity.
	CoreItemCount(t Team, i Item) int

	// BlocksPlaced returns the cumulative number of blocks of a type placed.
	BlocksPlaced(b Block) int
	// UnitCount returns the team's current live count of a unit type.
	UnitCount(t Team, u Unit) int
	// EnemyUnitsDestroyed returns the cumulative enemy units destroyed.
	EnemyUnitsDestroyed() int

	// BuildAt reports the occupant of a tile, if any.
	BuildAt(x, y int) (Build, bool)
	// CoreCount returns the number of core structures the team holds.
	CoreCount(t Team) int

	// HasObjectiveFlag reports whether a logic flag is set for the session.
	HasObjectiveFlag(name string) bool

	// DefaultTeam is the player faction objectives are evaluated for.
	DefaultTeam() Team
	// EnemyTeam is the opposing faction.
	EnemyTeam() Team

	// Authoritative reports whether this session decides completion locally.
	// Passive sessions still tick predicates (timers keep counting) but never
	// complete objectives themselves.
	Authoritative() bool
	// Headless reports whether the session runs without player input.
	Headless() bool
	// UnitCommandIssued reports whether any currently selected controllable
	// unit has an active issued command.
	UnitCommandIssued() bool

	// Delta returns the simulated seconds elapsed since the previous tick.
	Delta() float64
}
