package mission

// fakeWorld is an in-package World stub for engine tests. The world package
// provides the real simulator implementation; tests here stay decoupled so
// engine semantics are pinned against the interface alone.
type fakeWorld struct {
	unlocked  map[Content]bool
	items     map[Team]map[Item]int
	coreItems map[Team]map[Item]int
	placed    map[Block]int
	units     map[Team]map[Unit]int
	destroyed int
	builds    map[Point]Build
	cores     map[Team]int
	flags     map[string]bool

	defaultTeam Team
	enemyTeam   Team
	passive     bool
	headless    bool
	commanded   bool
	delta       float64
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		unlocked:    map[Content]bool{},
		items:       map[Team]map[Item]int{},
		coreItems:   map[Team]map[Item]int{},
		placed:      map[Block]int{},
		units:       map[Team]map[Unit]int{},
		builds:      map[Point]Build{},
		cores:       map[Team]int{},
		flags:       map[string]bool{},
		defaultTeam: "sharded",
		enemyTeam:   "crux",
	}
}

func (w *fakeWorld) setItems(t Team, i Item, n int) {
	if w.items[t] == nil {
		w.items[t] = map[Item]int{}
	}
	w.items[t][i] = n
}

func (w *fakeWorld) setCoreItems(t Team, i Item, n int) {
	if w.coreItems[t] == nil {
		w.coreItems[t] = map[Item]int{}
	}
	w.coreItems[t][i] = n
}

func (w *fakeWorld) setUnits(t Team, u Unit, n int) {
	if w.units[t] == nil {
		w.units[t] = map[Unit]int{}
	}
	w.units[t][u] = n
}

func (w *fakeWorld) Unlocked(c Content) bool { return w.unlocked[c] }
func (w *fakeWorld) ItemCount(t Team, i Item) int { return w.items[t][i] }
func (w *fakeWorld) CoreItemCount(t Team, i Item) int { return w.coreItems[t][i] }
func (w *fakeWorld) BlocksPlaced(b Block) int { return w.placed[b] }
func (w *fakeWorld) UnitCount(t Team, u Unit) int { return w.units[t][u] }
func (w *fakeWorld) EnemyUnitsDestroyed() int { return w.destroyed }
func (w *fakeWorld) CoreCount(t Team) int { return w.cores[t] }
func (w *fakeWorld) HasObjectiveFlag(name string) bool { return w.flags[name] }
func (w *fakeWorld) DefaultTeam() Team { return w.defaultTeam }
func (w *fakeWorld) EnemyTeam() Team { return w.enemyTeam }
func (w *fakeWorld) Authoritative() bool { return !w.passive }
func (w *fakeWorld) Headless() bool { return w.headless }
func (w *fakeWorld) UnitCommandIssued() bool { return w.commanded }
func (w *fakeWorld) Delta() float64 { return w.delta }

func (w *fakeWorld) BuildAt(x, y int) (Build, bool) {
	build, ok := w.builds[Point{X: x, Y: y}]
	return build, ok
}
