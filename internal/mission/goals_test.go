package mission

import (
	"strings"
	"testing"

	"github.com/emberworks/skirmish/internal/platform/i18n"
)

func TestResearchAndProduceTrackUnlocks(t *testing.T) {
	w := newFakeWorld()
	research := &Research{Content: "lancer"}
	produce := &Produce{Content: "silicon"}

	if research.Update(w) || produce.Update(w) {
		t.Fatal("expected locked content to leave goals unsatisfied")
	}

	w.unlocked["lancer"] = true
	w.unlocked["silicon"] = true
	if !research.Update(w) || !produce.Update(w) {
		t.Fatal("expected unlocked content to satisfy goals")
	}
}

func TestItemCountUsesDefaultTeamStock(t *testing.T) {
	w := newFakeWorld()
	g := &ItemCount{Item: "copper", Amount: 50}

	w.setItems("crux", "copper", 100)
	if g.Update(w) {
		t.Fatal("expected enemy stock to be ignored")
	}

	w.setItems("sharded", "copper", 49)
	if g.Update(w) {
		t.Fatal("expected 49 < 50 to be unsatisfied")
	}

	w.setItems("sharded", "copper", 50)
	if !g.Update(w) {
		t.Fatal("expected exactly 50 to satisfy")
	}
}

func TestCoreItemCountUsesCumulativeDeliveries(t *testing.T) {
	w := newFakeWorld()
	g := &CoreItemCount{Item: "titanium", Amount: 30}

	w.setItems("sharded", "titanium", 100) // stored, not delivered
	if g.Update(w) {
		t.Fatal("expected stored stock to be ignored")
	}

	w.setCoreItems("sharded", "titanium", 30)
	if !g.Update(w) {
		t.Fatal("expected delivered total to satisfy")
	}
}

func TestBuildAndUnitCounts(t *testing.T) {
	w := newFakeWorld()
	build := &BuildCount{Block: "duo", Count: 3}
	units := &UnitCount{Unit: "dagger", Count: 2}

	w.placed["duo"] = 2
	w.setUnits("sharded", "dagger", 1)
	if build.Update(w) || units.Update(w) {
		t.Fatal("expected counts below target to be unsatisfied")
	}

	w.placed["duo"] = 3
	w.setUnits("sharded", "dagger", 2)
	if !build.Update(w) || !units.Update(w) {
		t.Fatal("expected counts at target to satisfy")
	}
}

func TestDestroyUnitsTracksCumulativeKills(t *testing.T) {
	w := newFakeWorld()
	g := &DestroyUnits{Count: 5}

	w.destroyed = 4
	if g.Update(w) {
		t.Fatal("expected 4 kills to be unsatisfied")
	}
	w.destroyed = 5
	if !g.Update(w) {
		t.Fatal("expected 5 kills to satisfy")
	}
}

func TestTimerAccumulatesAndResets(t *testing.T) {
	w := newFakeWorld()
	w.delta = 1
	g := &Timer{Duration: 5}

	for i := 0; i < 4; i++ {
		if g.Update(w) {
			t.Fatal("expected timer unsatisfied before 5 seconds")
		}
	}

	g.Reset()
	for i := 0; i < 4; i++ {
		if g.Update(w) {
			t.Fatal("expected reset to demand another full duration")
		}
	}
	if !g.Update(w) {
		t.Fatal("expected timer satisfied at 5 accumulated seconds")
	}
}

func TestDestroyBlockDetectsAbsentOrChangedOccupant(t *testing.T) {
	w := newFakeWorld()
	g := &DestroyBlock{Pos: Point{X: 2, Y: 3}, Team: "crux", Block: "router"}

	w.builds[Point{X: 2, Y: 3}] = Build{Team: "crux", Block: "router"}
	if g.Update(w) {
		t.Fatal("expected intact block to be unsatisfied")
	}

	w.builds[Point{X: 2, Y: 3}] = Build{Team: "sharded", Block: "router"}
	if !g.Update(w) {
		t.Fatal("expected captured block to satisfy")
	}

	w.builds[Point{X: 2, Y: 3}] = Build{Team: "crux", Block: "wall"}
	if !g.Update(w) {
		t.Fatal("expected replaced block to satisfy")
	}

	delete(w.builds, Point{X: 2, Y: 3})
	if !g.Update(w) {
		t.Fatal("expected vacated tile to satisfy")
	}
}

func TestDestroyBlocksProgress(t *testing.T) {
	w := newFakeWorld()
	g := &DestroyBlocks{
		Positions: []Point{{1, 1}, {2, 2}, {3, 3}},
		Team:      "crux",
		Block:     "router",
	}

	// One intact, two already failing the occupancy test.
	w.builds[Point{X: 1, Y: 1}] = Build{Team: "crux", Block: "router"}
	w.builds[Point{X: 2, Y: 2}] = Build{Team: "sharded", Block: "router"}

	done, total := g.Progress(w)
	if done != 2 || total != 3 {
		t.Fatalf("expected progress 2/3, got %d/%d", done, total)
	}
	if g.Update(w) {
		t.Fatal("expected unsatisfied at 2/3")
	}

	delete(w.builds, Point{X: 1, Y: 1})
	done, _ = g.Progress(w)
	if done != 3 {
		t.Fatalf("expected progress 3, got %d", done)
	}
	if !g.Update(w) {
		t.Fatal("expected satisfied exactly when progress reaches 3")
	}
}

func TestDestroyBlocksReArmsOnRebuild(t *testing.T) {
	// Occupancy is re-checked live each tick; a rebuilt identical block
	// re-arms its slot. This preserves the engine's original behavior.
	w := newFakeWorld()
	g := &DestroyBlocks{Positions: []Point{{1, 1}}, Team: "crux", Block: "router"}

	if !g.Update(w) {
		t.Fatal("expected vacant tile to satisfy")
	}
	w.builds[Point{X: 1, Y: 1}] = Build{Team: "crux", Block: "router"}
	if g.Update(w) {
		t.Fatal("expected rebuilt block to re-arm the slot")
	}
}

func TestDestroyCoreChecksEnemyCores(t *testing.T) {
	w := newFakeWorld()
	g := &DestroyCore{}

	w.cores["crux"] = 2
	if g.Update(w) {
		t.Fatal("expected standing enemy cores to be unsatisfied")
	}
	w.cores["crux"] = 0
	if !g.Update(w) {
		t.Fatal("expected empty enemy core set to satisfy")
	}
}

func TestCommandModeAlwaysSatisfiedHeadless(t *testing.T) {
	w := newFakeWorld()
	g := &CommandMode{}

	if g.Update(w) {
		t.Fatal("expected unsatisfied without an issued command")
	}

	w.commanded = true
	if !g.Update(w) {
		t.Fatal("expected satisfied once a command is issued")
	}

	w.commanded = false
	w.headless = true
	if !g.Update(w) {
		t.Fatal("expected headless sessions to always satisfy")
	}
}

func TestFlagSetChecksLogicFlags(t *testing.T) {
	w := newFakeWorld()
	g := &FlagSet{Flag: "generators-online"}

	if g.Update(w) {
		t.Fatal("expected missing flag to be unsatisfied")
	}
	w.flags["generators-online"] = true
	if !g.Update(w) {
		t.Fatal("expected present flag to satisfy")
	}
}

func TestDescribeRendersMissionText(t *testing.T) {
	w := newFakeWorld()
	b := i18n.Default()

	w.setItems("sharded", "copper", 10)
	item := &ItemCount{Item: "copper", Amount: 50}
	if got := item.Describe(w, b); got != "Obtain items: 10/50 copper." {
		t.Fatalf("unexpected item text: %q", got)
	}

	timer := &Timer{Text: "Hold out for %s!", Duration: 90}
	if got := timer.Describe(w, b); got != "Hold out for 1:30!" {
		t.Fatalf("unexpected timer text: %q", got)
	}

	// Malformed author templates degrade to empty rather than failing.
	bad := &Timer{Text: "Hold out for %d!", Duration: 90}
	if got := bad.Describe(w, b); got != "" {
		t.Fatalf("expected empty text for malformed template, got %q", got)
	}

	flag := &FlagSet{Flag: "f", Text: "Wait for the signal."}
	if got := flag.Describe(w, b); got != "Wait for the signal." {
		t.Fatalf("unexpected flag text: %q", got)
	}
}

func TestTimerDescribeCountsDownSeconds(t *testing.T) {
	w := newFakeWorld()
	w.delta = 30
	g := &Timer{Text: "Survive: %s", Duration: 90}
	g.Update(w)

	got := g.Describe(w, i18n.Default())
	if !strings.HasSuffix(got, "1:00") {
		t.Fatalf("expected 1:00 remaining, got %q", got)
	}
}
