package sim

import (
	"fmt"

	"github.com/emberworks/skirmish/internal/mission"
	"github.com/emberworks/skirmish/internal/mission/script"
)

func (r *Runner) applyStep(step script.Step) error {
	switch step.Kind {
	case "give":
		item := requiredString(step.Args, "item")
		if item == "" {
			return fmt.Errorf("give requires an item")
		}
		r.world.GiveItems(r.teamArg(step.Args), mission.Item(item), intArg(step.Args, "amount", 1))
	case "deliver":
		item := requiredString(step.Args, "item")
		if item == "" {
			return fmt.Errorf("deliver requires an item")
		}
		r.world.DeliverToCore(r.teamArg(step.Args), mission.Item(item), intArg(step.Args, "amount", 1))
	case "place":
		block := requiredString(step.Args, "block")
		if block == "" {
			return fmt.Errorf("place requires a block")
		}
		x := intArg(step.Args, "x", 0)
		y := intArg(step.Args, "y", 0)
		team := r.teamArg(step.Args)
		// Multiple copies land on consecutive tiles along x.
		for i := 0; i < intArg(step.Args, "count", 1); i++ {
			r.world.PlaceBlock(team, mission.Block(block), x+i, y)
		}
	case "remove_block":
		r.world.RemoveBlock(intArg(step.Args, "x", 0), intArg(step.Args, "y", 0))
	case "unlock":
		content := requiredString(step.Args, "content")
		if content == "" {
			return fmt.Errorf("unlock requires content")
		}
		r.world.Unlock(mission.Content(content))
	case "spawn_units":
		unit := requiredString(step.Args, "unit")
		if unit == "" {
			return fmt.Errorf("spawn_units requires a unit")
		}
		r.world.AddUnits(r.teamArg(step.Args), mission.Unit(unit), intArg(step.Args, "count", 1))
	case "destroy_enemy_units":
		r.world.DestroyEnemyUnits(intArg(step.Args, "count", 1))
	case "set_flag":
		flag := requiredString(step.Args, "flag")
		if flag == "" {
			return fmt.Errorf("set_flag requires a flag")
		}
		r.world.SetFlag(flag)
	case "clear_flag":
		flag := requiredString(step.Args, "flag")
		if flag == "" {
			return fmt.Errorf("clear_flag requires a flag")
		}
		r.world.ClearFlag(flag)
	case "command":
		r.world.SetUnitCommandIssued(boolArg(step.Args, "active", true))
	case "add_core":
		r.world.AddCore(r.teamArg(step.Args))
	case "remove_core":
		r.world.RemoveCore(r.teamArg(step.Args))
	default:
		return fmt.Errorf("unknown step kind %q", step.Kind)
	}
	return nil
}

// teamArg resolves the step's team, defaulting to the player faction. The
// literal "enemy" resolves to the session's enemy faction.
func (r *Runner) teamArg(args map[string]any) mission.Team {
	switch name := requiredString(args, "team"); name {
	case "":
		return r.world.DefaultTeam()
	case "enemy":
		return r.world.EnemyTeam()
	default:
		return mission.Team(name)
	}
}

func requiredString(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func intArg(args map[string]any, key string, def int) int {
	if v, ok := args[key].(float64); ok {
		return int(v)
	}
	return def
}

func boolArg(args map[string]any, key string, def bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return def
}
