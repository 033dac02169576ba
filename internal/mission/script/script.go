// Package script loads mission definitions from Lua. A mission file builds
// an objective graph through the mission registries and may script a
// timeline of world mutations for the simulator:
//
//	local m = Mission.new("first-light")
//	local mine = m:objective("item", {item = "copper", amount = 50})
//	mine:child(m:objective("buildCount", {block = "conveyor", count = 10}))
//	m:root(mine)
//	m:at(5, "give", {item = "copper", amount = 50})
//	return m
package script

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"

	"github.com/emberworks/skirmish/internal/mission"
)

const (
	missionTypeName   = "mission"
	objectiveTypeName = "objective"
)

// Mission is a fully authored mission: the objective roots to register with
// an executor plus an optional scripted timeline for the simulator.
type Mission struct {
	Name  string
	Roots []*mission.Objective
	Steps []Step
}

// Step is one scripted world mutation, applied when the simulation reaches
// its tick.
type Step struct {
	Tick int
	Kind string
	Args map[string]any
}

// LoadFile loads and executes a mission script from disk.
func LoadFile(path string) (*Mission, error) {
	state := newState()
	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	m, err := runChunk(state)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(m.Name) == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// LoadSource executes mission source held in memory, mainly for tests.
func LoadSource(name, source string) (*Mission, error) {
	state := newState()
	if err := lua.LoadBuffer(state, source, name, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	m, err := runChunk(state)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(m.Name) == "" {
		m.Name = name
	}
	return m, nil
}

func newState() *lua.State {
	state := lua.NewState()
	lua.OpenLibraries(state)
	registerMissionType(state)
	registerObjectiveType(state)
	registerMissionConstructor(state)
	return state
}

func runChunk(state *lua.State) (*Mission, error) {
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}
	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("mission script must return Mission")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	m, ok := ud.(*Mission)
	if !ok || m == nil {
		return nil, fmt.Errorf("mission script returned invalid Mission")
	}
	return m, nil
}

func registerMissionType(state *lua.State) {
	lua.NewMetaTable(state, missionTypeName)
	state.NewTable()
	lua.SetFunctions(state, missionMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)
}

func registerObjectiveType(state *lua.State) {
	lua.NewMetaTable(state, objectiveTypeName)
	state.NewTable()
	lua.SetFunctions(state, objectiveMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)
}

func registerMissionConstructor(state *lua.State) {
	state.NewTable()
	lua.SetFunctions(state, missionConstructor, 0)
	state.SetGlobal("Mission")
}

var missionConstructor = []lua.RegistryFunction{
	{Name: "new", Function: missionNew},
}

var missionMethods = []lua.RegistryFunction{
	{Name: "objective", Function: missionObjective},
	{Name: "root", Function: missionRoot},
	{Name: "at", Function: missionAt},
}

var objectiveMethods = []lua.RegistryFunction{
	{Name: "child", Function: objectiveChild},
	{Name: "parent", Function: objectiveParent},
}

func missionNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	m := &Mission{Name: name}
	state.PushUserData(m)
	lua.SetMetaTableNamed(state, missionTypeName)
	return 1
}

func missionSelf(state *lua.State) *Mission {
	if m, ok := lua.CheckUserData(state, 1, missionTypeName).(*Mission); ok {
		return m
	}
	lua.Errorf(state, "mission expected")
	return nil
}

func objectiveAt(state *lua.State, index int) *mission.Objective {
	if o, ok := lua.CheckUserData(state, index, objectiveTypeName).(*mission.Objective); ok {
		return o
	}
	lua.Errorf(state, "objective expected at argument %d", index)
	return nil
}

func missionObjective(state *lua.State) int {
	missionSelf(state)
	kind := lua.CheckString(state, 2)
	cfg := map[string]any{}
	if state.TypeOf(3) == lua.TypeTable {
		cfg = tableAt(state, 3)
	}

	goal, err := buildGoal(kind, cfg)
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}
	obj := mission.New(goal)
	if err := decorate(obj, cfg); err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}

	state.PushUserData(obj)
	lua.SetMetaTableNamed(state, objectiveTypeName)
	return 1
}

func missionRoot(state *lua.State) int {
	m := missionSelf(state)
	for i := 2; i <= state.Top(); i++ {
		m.Roots = append(m.Roots, objectiveAt(state, i))
	}
	state.PushValue(1)
	return 1
}

func missionAt(state *lua.State) int {
	m := missionSelf(state)
	tick := lua.CheckInteger(state, 2)
	kind := lua.CheckString(state, 3)
	args := map[string]any{}
	if state.TypeOf(4) == lua.TypeTable {
		args = tableAt(state, 4)
	}
	m.Steps = append(m.Steps, Step{Tick: tick, Kind: kind, Args: args})
	state.PushValue(1)
	return 1
}

func objectiveChild(state *lua.State) int {
	parent := objectiveAt(state, 1)
	child := objectiveAt(state, 2)
	parent.WithChild(child)
	state.PushValue(1)
	return 1
}

func objectiveParent(state *lua.State) int {
	child := objectiveAt(state, 1)
	parent := objectiveAt(state, 2)
	child.WithParent(parent)
	state.PushValue(1)
	return 1
}

// tableAt converts the Lua table at index into Go values: tables with only
// integer keys become []any, everything else map[string]any. Numeric entries
// of mixed tables are dropped.
func tableAt(state *lua.State, index int) map[string]any {
	value := luaValue(state, index)
	if fields, ok := value.(map[string]any); ok {
		return fields
	}
	return map[string]any{}
}

func luaValue(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeNumber:
		n, _ := state.ToNumber(index)
		return n
	case lua.TypeString:
		s, _ := state.ToString(index)
		return s
	case lua.TypeTable:
		return luaTable(state, index)
	case lua.TypeUserData:
		return state.ToUserData(index)
	default:
		return nil
	}
}

func luaTable(state *lua.State, index int) any {
	index = state.AbsIndex(index)
	fields := map[string]any{}
	var seq []any

	state.PushNil()
	for state.Next(index) {
		value := luaValue(state, -1)
		switch state.TypeOf(-2) {
		case lua.TypeNumber:
			seq = append(seq, value)
		case lua.TypeString:
			key, _ := state.ToString(-2)
			fields[key] = value
		}
		state.Pop(1)
	}

	if len(fields) == 0 {
		return seq
	}
	return fields
}
