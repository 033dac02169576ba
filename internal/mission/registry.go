package mission

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// The variant registries map stable type tags to zero-argument constructors
// so map encoders and authoring tools can build goals and markers by name
// without the engine knowing about either. Built-ins register at package
// init; hosts may register custom variants at process start. Registration of
// an existing tag overwrites silently, which lets hosts replace built-ins.
//
// Tags resolve case-insensitively, so both the simple form ("BuildCount")
// and the lowerCamel form ("buildCount") used by persisted data name the
// same constructor.

var (
	goalMu    sync.RWMutex
	goalTypes = map[string]func() Goal{}
	goalNames []string

	markerMu    sync.RWMutex
	markerTypes = map[string]func() Marker{}
	markerNames []string
)

// RegisterGoal associates a type tag with a goal constructor.
func RegisterGoal(name string, fn func() Goal) {
	goalMu.Lock()
	defer goalMu.Unlock()
	key := foldTag(name)
	if _, exists := goalTypes[key]; !exists {
		goalNames = append(goalNames, name)
	}
	goalTypes[key] = fn
}

// NewGoal constructs a goal by type tag, in either naming convention.
func NewGoal(name string) (Goal, bool) {
	goalMu.RLock()
	defer goalMu.RUnlock()
	fn, ok := goalTypes[foldTag(name)]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// GoalNames returns the registered goal tags in registration order.
func GoalNames() []string {
	goalMu.RLock()
	defer goalMu.RUnlock()
	names := make([]string, len(goalNames))
	copy(names, goalNames)
	return names
}

// RegisterMarker associates a type tag with a marker constructor.
func RegisterMarker(name string, fn func() Marker) {
	markerMu.Lock()
	defer markerMu.Unlock()
	key := foldTag(name)
	if _, exists := markerTypes[key]; !exists {
		markerNames = append(markerNames, name)
	}
	markerTypes[key] = fn
}

// NewMarker constructs a marker by type tag, in either naming convention.
func NewMarker(name string) (Marker, bool) {
	markerMu.RLock()
	defer markerMu.RUnlock()
	fn, ok := markerTypes[foldTag(name)]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// MarkerNames returns the registered marker tags in registration order.
func MarkerNames() []string {
	markerMu.RLock()
	defer markerMu.RUnlock()
	names := make([]string, len(markerNames))
	copy(names, markerNames)
	return names
}

// Camelize lowercases the first rune of a tag, producing the lowerCamel
// alias persisted data uses.
func Camelize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

func foldTag(name string) string {
	return strings.ToLower(name)
}

func init() {
	RegisterGoal("Research", func() Goal { return &Research{} })
	RegisterGoal("Produce", func() Goal { return &Produce{} })
	RegisterGoal("Item", func() Goal { return &ItemCount{Amount: 1} })
	RegisterGoal("CoreItem", func() Goal { return &CoreItemCount{Amount: 2} })
	RegisterGoal("BuildCount", func() Goal { return &BuildCount{Count: 1} })
	RegisterGoal("UnitCount", func() Goal { return &UnitCount{Count: 1} })
	RegisterGoal("DestroyUnits", func() Goal { return &DestroyUnits{Count: 1} })
	RegisterGoal("Timer", func() Goal { return &Timer{Duration: 60 * 30} })
	RegisterGoal("DestroyBlock", func() Goal { return &DestroyBlock{} })
	RegisterGoal("DestroyBlocks", func() Goal { return &DestroyBlocks{} })
	RegisterGoal("DestroyCore", func() Goal { return &DestroyCore{} })
	RegisterGoal("CommandMode", func() Goal { return &CommandMode{} })
	RegisterGoal("Flag", func() Goal { return &FlagSet{} })

	RegisterMarker("ShapeText", func() Marker {
		return &ShapeTextMarker{FontSize: 1, TextHeight: 7, Radius: 6, Sides: 4, Color: "ffd37f"}
	})
	RegisterMarker("Minimap", func() Marker {
		return &MinimapMarker{Radius: 5, Stroke: 11, Color: "f25555"}
	})
	RegisterMarker("Shape", func() Marker {
		return &ShapeMarker{Radius: 8, Stroke: 1, Outline: true, Sides: 4, Color: "ffd37f"}
	})
	RegisterMarker("Text", func() Marker {
		return &TextMarker{FontSize: 1}
	})
	RegisterMarker("Line", func() Marker {
		return &LineMarker{Stroke: 1, Outline: true, Color: "ffd37f"}
	})
	RegisterMarker("Texture", func() Marker {
		return &TextureMarker{Color: "ffffff"}
	})
}
