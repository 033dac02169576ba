package mission

// Marker is an opaque overlay handle attached to an objective. The engine
// only times the add/remove lifecycle: markers surface once when their
// objective first qualifies and retire when it completes. Rendering belongs
// to the host, which receives markers through Hooks.
type Marker interface {
	// Kind returns the stable type tag used by registries and map encoding.
	Kind() string
}

// ShapeTextMarker displays text above a polygonal outline.
type ShapeTextMarker struct {
	Text       string
	X, Y       float64
	FontSize   float64
	TextHeight float64
	Radius     float64
	Rotation   float64
	Sides      int
	Color      string
}

func (m *ShapeTextMarker) Kind() string { return "ShapeText" }

// MinimapMarker displays a pulsing circle on the minimap.
type MinimapMarker struct {
	X, Y   int
	Radius float64
	Stroke float64
	Color  string
}

func (m *MinimapMarker) Kind() string { return "Minimap" }

// ShapeMarker displays a polygon, outlined or filled.
type ShapeMarker struct {
	X, Y     float64
	Radius   float64
	Rotation float64
	Stroke   float64
	Fill     bool
	Outline  bool
	Sides    int
	Color    string
}

func (m *ShapeMarker) Kind() string { return "Shape" }

// TextMarker displays a world-space text label.
type TextMarker struct {
	Text     string
	X, Y     float64
	FontSize float64
}

func (m *TextMarker) Kind() string { return "Text" }

// LineMarker displays a line between two points.
type LineMarker struct {
	X1, Y1  float64
	X2, Y2  float64
	Stroke  float64
	Outline bool
	Color   string
}

func (m *LineMarker) Kind() string { return "Line" }

// TextureMarker displays a named texture. Zero width or height defers to the
// texture's own size.
type TextureMarker struct {
	Texture       string
	X, Y          float64
	Width, Height float64
	Rotation      float64
	Color         string
}

func (m *TextureMarker) Kind() string { return "Texture" }
