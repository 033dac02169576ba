package script

import (
	"fmt"
	"strings"
	"sync"

	"github.com/emberworks/skirmish/internal/mission"
)

// Decoder populates a registry-constructed goal or marker from a Lua config
// table. Custom variants registered with the mission package can install
// their own decoder so scripts can author them without loader changes.
type Decoder func(target any, cfg map[string]any) error

var (
	decoderMu sync.RWMutex
	decoders  = map[string]Decoder{}
)

// RegisterDecoder installs a config decoder for a goal or marker kind,
// overwriting any previous registration.
func RegisterDecoder(kind string, fn Decoder) {
	decoderMu.Lock()
	defer decoderMu.Unlock()
	decoders[strings.ToLower(kind)] = fn
}

func customDecoder(kind string) (Decoder, bool) {
	decoderMu.RLock()
	defer decoderMu.RUnlock()
	fn, ok := decoders[strings.ToLower(kind)]
	return fn, ok
}

// buildGoal constructs a goal through the mission registry and populates it
// from the script config table.
func buildGoal(kind string, cfg map[string]any) (mission.Goal, error) {
	g, ok := mission.NewGoal(kind)
	if !ok {
		return nil, fmt.Errorf("unknown objective kind %q", kind)
	}
	if fn, ok := customDecoder(kind); ok {
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("decode objective %q: %w", kind, err)
		}
		return g, nil
	}
	if err := decodeGoal(g, cfg); err != nil {
		return nil, fmt.Errorf("decode objective %q: %w", kind, err)
	}
	return g, nil
}

func decodeGoal(g mission.Goal, cfg map[string]any) error {
	switch g := g.(type) {
	case *mission.Research:
		g.Content = mission.Content(cfgString(cfg, "content", ""))
	case *mission.Produce:
		g.Content = mission.Content(cfgString(cfg, "content", ""))
	case *mission.ItemCount:
		g.Item = mission.Item(cfgString(cfg, "item", ""))
		g.Amount = cfgInt(cfg, "amount", g.Amount)
	case *mission.CoreItemCount:
		g.Item = mission.Item(cfgString(cfg, "item", ""))
		g.Amount = cfgInt(cfg, "amount", g.Amount)
	case *mission.BuildCount:
		g.Block = mission.Block(cfgString(cfg, "block", ""))
		g.Count = cfgInt(cfg, "count", g.Count)
	case *mission.UnitCount:
		g.Unit = mission.Unit(cfgString(cfg, "unit", ""))
		g.Count = cfgInt(cfg, "count", g.Count)
	case *mission.DestroyUnits:
		g.Count = cfgInt(cfg, "count", g.Count)
	case *mission.Timer:
		g.Text = cfgString(cfg, "text", "")
		g.Duration = cfgFloat(cfg, "duration", g.Duration)
	case *mission.DestroyBlock:
		g.Pos = mission.Point{X: cfgInt(cfg, "x", 0), Y: cfgInt(cfg, "y", 0)}
		g.Team = mission.Team(cfgString(cfg, "team", "crux"))
		g.Block = mission.Block(cfgString(cfg, "block", ""))
	case *mission.DestroyBlocks:
		positions, err := cfgPoints(cfg, "positions")
		if err != nil {
			return err
		}
		g.Positions = positions
		g.Team = mission.Team(cfgString(cfg, "team", "crux"))
		g.Block = mission.Block(cfgString(cfg, "block", ""))
	case *mission.DestroyCore, *mission.CommandMode:
		// No configuration.
	case *mission.FlagSet:
		g.Flag = cfgString(cfg, "flag", "")
		g.Text = cfgString(cfg, "text", "")
	default:
		return fmt.Errorf("no decoder registered for kind %q", g.Kind())
	}
	return nil
}

// buildMarker constructs a marker through the mission registry and populates
// it from a script table.
func buildMarker(cfg map[string]any) (mission.Marker, error) {
	kind := cfgString(cfg, "kind", "")
	if kind == "" {
		return nil, fmt.Errorf("marker table requires a kind")
	}
	m, ok := mission.NewMarker(kind)
	if !ok {
		return nil, fmt.Errorf("unknown marker kind %q", kind)
	}
	if fn, ok := customDecoder(kind); ok {
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("decode marker %q: %w", kind, err)
		}
		return m, nil
	}
	if err := decodeMarker(m, cfg); err != nil {
		return nil, fmt.Errorf("decode marker %q: %w", kind, err)
	}
	return m, nil
}

func decodeMarker(m mission.Marker, cfg map[string]any) error {
	switch m := m.(type) {
	case *mission.ShapeTextMarker:
		m.Text = cfgString(cfg, "text", m.Text)
		m.X = cfgFloat(cfg, "x", m.X)
		m.Y = cfgFloat(cfg, "y", m.Y)
		m.FontSize = cfgFloat(cfg, "font_size", m.FontSize)
		m.TextHeight = cfgFloat(cfg, "text_height", m.TextHeight)
		m.Radius = cfgFloat(cfg, "radius", m.Radius)
		m.Rotation = cfgFloat(cfg, "rotation", m.Rotation)
		m.Sides = cfgInt(cfg, "sides", m.Sides)
		m.Color = cfgString(cfg, "color", m.Color)
	case *mission.MinimapMarker:
		m.X = cfgInt(cfg, "x", m.X)
		m.Y = cfgInt(cfg, "y", m.Y)
		m.Radius = cfgFloat(cfg, "radius", m.Radius)
		m.Stroke = cfgFloat(cfg, "stroke", m.Stroke)
		m.Color = cfgString(cfg, "color", m.Color)
	case *mission.ShapeMarker:
		m.X = cfgFloat(cfg, "x", m.X)
		m.Y = cfgFloat(cfg, "y", m.Y)
		m.Radius = cfgFloat(cfg, "radius", m.Radius)
		m.Rotation = cfgFloat(cfg, "rotation", m.Rotation)
		m.Stroke = cfgFloat(cfg, "stroke", m.Stroke)
		m.Fill = cfgBool(cfg, "fill", m.Fill)
		m.Outline = cfgBool(cfg, "outline", m.Outline)
		m.Sides = cfgInt(cfg, "sides", m.Sides)
		m.Color = cfgString(cfg, "color", m.Color)
	case *mission.TextMarker:
		m.Text = cfgString(cfg, "text", m.Text)
		m.X = cfgFloat(cfg, "x", m.X)
		m.Y = cfgFloat(cfg, "y", m.Y)
		m.FontSize = cfgFloat(cfg, "font_size", m.FontSize)
	case *mission.LineMarker:
		m.X1 = cfgFloat(cfg, "x1", m.X1)
		m.Y1 = cfgFloat(cfg, "y1", m.Y1)
		m.X2 = cfgFloat(cfg, "x2", m.X2)
		m.Y2 = cfgFloat(cfg, "y2", m.Y2)
		m.Stroke = cfgFloat(cfg, "stroke", m.Stroke)
		m.Outline = cfgBool(cfg, "outline", m.Outline)
		m.Color = cfgString(cfg, "color", m.Color)
	case *mission.TextureMarker:
		m.Texture = cfgString(cfg, "texture", m.Texture)
		m.X = cfgFloat(cfg, "x", m.X)
		m.Y = cfgFloat(cfg, "y", m.Y)
		m.Width = cfgFloat(cfg, "width", m.Width)
		m.Height = cfgFloat(cfg, "height", m.Height)
		m.Rotation = cfgFloat(cfg, "rotation", m.Rotation)
		m.Color = cfgString(cfg, "color", m.Color)
	default:
		return fmt.Errorf("no decoder registered for kind %q", m.Kind())
	}
	return nil
}

// decorate applies the config keys shared by every objective kind.
func decorate(o *mission.Objective, cfg map[string]any) error {
	o.Details = cfgString(cfg, "details", "")
	o.FlagsAdded = cfgStrings(cfg, "flags_added")
	o.FlagsRemoved = cfgStrings(cfg, "flags_removed")

	raw, ok := cfg["markers"]
	if !ok {
		return nil
	}
	tables, ok := raw.([]any)
	if !ok {
		return fmt.Errorf("markers must be a list of tables")
	}
	for _, entry := range tables {
		table, ok := entry.(map[string]any)
		if !ok {
			return fmt.Errorf("markers must be a list of tables")
		}
		m, err := buildMarker(table)
		if err != nil {
			return err
		}
		o.Markers = append(o.Markers, m)
	}
	return nil
}

func cfgString(cfg map[string]any, key, def string) string {
	if v, ok := cfg[key].(string); ok {
		return v
	}
	return def
}

func cfgFloat(cfg map[string]any, key string, def float64) float64 {
	if v, ok := cfg[key].(float64); ok {
		return v
	}
	return def
}

func cfgInt(cfg map[string]any, key string, def int) int {
	if v, ok := cfg[key].(float64); ok {
		return int(v)
	}
	return def
}

func cfgBool(cfg map[string]any, key string, def bool) bool {
	if v, ok := cfg[key].(bool); ok {
		return v
	}
	return def
}

func cfgStrings(cfg map[string]any, key string) []string {
	raw, ok := cfg[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func cfgPoints(cfg map[string]any, key string) ([]mission.Point, error) {
	raw, ok := cfg[key].([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be a list of {x, y} pairs", key)
	}
	points := make([]mission.Point, 0, len(raw))
	for _, entry := range raw {
		pair, ok := entry.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("%s must be a list of {x, y} pairs", key)
		}
		x, xok := pair[0].(float64)
		y, yok := pair[1].(float64)
		if !xok || !yok {
			return nil, fmt.Errorf("%s must be a list of {x, y} pairs", key)
		}
		points = append(points, mission.Point{X: int(x), Y: int(y)})
	}
	return points, nil
}
