package gradient

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/sx/bounded"
	"github.com/npillmayer/sx/color"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

// A gradient is serialized as an object mapping fractional positions to colors:
//
//     { "0": "#000000", "0.5": {"h": 120, "s": 50, "l": 50}, "1": "#ffffff" }

// ParsePos parses the text of a gradient position.
func ParsePos(key string) (Pos, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(key), 32)
	if err != nil {
		return Pos{}, fmt.Errorf("gradient position %q: %w", key, err)
	}
	pos, ok := bounded.New[bounded.Unit](float32(f))
	if !ok {
		return Pos{}, fmt.Errorf("gradient position %q not in bounds [0,1]", key)
	}
	return pos, nil
}

// FromJSON creates a gradient from a parsed JSON object.
func FromJSON(v gjson.Result) (*Gradient, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("gradient must be an object, is %s", v.Raw)
	}
	var points []Point
	var err error
	v.ForEach(func(key, value gjson.Result) bool {
		var pos Pos
		if pos, err = ParsePos(key.Str); err != nil {
			return false
		}
		var c color.Color
		if c, err = color.FromJSON(value); err != nil {
			err = fmt.Errorf("gradient point %s: %w", key.Str, err)
			return false
		}
		points = append(points, Point{Pos: pos, Color: c})
		return true
	})
	if err != nil {
		return nil, err
	}
	return FromPoints(points)
}

// UnmarshalJSON decodes a gradient. It fails if a point at 0 or at 1 is missing.
func (g *Gradient) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid JSON for gradient")
	}
	decoded, err := FromJSON(gjson.ParseBytes(data))
	if err != nil {
		return err
	}
	*g = *decoded
	return nil
}

// MarshalJSON encodes the control points of g in ascending order.
func (g *Gradient) MarshalJSON() ([]byte, error) {
	out := []byte(`{}`)
	for _, p := range g.points {
		enc, err := color.Encode(p.Color)
		if err != nil {
			return nil, err
		}
		// dots in keys are path separators for sjson
		key := strings.ReplaceAll(p.Pos.String(), ".", `\.`)
		if out, err = sjson.SetRawBytes(out, key, enc); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// UnmarshalYAML decodes a gradient from a YAML mapping.
func (g *Gradient) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("gradient must be a mapping (line %d)", node.Line)
	}
	points := make([]Point, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		pos, err := ParsePos(node.Content[i].Value)
		if err != nil {
			return err
		}
		c, err := color.FromYAML(node.Content[i+1])
		if err != nil {
			return fmt.Errorf("gradient point %s: %w", node.Content[i].Value, err)
		}
		points = append(points, Point{Pos: pos, Color: c})
	}
	decoded, err := FromPoints(points)
	if err != nil {
		return err
	}
	*g = *decoded
	return nil
}
