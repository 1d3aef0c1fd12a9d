package color

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

// Wire formats of colors:
//
//     "#RRGGBB", "red"            → Literal
//     13421772                    → Hex
//     {"r":…,"g":…,"b":…[,"a":…]} → RGB / RGBA
//     {"h":…,"s":…,"l":…[,"a":…]} → HSL / HSLA
//     {"var":…[,"fallback":…]}    → Var
//
// Strings stay literals; a hex text literal remains convertible.

// Decode decodes a color from its JSON wire format.
func Decode(data []byte) (Color, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON for color: %q", data)
	}
	return FromJSON(gjson.ParseBytes(data))
}

// FromJSON decodes a color from a parsed JSON value.
func FromJSON(v gjson.Result) (Color, error) {
	switch v.Type {
	case gjson.String:
		return Literal(v.Str), nil
	case gjson.Number:
		if v.Num < 0 || v.Num > 0xffffffff || v.Num != float64(v.Uint()) {
			return nil, fmt.Errorf("hex color out of range: %s", v.Raw)
		}
		return Hex(uint32(v.Uint())), nil
	}
	if !v.IsObject() {
		return nil, fmt.Errorf("cannot decode color from %s", v.Raw)
	}
	fields := map[string]gjson.Result{}
	v.ForEach(func(key, value gjson.Result) bool {
		fields[key.Str] = value
		return true
	})
	return fromFields(len(fields), func(key string) (uint64, bool, error) {
		f, ok := fields[key]
		if !ok {
			return 0, false, nil
		}
		if f.Type != gjson.Number || f.Num < 0 || f.Num != float64(f.Uint()) {
			return 0, true, fmt.Errorf("color component %q must be a non-negative integer, is %s", key, f.Raw)
		}
		return f.Uint(), true, nil
	}, func() (string, bool) {
		f, ok := fields["var"]
		return f.Str, ok && f.Type == gjson.String
	}, func() (Color, bool, error) {
		f, ok := fields["fallback"]
		if !ok || f.Type == gjson.Null {
			return nil, false, nil
		}
		c, err := FromJSON(f)
		return c, true, err
	})
}

// FromYAML decodes a color from a YAML node, using the same shapes as the JSON wire
// format. Integer scalars (e.g. 0xffcc00) decode to Hex.
func FromYAML(node *yaml.Node) (Color, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!int" {
			n, err := strconv.ParseUint(node.Value, 0, 32)
			if err != nil {
				return nil, fmt.Errorf("hex color out of range: %s", node.Value)
			}
			return Hex(uint32(n)), nil
		}
		return Literal(node.Value), nil
	case yaml.MappingNode:
		fields := map[string]*yaml.Node{}
		for i := 0; i+1 < len(node.Content); i += 2 {
			fields[node.Content[i].Value] = node.Content[i+1]
		}
		return fromFields(len(fields), func(key string) (uint64, bool, error) {
			f, ok := fields[key]
			if !ok {
				return 0, false, nil
			}
			n, err := strconv.ParseUint(f.Value, 10, 16)
			if err != nil {
				return 0, true, fmt.Errorf("color component %q must be a non-negative integer, is %q", key, f.Value)
			}
			return n, true, nil
		}, func() (string, bool) {
			f, ok := fields["var"]
			if !ok {
				return "", false
			}
			return f.Value, f.Kind == yaml.ScalarNode
		}, func() (Color, bool, error) {
			f, ok := fields["fallback"]
			if !ok || f.Tag == "!!null" {
				return nil, false, nil
			}
			c, err := FromYAML(f)
			return c, true, err
		})
	}
	return nil, fmt.Errorf("cannot decode color from YAML node at line %d", node.Line)
}

// fromFields assembles structured colors independent of the encoding.
func fromFields(n int,
	component func(string) (uint64, bool, error),
	varname func() (string, bool),
	fallback func() (Color, bool, error)) (Color, error) {
	//
	if name, ok := varname(); ok {
		fb, _, err := fallback()
		if err != nil {
			return nil, fmt.Errorf("fallback of var %q: %w", name, err)
		}
		return Var{Name: name, Fallback: fb}, nil
	}
	get := func(keys ...string) ([]uint64, bool, error) {
		vals := make([]uint64, len(keys))
		for i, k := range keys {
			v, ok, err := component(k)
			if err != nil {
				return nil, true, err
			}
			if !ok {
				return nil, false, nil
			}
			vals[i] = v
		}
		return vals, true, nil
	}
	_, hasAlpha, err := component("a")
	if err != nil {
		return nil, err
	}
	if rgb, ok, err := get("r", "g", "b"); err != nil {
		return nil, err
	} else if ok {
		if rgb[0] > 255 || rgb[1] > 255 || rgb[2] > 255 {
			return nil, fmt.Errorf("rgb channels must be within 0–255, are %v", rgb)
		}
		if !hasAlpha {
			return RGB{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2])}, nil
		}
		a, _, _ := component("a")
		if a > 255 {
			return nil, fmt.Errorf("rgba alpha must be within 0–255, is %d", a)
		}
		return RGBA{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), uint8(a)}, nil
	}
	if hsl, ok, err := get("h", "s", "l"); err != nil {
		return nil, err
	} else if ok {
		if hsl[0] > 360 || hsl[1] > 100 || hsl[2] > 100 {
			return nil, fmt.Errorf("hsl components out of range: %v", hsl)
		}
		if !hasAlpha {
			return HSL{uint16(hsl[0]), uint8(hsl[1]), uint8(hsl[2])}, nil
		}
		a, _, _ := component("a")
		if a > 100 {
			return nil, fmt.Errorf("hsla alpha must be within 0–100, is %d", a)
		}
		return HSLA{uint16(hsl[0]), uint8(hsl[1]), uint8(hsl[2]), uint8(a)}, nil
	}
	return nil, fmt.Errorf("cannot decode color from object with %d fields", n)
}

// Encode encodes a color into its JSON wire format.
func Encode(c Color) ([]byte, error) {
	switch x := c.(type) {
	case Literal:
		return json.Marshal(string(x))
	case Hex:
		return []byte(strconv.FormatUint(uint64(x), 10)), nil
	case RGB:
		return object("r", x.R, "g", x.G, "b", x.B)
	case RGBA:
		return object("r", x.R, "g", x.G, "b", x.B, "a", x.A)
	case HSL:
		return object("h", x.H, "s", x.S, "l", x.L)
	case HSLA:
		return object("h", x.H, "s", x.S, "l", x.L, "a", x.A)
	case Var:
		out, err := sjson.SetBytes([]byte(`{}`), "var", x.Name)
		if err != nil || x.Fallback == nil {
			return out, err
		}
		fb, err := Encode(x.Fallback)
		if err != nil {
			return nil, err
		}
		return sjson.SetRawBytes(out, "fallback", fb)
	}
	return nil, fmt.Errorf("cannot encode color %#v", c)
}

func object(kv ...any) ([]byte, error) {
	out := []byte(`{}`)
	var err error
	for i := 0; i+1 < len(kv); i += 2 {
		if out, err = sjson.SetBytes(out, kv[i].(string), kv[i+1]); err != nil {
			return nil, err
		}
	}
	return out, nil
}
