package themefile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/sx"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Leaves selects how strings of a style mapping are interpreted.
type Leaves uint8

const (
	// LiteralLeaves keeps strings as CSS literal text.
	LiteralLeaves Leaves = iota
	// ParsedLeaves creates values from strings with sx.ValueOf.
	ParsedLeaves
)

func (l Leaves) value(s string) (sx.Value, error) {
	if l == ParsedLeaves {
		return sx.ValueOf(s)
	}
	return sx.Literal(s), nil
}

// StyleFromJSON decodes a style from a JSON object. Strings are interpreted
// by sx.ValueOf, numbers become integers or floats, booleans literals, and
// objects nested styles.
func StyleFromJSON(data []byte, leaves Leaves) (*sx.Style, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrSyntax)
	}
	return styleFromJSON(gjson.ParseBytes(data), leaves)
}

// StyleFromYAML decodes a style from a YAML mapping, like StyleFromJSON.
func StyleFromYAML(data []byte, leaves Leaves) (*sx.Style, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return styleFromYAML(&doc, leaves)
}

func styleFromJSON(v gjson.Result, leaves Leaves) (*sx.Style, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("style must be an object, is %s", v.Raw)
	}
	style := sx.New()
	var err error
	v.ForEach(func(key, value gjson.Result) bool {
		var sv sx.Value
		switch {
		case value.IsObject():
			var nested *sx.Style
			if nested, err = styleFromJSON(value, leaves); err == nil {
				sv = sx.Nest(nested)
			}
		case value.Type == gjson.String:
			sv, err = leaves.value(value.Str)
		case value.Type == gjson.Number:
			sv, err = number(value.Raw)
		case value.IsBool():
			sv = sx.Literal(strconv.FormatBool(value.Bool()))
		default:
			err = fmt.Errorf("unsupported style value %s", value.Raw)
		}
		if err != nil {
			err = fmt.Errorf("property %q: %w", key.Str, err)
			return false
		}
		style.Insert(key.Str, sv)
		return true
	})
	if err != nil {
		return nil, err
	}
	return style, nil
}

func styleFromYAML(node *yaml.Node, leaves Leaves) (*sx.Style, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("style must be a mapping (line %d)", node.Line)
	}
	style := sx.New()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		sv, err := yamlValue(value, leaves)
		if err != nil {
			return nil, fmt.Errorf("property %q (line %d): %w", key, value.Line, err)
		}
		style.Insert(key, sv)
	}
	return style, nil
}

func yamlValue(node *yaml.Node, leaves Leaves) (sx.Value, error) {
	if node.Kind == yaml.MappingNode {
		nested, err := styleFromYAML(node, leaves)
		if err != nil {
			return nil, err
		}
		return sx.Nest(nested), nil
	}
	if node.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("unsupported style value of kind %d", node.Kind)
	}
	switch node.Tag {
	case "!!int":
		if n, err := strconv.ParseInt(node.Value, 0, 64); err == nil {
			return sx.Int(n), nil
		}
		return number(node.Value)
	case "!!float":
		return number(node.Value)
	case "!!bool":
		b, err := strconv.ParseBool(strings.ToLower(node.Value))
		if err != nil {
			return nil, err
		}
		return sx.Literal(strconv.FormatBool(b)), nil
	case "!!null":
		return nil, fmt.Errorf("style value must not be null")
	}
	return leaves.value(node.Value)
}

// number creates an integer or float from the text of a number, keeping its
// decimal digits exactly.
func number(text string) (sx.Value, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil, err
	}
	if strings.ContainsAny(text, ".eE") {
		return sx.Float{Value: d}, nil
	}
	return sx.Integer{Value: d}, nil
}
