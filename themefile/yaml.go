package themefile

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/sx/color"
	"github.com/npillmayer/sx/gradient"
	"gopkg.in/yaml.v3"
)

func definitionFromYAML(data []byte) (*definition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: theme must be a mapping", ErrSyntax)
	}
	def := &definition{}
	eachPair(root, func(key string, value *yaml.Node) {
		switch key {
		case "prefix":
			def.prefix = value.Value
		case "breakpoints":
			eachPair(value, func(name string, width *yaml.Node) {
				if width.Tag == "!!int" {
					w, err := strconv.Atoi(width.Value)
					if err == nil && w < 0 {
						err = fmt.Errorf("width must not be negative, is %d", w)
					}
					def.addBreakpoint(name, w, err)
					return
				}
				w, err := breakpointWidth(width.Value)
				def.addBreakpoint(name, w, err)
			})
		case "palettes":
			eachPair(value, func(name string, palette *yaml.Node) {
				if pdef, ok := paletteFromYAML(def, name, palette); ok {
					def.palettes = append(def.palettes, pdef)
				}
			})
		case "typography":
			eachPair(value, func(name string, level *yaml.Node) {
				style, err := styleFromYAML(level, LiteralLeaves)
				def.addLevel(name, style, err)
			})
		default:
			tracer().Infof("ignoring theme field %q (line %d)", key, value.Line)
		}
	})
	return def, nil
}

// eachPair calls f for the key/value pairs of a mapping node, in document
// order. Other nodes have no pairs.
func eachPair(node *yaml.Node, f func(key string, value *yaml.Node)) {
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		f(node.Content[i].Value, node.Content[i+1])
	}
}

func field(node *yaml.Node, key string) *yaml.Node {
	var found *yaml.Node
	eachPair(node, func(k string, v *yaml.Node) {
		if k == key {
			found = v
		}
	})
	return found
}

func paletteFromYAML(def *definition, name string, node *yaml.Node) (paletteDef, bool) {
	pdef := paletteDef{name: name}
	if node.Kind != yaml.MappingNode {
		def.fail(fmt.Errorf("palette %q must be a mapping (line %d)", name, node.Line))
		return pdef, false
	}
	ok := true
	if g := field(node, "gradient"); g != nil {
		points := field(g, "points")
		if points == nil {
			def.fail(fmt.Errorf("palette %q: gradient without points (line %d)", name, g.Line))
			ok = false
		} else {
			grad := &gradient.Gradient{}
			if err := points.Decode(grad); err != nil {
				def.fail(fmt.Errorf("palette %q: %w", name, err))
				ok = false
			}
			pdef.gradient = grad
		}
		if mode := field(g, "mode"); mode != nil {
			pdef.mode = mode.Value
		}
	}
	if selectors := field(node, "selectors"); selectors != nil {
		eachPair(selectors, func(selector string, c *yaml.Node) {
			sdef, err := selectorFromYAML(selector, c)
			if err != nil {
				def.fail(fmt.Errorf("palette %q, selector %q: %w", name, selector, err))
				ok = false
				return
			}
			pdef.selectors = append(pdef.selectors, sdef)
		})
	}
	return pdef, ok
}

func selectorFromYAML(name string, node *yaml.Node) (selectorDef, error) {
	dark, light := field(node, "dark"), field(node, "light")
	if dark != nil && light != nil {
		d, err := color.FromYAML(dark)
		if err != nil {
			return selectorDef{}, fmt.Errorf("dark: %w", err)
		}
		l, err := color.FromYAML(light)
		if err != nil {
			return selectorDef{}, fmt.Errorf("light: %w", err)
		}
		return selectorDef{name: name, dark: d, light: l, modeBased: true}, nil
	}
	c, err := color.FromYAML(node)
	if err != nil {
		return selectorDef{}, err
	}
	return selectorDef{name: name, dark: c, light: c}, nil
}
