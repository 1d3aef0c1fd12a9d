package themefile

import (
	"fmt"

	"github.com/npillmayer/sx/color"
	"github.com/npillmayer/sx/gradient"
	"github.com/tidwall/gjson"
)

func definitionFromJSON(data []byte) (*definition, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrSyntax)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: theme must be an object", ErrSyntax)
	}
	def := &definition{prefix: doc.Get("prefix").String()}
	doc.Get("breakpoints").ForEach(func(name, width gjson.Result) bool {
		switch width.Type {
		case gjson.Number:
			def.addBreakpoint(name.Str, int(width.Int()), nonNegativeInt(width))
		case gjson.String:
			w, err := breakpointWidth(width.Str)
			def.addBreakpoint(name.Str, w, err)
		default:
			def.addBreakpoint(name.Str, 0, fmt.Errorf("width must be a number or dimension, is %s", width.Raw))
		}
		return true
	})
	doc.Get("palettes").ForEach(func(name, palette gjson.Result) bool {
		if pdef, ok := paletteFromJSON(def, name.Str, palette); ok {
			def.palettes = append(def.palettes, pdef)
		}
		return true
	})
	doc.Get("typography").ForEach(func(name, level gjson.Result) bool {
		style, err := styleFromJSON(level, LiteralLeaves)
		def.addLevel(name.Str, style, err)
		return true
	})
	return def, nil
}

func nonNegativeInt(v gjson.Result) error {
	if v.Num < 0 || v.Num != float64(v.Int()) {
		return fmt.Errorf("width must be a non-negative integer, is %s", v.Raw)
	}
	return nil
}

func paletteFromJSON(def *definition, name string, v gjson.Result) (paletteDef, bool) {
	pdef := paletteDef{name: name}
	if !v.IsObject() {
		def.fail(fmt.Errorf("palette %q must be an object", name))
		return pdef, false
	}
	ok := true
	if g := v.Get("gradient"); g.Exists() {
		grad, err := gradient.FromJSON(g.Get("points"))
		if err != nil {
			def.fail(fmt.Errorf("palette %q: %w", name, err))
			ok = false
		}
		pdef.gradient, pdef.mode = grad, g.Get("mode").String()
	}
	v.Get("selectors").ForEach(func(selector, c gjson.Result) bool {
		sdef, err := selectorFromJSON(selector.Str, c)
		if err != nil {
			def.fail(fmt.Errorf("palette %q, selector %q: %w", name, selector.Str, err))
			ok = false
			return true
		}
		pdef.selectors = append(pdef.selectors, sdef)
		return true
	})
	return pdef, ok
}

func selectorFromJSON(name string, v gjson.Result) (selectorDef, error) {
	if v.IsObject() {
		dark, light := v.Get("dark"), v.Get("light")
		if dark.Exists() && light.Exists() {
			d, err := color.FromJSON(dark)
			if err != nil {
				return selectorDef{}, fmt.Errorf("dark: %w", err)
			}
			l, err := color.FromJSON(light)
			if err != nil {
				return selectorDef{}, fmt.Errorf("light: %w", err)
			}
			return selectorDef{name: name, dark: d, light: l, modeBased: true}, nil
		}
	}
	c, err := color.FromJSON(v)
	if err != nil {
		return selectorDef{}, err
	}
	return selectorDef{name: name, dark: c, light: c}, nil
}
