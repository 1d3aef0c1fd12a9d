/*
Package baseline creates the global style sheet of a theme.

The baseline declares a CSS variable for every palette selector of a theme,
the classes of the typography levels and a small set of global rules. The
CSS variables of compiled styles refer to the declarations of the baseline.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package baseline

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sx"
	"github.com/npillmayer/sx/color"
)

// tracer traces with key 'sx.baseline'.
func tracer() tracing.Trace {
	return tracing.Select("sx.baseline")
}

// Build creates the baseline style of a theme for mode m. System resolves
// to Light.
//
// The baseline contains, in this order,
//
//     {system class}.{level}   for every typography level except "*"
//     html                     a CSS variable for every palette selector
//     :root, html              text and background colors
//     p, span, …, body         margin resets
//     {system class}           variant and color attributes
//
// Rules referring to palette selectors the theme does not define are left
// out.
func Build(theme *sx.Theme, m sx.Mode) *sx.Style {
	m = m.Resolve(nil)
	base := sx.New()
	system := theme.SystemClass()
	typo := theme.Typography()
	for _, level := range typo.Levels() {
		if level.IsStar() {
			continue
		}
		style, _ := typo.At(level)
		base.Insert(system+"."+level.String(), sx.Nest(style))
	}
	vars := sx.New()
	for _, name := range theme.Palettes() {
		palette, _ := theme.Palette(name)
		for _, selector := range palette.Selectors() {
			c, _ := palette.Select(selector, m)
			if rgba, err := color.AsRGBA(c); err == nil {
				c = rgba
			}
			vars.Insert(theme.PaletteVar(name, selector), sx.Col(c))
		}
	}
	tracer().Debugf("baseline declares %d palette variables", vars.Len())
	base.Insert("html", sx.Nest(vars))
	return base.Merge(globals(theme))
}

// Sheet compiles the baseline of a theme. The detector resolves mode System
// and may be nil.
func Sheet(theme *sx.Theme, m sx.Mode, d sx.Detector) (string, error) {
	m = m.Resolve(d)
	return sx.Compile(Build(theme, m), m, theme)
}

func globals(theme *sx.Theme) *sx.Style {
	tokens := tokenSetter{theme: theme}
	root := sx.New()
	tokens.set(root, "color", "text", "primary")
	tokens.set(root, "bgcolor", "background", "body")
	//
	success := sx.New()
	tokens.set(success, "color", "success", "050")
	disabled := sx.New()
	tokens.set(disabled, "borderColor", "success", "outlinedDisabledBorder")
	tokens.set(disabled, "color", "success", "outlinedDisabledColor")
	outlinedSuccess := sx.New()
	tokens.set(outlinedSuccess, "borderColor", "success", "outlinedBorder")
	tokens.set(outlinedSuccess, "color", "success", "outlinedColor")
	outlinedSuccess.Set("&[disabled]", sx.Nest(disabled))
	outlined := sx.New().
		SetString("borderWidth", "3px").
		SetString("borderStyle", "solid").
		SetString("padding", "3px").
		SetString("borderColor", "inherit").
		Set("&[color=success]", sx.Nest(outlinedSuccess))
	//
	return sx.New().
		Set(":root, html", sx.Nest(root)).
		Set("p, span, code, h1, h2, h3, h4", sx.Nest(sx.New().
			SetString("margin-block-start", "0.1em").
			SetString("margin-block-end", "0.1em").
			SetString("margin-inline-start", "0px").
			SetString("margin-inline-end", "0px"))).
		Set("body", sx.Nest(sx.New().SetString("margin", "0"))).
		Set(theme.SystemClass(), sx.Nest(sx.New().
			Set("&[color=success]", sx.Nest(success)).
			Set("&[variant=outlined]", sx.Nest(outlined))))
}

// tokenSetter sets properties to theme tokens, if the theme defines them.
type tokenSetter struct {
	theme *sx.Theme
}

func (ts tokenSetter) set(style *sx.Style, key, palette, selector string) {
	p, ok := ts.theme.Palette(palette)
	if !ok {
		return
	}
	if _, ok := p.Swatch(selector); !ok {
		return
	}
	style.Insert(key, sx.Token(palette, selector))
}
