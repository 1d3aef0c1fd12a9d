/*
Package sx implements declarative style expressions and their compilation to CSS.

A Style is an ordered tree of style properties. Values are literals, numeric
dimensions, colors, references into a theme, callbacks computing a value from
the theme, or nested styles:

    box := sx.New().
        Set("pX", sx.MustValueOf("10px")).
        Set("bgcolor", sx.MustValueOf("background.body")).
        Set("&:hover", sx.Nest(sx.New().Set("color", sx.MustValueOf("primary.500")))).
        Set("md", sx.Nest(sx.New().Set("padding", sx.MustValueOf("20px"))))

Compiling a style resolves theme tokens to CSS variables, expands shorthand
property names, translates breakpoint keys to media queries and flattens
nested selectors:

    css, err := sx.Compile(box, sx.Dark, theme, sx.WithBase(".box"))

Theme tokens refer to a palette and a selector within the palette. They are
not resolved to colors, but to CSS variables named

    --{prefix}-palette-{palette}-{selector}

which a baseline style sheet of the theme declares (see package baseline).
Referring to a palette or selector unknown to the theme is a configuration
error and aborts compilation.

Themes

A Theme holds a prefix, a set of breakpoints, named palettes and a typography
scale. Themes are read-only during compilation and may be shared between
goroutines. Themes may be loaded from theme files with package themefile.

Theme Modes

Palette selectors may hold a constant color or a pair of colors for dark and
light mode. Mode System has to be resolved to Dark or Light before selecting
colors from a palette; Compile does this with the help of a Detector.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sx.style'.
func tracer() tracing.Trace {
	return tracing.Select("sx.style")
}

// tracec traces compilation with key 'sx.compile'.
func tracec() tracing.Trace {
	return tracing.Select("sx.compile")
}
