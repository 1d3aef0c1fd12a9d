/*
Package themefile loads themes from JSON and YAML theme files.

A theme file is a mapping with the optional fields

    prefix        prefix of CSS variables and classes
    breakpoints   mapping of breakpoint names to pixel widths or absolute
                  dimensions ("8in", "12cm"); replaces the default breakpoints
    palettes      mapping of palette names to palette definitions
    typography    mapping of typography levels ("*", "h1", "title-md", …)
                  to style mappings

A palette definition holds an optional gradient and optional selectors:

    "primary": {
        "gradient": { "mode": "hsl", "points": { "0": "#E3EFFB", "1": "#12467B" } },
        "selectors": {
            "solidBg": { "var": "primary.050" },
            "plainColor": { "dark": "#D9EDFF", "light": "#0B6BCB" }
        }
    }

A gradient produces eleven constant selectors "000", "010", … "100", sampled
from positions 0, 0.1, … 1. Its points have to include positions 0 and 1.
Mode "hsl" or "rgb" converts the points to that color space first.
Selector colors use the color wire formats of package color; a color
variable naming "palette.selector" is rewritten to the CSS variable of that
palette selector.

Errors found in a theme file are collected, so that a single load reports
every defective palette and selector.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package themefile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sx.themefile'.
func tracer() tracing.Trace {
	return tracing.Select("sx.themefile")
}
