/*
Package color implements the color model of style expressions.

A Color is one of a closed set of representations: a CSS literal, a hex
integer, RGB(A) with channels 0–255, HSL(A) with hue 0–360 and saturation,
lightness and alpha 0–100, or a reference to a CSS variable with an optional
fallback color.

Please note that alpha is scaled differently for RGBA (0–255) and for HSLA
(0–100).

Conversions

Every convertible color reduces to a normalized form first: either RGBA with
0–255 channels, or HSLA with each component in [0,1]. Named CSS color keywords
are not convertible; a literal is convertible only if its text is a hex
literal "#RRGGBB" or "#RRGGBBAA". Variable references are never convertible.

A Hex color normalizes to RGBA with alpha 0, although its string form is an
opaque "#RRGGBB". Existing palettes rely on both behaviours, so neither one
is adjusted to the other.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package color

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sx.color'.
func tracer() tracing.Trace {
	return tracing.Select("sx.color")
}
