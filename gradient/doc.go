/*
Package gradient implements color gradients over the unit interval.

A gradient is an ordered set of control points position → color, with
mandatory points at positions 0 and 1. Colors between control points are
interpolated linearly, component by component, in the normalized color space
both neighbouring points share (RGBA or HSLA; see package color). There is no
blending rule across color spaces: asking for a color between an RGBA point
and an HSLA point is an error.

    g := gradient.New(color.HSL{0, 80, 75}, color.HSL{360, 80, 75})
    g.Set(gradient.At(1.0/3.0), color.HSL{120, 80, 75})
    c, err := g.Get(gradient.At(0.5))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gradient

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sx.gradient'.
func tracer() tracing.Trace {
	return tracing.Select("sx.gradient")
}
