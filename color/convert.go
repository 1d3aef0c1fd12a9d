package color

import (
	"math"

	"github.com/charmbracelet/x/exp/ordered"
)

// Space is the color space of a normalized color.
type Space uint8

const (
	SpaceRGBA Space = iota + 1 // channels 0–255
	SpaceHSLA                  // components in [0,1]
)

func (s Space) String() string {
	switch s {
	case SpaceRGBA:
		return "rgba"
	case SpaceHSLA:
		return "hsla"
	}
	return "none"
}

// Normal is the normalized form of a convertible color. Depending on Space,
// either RGBA or HSLA is valid.
type Normal struct {
	Space Space
	RGBA  [4]uint8
	HSLA  [4]float32
}

// Normalize reduces c to its normalized form.
//
// Hex colors normalize to RGBA with alpha 0. Literals are normalized only if
// their text parses as a hex color literal.
func Normalize(c Color) (Normal, error) {
	if lit, ok := c.(Literal); ok {
		parsed, err := Parse(string(lit))
		if err != nil {
			tracer().Debugf("color literal %q is not convertible", lit)
			return Normal{}, &NonEligibleError{Color: c, Cause: err}
		}
		c = parsed
	}
	switch x := c.(type) {
	case Hex:
		r, g, b := hexChannels(uint32(x))
		return rgbaNormal(r, g, b, 0), nil
	case RGB:
		return rgbaNormal(x.R, x.G, x.B, 255), nil
	case RGBA:
		return rgbaNormal(x.R, x.G, x.B, x.A), nil
	case HSL:
		return hslaNormal(float32(x.H)/360, float32(x.S)/100, float32(x.L)/100, 1), nil
	case HSLA:
		return hslaNormal(float32(x.H)/360, float32(x.S)/100, float32(x.L)/100, float32(x.A)/100), nil
	}
	return Normal{}, &NonEligibleError{Color: c}
}

func rgbaNormal(r, g, b, a uint8) Normal {
	return Normal{Space: SpaceRGBA, RGBA: [4]uint8{r, g, b, a}}
}

func hslaNormal(h, s, l, a float32) Normal {
	return Normal{Space: SpaceHSLA, HSLA: [4]float32{h, s, l, a}}
}

func hexChannels(v uint32) (r, g, b uint8) {
	return uint8((v >> 16) & 0xff), uint8((v >> 8) & 0xff), uint8(v & 0xff)
}

// ToHSLA returns c as HSLA, each component in [0,1].
func ToHSLA(c Color) ([4]float32, error) {
	n, err := Normalize(c)
	if err != nil {
		return [4]float32{}, err
	}
	if n.Space == SpaceHSLA {
		return n.HSLA, nil
	}
	hsl := RGBToHSL(n.RGBA[0], n.RGBA[1], n.RGBA[2])
	return [4]float32{hsl[0], hsl[1], hsl[2], float32(n.RGBA[3]) / 255}, nil
}

// ToRGBA returns c as RGBA, each channel 0–255.
func ToRGBA(c Color) ([4]uint8, error) {
	n, err := Normalize(c)
	if err != nil {
		return [4]uint8{}, err
	}
	if n.Space == SpaceRGBA {
		return n.RGBA, nil
	}
	h := n.HSLA
	rgb := HSLToRGB(h[0], h[1], h[2])
	return [4]uint8{rgb[0], rgb[1], rgb[2], truncate8(h[3] * 255)}, nil
}

// AsHSLA converts c to an HSLA color value.
func AsHSLA(c Color) (Color, error) {
	h, err := ToHSLA(c)
	if err != nil {
		return nil, err
	}
	return FromNormalHSLA(h), nil
}

// AsRGBA converts c to an RGBA color value.
func AsRGBA(c Color) (Color, error) {
	ch, err := ToRGBA(c)
	if err != nil {
		return nil, err
	}
	return RGBA{ch[0], ch[1], ch[2], ch[3]}, nil
}

// FromNormalHSLA creates an HSLA color from components in [0,1].
func FromNormalHSLA(h [4]float32) HSLA {
	return HSLA{
		H: uint16(ordered.Clamp(math.Round(float64(h[0]*360)), 0, math.MaxUint16)),
		S: round8(h[1] * 100),
		L: round8(h[2] * 100),
		A: round8(h[3] * 100),
	}
}

func round8(x float32) uint8 {
	return uint8(ordered.Clamp(math.Round(float64(x)), 0, 255))
}

func truncate8(x float32) uint8 {
	return uint8(ordered.Clamp(math.Trunc(float64(x)), 0, 255))
}

// --- RGB ⇔ HSL -------------------------------------------------------------

// HSLToRGB converts hue, saturation and lightness, each in [0,1], to RGB
// channels.
func HSLToRGB(h, s, l float32) [3]uint8 {
	var r, g, b float32
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float32
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToChannel(p, q, h+1.0/3.0)
		g = hueToChannel(p, q, h)
		b = hueToChannel(p, q, h-1.0/3.0)
	}
	return [3]uint8{round8(r * 255), round8(g * 255), round8(b * 255)}
}

func hueToChannel(p, q, t float32) float32 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// RGBToHSL converts RGB channels to hue, saturation and lightness, each in
// [0,1]. Achromatic input yields hue 0 and saturation 0.
func RGBToHSL(r8, g8, b8 uint8) [3]float32 {
	r, g, b := float64(r8)/255, float64(g8)/255, float64(b8)/255
	vmax := math.Max(r, math.Max(g, b))
	vmin := math.Min(r, math.Min(g, b))
	l := (vmax + vmin) / 2
	if vmax == vmin {
		return [3]float32{0, 0, float32(l)}
	}
	d := vmax - vmin
	var s, h float64
	if l > 0.5 {
		s = d / (2 - vmax - vmin)
	} else {
		s = d / (vmax + vmin)
	}
	switch vmax {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return [3]float32{float32(h / 6), float32(s), float32(l)}
}
