package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Color is the sum type of all color representations. Colors are comparable
// values: two colors are equal iff they have the same representation and the
// same components.
type Color interface {
	fmt.Stringer
	isColor()
}

// Literal is a CSS literal color, e.g. a color keyword like "rebeccapurple"
// or a hex text like "#0f0f0f".
type Literal string

// Hex is a color given as a 24-bit integer 0xRRGGBB.
type Hex uint32

// RGB is an opaque color with 0–255 channels.
type RGB struct {
	R, G, B uint8
}

// RGBA is a color with 0–255 channels, including alpha.
type RGBA struct {
	R, G, B, A uint8
}

// HSL is an opaque color with hue 0–360 and saturation/lightness 0–100.
type HSL struct {
	H    uint16
	S, L uint8
}

// HSLA is an HSL color with alpha. Alpha is scaled 0–100, not 0–255 as for RGBA.
type HSLA struct {
	H       uint16
	S, L, A uint8
}

// Var references a CSS variable, with an optional fallback color.
type Var struct {
	Name     string
	Fallback Color // may be nil
}

func (Literal) isColor() {}
func (Hex) isColor()     {}
func (RGB) isColor()     {}
func (RGBA) isColor()    {}
func (HSL) isColor()     {}
func (HSLA) isColor()    {}
func (Var) isColor()     {}

// Named creates a literal color.
func Named(name string) Color {
	return Literal(name)
}

func (c Literal) String() string {
	return string(c)
}

func (c Hex) String() string {
	return fmt.Sprintf("#%06X", uint32(c))
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGBA) String() string {
	if c.A == 255 {
		return RGB{c.R, c.G, c.B}.String()
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func (c HSL) String() string {
	return fmt.Sprintf("hsla(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

func (c HSLA) String() string {
	if c.A == 100 {
		return HSL{c.H, c.S, c.L}.String()
	}
	return fmt.Sprintf("hsla(%d, %d%%, %d%%, %.2f)", c.H, c.S, c.L, float32(c.A)/100)
}

func (c Var) String() string {
	if c.Fallback == nil {
		return "var(" + c.Name + ")"
	}
	return "var(" + c.Name + ", " + c.Fallback.String() + ")"
}

// --- Parsing ---------------------------------------------------------------

// ParseError is returned for text which is not a hex color literal.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("not a hex color literal: %q", e.Input)
}

// Parse parses a hex color literal. "#RRGGBB" yields RGB, "#RRGGBBAA" yields
// RGBA. Hex digits may be given in either case.
func Parse(text string) (Color, error) {
	if !strings.HasPrefix(text, "#") || (len(text) != 7 && len(text) != 9) {
		return nil, &ParseError{Input: text}
	}
	var ch [4]uint8
	for i := 0; i < (len(text)-1)/2; i++ {
		n, err := strconv.ParseUint(text[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return nil, &ParseError{Input: text}
		}
		ch[i] = uint8(n)
	}
	if len(text) == 7 {
		return RGB{ch[0], ch[1], ch[2]}, nil
	}
	return RGBA{ch[0], ch[1], ch[2], ch[3]}, nil
}

// --- Errors ----------------------------------------------------------------

// ErrNonEligible is matched by every NonEligibleError.
var ErrNonEligible = errors.New("color is not eligible for conversion")

// NonEligibleError is returned when converting a color which has no channel
// representation, e.g. a variable reference or a color keyword.
type NonEligibleError struct {
	Color Color
	Cause error // optional
}

func (e *NonEligibleError) Error() string {
	return fmt.Sprintf("%#v can not be converted because it's non-eligible", e.Color)
}

func (e *NonEligibleError) Is(target error) bool {
	return target == ErrNonEligible
}

func (e *NonEligibleError) Unwrap() error {
	return e.Cause
}
