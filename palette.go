package sx

import (
	"fmt"
	"strings"

	"github.com/npillmayer/sx/color"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Mode is the theme mode. The zero value is System.
type Mode uint8

const (
	System Mode = iota // follow the environment
	Light
	Dark
)

func (m Mode) String() string {
	switch m {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "system"
}

// ParseMode parses the name of a mode, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	case "system", "":
		return System, nil
	}
	return System, fmt.Errorf("unknown theme mode %q", s)
}

// Detector detects the mode of the environment.
type Detector interface {
	Detect() Mode
}

// DetectorFunc adapts a function to the Detector interface.
type DetectorFunc func() Mode

// Detect calls f.
func (f DetectorFunc) Detect() Mode {
	return f()
}

// Resolve resolves System to Light or Dark with the help of d.
// Without a detector, or if d cannot decide, System resolves to Light.
// Light and Dark resolve to themselves.
func (m Mode) Resolve(d Detector) Mode {
	if m != System {
		return m
	}
	if d != nil {
		if detected := d.Detect(); detected != System {
			return detected
		}
	}
	return Light
}

// --- Palettes --------------------------------------------------------------

// Swatch is the color of a palette selector: either constant, or a pair of
// colors for dark and light mode.
type Swatch struct {
	Dark, Light color.Color
	ModeBased   bool
}

// Constant creates a swatch with the same color in every mode.
func Constant(c color.Color) Swatch {
	return Swatch{Dark: c, Light: c}
}

// ByMode creates a swatch with different colors for dark and light mode.
func ByMode(dark, light color.Color) Swatch {
	return Swatch{Dark: dark, Light: light, ModeBased: true}
}

// In returns the color of sw in mode m, which has to be resolved already.
func (sw Swatch) In(m Mode) color.Color {
	switch m {
	case Dark:
		return sw.Dark
	case Light:
		return sw.Light
	}
	panic("sx: swatch color selected for unresolved theme mode System")
}

// Palette is an ordered mapping of selector names to swatches.
type Palette struct {
	selectors *orderedmap.OrderedMap[string, Swatch]
}

// NewPalette creates an empty palette.
func NewPalette() *Palette {
	return &Palette{selectors: orderedmap.New[string, Swatch]()}
}

// SetConstant sets a selector to a constant color.
func (p *Palette) SetConstant(selector string, c color.Color) *Palette {
	p.selectors.Set(selector, Constant(c))
	return p
}

// SetByMode sets a selector to a pair of colors.
func (p *Palette) SetByMode(selector string, dark, light color.Color) *Palette {
	p.selectors.Set(selector, ByMode(dark, light))
	return p
}

// Set sets a selector to a swatch.
func (p *Palette) Set(selector string, sw Swatch) *Palette {
	p.selectors.Set(selector, sw)
	return p
}

// Swatch returns the swatch of a selector.
func (p *Palette) Swatch(selector string) (Swatch, bool) {
	return p.selectors.Get(selector)
}

// Select returns the color of a selector for mode m. m must not be System;
// resolve modes with Mode.Resolve first. Select panics for System.
func (p *Palette) Select(selector string, m Mode) (color.Color, bool) {
	if m == System {
		panic("sx: palette lookup with unresolved theme mode System")
	}
	sw, ok := p.selectors.Get(selector)
	if !ok {
		return nil, false
	}
	return sw.In(m), true
}

// Selectors returns the selector names in insertion order.
func (p *Palette) Selectors() []string {
	names := make([]string, 0, p.selectors.Len())
	for pair := p.selectors.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Len returns the number of selectors.
func (p *Palette) Len() int {
	return p.selectors.Len()
}
