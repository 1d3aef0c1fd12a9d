package themefile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/npillmayer/sx"
	"github.com/npillmayer/sx/color"
	"github.com/npillmayer/sx/gradient"
	"github.com/npillmayer/sx/props"
	"go.uber.org/multierr"
)

//go:embed default.json
var defaultTheme []byte

// Format is the encoding of a theme file.
type Format uint8

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// ErrSyntax is returned for theme files which are not well-formed.
var ErrSyntax = errors.New("malformed theme file")

// FormatOf returns the format of a file, judging from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return JSON, fmt.Errorf("cannot tell format of theme file %q from its extension", path)
}

// Load reads a theme file.
func Load(path string) (*sx.Theme, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	theme, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("theme file %s: %w", path, err)
	}
	return theme, nil
}

// Parse creates a theme from the contents of a theme file.
func Parse(data []byte, format Format) (*sx.Theme, error) {
	var def *definition
	var err error
	if format == YAML {
		def, err = definitionFromYAML(data)
	} else {
		def, err = definitionFromJSON(data)
	}
	if err != nil {
		return nil, err
	}
	return def.build()
}

// FromJSON is Parse for JSON.
func FromJSON(data []byte) (*sx.Theme, error) {
	return Parse(data, JSON)
}

// FromYAML is Parse for YAML.
func FromYAML(data []byte) (*sx.Theme, error) {
	return Parse(data, YAML)
}

var loadDefault = sync.OnceValues(func() (*sx.Theme, error) {
	return FromJSON(defaultTheme)
})

// Default returns the default theme embedded in this module. The theme is
// loaded once and shared; it must not be modified.
func Default() (*sx.Theme, error) {
	return loadDefault()
}

// DefaultJSON returns the source of the default theme.
func DefaultJSON() []byte {
	return append([]byte(nil), defaultTheme...)
}

// --- Theme definitions -----------------------------------------------------

// definition is the decoded content of a theme file, independent of its
// encoding.
type definition struct {
	prefix      string
	breakpoints []props.Breakpoint
	palettes    []paletteDef
	typography  []levelDef
	errs        error
}

type paletteDef struct {
	name      string
	gradient  *gradient.Gradient
	mode      string
	selectors []selectorDef
}

type selectorDef struct {
	name        string
	dark, light color.Color
	modeBased   bool
}

type levelDef struct {
	level sx.Level
	style *sx.Style
}

func (def *definition) fail(err error) {
	def.errs = multierr.Append(def.errs, err)
}

func (def *definition) addLevel(name string, style *sx.Style, err error) {
	if err != nil {
		def.fail(fmt.Errorf("typography level %q: %w", name, err))
		return
	}
	level, err := sx.ParseLevel(name)
	if err != nil {
		def.fail(err)
		return
	}
	def.typography = append(def.typography, levelDef{level: level, style: style})
}

func (def *definition) addBreakpoint(name string, width int, err error) {
	if err != nil {
		def.fail(fmt.Errorf("breakpoint %q: %w", name, err))
		return
	}
	def.breakpoints = append(def.breakpoints, props.Breakpoint{Name: name, Width: width})
}

// build creates the theme. Errors collected during decoding are returned
// together with errors found while building.
func (def *definition) build() (*sx.Theme, error) {
	theme := sx.NewTheme(def.prefix)
	if len(def.breakpoints) > 0 {
		theme.SetBreakpoints(props.NewBreakpoints(def.breakpoints...))
	}
	for _, l := range def.typography {
		theme.Typography().Set(l.level, l.style)
	}
	errs := def.errs
	for _, pdef := range def.palettes {
		palette, err := pdef.build(theme)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("palette %q: %w", pdef.name, err))
			continue
		}
		theme.SetPalette(pdef.name, palette)
	}
	if errs != nil {
		tracer().Errorf("theme %s has %d errors", def.prefix, len(multierr.Errors(errs)))
		return nil, errs
	}
	tracer().Debugf("loaded %v", theme)
	return theme, nil
}

func (pdef paletteDef) build(theme *sx.Theme) (*sx.Palette, error) {
	palette := sx.NewPalette()
	if g := pdef.gradient; g != nil {
		switch pdef.mode {
		case "hsl":
			if err := g.Convert(color.AsHSLA); err != nil {
				return nil, err
			}
		case "rgb":
			if err := g.Convert(color.AsRGBA); err != nil {
				return nil, err
			}
		case "":
		default:
			return nil, fmt.Errorf("unknown gradient mode %q", pdef.mode)
		}
		samples, err := g.Samples(10)
		if err != nil {
			return nil, err
		}
		for i, c := range samples {
			palette.SetConstant(fmt.Sprintf("%03d", i*10), c)
		}
	}
	for _, sel := range pdef.selectors {
		if sel.modeBased {
			palette.SetByMode(sel.name, paletteVar(theme, sel.dark), paletteVar(theme, sel.light))
		} else {
			palette.SetConstant(sel.name, paletteVar(theme, sel.dark))
		}
	}
	return palette, nil
}

// paletteVar rewrites a color variable "palette.selector" to the CSS
// variable of that palette selector.
func paletteVar(theme *sx.Theme, c color.Color) color.Color {
	v, ok := c.(color.Var)
	if !ok {
		return c
	}
	if palette, selector, ok := sx.SplitPaletteSelector(v.Name); ok {
		v.Name = theme.PaletteVar(palette, selector)
	}
	return v
}
