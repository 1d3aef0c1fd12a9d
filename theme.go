package sx

import (
	"fmt"
	"sync/atomic"

	"github.com/npillmayer/sx/props"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultPrefix is the prefix of themes created without one.
const DefaultPrefix = "happy"

var themeIDs atomic.Uint64

// Theme holds a prefix, breakpoints, named palettes and a typography scale.
//
// Themes are set up once and are read-only afterwards. A theme in use by
// compilations must not be modified.
type Theme struct {
	id          uint64
	prefix      string
	breakpoints *props.Breakpoints
	palettes    *orderedmap.OrderedMap[string, *Palette]
	typography  *TypographyScale
}

// NewTheme creates a theme with default breakpoints and without palettes.
// An empty prefix selects DefaultPrefix.
func NewTheme(prefix string) *Theme {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Theme{
		id:          themeIDs.Add(1),
		prefix:      prefix,
		breakpoints: props.DefaultBreakpoints(),
		palettes:    orderedmap.New[string, *Palette](),
		typography:  NewTypographyScale(),
	}
}

// ID returns the identity of t, unique within the process.
func (t *Theme) ID() uint64 {
	return t.id
}

// Prefix returns the prefix of CSS variables and classes of t.
func (t *Theme) Prefix() string {
	return t.prefix
}

// PaletteVar returns the name of the CSS variable for a palette selector:
// --{prefix}-palette-{palette}-{selector}.
func (t *Theme) PaletteVar(palette, selector string) string {
	return props.ToProperty(fmt.Sprintf("--%s-palette-%s-%s", t.prefix, palette, selector))
}

// ClassVar returns the name of the CSS variable for a component class:
// --{prefix}-{class}-{var}.
func (t *Theme) ClassVar(class, name string) string {
	return props.ToProperty(fmt.Sprintf("--%s-%s-%s", t.prefix, class, name))
}

// SystemClass returns the selector of the system class of t.
func (t *Theme) SystemClass() string {
	return "." + t.prefix + "-system"
}

// Palette returns a palette by name.
func (t *Theme) Palette(name string) (*Palette, bool) {
	return t.palettes.Get(name)
}

// Palettes returns the palette names in insertion order.
func (t *Theme) Palettes() []string {
	names := make([]string, 0, t.palettes.Len())
	for pair := t.palettes.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// SetPalette adds or replaces a palette.
func (t *Theme) SetPalette(name string, p *Palette) *Theme {
	t.palettes.Set(name, p)
	return t
}

// Breakpoints returns a copy of the breakpoints of t.
func (t *Theme) Breakpoints() *props.Breakpoints {
	return t.breakpoints.Clone()
}

// SetBreakpoints replaces the breakpoints of t.
func (t *Theme) SetBreakpoints(bps *props.Breakpoints) *Theme {
	t.breakpoints = bps.Clone()
	return t
}

// Typography returns the typography scale of t.
func (t *Theme) Typography() *TypographyScale {
	return t.typography
}

// TranslationUnit returns a translation unit for the breakpoints of t.
func (t *Theme) TranslationUnit() props.TranslationUnit {
	return props.NewTranslationUnit(t.breakpoints)
}

func (t *Theme) String() string {
	return fmt.Sprintf("Theme(%s #%d, %d palettes)", t.prefix, t.id, t.palettes.Len())
}
