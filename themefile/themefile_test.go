package themefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sx"
	"github.com/npillmayer/sx/color"
	"github.com/npillmayer/sx/gradient"
	"github.com/npillmayer/sx/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaultTheme(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.themefile")
	defer teardown()
	//
	theme, err := Default()
	require.NoError(t, err)
	if theme.Prefix() != "happy" {
		t.Errorf("expected default theme prefix to be happy, is %q", theme.Prefix())
	}
	assert.Equal(t, []string{"common", "primary", "neutral", "success", "background", "text"}, theme.Palettes())
	again, _ := Default()
	assert.Same(t, theme, again)
	//
	primary, ok := theme.Palette("primary")
	require.True(t, ok)
	assert.Equal(t, 14, primary.Len())
	assert.Equal(t, []string{"000", "010", "020", "030", "040", "050", "060", "070", "080", "090", "100"},
		primary.Selectors()[:11])
	c, _ := primary.Select("050", sx.Light)
	assert.Equal(t, color.HSLA{H: 215, S: 90, L: 55, A: 100}, c)
	c, _ = primary.Select("solidBg", sx.Dark)
	assert.Equal(t, color.Var{Name: "--happy-palette-primary-050"}, c)
	//
	bg, _ := theme.Palette("background")
	sw, _ := bg.Swatch("body")
	assert.True(t, sw.ModeBased)
	assert.Equal(t, color.Var{Name: "--happy-palette-common-black"}, sw.Dark)
}

func TestDefaultTypography(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.themefile")
	defer teardown()
	//
	theme, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 9, theme.Typography().Len())
	h1, ok := theme.Typography().At(sx.H1)
	require.True(t, ok)
	assert.Equal(t, []string{"font-size", "font-weight", "line-height", "font-family"}, h1.Keys())
	lh, _ := h1.Get("line-height")
	if !sx.Equal(lh, sx.Num(1.2)) {
		t.Errorf("expected h1 line height to be 1.2, is %v", lh)
	}
	family, _ := h1.Get("font-family")
	assert.Equal(t, sx.Literal("system-ui, sans-serif"), family)
	weight, _ := h1.Get("font-weight")
	assert.True(t, sx.Equal(weight, sx.Int(700)))
}

func TestDefaultThemeCompiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.themefile")
	defer teardown()
	//
	theme, err := Default()
	require.NoError(t, err)
	style := sx.New().SetString("bgcolor", "background.body").SetString("color", "primary.050")
	css, err := sx.Compile(style, sx.Dark, theme, sx.WithBase(".card"))
	require.NoError(t, err)
	assert.Equal(t, ".card {background-color: var(--happy-palette-background-body);"+
		"color: var(--happy-palette-primary-050);}", css)
}

const yamlTheme = `
prefix: joy
breakpoints:
  tablet: 640
  desktop: 8in
palettes:
  brand:
    gradient:
      mode: rgb
      points:
        0: "#000000"
        1: "#FFFFFF"
    selectors:
      accent: { dark: 0xff0000, light: "#00FF00" }
      link: { var: brand.050 }
typography:
  "*": { fontFamily: serif }
  h1: { fontSize: 2rem, bold: true }
`

func TestYAMLTheme(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.themefile")
	defer teardown()
	//
	theme, err := FromYAML([]byte(yamlTheme))
	require.NoError(t, err)
	assert.Equal(t, "joy", theme.Prefix())
	assert.Equal(t, []props.Breakpoint{{Name: "tablet", Width: 640}, {Name: "desktop", Width: 768}},
		theme.Breakpoints().Points())
	//
	brand, ok := theme.Palette("brand")
	require.True(t, ok)
	mid, _ := brand.Select("050", sx.Light)
	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, mid)
	sw, _ := brand.Swatch("accent")
	if sw.Dark != color.Hex(0xff0000) || sw.Light != color.Literal("#00FF00") {
		t.Errorf("expected accent to be #FF0000/#00FF00, is %v/%v", sw.Dark, sw.Light)
	}
	link, _ := brand.Select("link", sx.Dark)
	assert.Equal(t, color.Var{Name: "--joy-palette-brand-050"}, link)
	//
	h1, _ := theme.Typography().At(sx.H1)
	assert.Equal(t, []string{"font-size", "bold", "font-family"}, h1.Keys())
	bold, _ := h1.Get("bold")
	assert.Equal(t, sx.Literal("true"), bold)
	size, _ := h1.Get("font-size")
	assert.Equal(t, sx.Literal("2rem"), size)
}

func TestMissingGradientBoundary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.themefile")
	defer teardown()
	//
	for _, points := range []string{
		`{"0": "#000000", "0.5": "#FFFFFF"}`,
		`{"0.5": "#000000", "1": "#FFFFFF"}`,
	} {
		data := fmt.Sprintf(`{"palettes": {"p": {"gradient": {"points": %s}}}}`, points)
		_, err := FromJSON([]byte(data))
		if !errors.Is(err, gradient.ErrMissingBoundary) {
			t.Errorf("expected gradient %s to fail for a missing boundary, error is %v", points, err)
		}
	}
	_, err := FromYAML([]byte("palettes:\n  p:\n    gradient:\n      points:\n        0: red\n"))
	assert.ErrorIs(t, err, gradient.ErrMissingBoundary)
}

func TestErrorsAreCollected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.themefile")
	defer teardown()
	//
	data := `{
		"breakpoints": { "wide": "2em" },
		"palettes": {
			"good": { "selectors": { "a": "#000000" } },
			"bad": { "selectors": { "a": {"r": 300, "g": 0, "b": 0}, "b": [1, 2] } },
			"worse": { "gradient": { "mode": "cmyk", "points": {"0": "#000000", "1": "#FFFFFF"} } }
		},
		"typography": { "title-huge": { "fontSize": "3rem" } }
	}`
	_, err := FromJSON([]byte(data))
	require.Error(t, err)
	errs := multierr.Errors(err)
	if len(errs) != 5 {
		t.Errorf("expected 5 errors, have %d: %v", len(errs), err)
	}
	assert.Contains(t, err.Error(), `palette "bad", selector "a"`)
	assert.Contains(t, err.Error(), `palette "worse"`)
	//
	_, err = FromJSON([]byte(`{"palettes": `))
	assert.ErrorIs(t, err, ErrSyntax)
	_, err = FromYAML([]byte("- a\n- b\n"))
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.themefile")
	defer teardown()
	//
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlTheme), 0o644))
	theme, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "joy", theme.Prefix())
	//
	path = filepath.Join(dir, "theme.json")
	require.NoError(t, os.WriteFile(path, DefaultJSON(), 0o644))
	theme, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "happy", theme.Prefix())
	//
	_, err = Load(filepath.Join(dir, "theme.toml"))
	assert.Error(t, err)
}

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.themefile")
	defer teardown()
	//
	for text, px := range map[string]int{
		"8in":    768,
		"12pt":   16,
		"600":    600,
		"1pc":    16,
		"2.54cm": 96,
	} {
		w, err := breakpointWidth(text)
		require.NoError(t, err, text)
		if w != px {
			t.Errorf("expected %q to be %dpx, is %d", text, px, w)
		}
	}
	for _, text := range []string{"2em", "wide", "-5px", "99999in"} {
		if _, err := breakpointWidth(text); err == nil {
			t.Errorf("expected %q to be rejected as breakpoint width, is accepted", text)
		}
	}
}

func TestStyleDocuments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.themefile")
	defer teardown()
	//
	data := `{"pX": "10px", "color": "primary.500", "zIndex": 10, "opacity": 0.5, "md": {"padding": "20px"}}`
	style, err := StyleFromJSON([]byte(data), ParsedLeaves)
	require.NoError(t, err)
	assert.Equal(t, []string{"margin-left", "margin-right", "color", "z-index", "opacity", "md"}, style.Keys())
	c, _ := style.Get("color")
	assert.Equal(t, sx.Token("primary", "500"), c)
	z, _ := style.Get("z-index")
	assert.True(t, sx.Equal(z, sx.Int(10)))
	o, _ := style.Get("opacity")
	assert.True(t, sx.Equal(o, sx.Num(0.5)))
	md, _ := style.Get("md")
	assert.Equal(t, "nested", sx.Kind(md))
	//
	ystyle, err := StyleFromYAML([]byte("pX: 10px\ncolor: primary.500\nzIndex: 10\nopacity: 0.5\nmd:\n  padding: 20px\n"), ParsedLeaves)
	require.NoError(t, err)
	assert.True(t, style.Equal(ystyle), "expected JSON and YAML documents to decode to equal styles")
	//
	_, err = StyleFromJSON([]byte(`{"margin": null}`), ParsedLeaves)
	assert.Error(t, err)
	_, err = StyleFromJSON([]byte(`["a"]`), ParsedLeaves)
	assert.Error(t, err)
}
