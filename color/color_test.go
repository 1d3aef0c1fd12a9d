package color

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestHexRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.color")
	defer teardown()
	//
	for _, v := range []uint32{0, 0x1a2b3c, 0xabcdef, 0x00ff00, 0xffffff, 0x0f0f0f, 0x808081} {
		text := fmt.Sprintf("#%06x", v)
		c, err := Parse(text)
		if err != nil {
			t.Fatalf("expected %q to parse, error is %v", text, err)
		}
		if c.String() != strings.ToUpper(text) {
			t.Errorf("expected %q to display as %q, is %q", text, strings.ToUpper(text), c.String())
		}
		if Hex(v).String() != strings.ToUpper(text) {
			t.Errorf("expected Hex(%x) to display as %q, is %q", v, strings.ToUpper(text), Hex(v).String())
		}
	}
}

func TestParseRejects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.color")
	defer teardown()
	//
	for _, text := range []string{"", "#", "#fff", "123456", "#12345g", "#1234567", "red"} {
		_, err := Parse(text)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("expected %q to yield a ParseError, is %v", text, err)
		} else if perr.Input != text {
			t.Errorf("expected ParseError to carry %q, is %q", text, perr.Input)
		}
	}
	c, err := Parse("#11223380")
	require.NoError(t, err)
	assert.Equal(t, RGBA{0x11, 0x22, 0x33, 0x80}, c)
}

func TestDisplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.color")
	defer teardown()
	//
	cases := []struct {
		c    Color
		text string
	}{
		{Named("rebeccapurple"), "rebeccapurple"},
		{Hex(0xcccccc), "#CCCCCC"},
		{RGB{1, 2, 3}, "#010203"},
		{RGBA{1, 2, 3, 255}, "#010203"},
		{RGBA{1, 2, 3, 4}, "#01020304"},
		{HSL{120, 50, 25}, "hsla(120, 50%, 25%)"},
		{HSLA{120, 50, 25, 100}, "hsla(120, 50%, 25%)"},
		{HSLA{120, 50, 25, 45}, "hsla(120, 50%, 25%, 0.45)"},
		{Var{Name: "--x"}, "var(--x)"},
		{Var{Name: "--x", Fallback: Hex(0xff)}, "var(--x, #0000FF)"},
	}
	for _, c := range cases {
		if c.c.String() != c.text {
			t.Errorf("expected %#v to display as %q, is %q", c.c, c.text, c.c.String())
		}
	}
}

func TestHSLToRGB(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.color")
	defer teardown()
	//
	rgb := HSLToRGB(126.0/360.0, 0.46, 0.63)
	if rgb != [3]uint8{117, 204, 126} {
		t.Errorf("expected hsl(126, 46%%, 63%%) to be rgb(117,204,126), is %v", rgb)
	}
	if rgb := HSLToRGB(0.3, 0, 0.5); rgb != [3]uint8{128, 128, 128} {
		t.Errorf("expected achromatic gray to be rgb(128,128,128), is %v", rgb)
	}
}

func TestHSLAgreesWithColorful(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.color")
	defer teardown()
	//
	for h := 0; h < 360; h += 15 {
		for _, s := range []float32{0.1, 0.45, 0.8, 1} {
			for _, l := range []float32{0.15, 0.5, 0.72, 0.9} {
				rgb := HSLToRGB(float32(h)/360, s, l)
				r, g, b := colorful.Hsl(float64(h), float64(s), float64(l)).RGB255()
				if absdiff(rgb[0], r) > 1 || absdiff(rgb[1], g) > 1 || absdiff(rgb[2], b) > 1 {
					t.Errorf("expected hsl(%d,%.2f,%.2f) to be near %v, is %v", h, s, l, [3]uint8{r, g, b}, rgb)
				}
			}
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.color")
	defer teardown()
	//
	for h := 0; h < 360; h += 20 {
		for _, s := range []float32{0.2, 0.5, 0.9} {
			for _, l := range []float32{0.3, 0.5, 0.7} {
				rgb := HSLToRGB(float32(h)/360, s, l)
				hsl := RGBToHSL(rgb[0], rgb[1], rgb[2])
				if !near(hsl[0], float32(h)/360, 0.01) || !near(hsl[1], s, 0.02) || !near(hsl[2], l, 0.01) {
					t.Errorf("expected hsl(%d,%.2f,%.2f) to survive a round trip, is %v", h, s, l, hsl)
				}
			}
		}
	}
	if hsl := RGBToHSL(40, 40, 40); hsl[0] != 0 || hsl[1] != 0 {
		t.Errorf("expected achromatic input to yield hue 0 and saturation 0, is %v", hsl)
	}
}

func TestNonEligible(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.color")
	defer teardown()
	//
	for _, c := range []Color{Var{Name: "--a"}, Named("red"), Literal("hsl(1,2%,3%)")} {
		_, err := ToRGBA(c)
		if !errors.Is(err, ErrNonEligible) {
			t.Errorf("expected %#v to be non-eligible, error is %v", c, err)
		}
		var nerr *NonEligibleError
		if errors.As(err, &nerr) && nerr.Color != c {
			t.Errorf("expected error to name %#v, names %#v", c, nerr.Color)
		}
	}
	// a hex text literal is convertible
	rgba, err := ToRGBA(Literal("#102030"))
	require.NoError(t, err)
	assert.Equal(t, [4]uint8{0x10, 0x20, 0x30, 255}, rgba)
}

func TestHexNormalizesTransparent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.color")
	defer teardown()
	//
	n, err := Normalize(Hex(0x112233))
	require.NoError(t, err)
	if n.Space != SpaceRGBA || n.RGBA != [4]uint8{0x11, 0x22, 0x33, 0} {
		t.Errorf("expected Hex to normalize to transparent rgba, is %v %v", n.Space, n.RGBA)
	}
	if Hex(0x112233).String() != "#112233" {
		t.Errorf("expected Hex to display opaque, is %s", Hex(0x112233))
	}
}

func TestConversions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.color")
	defer teardown()
	//
	c, err := AsRGBA(HSLA{126, 46, 63, 50})
	require.NoError(t, err)
	assert.Equal(t, RGBA{117, 204, 126, 127}, c)
	//
	c, err = AsHSLA(RGB{255, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, HSLA{0, 100, 50, 100}, c)
}

func TestIsNamed(t *testing.T) {
	for _, n := range []string{"red", "rebeccapurple", "transparent", "lightgoldenrodyellow"} {
		if !IsNamed(n) {
			t.Errorf("expected %q to be a named color, isn't", n)
		}
	}
	for _, n := range []string{"auto", "bold", "reddish", ""} {
		if IsNamed(n) {
			t.Errorf("expected %q not to be a named color, is", n)
		}
	}
	// 148 CSS Color Module Level 4 keywords plus transparent
	if len(namedColors) != 149 {
		t.Errorf("expected 149 color keywords, have %d", len(namedColors))
	}
	for n := range namedColors {
		if strings.Trim(n, "abcdefghijklmnopqrstuvwxyz") != "" {
			t.Errorf("expected color keyword %q to be lower-case letters only", n)
		}
	}
}

func TestDecodeWireFormats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.color")
	defer teardown()
	//
	cases := []struct {
		json string
		c    Color
	}{
		{`"#ffcc00"`, Literal("#ffcc00")},
		{`"red"`, Literal("red")},
		{`13421772`, Hex(0xcccccc)},
		{`{"r":1,"g":2,"b":3}`, RGB{1, 2, 3}},
		{`{"r":1,"g":2,"b":3,"a":4}`, RGBA{1, 2, 3, 4}},
		{`{"h":200,"s":50,"l":40}`, HSL{200, 50, 40}},
		{`{"h":200,"s":50,"l":40,"a":30}`, HSLA{200, 50, 40, 30}},
		{`{"var":"--x"}`, Var{Name: "--x"}},
		{`{"var":"--x","fallback":"#000000"}`, Var{Name: "--x", Fallback: Literal("#000000")}},
	}
	for _, c := range cases {
		col, err := Decode([]byte(c.json))
		if err != nil {
			t.Errorf("expected %s to decode, error is %v", c.json, err)
			continue
		}
		if col != c.c {
			t.Errorf("expected %s to decode to %#v, is %#v", c.json, c.c, col)
		}
		enc, err := Encode(col)
		require.NoError(t, err)
		again, err := Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, col, again)
	}
	for _, bad := range []string{`[1,2]`, `{"r":1,"g":2}`, `{"r":300,"g":2,"b":3}`, `-5`, `{"h":10,"s":1,"l":1,"a":101}`, `{`} {
		if _, err := Decode([]byte(bad)); err == nil {
			t.Errorf("expected %s to fail decoding, didn't", bad)
		}
	}
}

func TestDecodeYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.color")
	defer teardown()
	//
	cases := map[string]Color{
		`"#ff0000"`:                    Literal("#ff0000"),
		`0xcccccc`:                     Hex(0xcccccc),
		`{r: 1, g: 2, b: 3}`:           RGB{1, 2, 3},
		`{h: 10, s: 20, l: 30, a: 40}`: HSLA{10, 20, 30, 40},
		`{var: --y, fallback: blue}`:   Var{Name: "--y", Fallback: Literal("blue")},
	}
	for src, want := range cases {
		var node yaml.Node
		require.NoError(t, yaml.Unmarshal([]byte(src), &node))
		c, err := FromYAML(&node)
		if err != nil {
			t.Errorf("expected %s to decode, error is %v", src, err)
			continue
		}
		assert.Equal(t, want, c, src)
	}
}

func absdiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func near(a, b, eps float32) bool {
	d := float64(a - b)
	// hue wraps around
	if math.Abs(d) > 0.5 {
		d = 1 - math.Abs(d)
	}
	return math.Abs(d) <= float64(eps)
}
