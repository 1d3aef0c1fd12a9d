package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sx"
	"github.com/npillmayer/sx/cssom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestCompiledCSSParsesBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.cssom")
	defer teardown()
	//
	style := sx.New().
		SetString("padding", "15px").
		SetString("pX", "2px").
		Set("md", sx.Nest(sx.New().SetString("padding", "20px")))
	text, err := sx.Compile(style, sx.Light, sx.NewTheme(""), sx.WithBase(".box"))
	require.NoError(t, err)
	sheet, err := Parse(text)
	require.NoError(t, err)
	rules := sheet.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, have %d", len(rules))
	}
	assert.Equal(t, ".box", rules[0].Selector())
	assert.Equal(t, []string{"padding", "margin-left", "margin-right"}, rules[0].Properties())
	assert.Equal(t, cssom.Property("2px"), rules[0].Value("margin-right"))
	assert.Equal(t, "(min-width: 768px)", rules[1].Media())
	assert.Equal(t, cssom.Property("20px"), rules[1].Value("padding"))
	//
	found := cssom.Find(sheet, ".box", "")
	require.Len(t, found, 1)
	p, ok := cssom.Lookup(found[0], "padding-left")
	if !ok || p != "15px" {
		t.Errorf("expected padding-left to be 15px, is %q", p)
	}
}

func TestNestedMediaBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.cssom")
	defer teardown()
	//
	sheet, err := Parse("@media screen { @media (min-width: 600px) { .a { color: red !important; } } }" +
		"@font-face { font-family: x; } .b { margin: 0; }")
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "screen and (min-width: 600px)", rules[0].Media())
	assert.True(t, rules[0].IsImportant("color"))
	assert.False(t, rules[1].IsImportant("margin"))
	assert.Equal(t, cssom.NullStyle, rules[1].Value("color"))
}

func TestAppendRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.cssom")
	defer teardown()
	//
	a, err := Parse(".a { color: red; }")
	require.NoError(t, err)
	b, err := Parse("")
	require.NoError(t, err)
	if !b.Empty() {
		t.Errorf("expected empty CSS to yield empty stylesheet")
	}
	b.AppendRules(a)
	b.AppendRules(a)
	assert.Equal(t, []string{".a"}, cssom.Selectors(b))
	assert.Len(t, b.Rules(), 2)
}

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.cssom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><head>
<style data-style="theme-happy-main">.a { color: red; }</style>
<style></style>
</head><body><p>x</p><style>.b { margin: 0; }</style></body></html>`))
	require.NoError(t, err)
	sheets, err := ExtractStyleElements(doc)
	require.NoError(t, err)
	if len(sheets) != 2 {
		t.Fatalf("expected 2 style sheets, have %d", len(sheets))
	}
	assert.Equal(t, ".a", sheets[0].Rules()[0].Selector())
	assert.Equal(t, ".b", sheets[1].Rules()[0].Selector())
	//
	sheets, err = ExtractStyleElements(nil)
	assert.NoError(t, err)
	assert.Empty(t, sheets)
}
