package stylemgr

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sx"
	"github.com/npillmayer/sx/color"
	"github.com/npillmayer/sx/cssom"
	"github.com/npillmayer/sx/cssom/douceuradapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func padded(px string) *sx.Style {
	return sx.New().SetString("padding", px)
}

func TestMountMemoizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.stylemgr")
	defer teardown()
	//
	mgr, err := New(sx.NewTheme(""), WithMode(sx.Light))
	require.NoError(t, err)
	ref, err := mgr.Mount(padded("15px"))
	require.NoError(t, err)
	if !strings.HasPrefix(ref.Class, "happy-") {
		t.Errorf("expected class to carry theme prefix, is %q", ref.Class)
	}
	assert.Equal(t, ref.Selector()+" {padding: 15px;}", ref.CSS)
	again, err := mgr.Mount(padded("15px"))
	require.NoError(t, err)
	assert.Equal(t, ref, again)
	if mgr.compiles != 1 {
		t.Errorf("expected identical styles to be compiled once, compiled %d times", mgr.compiles)
	}
	other, _ := mgr.Mount(padded("16px"))
	assert.NotEqual(t, ref.Class, other.Class)
	//
	mgr.SetMode(sx.Dark)
	dark, _ := mgr.Mount(padded("15px"))
	if dark.Class == ref.Class {
		t.Errorf("expected mode to be part of the style identity")
	}
	assert.Len(t, mgr.Mounted(), 3)
}

func TestMountKeysOnTheme(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.stylemgr")
	defer teardown()
	//
	a, _ := New(sx.NewTheme(""), WithMode(sx.Light))
	b, _ := New(sx.NewTheme(""), WithMode(sx.Light))
	refA, _ := a.Mount(padded("1px"))
	refB, _ := b.Mount(padded("1px"))
	assert.NotEqual(t, refA.Class, refB.Class)
}

func TestMountConcurrently(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.stylemgr")
	defer teardown()
	//
	mgr, err := New(sx.NewTheme(""))
	require.NoError(t, err)
	classes := make([]string, 32)
	var wg sync.WaitGroup
	for i := range classes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ref, err := mgr.Mount(padded("4px"))
			if err == nil {
				classes[i] = ref.Class
			}
		}(i)
	}
	wg.Wait()
	for _, c := range classes {
		if c != classes[0] || c == "" {
			t.Fatalf("expected all mounts to share one class, have %v", classes)
		}
	}
	assert.Equal(t, 1, mgr.compiles)
}

func TestMountEvictsLeastRecent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.stylemgr")
	defer teardown()
	//
	mgr, err := New(sx.NewTheme(""), WithCapacity(2))
	require.NoError(t, err)
	first, _ := mgr.Mount(padded("1px"))
	mgr.Mount(padded("2px"))
	third, _ := mgr.Mount(padded("3px"))
	refs := mgr.Mounted()
	require.Len(t, refs, 2)
	assert.Equal(t, third, refs[1])
	again, _ := mgr.Mount(padded("1px"))
	assert.Equal(t, first, again)
	assert.Equal(t, 4, mgr.compiles)
}

func TestMountErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.stylemgr")
	defer teardown()
	//
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoTheme)
	_, err = New(sx.NewTheme(""), WithCapacity(0))
	assert.Error(t, err)
	//
	mgr, _ := New(sx.NewTheme(""))
	_, err = mgr.Mount(sx.New().SetString("color", "nope.050"))
	if !errors.Is(err, sx.ErrUnknownPalette) {
		t.Errorf("expected unknown palette error, is %v", err)
	}
	assert.Empty(t, mgr.Mounted())
}

func TestModeDetection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.stylemgr")
	defer teardown()
	//
	theme := sx.NewTheme("")
	theme.SetPalette("text", sx.NewPalette().SetByMode("primary", color.Literal("#111111"), color.Literal("#EEEEEE")))
	dark := sx.DetectorFunc(func() sx.Mode { return sx.Dark })
	mgr, _ := New(theme, WithDetector(dark))
	assert.Equal(t, sx.Dark, mgr.Mode())
	mgr.SetMode(sx.Light)
	assert.Equal(t, sx.Light, mgr.Mode())
	css, err := mgr.Baseline()
	require.NoError(t, err)
	assert.Contains(t, css, "--happy-palette-text-primary: #EEEEEE;")
}

func TestInjectStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.stylemgr")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><head>` +
		`<style data-style="theme-happy-main">.stale { color: red; }</style>` +
		`</head><body></body></html>`))
	require.NoError(t, err)
	mgr, _ := New(sx.NewTheme(""))
	ref, _ := mgr.Mount(padded("15px"))
	require.NoError(t, mgr.Inject(doc))
	require.NoError(t, mgr.Inject(doc))
	sheets, err := douceuradapter.ExtractStyleElements(doc)
	require.NoError(t, err)
	if len(sheets) != 2 {
		t.Fatalf("expected baseline and one mounted style, have %d style elements", len(sheets))
	}
	assert.NotContains(t, cssom.Selectors(sheets[0]), ".stale")
	assert.Contains(t, cssom.Selectors(sheets[0]), "body")
	rules := cssom.Find(sheets[1], ref.Selector(), "")
	require.Len(t, rules, 1)
	assert.Equal(t, cssom.Property("15px"), rules[0].Value("padding"))
	//
	fragment, _ := html.Parse(strings.NewReader(""))
	assert.NoError(t, mgr.Inject(fragment))
	assert.ErrorIs(t, mgr.Inject(&html.Node{Type: html.DocumentNode}), ErrNoHead)
}

func TestSheetAndLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.stylemgr")
	defer teardown()
	//
	mgr, _ := New(sx.NewTheme(""), WithMode(sx.Light))
	box, err := mgr.Mount(sx.New().Set("padding", sx.Literal("3px 5px")).SetString("pY", "1px"))
	require.NoError(t, err)
	wide, _ := mgr.Mount(sx.New().Set("md", sx.Nest(padded("20px"))))
	sheet, err := mgr.Sheet()
	require.NoError(t, err)
	selectors := cssom.Selectors(sheet)
	assert.Contains(t, selectors, "body")
	assert.Contains(t, selectors, box.Selector())
	require.Len(t, cssom.Find(sheet, wide.Selector(), "(min-width: 768px)"), 1)
	//
	for key, expected := range map[string]string{
		"padding-left":   "5px",
		"padding-top":    "3px",
		"margin-bottom":  "1px",
		"padding-bottom": "3px",
	} {
		if p, ok := mgr.Lookup(box, key); !ok || p.String() != expected {
			t.Errorf("expected %s to be %s, is %q", key, expected, p)
		}
	}
	_, ok := mgr.Lookup(box, "color")
	assert.False(t, ok)
	_, ok = mgr.Lookup(wide, "padding")
	assert.False(t, ok, "media rules are not looked up")
}

func TestReplacedStyleDropsSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.stylemgr")
	defer teardown()
	//
	dropped, err := droppedSelectors(".stale { color: red; } body { margin: 0; }", "body { margin: 1px; }")
	require.NoError(t, err)
	assert.Equal(t, []string{".stale"}, dropped)
	dropped, err = droppedSelectors("", "body { margin: 1px; }")
	require.NoError(t, err)
	assert.Empty(t, dropped)
}

func TestWriteStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.stylemgr")
	defer teardown()
	//
	mgr, _ := New(sx.NewTheme("joy"))
	ref, _ := mgr.Mount(padded("2px"))
	var buf bytes.Buffer
	require.NoError(t, mgr.WriteStyles(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<style data-style="theme-joy-main">`))
	assert.Contains(t, out, `<style data-style="`+ref.Class+`">`+ref.CSS+`</style>`)
}
