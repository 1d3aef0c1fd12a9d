package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/sx"
	"github.com/npillmayer/sx/themefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(&Config{Mode: "system", LogLevel: "error"})
	var out, logs bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCompileCommand(t *testing.T) {
	path := writeFile(t, "box.json", `{"padding": "15px", "md": {"padding": "20px"}}`)
	out, err := run(t, "", "compile", path, "--base", ".box")
	require.NoError(t, err)
	assert.Equal(t, ".box {padding: 15px;}@media (min-width: 768px){.box {padding: 20px;}}\n", out)
	//
	path = writeFile(t, "card.yaml", "bgcolor: background.body\npX: 2px\n")
	out, err = run(t, "", "compile", path, "--base", ".card", "--mode", "dark")
	require.NoError(t, err)
	assert.Equal(t, ".card {background-color: var(--happy-palette-background-body);"+
		"margin-left: 2px;margin-right: 2px;}\n", out)
	//
	out, err = run(t, `{"zIndex": 3}`, "compile", "-")
	require.NoError(t, err)
	assert.Equal(t, "z-index: 3;\n", out)
}

func TestCompileFailures(t *testing.T) {
	path := writeFile(t, "bad.json", `{"color": "nope.050"}`)
	_, err := run(t, "", "compile", path)
	assert.ErrorIs(t, err, sx.ErrUnknownPalette)
	_, err = run(t, "", "compile", writeFile(t, "style.toml", ""))
	assert.Error(t, err)
	_, err = run(t, "", "compile", path, "--mode", "sepia")
	if err == nil || !strings.Contains(err.Error(), "mode") {
		t.Errorf("expected invalid mode to be rejected, error is %v", err)
	}
	_, err = run(t, "", "compile", path, "--theme", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestBaselineCommand(t *testing.T) {
	out, err := run(t, "", "baseline", "--mode", "light")
	require.NoError(t, err)
	assert.Contains(t, out, ".happy-system.h1 {")
	assert.Contains(t, out, "body {margin: 0;}")
	//
	theme := writeFile(t, "theme.json", string(themefile.DefaultJSON()))
	again, err := run(t, "", "baseline", "--mode", "light", "--theme", theme)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestMountCommand(t *testing.T) {
	a := writeFile(t, "a.json", `{"padding": "1px"}`)
	b := writeFile(t, "b.yaml", "padding: 2px\n")
	out, err := run(t, "", "mount", a, b, a)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "<style data-style="))
	assert.True(t, strings.HasPrefix(out, `<style data-style="theme-happy-main">`))
	//
	page := writeFile(t, "page.html", "<html><head><title>x</title></head><body><p>hi</p></body></html>")
	out, err = run(t, "", "mount", a, "--html", page)
	require.NoError(t, err)
	assert.Contains(t, out, "<title>x</title>")
	assert.Contains(t, out, "{padding: 1px;}</style>")
	assert.Contains(t, out, "<p>hi</p>")
}

func TestPaletteCommand(t *testing.T) {
	out, err := run(t, "", "palette", "--mode", "dark")
	require.NoError(t, err)
	for _, s := range []string{"primary", "solidBg", "var(--happy-palette-primary-050)", "outlinedBorder"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected palette output to contain %q", s)
		}
	}
}

func TestResolveHex(t *testing.T) {
	theme, err := themefile.Default()
	require.NoError(t, err)
	vars := paletteVars(theme, sx.Dark)
	body, _ := theme.Palette("background")
	c, _ := body.Select("body", sx.Dark)
	hex, ok := resolveHex(c, vars)
	assert.True(t, ok)
	assert.Equal(t, "#09090B", hex)
	_, ok = resolveHex(nil, vars)
	assert.False(t, ok)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("SXC_MODE", "Dark")
	t.Setenv("SXC_THEME", "")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "dark", cfg.Mode)
	assert.Equal(t, "warn", cfg.LogLevel)
	//
	t.Setenv("SXC_LOG_LEVEL", "")
	os.Unsetenv("SXC_LOG_LEVEL")
	env := writeFile(t, ".env", "SXC_LOG_LEVEL=debug\n")
	cfg, err = LoadConfig(env)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	//
	cfg.LogLevel = "loud"
	err = cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "loglevel") {
		t.Errorf("expected invalid log level to be rejected, error is %v", err)
	}
	cfg = &Config{Mode: "light", LogLevel: "info", Theme: filepath.Join(t.TempDir(), "none.json")}
	assert.Error(t, cfg.Validate())
}
