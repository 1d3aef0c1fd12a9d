package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/sx"
	"github.com/npillmayer/sx/color"
	"github.com/spf13/cobra"
)

func newPaletteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Show the palettes of a theme as color swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := a.theme()
			if err != nil {
				return err
			}
			return renderPalettes(cmd.OutOrStdout(), theme, a.mode)
		},
	}
}

func renderPalettes(w io.Writer, theme *sx.Theme, m sx.Mode) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).MarginTop(1)
	label := r.NewStyle().Width(24)
	vars := paletteVars(theme, m)
	var b strings.Builder
	for _, name := range theme.Palettes() {
		p, _ := theme.Palette(name)
		b.WriteString(title.Render(name))
		b.WriteByte('\n')
		for _, selector := range p.Selectors() {
			c, _ := p.Select(selector, m)
			swatch := "      "
			if hex, ok := resolveHex(c, vars); ok {
				swatch = r.NewStyle().Background(lipgloss.Color(hex)).Render(swatch)
			}
			fmt.Fprintf(&b, "%s %s %s\n", label.Render(selector), swatch, c)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// paletteVars maps the CSS variable of every palette selector to its color.
func paletteVars(theme *sx.Theme, m sx.Mode) map[string]color.Color {
	vars := make(map[string]color.Color)
	for _, name := range theme.Palettes() {
		p, _ := theme.Palette(name)
		for _, selector := range p.Selectors() {
			vars[theme.PaletteVar(name, selector)], _ = p.Select(selector, m)
		}
	}
	return vars
}

// resolveHex follows variable references and returns the color as
// "#RRGGBB", if it has a channel representation.
func resolveHex(c color.Color, vars map[string]color.Color) (string, bool) {
	for hops := 0; hops < 16; hops++ {
		v, ok := c.(color.Var)
		if !ok {
			break
		}
		if c, ok = vars[v.Name]; !ok {
			if v.Fallback == nil {
				return "", false
			}
			c = v.Fallback
		}
	}
	ch, err := color.ToRGBA(c)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("#%02X%02X%02X", ch[0], ch[1], ch[2]), true
}
