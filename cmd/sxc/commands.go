package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/sx"
	"github.com/npillmayer/sx/baseline"
	"github.com/npillmayer/sx/stylemgr"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

func newCompileCmd(a *app) *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "compile STYLE",
		Short: "Compile a style document to CSS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := a.theme()
			if err != nil {
				return err
			}
			style, err := a.readStyle(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			css, err := sx.Compile(style, a.mode, theme, sx.WithBase(base))
			if err != nil {
				a.log.Error().Err(err).Str("style", args[0]).Msg("compile failed")
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), css)
			return err
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "selector the compiled rules are nested in")
	return cmd
}

func newMountCmd(a *app) *cobra.Command {
	var page string
	cmd := &cobra.Command{
		Use:   "mount STYLE...",
		Short: "Mount style documents as classes, next to the theme baseline",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := a.theme()
			if err != nil {
				return err
			}
			mgr, err := stylemgr.New(theme, stylemgr.WithMode(a.mode))
			if err != nil {
				return err
			}
			for _, path := range args {
				style, err := a.readStyle(path, cmd.InOrStdin())
				if err != nil {
					return err
				}
				ref, err := mgr.Mount(style)
				if err != nil {
					return fmt.Errorf("style %s: %w", path, err)
				}
				a.log.Info().Str("style", path).Str("class", ref.Class).Msg("mounted")
			}
			if page == "" {
				return mgr.WriteStyles(cmd.OutOrStdout())
			}
			f, err := os.Open(page)
			if err != nil {
				return err
			}
			defer f.Close()
			doc, err := html.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", page, err)
			}
			if err := mgr.Inject(doc); err != nil {
				return err
			}
			return html.Render(cmd.OutOrStdout(), doc)
		},
	}
	cmd.Flags().StringVar(&page, "html", "", "HTML document to inject the styles into")
	return cmd
}

func newBaselineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "baseline",
		Short: "Print the baseline style sheet of a theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := a.theme()
			if err != nil {
				return err
			}
			css, err := baseline.Sheet(theme, a.mode, nil)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), css)
			return err
		},
	}
}
