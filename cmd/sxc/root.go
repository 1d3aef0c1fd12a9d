package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/sx"
	"github.com/npillmayer/sx/themefile"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries what the commands share after flags have been applied.
type app struct {
	cfg  *Config
	log  zerolog.Logger
	mode sx.Mode
}

func newRootCmd(cfg *Config) *cobra.Command {
	a := &app{cfg: cfg, log: zerolog.Nop()}
	cmd := &cobra.Command{
		Use:           "sxc",
		Short:         "sxc compiles style documents to CSS",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.Theme, "theme", cfg.Theme, "theme file (JSON or YAML), default theme if empty")
	cmd.PersistentFlags().StringVar(&cfg.Mode, "mode", cfg.Mode, "theme mode: light, dark or system")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	cmd.AddCommand(newCompileCmd(a))
	cmd.AddCommand(newMountCmd(a))
	cmd.AddCommand(newBaselineCmd(a))
	cmd.AddCommand(newPaletteCmd(a))
	return cmd
}

func (a *app) setup(logw io.Writer) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	a.log = newLogger(a.cfg.LogLevel, logw)
	m, err := sx.ParseMode(a.cfg.Mode)
	if err != nil {
		return err
	}
	a.mode = m.Resolve(nil)
	a.log.Debug().Str("mode", a.mode.String()).Str("theme", a.cfg.Theme).Msg("configured")
	return nil
}

func (a *app) theme() (*sx.Theme, error) {
	if a.cfg.Theme == "" {
		return themefile.Default()
	}
	theme, err := themefile.Load(a.cfg.Theme)
	if err != nil {
		a.log.Error().Err(err).Str("theme", a.cfg.Theme).Msg("loading theme failed")
		return nil, err
	}
	a.log.Info().Str("prefix", theme.Prefix()).Int("palettes", len(theme.Palettes())).Msg("theme loaded")
	return theme, nil
}

// readStyle reads a style document from a file, or JSON from in for "-".
func (a *app) readStyle(path string, in io.Reader) (*sx.Style, error) {
	var data []byte
	var err error
	format := themefile.JSON
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		if format, err = themefile.FormatOf(path); err != nil {
			return nil, err
		}
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading style: %w", err)
	}
	var style *sx.Style
	if format == themefile.YAML {
		style, err = themefile.StyleFromYAML(data, themefile.ParsedLeaves)
	} else {
		style, err = themefile.StyleFromJSON(data, themefile.ParsedLeaves)
	}
	if err != nil {
		return nil, fmt.Errorf("style %s: %w", path, err)
	}
	a.log.Debug().Str("style", path).Int("properties", style.Len()).Msg("style read")
	return style, nil
}
