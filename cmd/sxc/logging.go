package main

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rs/zerolog"
)

// tracers of the library packages, quiet unless sxc logs at debug level.
var libraryTracers = []string{
	"sx.style", "sx.compile", "sx.color", "sx.gradient", "sx.props",
	"sx.themefile", "sx.baseline", "sx.cssom", "sx.stylemgr",
}

func newLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	console := zerolog.NewConsoleWriter()
	console.Out = w
	console.NoColor = true
	console.TimeFormat = "15:04:05"
	if lvl > zerolog.DebugLevel {
		for _, key := range libraryTracers {
			tracing.Select(key).SetTraceLevel(tracing.LevelError)
		}
	}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger()
}
