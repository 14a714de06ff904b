// Package applog configures the structured console logger shared by the
// lowerer and the CLI.
package applog

import (
	"os"

	"github.com/rs/zerolog"
)

const TimeFormat = "2006-01-02T15:04:05.000"

// New returns a console-pretty zerolog.Logger writing to stderr, so that
// verbose output from the CLI never mixes with the rendered XSD/XML,
// which the CLI writes to its output files.
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	writer := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false, TimeFormat: TimeFormat}
	return zerolog.New(writer).With().Timestamp().Logger()
}
