// Package logger builds the zerolog logger used to trace the pipeline stages
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger
type Options struct {
	// Verbose enables debug logging; otherwise nothing is logged so that
	// stderr only carries diagnostics.
	Verbose bool

	// Writer defaults to os.Stderr
	Writer io.Writer

	// NoColor disables colors in the console output
	NoColor bool
}

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// New returns a console logger at debug level when verbose, and a disabled
// logger otherwise.
func New(opt Options) Logger {
	if !opt.Verbose {
		return zerolog.Nop()
	}
	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: opt.NoColor}
	return zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
