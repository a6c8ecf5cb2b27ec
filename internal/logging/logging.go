// Package logging configures the zerolog logger used by the lnkinfo CLI.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options selects where and how much to log.
type Options struct {
	Out       io.Writer // defaults to os.Stderr
	Verbosity int       // count of -v flags
	Quiet     bool      // errors only
	Level     string    // explicit level name, overrides Verbosity
	NoColor   bool
}

// Setup configures the global logger and returns it. Without flags only
// warnings and errors are shown, so the value printed on stdout stays the
// only output a script sees.
func Setup(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	zerolog.SetGlobalLevel(level(opts))

	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}
	l := zerolog.New(console).With().Timestamp().Logger()
	if opts.Verbosity >= 3 {
		l = l.With().Caller().Logger()
	}
	log.Logger = l
	l.Debug().Int("verbosity", opts.Verbosity).Str("level", zerolog.GlobalLevel().String()).Msg("Logger initialized")
	return l
}

func level(opts Options) zerolog.Level {
	if opts.Quiet {
		return zerolog.ErrorLevel
	}
	if opts.Level != "" {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(opts.Level)); err == nil && lvl != zerolog.NoLevel {
			return lvl
		}
	}
	switch opts.Verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Logger returns the global logger tagged with a component name.
func Logger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// LogOperationStart logs the start of an operation and returns a function
// that logs its completion with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")
	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
