package infra

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. Development gets debug level and a
// console writer; "test" discards everything.
func NewLogger(appEnv string) zerolog.Logger {
	return newLogger(os.Stdout, appEnv)
}

func newLogger(out io.Writer, appEnv string) zerolog.Logger {
	switch appEnv {
	case "test":
		return zerolog.Nop()
	case "development":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		return zerolog.New(out).Level(zerolog.DebugLevel).With().Timestamp().Str("service", "roomdesign").Logger()
	default:
		return zerolog.New(out).Level(zerolog.InfoLevel).With().Timestamp().Str("service", "roomdesign").Logger()
	}
}

// Logger aliases zerolog.Logger so command packages can refer to the
// logging contract through infra.
type Logger = zerolog.Logger
