package observability

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog Logger writing to out.
// APP_ENV=dev (or development) uses a human-friendly console writer.
func NewLogger(env, level string, out io.Writer) zerolog.Logger {
	l := zerolog.New(out).With().Timestamp().Logger()
	if env == "dev" || env == "development" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	if lv, err := zerolog.ParseLevel(level); err == nil && level != "" {
		l = l.Level(lv)
	}
	return l
}
