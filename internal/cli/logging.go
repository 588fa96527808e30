package cli

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// logger is the process-wide diagnostic logger. The report itself always
// goes to stdout; diagnostics stay on stderr so scrapers see a clean stream.
var logger = zerolog.Nop()

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Env helpers
func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
