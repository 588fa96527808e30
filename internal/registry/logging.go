package registry

import (
	"log"

	"github.com/rs/zerolog"
)

// zlog is an optional structured logger. If unset, falls back to log.Printf.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the scanner.
func SetLogger(l zerolog.Logger) { zlog = &l }

func logSkip(path string, err error) {
	if zlog != nil {
		zlog.Warn().Str("path", path).Err(err).Msg("skipping unreadable index")
		return
	}
	log.Printf("skipping unreadable index %s: %v", path, err)
}
