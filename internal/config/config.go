// Package config sets up the avrlift application configuration.
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates the application logger. Debug logging takes
// precedence over quiet mode, which silences everything below errors so
// that only the instruction listing is printed.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
