// Package cli holds the setup shared by the commands: a console logger on
// stderr and optional profiling.
package cli

import (
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger returns a console logger on stderr at the named level and installs
// it as the global zerolog logger. An unknown level falls back to info.
func Logger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger()
	log.Logger = logger
	if err != nil {
		logger.Warn().Str("level", level).Msg("unknown log level, using info")
	}
	return logger
}

// Stopper ends a profile.
type Stopper interface{ Stop() }

type noop struct{}

func (noop) Stop() {}

// Profile starts a CPU or heap profile written under dir. Pass an empty dir
// to disable profiling. The caller must Stop the result.
func Profile(dir string, mem bool) Stopper {
	if dir == "" {
		return noop{}
	}
	mode := profile.CPUProfile
	if mem {
		mode = profile.MemProfile
	}
	return profile.Start(mode, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet)
}
