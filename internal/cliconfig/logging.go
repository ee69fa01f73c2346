package cliconfig

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	loggerMu sync.RWMutex
	logger   = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
)

// Logger returns the CLI logger. Safe for concurrent use with SetLogLevel.
func Logger() zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogLevel sets the level of the CLI logger, e.g. "debug" or "warn".
func SetLogLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	loggerMu.Lock()
	logger = logger.Level(lvl)
	loggerMu.Unlock()
	return nil
}
