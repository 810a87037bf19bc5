// Package logging provides the slog-based logger shared by latticectl.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	// global logger instance
	globalLogger *slog.Logger
	globalMu     sync.RWMutex

	defaultTextOptions = &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}
)

func init() {
	globalLogger = slog.New(slog.NewTextHandler(os.Stderr, defaultTextOptions))
}

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *slog.Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *slog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// Component returns a logger with a component field
func Component(name string) *slog.Logger {
	return GetGlobalLogger().With("component", name)
}

// SetOutput redirects the global logger, keeping the default options.
// Tests use it to discard log output.
func SetOutput(w io.Writer) {
	SetGlobalLogger(slog.New(slog.NewTextHandler(w, defaultTextOptions)))
}
