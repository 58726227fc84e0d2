// Package logger holds the process-wide structured logger. Every package
// logs through logger.Log rather than carrying its own logger; main swaps
// the no-op default for a real one once the configured level is known, so
// anything constructed before that point stays silent instead of panicking.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared SugaredLogger. No-op until Initialize succeeds.
var Log = zap.NewNop().Sugar()

// Initialize replaces Log with a production logger filtered at the given
// level ("debug", "info", "warn", ...). An unknown level leaves Log as is.
func Initialize(level string) error {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)

	built, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = built.Sugar()
	return nil
}

// Sync flushes buffered entries, typically deferred from main.
func Sync() {
	_ = Log.Sync()
}
