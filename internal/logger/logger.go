// Package logger provides the process-wide zap logger for training runs.
package logger

import (
	"go.uber.org/zap"
)

// Log is a no-op logger until Initialize is called, so library code can log
// unconditionally.
var Log *zap.Logger = zap.NewNop()

// Initialize replaces the no-op logger with a production zap logger at the
// given level.
func Initialize(logLevel string) error {
	lvl, err := zap.ParseAtomicLevel(logLevel)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	defer logger.Sync()

	Log = logger
	return nil
}
