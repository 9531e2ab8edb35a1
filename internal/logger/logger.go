// Package logger builds the application's zap logger
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger set by Init
var Logger = zap.NewNop()

// New builds a logger for the given level
//
// "debug" uses the human-readable development config, every other level the JSON
// production config.
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// Init builds the process-wide logger
func Init(level string) error {
	logger, err := New(level)
	if err != nil {
		return err
	}
	Logger = logger
	return nil
}

// Sync flushes buffered log entries
func Sync() {
	_ = Logger.Sync()
}
