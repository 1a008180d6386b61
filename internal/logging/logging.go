// Package logging builds the zap logger shared by the CLI and the library.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to stderr and the atomic level
// controlling it, so callers can change verbosity after construction.
func New(level string) (*zap.Logger, *zap.AtomicLevel) {
	atomicLevel := zap.NewAtomicLevel()
	atomicLevel.SetLevel(ParseLevel(level))

	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		atomicLevel,
	))

	return logger, &atomicLevel
}

// ParseLevel maps a configuration string onto a zap level.
// Unknown values fall back to warn.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
