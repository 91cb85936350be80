// Package logger configures zap for the survey.
package logger

import (
	"go.uber.org/zap"
)

// global is the process-wide logger. It discards everything until
// SetLogger installs the file logger, so nothing reaches the terminal the
// UI is drawing on.
var global = zap.NewNop()

// SetLogger replaces the global logger. A nil logger resets it to a no-op.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	global = l
}

// GetLogger returns the global logger.
func GetLogger() *zap.Logger {
	return global
}

// Named returns a child of the global logger for one package.
func Named(name string) *zap.Logger {
	return global.Named(name)
}

// Sync flushes the global logger.
func Sync() error {
	return global.Sync()
}

func Debug(msg string, fields ...zap.Field) {
	global.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	global.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	global.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	global.Error(msg, fields...)
}
