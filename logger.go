// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// logger.go — Logger interface and noop implementation used internally by
// configfile for structured logging; swap in zap, slog, or logrus by passing
// a custom implementation to SetLogger.

package configfile

// Logger is the logging interface used internally by configfile.
// Implement this to route logs to zap, slog, logrus, etc.
type Logger interface {
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	Debug(msg string, keysAndValues ...any)
}

type noopLogger struct{}

func (noopLogger) Info(_ string, _ ...any)  {}
func (noopLogger) Warn(_ string, _ ...any)  {}
func (noopLogger) Error(_ string, _ ...any) {}
func (noopLogger) Debug(_ string, _ ...any) {}

// logger receives the package's internal diagnostics. Defaults to a noop.
var logger Logger = noopLogger{}

// SetLogger routes configfile's internal logging to l. Passing nil restores
// the noop default. Call it once at startup; it is not synchronized against
// concurrent Load/Store calls.
func SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	logger = l
}
