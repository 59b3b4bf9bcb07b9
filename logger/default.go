package logger

import (
	"sync"

	"github.com/emberlog/ember/core"
)

// The process-wide default logger. It is created lazily on first
// access and guarded by a single coarse mutex covering the whole
// instance. Go mutexes cannot be poisoned: every path below releases
// via defer, so a panicking caller can never wedge the lock and no
// degraded fallback is needed.
var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
)

// ensureDefault returns the live default logger, creating it on first
// use. Callers must hold defaultMu.
func ensureDefault() *Logger {
	if defaultLogger == nil {
		l := New()
		defaultLogger = &l
	}
	return defaultLogger
}

// SetDefault replaces the process-wide default logger
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = &l
}

// Default returns a duplicate of the process-wide default logger. The
// duplicate's context is deep-copied, so callers can specialize it
// without affecting the shared instance.
func Default() Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return ensureDefault().clone()
}

// WithDefault runs fn against the live default logger while holding
// the global lock. fn must not re-enter the default-logger API (that
// would deadlock) and must not block indefinitely, since every
// package-level logging call serializes on the same lock.
func WithDefault(fn func(*Logger)) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	fn(ensureDefault())
}

// Package-level convenience functions using the default logger.
// Each call runs under the global lock, which also serializes writes
// from concurrent callers on the shared path.

// Log logs a message at the given level using the default logger
func Log(level core.Level, msg string, fields ...core.Field) {
	WithDefault(func(l *Logger) { l.Log(level, msg, fields...) })
}

// Trace logs a trace message using the default logger
func Trace(msg string, fields ...core.Field) {
	WithDefault(func(l *Logger) { l.Trace(msg, fields...) })
}

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) {
	WithDefault(func(l *Logger) { l.Debug(msg, fields...) })
}

// Info logs an info message using the default logger
func Info(msg string, fields ...core.Field) {
	WithDefault(func(l *Logger) { l.Info(msg, fields...) })
}

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...core.Field) {
	WithDefault(func(l *Logger) { l.Warn(msg, fields...) })
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) {
	WithDefault(func(l *Logger) { l.Error(msg, fields...) })
}

// Logf logs a formatted message at the given level using the default logger
func Logf(level core.Level, format string, args ...interface{}) {
	WithDefault(func(l *Logger) { l.Logf(level, format, args...) })
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...interface{}) {
	WithDefault(func(l *Logger) { l.Tracef(format, args...) })
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	WithDefault(func(l *Logger) { l.Debugf(format, args...) })
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	WithDefault(func(l *Logger) { l.Infof(format, args...) })
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	WithDefault(func(l *Logger) { l.Warnf(format, args...) })
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	WithDefault(func(l *Logger) { l.Errorf(format, args...) })
}

// With returns a duplicate of the default logger with an extra context
// key-value pair
func With(key, value string) Logger {
	return Default().With(key, value)
}
