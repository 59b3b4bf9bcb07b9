// Package logger is the public API of ember. Most users only need to
// import this package.
//
// A Logger is a small value: builder calls like WithLevel, WithColors,
// and With consume the receiver and return a new Logger with exactly
// one setting changed. Context fields added via With are copied on
// write, so a base logger can be handed to multiple subsystems and
// specialized independently:
//
//	base := logger.New().WithLevel(logger.DebugLevel)
//	authLog := base.With("service", "auth")
//	apiLog := base.With("service", "api")
//
// Logging calls are synchronous and infallible from the caller's
// perspective. An entry below the configured level is dropped before
// any work happens; an accepted entry is rendered and written before
// the call returns. Write failures are contained at the output
// boundary and the line is silently lost — there is deliberately no
// secondary error channel for a logger.
//
// The package also maintains a lazily created process-wide default
// Logger behind a mutex. The package-level functions Info, Warnf,
// Error, etc. delegate to it, so simple programs can log without any
// setup:
//
//	logger.Info("ready", logger.Int("port", 8080))
//
// Replace it with SetDefault, read a duplicate with Default, or run an
// operation against the live instance with WithDefault.
package logger
