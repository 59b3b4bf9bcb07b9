package logger

import (
	"fmt"
	"io"

	"github.com/emberlog/ember/core"
	"github.com/emberlog/ember/formatter"
	"github.com/emberlog/ember/handler"
)

// Logger is a cheaply duplicable value carrying a Config, a persistent
// context of key-value fields, and the handler that receives accepted
// entries. Builder calls consume the receiver and return a new Logger;
// the context is copy-on-write, so a base logger can be specialized
// per subsystem without shared mutation.
type Logger struct {
	config  Config
	context []core.Field
	handler handler.Handler
}

// New creates a Logger with DefaultConfig, empty context, and a
// console handler on stderr.
func New() Logger {
	return WithConfig(DefaultConfig())
}

// WithConfig creates a Logger with the given Config and empty context.
func WithConfig(cfg Config) Logger {
	return Logger{
		config: cfg,
		handler: handler.NewConsole(handler.ConsoleConfig{
			Formatter: formatter.NewTerminal(cfg.formatterConfig()),
		}),
	}
}

func (c Config) formatterConfig() formatter.Config {
	return formatter.Config{
		UseColors:     c.UseColors,
		ShowTimestamp: c.ShowTimestamp,
	}
}

// reconfigurable is implemented by handlers whose formatter options
// can be re-derived, like the console handler.
type reconfigurable interface {
	Reconfigure(formatter.Config) handler.Handler
}

// reconfigure pushes new formatter options into the handler when it
// supports that; other handlers are kept as-is.
func reconfigure(h handler.Handler, cfg formatter.Config) handler.Handler {
	if rc, ok := h.(reconfigurable); ok {
		return rc.Reconfigure(cfg)
	}
	return h
}

// WithLevel returns a Logger with the minimum level changed
func (l Logger) WithLevel(level core.Level) Logger {
	l.config.Level = level
	return l
}

// WithColors returns a Logger with colorized output enabled or disabled
func (l Logger) WithColors(enabled bool) Logger {
	l.config.UseColors = enabled
	l.handler = reconfigure(l.handler, l.config.formatterConfig())
	return l
}

// WithTimestamp returns a Logger with the timestamp column enabled or
// disabled
func (l Logger) WithTimestamp(show bool) Logger {
	l.config.ShowTimestamp = show
	l.handler = reconfigure(l.handler, l.config.formatterConfig())
	return l
}

// With returns a Logger whose context carries the given key-value
// pair. Writing an existing key overwrites its value in place, keeping
// the key's original position; context keys stay unique.
func (l Logger) With(key, value string) Logger {
	ctx := make([]core.Field, len(l.context), len(l.context)+1)
	copy(ctx, l.context)
	l.context = mergeField(ctx, core.Field{Key: key, Value: value})
	return l
}

// WithFields returns a Logger whose context carries all given fields,
// applied left to right with the same overwrite rule as With.
func (l Logger) WithFields(fields ...core.Field) Logger {
	ctx := make([]core.Field, len(l.context), len(l.context)+len(fields))
	copy(ctx, l.context)
	for _, f := range fields {
		ctx = mergeField(ctx, f)
	}
	l.context = ctx
	return l
}

// mergeField inserts f into fields, overwriting in place when the key
// already exists.
func mergeField(fields []core.Field, f core.Field) []core.Field {
	for i := range fields {
		if fields[i].Key == f.Key {
			fields[i].Value = f.Value
			return fields
		}
	}
	return append(fields, f)
}

// WithHandler returns a Logger that sends entries to the given handler
func (l Logger) WithHandler(h handler.Handler) Logger {
	l.handler = h
	return l
}

// WithWriter returns a Logger with a console handler on the given
// stream, formatted per the logger's current Config. Intended for
// tests and for redirecting output to an in-memory buffer.
func (l Logger) WithWriter(w io.Writer) Logger {
	l.handler = handler.NewConsole(handler.ConsoleConfig{
		Writer:    w,
		Formatter: formatter.NewTerminal(l.config.formatterConfig()),
	})
	return l
}

// Config returns the logger's current configuration
func (l Logger) Config() Config {
	return l.config
}

// Context returns a copy of the logger's persistent context fields
func (l Logger) Context() []core.Field {
	if len(l.context) == 0 {
		return nil
	}
	ctx := make([]core.Field, len(l.context))
	copy(ctx, l.context)
	return ctx
}

// clone returns a Logger whose context no longer shares backing
// storage with the receiver.
func (l Logger) clone() Logger {
	if len(l.context) == 0 {
		return l
	}
	ctx := make([]core.Field, len(l.context))
	copy(ctx, l.context)
	l.context = ctx
	return l
}

// Log emits a message at the given level. Entries below the configured
// minimum are dropped before any work happens. Context and call-site
// fields are merged with call-site values winning on key collision.
// Log never returns an error and never panics: write failures are
// contained in the handler and the entry is silently lost.
func (l Logger) Log(level core.Level, msg string, fields ...core.Field) {
	// Level check before any allocation
	if level < l.config.Level {
		return
	}
	l.log(level, msg, fields)
}

// log builds the merged entry and hands it to the handler
func (l Logger) log(level core.Level, msg string, fields []core.Field) {
	if l.handler == nil {
		return
	}

	// Entry comes from the pool with a fresh local timestamp
	entry := core.GetEntry()
	entry.Level = level
	entry.Message = msg

	// Context first, then call-site fields overlaid in order; a
	// call-site value replaces a context value in place, so the key
	// keeps its original position. Later call-site duplicates win.
	entry.Fields = append(entry.Fields, l.context...)
	for _, f := range fields {
		entry.Fields = mergeField(entry.Fields, f)
	}

	_ = l.handler.Handle(entry)
	core.PutEntry(entry)
}

// Trace logs a message at TraceLevel
func (l Logger) Trace(msg string, fields ...core.Field) {
	if core.TraceLevel < l.config.Level {
		return
	}
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a message at DebugLevel
func (l Logger) Debug(msg string, fields ...core.Field) {
	if core.DebugLevel < l.config.Level {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs a message at InfoLevel
func (l Logger) Info(msg string, fields ...core.Field) {
	if core.InfoLevel < l.config.Level {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a message at WarnLevel
func (l Logger) Warn(msg string, fields ...core.Field) {
	if core.WarnLevel < l.config.Level {
		return
	}
	l.log(core.WarnLevel, msg, fields)
}

// Error logs a message at ErrorLevel
func (l Logger) Error(msg string, fields ...core.Field) {
	if core.ErrorLevel < l.config.Level {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Logf emits a formatted message at the given level. The format is
// only expanded when the level passes the filter.
func (l Logger) Logf(level core.Level, format string, args ...interface{}) {
	if level < l.config.Level {
		return
	}
	l.log(level, fmt.Sprintf(format, args...), nil)
}

// Tracef logs a formatted message at TraceLevel
func (l Logger) Tracef(format string, args ...interface{}) {
	l.Logf(core.TraceLevel, format, args...)
}

// Debugf logs a formatted message at DebugLevel
func (l Logger) Debugf(format string, args ...interface{}) {
	l.Logf(core.DebugLevel, format, args...)
}

// Infof logs a formatted message at InfoLevel
func (l Logger) Infof(format string, args ...interface{}) {
	l.Logf(core.InfoLevel, format, args...)
}

// Warnf logs a formatted message at WarnLevel
func (l Logger) Warnf(format string, args ...interface{}) {
	l.Logf(core.WarnLevel, format, args...)
}

// Errorf logs a formatted message at ErrorLevel
func (l Logger) Errorf(format string, args ...interface{}) {
	l.Logf(core.ErrorLevel, format, args...)
}

// Close closes the logger's handler
func (l Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
