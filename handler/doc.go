// Package handler provides the Handler interface and the built-in
// console sink that writes formatted log entries to a terminal stream.
//
// Console is strictly synchronous: an entry is formatted into a pooled
// buffer and written with a single Write call before Handle returns.
// Concurrent callers sharing one handler never interleave mid-line —
// writers that are not safe for concurrent Write calls are serialized
// behind the handler's mutex, while *os.File and io.Discard are
// trusted as-is.
//
// Failure containment is the handler's second job. A logging call must
// never crash or disrupt the host application, so Handle recovers any
// panic from the formatter or writer and treats write errors as silent
// drops. There is deliberately no secondary error channel for lost
// lines; the Stats counters exist so a lost line at least leaves a
// diagnostic trace.
//
// SlogHandler adapts the Handler interface to log/slog.Handler,
// allowing ember to serve as a drop-in backend for the standard
// library. Groups flatten to dot-separated key prefixes and attribute
// values are finalized to strings eagerly.
package handler
