// Package core defines the shared types used across ember.
//
// It provides the Level type for severity filtering, the Entry type
// that represents a single log event, and the Field type for
// structured key-value pairs.
//
// Levels are totally ordered (Trace < Debug < Info < Warn < Error)
// and each carries a fixed four-character label and a terminal color,
// so rendered output stays column-aligned across severities.
//
// Field values are finalized strings. Constructors like Int and
// Duration convert at the call site, which keeps entries free of
// live references: once a Field exists, nothing can change what it
// will print.
//
// Entry objects are pooled via sync.Pool so the hot path stays cheap.
// Callers get an Entry with GetEntry and must return it with PutEntry
// once the handler has consumed it. The pool pre-allocates the Fields
// slice with capacity 8, which covers most log calls without
// triggering a slice growth.
package core
