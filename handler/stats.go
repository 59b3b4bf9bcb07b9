package handler

import "sync/atomic"

// Stats tracks per-handler write counters. It is a diagnostic surface
// only: a dropped entry is never reported back to the logging call
// site, so these counters are the one place a write failure leaves a
// trace.
type Stats struct {
	processed uint64
	dropped   uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.processed, 1)
}

// IncrementDropped atomically increments the dropped counter
func (s *Stats) IncrementDropped() {
	atomic.AddUint64(&s.dropped, 1)
}

// Processed returns the number of entries written successfully
func (s *Stats) Processed() uint64 {
	return atomic.LoadUint64(&s.processed)
}

// Dropped returns the number of entries lost to write failures
func (s *Stats) Dropped() uint64 {
	return atomic.LoadUint64(&s.dropped)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.processed, 0)
	atomic.StoreUint64(&s.dropped, 0)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Processed uint64
	Dropped   uint64
}

// Snapshot returns a consistent-enough copy of the current counters
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Processed: s.Processed(),
		Dropped:   s.Dropped(),
	}
}
