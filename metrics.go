package execq

import (
	"sync/atomic"
)

// MetricsPolicy defines hooks used by the queue to report queueing and
// execution activity.
//
// Implementations must be safe for concurrent use.
// All methods are expected to be lightweight and non-blocking: the counter
// updates run inside the queue's critical section, which keeps the queued
// count consistent with the container size at every unlock.
type MetricsPolicy interface {

	// IncQueued increments the pending tasks counter.
	IncQueued()

	// DecQueued decrements the pending counter by n.
	DecQueued(n int64)

	// IncExecuted increments the executed tasks counter.
	IncExecuted()
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	// executed is the total number of tasks run by the pump operations.
	executed atomic.Uint64

	_ [56]byte // padding to avoid false sharing

	// queued is the current number of tasks pending.
	queued atomic.Int64
}

// Executed returns the total number of executed tasks.
// Intended for cold-path observation.
func (m *AtomicMetrics) Executed() uint64 {
	return m.executed.Load()
}

// Queued returns the current number of pending tasks.
// Intended for cold-path observation.
func (m *AtomicMetrics) Queued() int64 {
	return m.queued.Load()
}

// IncQueued increments the pending tasks counter by one.
func (m *AtomicMetrics) IncQueued() {
	m.queued.Add(1)
}

// DecQueued decrements the pending tasks counter by n.
func (m *AtomicMetrics) DecQueued(n int64) {
	m.queued.Add(-n)
}

// IncExecuted increments the executed tasks counter by one.
func (m *AtomicMetrics) IncExecuted() {
	m.executed.Add(1)
}

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
//
// It can be used when metrics collection is disabled and
// zero overhead is desired.
type NoopMetrics struct{}

func (m *NoopMetrics) IncQueued()        {}
func (m *NoopMetrics) DecQueued(n int64) {}
func (m *NoopMetrics) IncExecuted()      {}
