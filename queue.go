package execq

import (
	"context"
	"errors"
	"math"
	"sync"

	lg "github.com/Andrej220/go-utils/zlog"
)

var (
	// ErrNilTask is returned when a nil Task is submitted.
	ErrNilTask = errors.New("execq: task func is nil")
)

// item is one queued task together with its ordering key.
type item struct {
	fn       Task
	priority int
	seq      uint64
}

// before reports whether a dequeues ahead of b: higher priority first,
// larger sequence (earlier submission) first within equal priority.
func (a *item) before(b *item) bool {
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	return a.seq > b.seq
}

// taskStore is the ordered container behind a Queue.
//
// Implementations are not safe for concurrent use on their own; the Queue
// serializes all access under its mutex.
//
// The interface is intentionally small so alternative container strategies
// (heap-based, tree-based) can be swapped without touching the queue or
// pump logic.
type taskStore interface {
	// push inserts an item into the container.
	push(it *item)

	// pop removes and returns the maximal item per the dequeue order.
	//
	// The boolean result reports whether an item was available.
	pop() (*item, bool)

	// len returns the number of items currently stored.
	len() int
}

// Queue is a priority-ordered store of deferred tasks.
//
// Producers call Submit (directly or through an Executor handle) from any
// number of goroutines. An external driver pops work back out through the
// pump operations DrainOne and DrainAll; the Queue never runs anything on
// its own and owns no goroutines.
//
// Ordering is total: tasks dequeue by descending priority, FIFO within a
// priority tier. The tie-break uses a store-private sequence counter that
// starts at the maximum uint64 and decreases, so an earlier submission
// holds the larger value and wins under the same max-ordering as priority.
type Queue struct {
	mu      sync.Mutex
	store   taskStore
	seq     uint64
	metrics MetricsPolicy
}

// New creates a Queue with default Options.
func New() *Queue {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a Queue configured by opts.
// Zero-valued fields are replaced with defaults.
func NewWithOptions(opts Options) *Queue {
	opts.FillDefaults()
	q := &Queue{
		store:   makeStore(opts),
		seq:     math.MaxUint64,
		metrics: opts.Metrics,
	}
	lg.FromContext(context.Background()).Info("execution queue created",
		lg.String("store", opts.Store.String()))
	return q
}

func makeStore(opts Options) taskStore {
	switch opts.Store {
	case TreeStore:
		return newTreeStore()
	default:
		return newHeapStore(opts.InitialCapacity)
	}
}

// Submit enqueues fn at the given priority. It is a pure insert: fn is never
// invoked here, and the lock is held only for the sequence assignment and the
// container insert, so Submit is safe to call from inside an executing task.
func (q *Queue) Submit(priority int, fn Task) error {
	if fn == nil {
		return ErrNilTask
	}
	q.mu.Lock()
	q.seq--
	q.store.push(&item{fn: fn, priority: priority, seq: q.seq})
	q.metrics.IncQueued()
	q.mu.Unlock()
	return nil
}

// PopHighest removes and returns the highest-ranked pending task, or
// (nil, false) if the queue is empty. The lock is released before return;
// the caller executes the task entirely outside the critical section.
func (q *Queue) PopHighest() (Task, bool) {
	q.mu.Lock()
	it, ok := q.store.pop()
	if ok {
		q.metrics.DecQueued(1)
	}
	q.mu.Unlock()
	if !ok {
		return nil, false
	}
	return it.fn, true
}

// Len returns the number of tasks currently pending.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.store.len()
}
