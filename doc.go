// Package execq provides a priority-ordered execution queue for reactor
// style applications.
//
// Design goals
//
// The package is designed around the following principles:
//
//   - Strict, deterministic dequeue order under concurrent submission
//   - No owned goroutines: work runs only when a driver pumps the queue
//   - Short critical sections; task bodies never run under the lock
//   - A uniform, priority-bound submission surface for callbacks
//
// Architecture overview
//
// The component is two layers, the second built on the first:
//
//   1. Ordered task store (Queue)
//      A mutex-guarded container mapping each submission to a total order
//      keyed by (priority, sequence). Submit and PopHighest are atomic.
//      Container strategies (heap-based, tree-based) may be swapped via
//      Options without touching the pump logic.
//
//   2. Submission handle (Executor)
//      A small value pairing a Queue reference with a fixed priority.
//      Dispatch, Post and Defer all collapse into one operation: enqueue
//      at that priority for a later pump call. Wrap and Bind adapt plain
//      completion callbacks into priority-schedulable tasks.
//
// Ordering model
//
// Higher priority always dequeues first. Within a priority tier, tasks come
// out in submission order. The tie-break is a store-private sequence
// counter seeded at the maximum uint64 and decremented per submission, so
// an earlier task holds the larger value and wins under the same
// max-ordering that compares priorities.
//
// Pumping
//
// No component here drives itself. An external event loop calls DrainOne
// once per poll iteration, interleaving queued work with I/O waits, or
// DrainAll to empty the queue. Tasks execute synchronously on the pump
// caller's goroutine. A task may submit more work while it runs; the new
// task becomes visible to later pump calls, never to the current one.
// PumpLoop is a convenience driver for callers without a loop of their own.
//
// Failure semantics
//
// The queue is a pure ordering mechanism. A panic from a task propagates
// out of the pump call unmodified; the task was already removed, so it is
// never re-attempted and the rest of the queue stays intact for the next
// pump. Failure policy (log, crash, retry) belongs to the driver.
//
// Intended use cases
//
// execq is well suited for:
//
//   - Event loops that must run deferred work between I/O polls
//   - Prioritizing completion callbacks from an async I/O layer
//   - Single-consumer draining with many concurrent producers
//
// It does not manage threads, track outstanding work for shutdown, or
// cancel queued tasks; those concerns belong to the owning reactor.
package execq
