package execq

// Executor is a priority-bound submission handle: a Queue reference paired
// with a fixed priority. It gives producers, typically completion callbacks
// from an asynchronous I/O layer, one object through which every submission
// lands in the queue at the same priority.
//
// Executor is a small value type; copies are interchangeable and comparable
// with ==. Any number of handles at any priorities may front one Queue.
type Executor struct {
	queue    *Queue
	priority int
}

// Executor returns a submission handle bound to the given priority.
func (q *Queue) Executor(priority int) Executor {
	return Executor{queue: q, priority: priority}
}

// Queue returns the queue this handle submits into.
func (e Executor) Queue() *Queue { return e.queue }

// Priority returns the handle's fixed priority.
func (e Executor) Priority() int { return e.priority }

// Dispatch enqueues fn at the handle's priority. There is no "currently
// executing context" here to run inline against, so Dispatch, Post and
// Defer are deliberately one operation: enqueue for the next pump call.
func (e Executor) Dispatch(fn Task) error {
	return e.queue.Submit(e.priority, fn)
}

// Post enqueues fn at the handle's priority.
func (e Executor) Post(fn Task) error {
	return e.queue.Submit(e.priority, fn)
}

// Defer enqueues fn at the handle's priority.
func (e Executor) Defer(fn Task) error {
	return e.queue.Submit(e.priority, fn)
}

// OnWorkStarted is a no-op. Outstanding-work accounting belongs to the
// reactor that owns the queue, not to this component.
func (e Executor) OnWorkStarted() {}

// OnWorkFinished is a no-op.
func (e Executor) OnWorkFinished() {}

// Equal reports whether both handles front the same Queue instance at the
// same priority.
func (e Executor) Equal(other Executor) bool {
	return e.queue == other.queue && e.priority == other.priority
}
