package execq

// Wrap returns a Task that, when invoked, enqueues fn at the given priority
// instead of running it. It is the seam for handing this queue to code that
// expects a plain callback: the external layer "calls" the completion
// handler, and the real work runs on a later pump call. A nil fn makes the
// returned Task a no-op (the submission is rejected with ErrNilTask).
func (q *Queue) Wrap(priority int, fn Task) Task {
	return func() {
		_ = q.Submit(priority, fn)
	}
}

// Bind adapts a one-argument completion callback. The returned func is
// usable wherever the asynchronous I/O layer expects a handler for T;
// invoking it with a value enqueues a task that applies fn to that value
// at the given priority.
func Bind[T any](q *Queue, priority int, fn func(T)) func(T) {
	return func(v T) {
		_ = q.Submit(priority, func() { fn(v) })
	}
}
