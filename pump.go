package execq

// DrainOne pops the highest-ranked pending task, if any, and runs it
// synchronously on the calling goroutine. It returns whether tasks remain
// pending immediately after the run, so a reactor can interleave one task
// per poll iteration without starving its I/O wait. On an empty queue it
// executes nothing and returns false.
//
// The task runs outside the queue lock: it may Submit further work, which
// becomes visible to later pump calls, never to the current one. A panic
// from the task propagates to the caller unmodified; the task was removed
// before execution, so a failing task is never re-attempted.
func (q *Queue) DrainOne() bool {
	if fn, ok := q.PopHighest(); ok {
		fn()
		q.metrics.IncExecuted()
	}
	return q.Len() > 0
}

// DrainAll pops and runs tasks until the queue reports empty. Tasks that
// keep resubmitting equal-or-higher-priority work can extend the drain
// indefinitely; callers needing a bound should loop over DrainOne instead.
func (q *Queue) DrainAll() {
	for {
		fn, ok := q.PopHighest()
		if !ok {
			return
		}
		fn()
		q.metrics.IncExecuted()
	}
}
