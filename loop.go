package execq

import (
	"context"
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
	lg "github.com/Andrej220/go-utils/zlog"
)

// PumpLoop drives a Queue on behalf of callers that have no reactor of
// their own. Run executes tasks on the calling goroutine; the loop owns no
// goroutines itself and stops when its context is done.
//
// Callers with an I/O loop should instead call DrainOne once per poll
// iteration and skip PumpLoop entirely.
type PumpLoop struct {
	q       *Queue
	initial time.Duration
	max     time.Duration
}

// NewPumpLoop builds a loop over q; cfg supplies the idle backoff window.
func NewPumpLoop(q *Queue, cfg Config) *PumpLoop {
	return &PumpLoop{
		q:       q,
		initial: cfg.idleWait(),
		max:     cfg.maxIdleWait(),
	}
}

// Run pumps the queue until ctx is done and returns ctx.Err(). While the
// queue stays empty the loop sleeps with growing backoff instead of
// spinning; a submission is picked up on the next wake. A panic from a
// task propagates out of Run like it does out of DrainOne.
func (l *PumpLoop) Run(ctx context.Context) error {
	logger := lg.FromContext(ctx)
	logger.Info("pump loop started",
		lg.String("idle_wait", l.initial.String()),
		lg.String("max_idle_wait", l.max.String()),
	)

	for {
		select {
		case <-ctx.Done():
			logger.Info("pump loop stopped", lg.Any("reason", ctx.Err()))
			return ctx.Err()
		default:
		}

		if l.q.DrainOne() {
			continue
		}

		// idle stretch: back off until work shows up or the context ends
		bo := boff.New(l.initial, l.max, time.Now().UnixNano())
		for {
			delay := bo.Next()
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C // drain if timer is fired
				}
				logger.Info("pump loop stopped", lg.Any("reason", ctx.Err()))
				return ctx.Err()
			}
			if l.q.DrainOne() {
				break // work resumed
			}
		}
	}
}
