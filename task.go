package execq

// Task is a single-shot unit of deferred work. A Task carries no arguments
// and returns nothing; anything it needs is captured in the closure.
type Task func()

// Conventional priority levels. They are a convenience, not an enforced
// domain: any int is a valid priority, and a higher value dequeues first.
const (
	PriorityHigh   = 100
	PriorityMedium = 50
	PriorityLow    = 10
)
