package execq

// StoreType selects the ordered container behind a Queue.
//
// Both containers honor the same dequeue order; they differ in constant
// factors. The type is configured via Options.Store when creating a Queue.
type StoreType int

const (
	// HeapStore is the default container/heap backed store.
	HeapStore StoreType = iota

	// TreeStore is a red-black tree backed store.
	TreeStore
)

func (st StoreType) String() string {
	switch st {
	case HeapStore:
		return "HeapStore"
	case TreeStore:
		return "TreeStore"
	default:
		return "Unknown"
	}
}

// Options configure a Queue.
//
// All zero values are replaced with sensible defaults in FillDefaults.
type Options struct {
	// Store selects the backing container.
	Store StoreType

	// InitialCapacity preallocates the heap store. Ignored by TreeStore.
	InitialCapacity int

	// Metrics receives queued/executed counter updates.
	Metrics MetricsPolicy
}

func (o *Options) FillDefaults() {
	if o.InitialCapacity <= 0 {
		o.InitialCapacity = defaultHeapCapacity
	}
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
}
