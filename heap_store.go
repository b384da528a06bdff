package execq

import "container/heap"

const (
	defaultHeapCapacity = 2048
)

// heapStore is the default taskStore, backed by a container/heap max-heap
// ordered by (priority, sequence).
type heapStore struct {
	h itemHeap
}

// newHeapStore creates a heap store preallocated to the given capacity.
func newHeapStore(capacity int) *heapStore {
	s := &heapStore{}
	s.h = make(itemHeap, 0, capacity) // preallocate
	heap.Init(&s.h)
	return s
}

func (s *heapStore) push(it *item) {
	heap.Push(&s.h, it)
}

func (s *heapStore) pop() (*item, bool) {
	if s.h.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&s.h).(*item), true
}

func (s *heapStore) len() int { return s.h.Len() }

// itemHeap — max-heap over the dequeue order.
type itemHeap []*item

func (h itemHeap) Len() int { return len(h) }
func (h itemHeap) Less(i, j int) bool {
	return h[i].before(h[j]) // max-heap
}
func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *itemHeap) Push(x any) {
	*h = append(*h, x.(*item))
}

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}
