package execq

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// treeStore is an alternative taskStore backed by a red-black tree.
// The rightmost node is always the next task to dequeue.
type treeStore struct {
	rbt *redblacktree.Tree
}

func newTreeStore() *treeStore {
	return &treeStore{rbt: redblacktree.NewWith(cmp)}
}

func (s *treeStore) push(it *item) {
	s.rbt.Put(treeKey{priority: it.priority, seq: it.seq}, it)
}

func (s *treeStore) pop() (*item, bool) {
	node := s.rbt.Right()
	if node == nil {
		return nil, false
	}
	s.rbt.Remove(node.Key)
	return node.Value.(*item), true
}

func (s *treeStore) len() int { return s.rbt.Size() }

// treeKey is used as a key in the red-black tree. Keys are unique because
// every submission gets its own sequence value.
type treeKey struct {
	priority int
	seq      uint64
}

// cmp orders keys ascending by (priority, seq) so the tree's maximum is the
// dequeue candidate.
func cmp(a, b any) int {
	ka, kb := a.(treeKey), b.(treeKey)
	switch {
	case ka.priority < kb.priority:
		return -1
	case ka.priority > kb.priority:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}
