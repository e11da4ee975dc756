package ringlist

// Node is a ring node.
type Node[V any] struct {
	next, prev *Node[V]
	ring       *Ring[V]
	Value      V
}

// NewNode creates an unlinked node.
func NewNode[V any](v V) *Node[V] {
	return &Node[V]{
		Value: v,
	}
}

// Next returns the next node or nil if n is the last node of its ring.
func (n *Node[V]) Next() *Node[V] {
	if p := n.next; n.ring != nil && p != &n.ring.head {
		return p
	}
	return nil
}

// Prev returns the previous node or nil if n is the first node of its ring.
func (n *Node[V]) Prev() *Node[V] {
	if p := n.prev; n.ring != nil && p != &n.ring.head {
		return p
	}
	return nil
}

// Linked reports whether n belongs to a ring.
func (n *Node[V]) Linked() bool {
	return n.ring != nil
}

// link inserts s after n.
func (n *Node[V]) link(s *Node[V]) {
	next := n.next
	n.next = s
	s.prev = n
	next.prev = s
	s.next = next
}

// unlink closes the gap left by n. The node keeps its ring.
func (n *Node[V]) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
}
