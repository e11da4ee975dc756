/*
Package ringlist implements a circular doubly linked list anchored by a sentinel node.

The sentinel never carries a value and is never handed out: Front, Back, Next and Prev
return nil where the ring would reach it.
*/
package ringlist

// Ring is a circular doubly linked list.
//
// The zero value is a ready to use empty ring. A Ring must not be copied after first use.
type Ring[V any] struct {
	head Node[V]
}

// New creates an empty ring.
func New[V any]() *Ring[V] {
	r := &Ring[V]{}
	r.lazyInit()
	return r
}

func (r *Ring[V]) lazyInit() {
	if r.head.next == nil {
		r.head.next = &r.head
		r.head.prev = &r.head
	}
}

// Empty reports whether the ring has no nodes.
func (r *Ring[V]) Empty() bool {
	return r.head.next == nil || r.head.next == &r.head
}

// Singular reports whether the ring has exactly one node.
func (r *Ring[V]) Singular() bool {
	return !r.Empty() && r.head.next == r.head.prev
}

// Len returns the number of nodes in the ring. It walks the ring.
func (r *Ring[V]) Len() int {
	if r.Empty() {
		return 0
	}

	n := 0
	for p := r.head.next; p != &r.head; p = p.next {
		n++
	}

	return n
}

// Front returns the first node of the ring or nil.
func (r *Ring[V]) Front() *Node[V] {
	if r.Empty() {
		return nil
	}
	return r.head.next
}

// Back returns the last node of the ring or nil.
func (r *Ring[V]) Back() *Node[V] {
	if r.Empty() {
		return nil
	}
	return r.head.prev
}

// PushFront links an unlinked node right after the sentinel.
func (r *Ring[V]) PushFront(n *Node[V]) {
	r.lazyInit()
	r.insert(n, &r.head)
}

// PushBack links an unlinked node right before the sentinel.
func (r *Ring[V]) PushBack(n *Node[V]) {
	r.lazyInit()
	r.insert(n, r.head.prev)
}

// InsertAfter links an unlinked node right after mark.
func (r *Ring[V]) InsertAfter(n, mark *Node[V]) {
	r.mustOwn(mark)
	r.insert(n, mark)
}

// InsertBefore links an unlinked node right before mark.
func (r *Ring[V]) InsertBefore(n, mark *Node[V]) {
	r.mustOwn(mark)
	r.insert(n, mark.prev)
}

// Remove unlinks a node from the ring.
func (r *Ring[V]) Remove(n *Node[V]) {
	r.mustOwn(n)
	n.unlink()
	n.ring = nil
}

// MoveAfter moves a node to its new position after mark.
// If mark == r.Back(), n becomes the new back node.
func (r *Ring[V]) MoveAfter(n, mark *Node[V]) {
	r.mustOwn(n)
	r.mustOwn(mark)

	if n == mark || mark.next == n {
		return
	}

	n.unlink()
	mark.link(n)
}

// MoveBefore moves a node to its new position before mark.
// If mark == r.Front(), n becomes the new front node.
func (r *Ring[V]) MoveBefore(n, mark *Node[V]) {
	r.mustOwn(n)
	r.mustOwn(mark)

	if n == mark || mark.prev == n {
		return
	}

	n.unlink()
	mark.prev.link(n)
}

// MoveToFront moves a node to the front of the ring.
func (r *Ring[V]) MoveToFront(n *Node[V]) {
	r.mustOwn(n)

	if r.head.next == n {
		return
	}

	n.unlink()
	r.head.link(n)
}

// MoveToBack moves a node to the back of the ring.
func (r *Ring[V]) MoveToBack(n *Node[V]) {
	r.mustOwn(n)

	if r.head.prev == n {
		return
	}

	n.unlink()
	r.head.prev.link(n)
}

// SpliceBack moves all nodes of other to the back of r, keeping their order.
// other is left empty.
func (r *Ring[V]) SpliceBack(other *Ring[V]) {
	if other == r || other.Empty() {
		return
	}

	r.lazyInit()

	for p := other.head.next; p != &other.head; p = p.next {
		p.ring = r
	}

	first := other.head.next
	last := other.head.prev
	at := r.head.prev

	at.next = first
	first.prev = at
	last.next = &r.head
	r.head.prev = last

	other.head.next = &other.head
	other.head.prev = &other.head
}

// CutFront moves the nodes from the front of r up to and including n
// into the empty ring dst, keeping their order.
func (r *Ring[V]) CutFront(dst *Ring[V], n *Node[V]) {
	r.mustOwn(n)

	if !dst.Empty() {
		panic("ringlist: cut into non-empty ring")
	}

	dst.lazyInit()

	first := r.head.next
	for p := first; ; p = p.next {
		p.ring = dst
		if p == n {
			break
		}
	}

	rest := n.next
	r.head.next = rest
	rest.prev = &r.head

	dst.head.next = first
	first.prev = &dst.head
	dst.head.prev = n
	n.next = &dst.head
}

// Do calls function f on each node of the ring, in forward order.
// If f returns false, Do stops the iteration.
// f may remove or move the node it was called with, but no other node.
func (r *Ring[V]) Do(f func(n *Node[V]) bool) {
	c := r.Cursor()
	for n := c.Next(); n != nil; n = c.Next() {
		if !f(n) {
			return
		}
	}
}

func (r *Ring[V]) insert(n, at *Node[V]) {
	if n.ring != nil {
		panic("ringlist: node already linked")
	}

	at.link(n)
	n.ring = r
}

func (r *Ring[V]) mustOwn(n *Node[V]) {
	if n == nil || n.ring != r {
		panic("ringlist: invalid element")
	}
}
