package ringlist

// Cursor walks the nodes of a ring in one direction.
//
// The position following a node is fetched before the node is yielded, so the
// yielded node may be removed from the ring or moved within it before the next
// call. Removing the prefetched node invalidates the cursor unless it is
// repositioned with Seek.
type Cursor[V any] struct {
	ring     *Ring[V]
	next     *Node[V]
	backward bool
}

// Cursor returns a cursor walking from the front to the back of the ring.
func (r *Ring[V]) Cursor() *Cursor[V] {
	return &Cursor[V]{
		ring: r,
		next: r.Front(),
	}
}

// ReverseCursor returns a cursor walking from the back to the front of the ring.
func (r *Ring[V]) ReverseCursor() *Cursor[V] {
	return &Cursor[V]{
		ring:     r,
		next:     r.Back(),
		backward: true,
	}
}

// Next yields the current node and advances the cursor.
// It returns nil when the walk reached the sentinel.
func (c *Cursor[V]) Next() *Node[V] {
	n := c.next
	if n == nil {
		return nil
	}

	if n.ring != c.ring {
		panic("ringlist: cursor invalidated")
	}

	if c.backward {
		c.next = n.Prev()
	} else {
		c.next = n.Next()
	}

	return n
}

// Peek returns the node the next call to Next yields, or nil.
func (c *Cursor[V]) Peek() *Node[V] {
	return c.next
}

// Seek positions the cursor so that the next call to Next yields n.
// A nil n ends the walk.
func (c *Cursor[V]) Seek(n *Node[V]) {
	if n != nil {
		c.ring.mustOwn(n)
	}
	c.next = n
}
