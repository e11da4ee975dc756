package lqueue

import "github.com/pkg/errors"

// DeleteMid deletes the element at index Size()/2, counting from the head.
// For an even number of elements that is the second of the two middle elements.
func (q *Queue) DeleteMid() error {
	if !q.valid() {
		return ErrInvalidQueue
	}

	slow := q.ring.Front()
	if slow == nil {
		return errors.Wrap(ErrEmptyQueue, "delete middle")
	}

	for fast := slow; fast != nil && fast.Next() != nil; fast = fast.Next().Next() {
		slow = slow.Next()
	}

	q.delete(slow)

	return nil
}

// DeleteDup deletes every element that belongs to a run of two or more consecutive
// equal values. On a sorted queue only the values occurring exactly once remain.
// It returns the number of deleted elements.
func (q *Queue) DeleteDup() (int, error) {
	if !q.valid() {
		return 0, ErrInvalidQueue
	}

	if q.ring.Empty() {
		return 0, errors.Wrap(ErrEmptyQueue, "delete duplicates")
	}

	removed := 0
	c := q.ring.Cursor()

	for n := c.Next(); n != nil; n = c.Next() {
		dup := false

		for p := c.Peek(); p != nil && p.Value.Value == n.Value.Value; p = c.Peek() {
			c.Next()
			q.delete(p)
			removed++
			dup = true
		}

		if dup {
			q.delete(n)
			removed++
		}
	}

	return removed, nil
}

// Descend deletes every element that has an element with a strictly greater
// numeric value anywhere to its right. It returns the number of remaining elements.
//
// Values are parsed as base-10 integers, see ParseInt.
func (q *Queue) Descend() int {
	return q.dropDominated(func(v, best int64) bool {
		return v < best
	})
}

// Ascend deletes every element that has an element with a strictly smaller
// numeric value anywhere to its right. It returns the number of remaining elements.
func (q *Queue) Ascend() int {
	return q.dropDominated(func(v, best int64) bool {
		return v > best
	})
}

// dropDominated walks from the tail to the head, tracking the best value seen so far.
func (q *Queue) dropDominated(dominated func(v, best int64) bool) int {
	if !q.valid() {
		return 0
	}

	c := q.ring.ReverseCursor()

	n := c.Next()
	if n == nil {
		return 0
	}

	best := ParseInt(n.Value.Value)
	kept := 1

	for n = c.Next(); n != nil; n = c.Next() {
		v := ParseInt(n.Value.Value)
		if dominated(v, best) {
			q.delete(n)
			continue
		}

		best = v
		kept++
	}

	return kept
}
