package lqueue

import (
	"github.com/mgnsk/lqueue/ringlist"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Swap swaps every two adjacent elements. An odd last element stays in place.
func (q *Queue) Swap() {
	if !q.valid() {
		return
	}

	c := q.ring.Cursor()
	for first := c.Next(); first != nil; first = c.Next() {
		second := c.Next()
		if second == nil {
			return
		}

		q.ring.MoveBefore(second, first)
	}
}

// Reverse reverses the order of the elements.
func (q *Queue) Reverse() {
	if !q.valid() {
		return
	}

	c := q.ring.Cursor()
	for n := c.Next(); n != nil; n = c.Next() {
		q.ring.MoveToFront(n)
	}
}

// ReverseK reverses the elements in consecutive groups of k.
// A final group of fewer than k elements keeps its order.
//
// k must be in range [2, Size()].
func (q *Queue) ReverseK(k int) error {
	if !q.valid() {
		return ErrInvalidQueue
	}

	size := q.ring.Len()
	if k < 2 || k > size {
		err := errors.Wrapf(ErrInvalidArgument, "group size %d for %d elements", k, size)
		q.logger().WithFields(logrus.Fields{
			"op": "reverse_k",
			"k":  k,
		}).WithError(err).Debug("invalid group size")
		return err
	}

	c := q.ring.Cursor()

	// anchor is the last node of the previous reversed group, nil for the sentinel.
	var anchor *ringlist.Node[*Element]

	for groups := size / k; groups > 0; groups-- {
		first := c.Next()

		for i := 1; i < k; i++ {
			n := c.Next()
			if anchor == nil {
				q.ring.MoveToFront(n)
			} else {
				q.ring.MoveAfter(n, anchor)
			}
		}

		anchor = first
	}

	return nil
}
