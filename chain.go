package lqueue

import (
	"github.com/mgnsk/lqueue/ringlist"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Chain is an ordered queue of queues.
//
// The zero value is a ready to use empty chain.
type Chain struct {
	ring ringlist.Ring[*Queue]
}

// NewChain creates an empty chain.
func NewChain() *Chain {
	return &Chain{}
}

// Add appends a queue to the chain.
func (c *Chain) Add(q *Queue) error {
	if !q.valid() {
		return ErrInvalidQueue
	}

	for n := c.ring.Front(); n != nil; n = n.Next() {
		if n.Value == q {
			return errors.Wrapf(ErrInvalidArgument, "queue %s already chained", q.id)
		}
	}

	c.ring.PushBack(ringlist.NewNode(q))

	return nil
}

// Len returns the number of queues in the chain.
func (c *Chain) Len() int {
	return c.ring.Len()
}

// First returns the first queue of the chain or nil.
func (c *Chain) First() *Queue {
	if n := c.ring.Front(); n != nil {
		return n.Value
	}
	return nil
}

// Queues returns the chained queues in order.
func (c *Chain) Queues() []*Queue {
	var queues []*Queue

	c.ring.Do(func(n *ringlist.Node[*Queue]) bool {
		queues = append(queues, n.Value)
		return true
	})

	return queues
}

// Free frees every chained queue and empties the chain.
func (c *Chain) Free() {
	c.ring.Do(func(n *ringlist.Node[*Queue]) bool {
		c.ring.Remove(n)
		n.Value.Free()
		return true
	})
}

// Merge merges every chained queue, each sorted in ascending order, into the first queue
// and returns its size. The other queues are left empty and stay in the chain.
//
// For equal values, elements of an earlier queue precede elements of a later queue.
//
// Merged elements are charged to the first queue's capacity and free their slots in
// the queues they came from. If the first queue cannot hold them all, Merge fails with
// ErrAllocation and no queue is changed. Value length limits are not applied again.
func (c *Chain) Merge() (int, error) {
	queues := c.Queues()
	if len(queues) == 0 {
		return 0, errors.Wrap(ErrEmptyQueue, "merge empty chain")
	}

	for _, q := range queues {
		if !q.valid() {
			return 0, ErrInvalidQueue
		}
	}

	first := queues[0]

	if capacity := first.alloc.capacity; capacity > 0 {
		incoming := 0
		for _, q := range queues[1:] {
			q.Do(func(e *Element) bool {
				if e.alloc != &first.alloc {
					incoming++
				}
				return true
			})
		}

		if first.alloc.live+incoming > capacity {
			err := errors.Wrapf(ErrAllocation, "merging %d elements exceeds budget of %d", incoming, capacity)
			first.logger().WithField("op", "merge").WithError(err).Debug("merge failed")
			return 0, err
		}
	}

	for step := 1; step < len(queues); step *= 2 {
		for i := 0; i+step < len(queues); i += 2 * step {
			mergeRings(&queues[i].ring, &queues[i+step].ring, true)
		}
	}

	size := 0
	first.ring.Do(func(n *ringlist.Node[*Element]) bool {
		first.alloc.adopt(n.Value)
		size++
		return true
	})

	first.logger().WithFields(logrus.Fields{
		"op":     "merge",
		"queues": len(queues),
		"size":   size,
	}).Debug("chain merged")

	return size, nil
}
