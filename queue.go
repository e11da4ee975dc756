/*
Package lqueue implements a string queue over a sentinel-anchored circular doubly linked list,
with in-place deduplication, reversal, chunked reversal, pairwise swap, stable sort,
dominance filtering and k-way merge.

A Queue is not safe for concurrent use.
*/
package lqueue

import (
	"github.com/google/uuid"
	"github.com/mgnsk/lqueue/ringlist"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Queue is a queue of strings.
//
// The zero value is a ready to use empty queue without limits and with a nil ID.
// A Queue must not be copied after first use.
type Queue struct {
	ring  ringlist.Ring[*Element]
	alloc allocator
	log   logrus.FieldLogger
	id    uuid.UUID
	freed bool
}

// New creates an empty queue.
func New(opts ...Option) *Queue {
	o := newDefaultQueueOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	id := uuid.New()

	return &Queue{
		alloc: allocator{
			capacity:    o.capacity,
			maxValueLen: o.maxValueLen,
		},
		log: o.logger.WithField("queue", id.String()),
		id:  id,
	}
}

// ID returns the queue identifier.
func (q *Queue) ID() uuid.UUID {
	if q == nil {
		return uuid.Nil
	}
	return q.id
}

// Free releases every element of the queue and invalidates it.
// Elements previously removed by the caller are not affected.
func (q *Queue) Free() {
	if !q.valid() {
		return
	}

	released := 0
	c := q.ring.Cursor()
	for n := c.Next(); n != nil; n = c.Next() {
		q.delete(n)
		released++
	}

	q.freed = true

	q.logger().WithFields(logrus.Fields{
		"op":       "free",
		"released": released,
	}).Debug("queue freed")
}

// InsertHead inserts a copy of s at the head of the queue.
// On failure the queue is left unchanged.
func (q *Queue) InsertHead(s string) error {
	e, err := q.newElement("insert_head", s)
	if err != nil {
		return err
	}

	q.ring.PushFront(&e.node)

	return nil
}

// InsertTail inserts a copy of s at the tail of the queue.
// On failure the queue is left unchanged.
func (q *Queue) InsertTail(s string) error {
	e, err := q.newElement("insert_tail", s)
	if err != nil {
		return err
	}

	q.ring.PushBack(&e.node)

	return nil
}

// RemoveHead unlinks the head element and returns it.
//
// If sp is not empty, the value is copied into it, truncated to len(sp)-1 bytes
// and terminated with a zero byte. The caller owns the returned element and
// should Release it.
func (q *Queue) RemoveHead(sp []byte) (*Element, error) {
	if !q.valid() {
		return nil, ErrInvalidQueue
	}

	n := q.ring.Front()
	if n == nil {
		return nil, errors.Wrap(ErrEmptyQueue, "remove head")
	}

	return q.take(n, sp), nil
}

// RemoveTail unlinks the tail element and returns it.
//
// sp is handled like in RemoveHead.
func (q *Queue) RemoveTail(sp []byte) (*Element, error) {
	if !q.valid() {
		return nil, ErrInvalidQueue
	}

	n := q.ring.Back()
	if n == nil {
		return nil, errors.Wrap(ErrEmptyQueue, "remove tail")
	}

	return q.take(n, sp), nil
}

// Size returns the number of elements. It walks the queue.
func (q *Queue) Size() int {
	if !q.valid() {
		return 0
	}
	return q.ring.Len()
}

// IsEmpty reports whether the queue has no elements.
func (q *Queue) IsEmpty() bool {
	return !q.valid() || q.ring.Empty()
}

// IsSingular reports whether the queue has exactly one element.
func (q *Queue) IsSingular() bool {
	return q.valid() && q.ring.Singular()
}

// Front returns the head element or nil.
func (q *Queue) Front() *Element {
	if !q.valid() {
		return nil
	}
	return value(q.ring.Front())
}

// Back returns the tail element or nil.
func (q *Queue) Back() *Element {
	if !q.valid() {
		return nil
	}
	return value(q.ring.Back())
}

// Do calls function f on each element of the queue, from head to tail.
// If f returns false, Do stops the iteration.
// f must not change q.
func (q *Queue) Do(f func(e *Element) bool) {
	if !q.valid() {
		return
	}

	q.ring.Do(func(n *ringlist.Node[*Element]) bool {
		return f(n.Value)
	})
}

// Values returns the element values from head to tail.
func (q *Queue) Values() []string {
	var values []string

	q.Do(func(e *Element) bool {
		values = append(values, e.Value)
		return true
	})

	return values
}

// logger returns the queue logger, creating a silent one for a zero value queue.
func (q *Queue) logger() logrus.FieldLogger {
	if q.log == nil {
		q.log = newDefaultQueueOptions().logger.WithField("queue", q.id.String())
	}
	return q.log
}

func (q *Queue) valid() bool {
	return q != nil && !q.freed
}

func (q *Queue) newElement(op, s string) (*Element, error) {
	if !q.valid() {
		return nil, ErrInvalidQueue
	}

	e, err := q.alloc.alloc(s)
	if err != nil {
		q.logger().WithField("op", op).WithError(err).Debug("insert failed")
		return nil, err
	}

	return e, nil
}

// take unlinks n and hands its element to the caller.
func (q *Queue) take(n *ringlist.Node[*Element], sp []byte) *Element {
	q.ring.Remove(n)

	e := n.Value
	if len(sp) > 0 {
		k := copy(sp[:len(sp)-1], e.Value)
		sp[k] = 0
	}

	return e
}

// delete unlinks n and releases its element.
func (q *Queue) delete(n *ringlist.Node[*Element]) {
	q.ring.Remove(n)
	n.Value.Release()
}

func value(n *ringlist.Node[*Element]) *Element {
	if n == nil {
		return nil
	}
	return n.Value
}
