package lqueue

import (
	"strings"

	"github.com/mgnsk/lqueue/ringlist"
	"github.com/pkg/errors"
)

// Element is a queue element holding an owned string value.
type Element struct {
	node  ringlist.Node[*Element]
	alloc *allocator
	Value string
}

// Release releases a removed element. It panics if the element is still linked into a queue.
// Releasing an element twice is a no-op.
func (e *Element) Release() {
	if e.node.Linked() {
		panic("lqueue: release of a linked element")
	}

	if e.alloc != nil {
		e.alloc.live--
		e.alloc = nil
	}

	e.Value = ""
}

// allocator hands out elements within an optional budget.
type allocator struct {
	capacity    int
	maxValueLen int
	live        int
}

func (a *allocator) alloc(s string) (*Element, error) {
	if a.capacity > 0 && a.live >= a.capacity {
		return nil, errors.Wrapf(ErrAllocation, "element budget of %d exhausted", a.capacity)
	}

	if a.maxValueLen > 0 && len(s) > a.maxValueLen {
		return nil, errors.Wrapf(ErrAllocation, "value of %d bytes exceeds buffer limit of %d", len(s), a.maxValueLen)
	}

	e := &Element{
		alloc: a,
		Value: strings.Clone(s),
	}
	e.node.Value = e
	a.live++

	return e, nil
}

// Next returns the next element or nil.
func (e *Element) Next() *Element {
	return value(e.node.Next())
}

// Prev returns the previous element or nil.
func (e *Element) Prev() *Element {
	return value(e.node.Prev())
}

// adopt charges e to a and returns its slot to the allocator it came from.
func (a *allocator) adopt(e *Element) {
	if e.alloc == a {
		return
	}

	if e.alloc != nil {
		e.alloc.live--
	}

	e.alloc = a
	a.live++
}
