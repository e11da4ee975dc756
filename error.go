package lqueue

import "github.com/pkg/errors"

var (
	// ErrAllocation indicates that an element or its value buffer could not be allocated.
	ErrAllocation = errors.New("allocation failed")
	// ErrEmptyQueue indicates that an operation requires at least one element.
	ErrEmptyQueue = errors.New("queue is empty")
	// ErrInvalidQueue indicates a nil or freed queue.
	ErrInvalidQueue = errors.New("invalid queue")
	// ErrInvalidArgument indicates an argument out of the accepted range.
	ErrInvalidArgument = errors.New("invalid argument")
)
