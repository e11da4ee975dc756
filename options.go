package lqueue

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option is a queue configuration option.
type Option interface {
	apply(*queueOptions)
}

type queueOptions struct {
	logger      logrus.FieldLogger
	capacity    int
	maxValueLen int
}

func newDefaultQueueOptions() queueOptions {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return queueOptions{
		logger:      logger,
		capacity:    0,
		maxValueLen: 0,
	}
}

// WithCapacity option limits the number of live elements the queue may allocate.
// Removed elements count against the limit until they are released.
//
// The zero value configures unbounded capacity.
func WithCapacity(capacity int) Option {
	if capacity < 0 {
		panic("lqueue: invalid capacity")
	}

	return funcOption(func(opts *queueOptions) {
		opts.capacity = capacity
	})
}

// WithMaxValueLen option limits the size in bytes of a single value buffer.
//
// The zero value configures unbounded values.
func WithMaxValueLen(n int) Option {
	if n < 0 {
		panic("lqueue: invalid value length")
	}

	return funcOption(func(opts *queueOptions) {
		opts.maxValueLen = n
	})
}

// WithLogger option configures the queue logger.
//
// By default nothing is logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return funcOption(func(opts *queueOptions) {
		if logger != nil {
			opts.logger = logger
		}
	})
}

type funcOption func(*queueOptions)

func (o funcOption) apply(opts *queueOptions) {
	o(opts)
}
