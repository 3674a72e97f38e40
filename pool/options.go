// File: pool/options.go
// Package pool defines functional options for Fixed pool initialization.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/control"
)

// Option customizes pool initialization.
type Option[T any] func(*config[T])

type config[T any] struct {
	alloc   api.Allocator
	fifo    bool
	dtor    func(*T)
	tracer  api.LifecycleTracer
	metrics *control.MetricsRegistry
}

func defaultConfig[T any]() config[T] {
	return config[T]{tracer: api.NopTracer{}}
}

// WithAllocator substitutes the backing strategy behind the pool's region.
// The allocator's first successful grant must match the pool's computed
// region size exactly; the pool makes no further requests afterwards.
func WithAllocator[T any](a api.Allocator) Option[T] {
	return func(c *config[T]) {
		c.alloc = a
	}
}

// WithFIFOReuse switches slot reuse from the default most-recently-freed
// order to release order. Callers must not depend on either order.
func WithFIFOReuse[T any]() Option[T] {
	return func(c *config[T]) {
		c.fifo = true
	}
}

// WithDestructor attaches a finalizer run on each value exactly once, at
// Destroy or at Close, whichever comes first.
func WithDestructor[T any](dtor func(*T)) Option[T] {
	return func(c *config[T]) {
		c.dtor = dtor
	}
}

// WithTracer attaches an advisory lifecycle sink.
func WithTracer[T any](tr api.LifecycleTracer) Option[T] {
	return func(c *config[T]) {
		if tr != nil {
			c.tracer = tr
		}
	}
}

// WithMetrics publishes pool counters into a metrics registry.
func WithMetrics[T any](mr *control.MetricsRegistry) Option[T] {
	return func(c *config[T]) {
		c.metrics = mr
	}
}
