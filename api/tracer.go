// Package api
// Author: momentics <momentics@gmail.com>
//
// Advisory lifecycle tracing contract. Tracers observe pool events but
// never influence functional behavior or return values.

package api

// LifecycleTracer receives pool lifecycle events as they happen.
// Implementations must be cheap; they run synchronously on the hot path.
type LifecycleTracer interface {
	// OnGrant fires once when the backing store hands out its region.
	OnGrant(size int)

	// OnConstruct fires after a value is placed into slot.
	OnConstruct(slot int)

	// OnDestroy fires after a value in slot is destroyed.
	OnDestroy(slot int)

	// OnTeardown fires when Close begins, with the number of still-live
	// values about to be destroyed.
	OnTeardown(live int)
}

// NopTracer discards all events. It is the default tracer.
type NopTracer struct{}

func (NopTracer) OnGrant(int)     {}
func (NopTracer) OnConstruct(int) {}
func (NopTracer) OnDestroy(int)   {}
func (NopTracer) OnTeardown(int)  {}

var _ LifecycleTracer = NopTracer{}
