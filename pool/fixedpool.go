// File: pool/fixedpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Generic fixed-capacity object pool. Composes a one-shot backing store
// with a free set and performs in-place construction/destruction of T
// values inside the single granted region.

package pool

import (
	"fmt"
	"unsafe"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/control"
)

// Fixed is a fixed-capacity pool of T values backed by one contiguous
// region. Addresses returned by Construct are stable until the value is
// destroyed. Fixed performs no internal synchronization; see api.FixedPool.
type Fixed[T any] struct {
	alloc      api.Allocator
	ownedStore *StaticStore

	region    []byte
	base      unsafe.Pointer
	footprint uintptr
	capacity  int

	free freeSet
	live []uint64 // occupancy bitmap, drives teardown scans
	gens []uint32 // bumped on every release, backs stale-handle detection

	inUse       int
	constructed int64
	destroyed   int64
	closed      bool

	dtor    func(*T)
	tracer  api.LifecycleTracer
	metrics *control.MetricsRegistry
}

// New creates a pool with room for exactly capacity values of T. Unless
// WithAllocator overrides it, the pool reserves its own StaticStore sized
// at capacity*footprint and consumes its single grant immediately; no
// further memory request is ever made.
func New[T any](capacity int, opts ...Option[T]) (*Fixed[T], error) {
	if capacity <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "pool capacity must be positive").
			WithContext("capacity", capacity)
	}
	footprint, align := footprintOf[T]()
	cfg := defaultConfig[T]()
	for _, opt := range opts {
		opt(&cfg)
	}

	need := capacity * footprint
	alloc := cfg.alloc
	var owned *StaticStore
	if alloc == nil {
		st, err := NewStaticStore(need, align)
		if err != nil {
			return nil, err
		}
		alloc = st
		owned = st
	}

	region, err := alloc.Malloc(need)
	if err != nil {
		if owned != nil {
			owned.Close()
		}
		return nil, api.NewError(api.ErrCodeExhausted, "backing store refused initial grant").
			WithContext("requested", need).
			WithContext("cause", err.Error())
	}
	// Exact-size granting only: tolerating an over-grant would let slot
	// math run off the end of what the caller believes it reserved.
	if len(region) != need {
		panic(fmt.Sprintf("hioload-pool: allocator granted %d bytes for a %d byte request", len(region), need))
	}
	cfg.tracer.OnGrant(need)

	var free freeSet
	if cfg.fifo {
		free = newFIFOFreeSet(capacity)
	} else {
		free = newStackFreeSet(capacity)
	}

	gens := make([]uint32, capacity)
	for i := range gens {
		gens[i] = 1
	}

	f := &Fixed[T]{
		alloc:      alloc,
		ownedStore: owned,
		region:     region,
		base:       unsafe.Pointer(&region[0]),
		footprint:  uintptr(footprint),
		capacity:   capacity,
		free:       free,
		live:       make([]uint64, (capacity+63)/64),
		gens:       gens,
		dtor:       cfg.dtor,
		tracer:     cfg.tracer,
		metrics:    cfg.metrics,
	}
	f.publishMetrics()
	return f, nil
}

// Construct places a new T into a free slot and returns its address. The
// slot is zeroed before init runs, so init sees a fresh zero value. On
// exhaustion init is never invoked and no slot state changes.
func (f *Fixed[T]) Construct(init func(*T)) (*T, error) {
	slot, err := f.constructSlot(init)
	if err != nil {
		return nil, err
	}
	return f.at(slot), nil
}

// Destroy runs the destructor on a live value and returns its slot to the
// free set. The pointer must have come from Construct on this pool and must
// still be live; where that is detectable, Destroy reports
// api.ErrInvalidPointer instead of corrupting state. Nil must be guarded by
// the caller.
func (f *Fixed[T]) Destroy(p *T) error {
	if f.closed {
		return api.ErrPoolClosed
	}
	slot, ok := f.slotOf(p)
	if !ok {
		return api.ErrInvalidPointer
	}
	f.destroySlot(slot)
	return nil
}

// Close destroys every still-live value exactly once and releases the
// pool's resources. The scan walks the occupancy bitmap, so destruction
// order is slot order, not construction or free-set order; callers must
// not rely on it. Close is idempotent.
func (f *Fixed[T]) Close() error {
	if f.closed {
		return nil
	}
	f.tracer.OnTeardown(f.inUse)
	for slot := 0; slot < f.capacity; slot++ {
		if f.isLive(slot) {
			f.destroySlot(slot)
		}
	}
	f.closed = true
	f.alloc.Free(f.region)
	if f.ownedStore != nil {
		f.ownedStore.Close()
		f.ownedStore = nil
	}
	f.region = nil
	f.base = nil
	return nil
}

// Capacity reports the fixed slot count.
func (f *Fixed[T]) Capacity() int { return f.capacity }

// InUse reports the number of currently live values.
func (f *Fixed[T]) InUse() int { return f.inUse }

// Stats exposes lifecycle accounting.
func (f *Fixed[T]) Stats() api.PoolStats {
	return api.PoolStats{
		Capacity:         f.capacity,
		InUse:            f.inUse,
		Free:             f.capacity - f.inUse,
		TotalConstructed: f.constructed,
		TotalDestroyed:   f.destroyed,
	}
}

// RegisterDebug exposes pool state through a probe registry.
func (f *Fixed[T]) RegisterDebug(name string, dp *control.DebugProbes) {
	dp.RegisterProbe(name, func() any {
		return map[string]any{
			"capacity": f.capacity,
			"in_use":   f.inUse,
			"closed":   f.closed,
		}
	})
}

var _ api.FixedPool[int] = (*Fixed[int])(nil)

// constructSlot acquires a slot, zeroes it and runs init in place.
func (f *Fixed[T]) constructSlot(init func(*T)) (int, error) {
	if f.closed {
		return 0, api.ErrPoolClosed
	}
	slot, ok := f.free.acquireOne()
	if !ok {
		f.metricInc("exhausted")
		return 0, api.ErrPoolExhausted
	}
	f.setLive(slot)
	f.inUse++
	f.constructed++
	p := f.at(slot)
	var zero T
	*p = zero
	if init != nil {
		init(p)
	}
	f.tracer.OnConstruct(slot)
	f.metricInc("construct")
	f.publishMetrics()
	return slot, nil
}

// destroySlot runs the destructor and releases the slot. The slot must be
// live; callers validate first.
func (f *Fixed[T]) destroySlot(slot int) {
	if f.dtor != nil {
		f.dtor(f.at(slot))
	}
	f.clearLive(slot)
	f.gens[slot]++
	f.inUse--
	f.destroyed++
	f.free.releaseOne(slot)
	f.tracer.OnDestroy(slot)
	f.metricInc("destroy")
	f.publishMetrics()
}

// at returns the address of slot's storage inside the region.
func (f *Fixed[T]) at(slot int) *T {
	return (*T)(unsafe.Add(f.base, uintptr(slot)*f.footprint))
}

// slotOf maps a value address back to its slot index, rejecting addresses
// outside the region, misaligned addresses and non-live slots.
func (f *Fixed[T]) slotOf(p *T) (int, bool) {
	off := uintptr(unsafe.Pointer(p)) - uintptr(f.base)
	if off >= uintptr(len(f.region)) {
		return 0, false
	}
	if off%f.footprint != 0 {
		return 0, false
	}
	slot := int(off / f.footprint)
	if !f.isLive(slot) {
		return 0, false
	}
	return slot, true
}

func (f *Fixed[T]) setLive(slot int)   { f.live[slot>>6] |= 1 << (uint(slot) & 63) }
func (f *Fixed[T]) clearLive(slot int) { f.live[slot>>6] &^= 1 << (uint(slot) & 63) }
func (f *Fixed[T]) isLive(slot int) bool {
	return f.live[slot>>6]&(1<<(uint(slot)&63)) != 0
}

func (f *Fixed[T]) metricInc(event string) {
	if f.metrics != nil {
		f.metrics.Inc("pool."+event, 1)
	}
}

func (f *Fixed[T]) publishMetrics() {
	if f.metrics != nil {
		f.metrics.Set("pool.in_use", int64(f.inUse))
	}
}

// footprintOf computes the per-slot stride for T: its size rounded up to
// its alignment, with a minimum of one byte so zero-size types still get
// distinct addresses.
func footprintOf[T any]() (footprint, align int) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	align = int(unsafe.Alignof(zero))
	footprint = (size + align - 1) &^ (align - 1)
	if footprint == 0 {
		footprint = 1
	}
	return footprint, align
}
