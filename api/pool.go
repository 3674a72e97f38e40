// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity object pool contract: in-place construction and
// destruction over a single pre-reserved memory region.

package api

// PoolStats aggregates lifecycle accounting for a fixed pool.
type PoolStats struct {
	Capacity         int
	InUse            int
	Free             int
	TotalConstructed int64
	TotalDestroyed   int64
}

// FixedPool hands out and reclaims instances of T from a single
// contiguous region reserved at pool creation. Capacity never grows and
// a constructed value never moves until it is destroyed.
//
// FixedPool performs no internal synchronization. Callers sharing one
// pool across goroutines must serialize every operation externally.
type FixedPool[T any] interface {
	// Construct places a new T into a free slot and returns its stable
	// address. init, if non-nil, runs in place on the zeroed slot. When
	// no slot is free, Construct returns ErrPoolExhausted and init is
	// never invoked.
	Construct(init func(*T)) (*T, error)

	// Destroy runs the pool's destructor on a live value previously
	// returned by Construct and returns its slot for reuse. The pointer
	// must not be used afterwards. Passing nil is a caller bug; guard
	// before calling.
	Destroy(p *T) error

	// Close destroys every still-live value exactly once, in unspecified
	// order, and retires the pool. Close is idempotent.
	Close() error

	// Capacity reports the fixed number of slots.
	Capacity() int

	// InUse reports the number of currently live values.
	InUse() int

	// Stats exposes lifecycle accounting for observability.
	Stats() PoolStats
}
