// File: api/allocator.go
// Author: momentics <momentics@gmail.com>
//
// Backing-store allocator seam consumed by the pool layer.

package api

// Allocator abstracts the backing strategy behind a pool's memory region.
//
// Pools built on a pluggable allocator may probe Malloc more than once,
// retrying with smaller sizes after a refusal. Implementations decide how
// many grants they are willing to make; a capacity-bounded store grants
// exactly one.
type Allocator interface {
	// Malloc returns a block of exactly size bytes, or an error if the
	// allocator refuses the request. The block's base address must be
	// aligned for the values the caller will place in it; page-granular
	// OS reservations and Go heap blocks both satisfy common types.
	Malloc(size int) ([]byte, error)

	// Free returns a block to the allocator. Stores whose region lifetime
	// is tied to the store itself treat this as a no-op.
	Free(block []byte)
}
