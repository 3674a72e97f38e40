// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity, address-stable object pooling over a single pre-reserved
// memory region. The pool never grows past its configured capacity, never
// relocates a live value, and never touches a general-purpose allocator
// after setup. See store.go for the one-shot backing store, freeset.go for
// slot bookkeeping, and fixedpool.go for construct/destroy logic.
//
// Values are stored off the Go heap (mmap on Linux, VirtualAlloc on
// Windows, a pinned heap block elsewhere), so pooled types must not hold
// references into the Go heap: no pointers, maps, slices, channels or
// strings. Plain value types (ints, floats, arrays, nested pointer-free
// structs) are safe.
package pool
