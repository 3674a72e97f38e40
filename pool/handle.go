// File: pool/handle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Generation-checked handles. A raw *T returned by Construct dangles
// silently once its slot is destroyed and reused; a Handle carries the
// slot's generation at construction time, so resolving a stale handle
// fails loudly instead of aliasing an unrelated value.

package pool

import "github.com/momentics/hioload-pool/api"

// Handle identifies one constructed value by slot and generation. The zero
// Handle never resolves. Handles are only meaningful on the pool that
// issued them.
type Handle[T any] struct {
	slot int
	gen  uint32
}

// ConstructHandle is Construct returning a Handle instead of a raw address.
func (f *Fixed[T]) ConstructHandle(init func(*T)) (Handle[T], error) {
	slot, err := f.constructSlot(init)
	if err != nil {
		return Handle[T]{}, err
	}
	return Handle[T]{slot: slot, gen: f.gens[slot]}, nil
}

// Resolve returns the address behind h, or api.ErrStaleHandle if the slot
// has been destroyed (and possibly reused) since h was issued.
func (f *Fixed[T]) Resolve(h Handle[T]) (*T, error) {
	if f.closed {
		return nil, api.ErrPoolClosed
	}
	if h.slot < 0 || h.slot >= f.capacity {
		return nil, api.ErrInvalidPointer
	}
	if !f.isLive(h.slot) || f.gens[h.slot] != h.gen {
		return nil, api.ErrStaleHandle
	}
	return f.at(h.slot), nil
}

// DestroyHandle destroys the value behind h. Stale handles are rejected,
// which makes double-destroy through handles detectable, unlike raw
// pointer Destroy.
func (f *Fixed[T]) DestroyHandle(h Handle[T]) error {
	if _, err := f.Resolve(h); err != nil {
		return err
	}
	f.destroySlot(h.slot)
	return nil
}
