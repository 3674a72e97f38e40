// File: pool/store.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// One-shot capacity-bounded backing store. Reserves a single contiguous
// region at creation and grants it exactly once through the api.Allocator
// seam; all later requests are refused regardless of size.

package pool

import (
	"fmt"
	"unsafe"

	"github.com/momentics/hioload-pool/api"
)

// storeState is the grant state machine of a StaticStore.
// The only transition is storeUnset -> storeGranted.
type storeState uint8

const (
	storeUnset storeState = iota
	storeGranted
)

// StaticStore is an api.Allocator backed by one fixed-size region with the
// same lifetime as the store itself. Grant state is owned per instance, so
// independent pools never interfere with each other's one-shot protocol.
type StaticStore struct {
	region  []byte
	state   storeState
	release func()
}

// NewStaticStore reserves a region of exactly size bytes whose base address
// is aligned to align (a power of two no larger than a page).
func NewStaticStore(size, align int) (*StaticStore, error) {
	if size <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "static store size must be positive").
			WithContext("size", size)
	}
	if align <= 0 || align&(align-1) != 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "alignment must be a positive power of two").
			WithContext("align", align)
	}
	region, release := reserveRegion(size, align)
	return &StaticStore{region: region, release: release}, nil
}

// Malloc implements the one-shot grant protocol. The very first request
// must ask for exactly the reserved size; a mismatch means the caller and
// the store were configured inconsistently, and continuing would risk
// corruption, so Malloc panics. Any request after the grant fails with
// api.ErrStoreExhausted, even when asking for less: allocator clients may
// probe with shrinking sizes after a refusal, and the store must hold its
// single-grant invariant against every probe.
func (s *StaticStore) Malloc(size int) ([]byte, error) {
	if s.state != storeUnset {
		return nil, api.ErrStoreExhausted
	}
	if size != len(s.region) {
		panic(fmt.Sprintf("hioload-pool: static store reserved %d bytes but first grant requested %d",
			len(s.region), size))
	}
	s.state = storeGranted
	return s.region, nil
}

// Free acknowledges the block but does nothing: the region's lifetime is
// tied to the store, not to the grant.
func (s *StaticStore) Free(_ []byte) {}

// Size reports the reserved region length in bytes. It never changes.
func (s *StaticStore) Size() int { return len(s.region) }

// Granted reports whether the single grant has been consumed.
func (s *StaticStore) Granted() bool { return s.state == storeGranted }

// Close returns the region to the operating system. The store must not be
// used afterwards.
func (s *StaticStore) Close() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
	s.region = nil
}

var _ api.Allocator = (*StaticStore)(nil)

// heapRegion reserves an aligned region on the Go heap. Platform files use
// it as the fallback when direct OS reservation fails.
func heapRegion(size, align int) ([]byte, func()) {
	raw := make([]byte, size+align)
	base := uintptr(unsafe.Pointer(&raw[0]))
	off := 0
	if rem := int(base & uintptr(align-1)); rem != 0 {
		off = align - rem
	}
	// The subslice keeps raw's backing array alive; nothing to release.
	return raw[off : off+size : off+size], nil
}
