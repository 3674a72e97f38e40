// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "github.com/momentics/hioload-pool/api"

// HeapAllocator grants any number of heap-backed blocks. It exercises the
// allocator seam with the opposite policy of the one-shot static store.
type HeapAllocator struct {
	Mallocs int
	Frees   int
}

func (h *HeapAllocator) Malloc(size int) ([]byte, error) {
	h.Mallocs++
	return make([]byte, size), nil
}

func (h *HeapAllocator) Free(_ []byte) { h.Frees++ }

var _ api.Allocator = (*HeapAllocator)(nil)

// RefusingAllocator fails every request, for exercising grant-failure paths.
type RefusingAllocator struct{}

func (RefusingAllocator) Malloc(int) ([]byte, error) { return nil, api.ErrStoreExhausted }
func (RefusingAllocator) Free([]byte)                {}

var _ api.Allocator = RefusingAllocator{}
