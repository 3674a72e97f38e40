//go:build windows
// +build windows

// File: pool/region_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows region reservation via VirtualAlloc. Allocations are page-aligned,
// which satisfies any slot alignment the pool can request. Falls back to a
// pinned heap block if the allocation fails.

package pool

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// reserveRegion commits a region with VirtualAlloc and returns exactly size
// bytes of it plus a release hook that frees the whole allocation.
func reserveRegion(size, align int) ([]byte, func()) {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil || addr == 0 {
		return heapRegion(size, align)
	}
	region := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	release := func() { _ = windows.VirtualFree(addr, 0, windows.MEM_RELEASE) }
	return region, release
}
