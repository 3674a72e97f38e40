//go:build !linux && !windows
// +build !linux,!windows

// File: pool/region_stub.go
// Author: momentics <momentics@gmail.com>
//
// Heap-backed region reservation for platforms without direct OS support.

package pool

func reserveRegion(size, align int) ([]byte, func()) {
	return heapRegion(size, align)
}
