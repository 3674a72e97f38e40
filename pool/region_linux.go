//go:build linux
// +build linux

// File: pool/region_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux region reservation via anonymous mmap. Mappings are page-aligned,
// which satisfies any slot alignment the pool can request. Falls back to a
// pinned heap block if the mapping fails.

package pool

import (
	"golang.org/x/sys/unix"
)

// reserveRegion maps a private anonymous region and returns exactly size
// bytes of it plus a release hook that unmaps the whole mapping.
func reserveRegion(size, align int) ([]byte, func()) {
	mapped, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return heapRegion(size, align)
	}
	release := func() { _ = unix.Munmap(mapped) }
	return mapped[:size:size], release
}
