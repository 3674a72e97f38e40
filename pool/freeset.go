// File: pool/freeset.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Free-slot bookkeeping for FixedPool. Both policies give O(1) amortized
// acquire/release; callers must not depend on reuse order, which is an
// internal detail of the chosen policy.

package pool

import (
	"fmt"

	"github.com/eapache/queue"
)

// freeSet tracks which slot indices are free.
type freeSet interface {
	// acquireOne removes and returns one free index; ok is false when the
	// set is empty.
	acquireOne() (slot int, ok bool)

	// releaseOne inserts index back into the set. The index must currently
	// be occupied; releasing a free index means the pool's bookkeeping is
	// corrupt, and implementations panic rather than continue.
	releaseOne(slot int)

	// size reports the number of free indices.
	size() int
}

// stackFreeSet reuses the most recently freed slot first, which keeps hot
// slots hot in cache. Default policy.
type stackFreeSet struct {
	idx []int
}

func newStackFreeSet(capacity int) *stackFreeSet {
	s := &stackFreeSet{idx: make([]int, capacity)}
	// Initial pop order is highest-index-first; callers see only "some
	// free slot" either way.
	for i := range s.idx {
		s.idx[i] = capacity - 1 - i
	}
	return s
}

func (s *stackFreeSet) acquireOne() (int, bool) {
	n := len(s.idx)
	if n == 0 {
		return 0, false
	}
	slot := s.idx[n-1]
	s.idx = s.idx[:n-1]
	return slot, true
}

func (s *stackFreeSet) releaseOne(slot int) {
	if len(s.idx) == cap(s.idx) {
		panic(fmt.Sprintf("hioload-pool: release of slot %d would exceed capacity %d", slot, cap(s.idx)))
	}
	s.idx = append(s.idx, slot)
}

func (s *stackFreeSet) size() int { return len(s.idx) }

// fifoFreeSet cycles through all slots in release order, spreading reuse
// evenly across the region.
type fifoFreeSet struct {
	q        *queue.Queue
	capacity int
}

func newFIFOFreeSet(capacity int) *fifoFreeSet {
	f := &fifoFreeSet{q: queue.New(), capacity: capacity}
	for i := 0; i < capacity; i++ {
		f.q.Add(i)
	}
	return f
}

func (f *fifoFreeSet) acquireOne() (int, bool) {
	if f.q.Length() == 0 {
		return 0, false
	}
	return f.q.Remove().(int), true
}

func (f *fifoFreeSet) releaseOne(slot int) {
	if f.q.Length() == f.capacity {
		panic(fmt.Sprintf("hioload-pool: release of slot %d would exceed capacity %d", slot, f.capacity))
	}
	f.q.Add(slot)
}

func (f *fifoFreeSet) size() int { return f.q.Length() }
