// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "github.com/momentics/hioload-pool/api"

// RecordingTracer captures lifecycle events for assertions in tests.
type RecordingTracer struct {
	Grants     []int
	Constructs []int
	Destroys   []int
	Teardowns  []int
}

func (r *RecordingTracer) OnGrant(size int)     { r.Grants = append(r.Grants, size) }
func (r *RecordingTracer) OnConstruct(slot int) { r.Constructs = append(r.Constructs, slot) }
func (r *RecordingTracer) OnDestroy(slot int)   { r.Destroys = append(r.Destroys, slot) }
func (r *RecordingTracer) OnTeardown(live int)  { r.Teardowns = append(r.Teardowns, live) }

var _ api.LifecycleTracer = (*RecordingTracer)(nil)
