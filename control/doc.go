// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for hioload-pool.
// Pools publish lifecycle counters into a MetricsRegistry and expose
// state snapshots through DebugProbes; both are advisory and never
// influence pool behavior.
package control
