// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// pool_scenario_test.go — End-to-end walk through the canonical
// capacity-six lifecycle: fill, overflow, drain, reuse, teardown.
package tests

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/pool"
)

type item struct {
	id int64
}

// TestPoolScenario_CapacitySix mirrors the canonical driver sequence:
// six constructions succeed with distinct addresses, attempts seven and
// eight fail without side effects, a full drain restores the pool, and
// three more constructions reuse freed slots.
func TestPoolScenario_CapacitySix(t *testing.T) {
	const capacity = 6
	p, err := pool.New[item](capacity)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	addrs := make(map[*item]bool)
	var live []*item
	for id := int64(1); id <= capacity; id++ {
		v, err := p.Construct(func(it *item) { it.id = id })
		if err != nil {
			t.Fatalf("construct %d: %v", id, err)
		}
		if addrs[v] {
			t.Fatalf("duplicate live address %p", v)
		}
		addrs[v] = true
		live = append(live, v)
	}

	for id := int64(7); id <= 8; id++ {
		if _, err := p.Construct(func(it *item) { it.id = id }); !errors.Is(err, api.ErrPoolExhausted) {
			t.Fatalf("construct %d on full pool: err = %v, want ErrPoolExhausted", id, err)
		}
		if p.InUse() != capacity {
			t.Fatalf("InUse = %d after failed construct, want %d", p.InUse(), capacity)
		}
	}

	for _, v := range live {
		if err := p.Destroy(v); err != nil {
			t.Fatalf("destroy: %v", err)
		}
	}
	if p.InUse() != 0 {
		t.Fatalf("InUse = %d after drain, want 0", p.InUse())
	}

	// Reuse: new values land somewhere in the previously granted region;
	// which freed slot each takes is unspecified.
	for id := int64(9); id <= 11; id++ {
		v, err := p.Construct(func(it *item) { it.id = id })
		if err != nil {
			t.Fatalf("reuse construct %d: %v", id, err)
		}
		if !addrs[v] {
			t.Errorf("reused value at %p is outside the original slot set", v)
		}
		if v.id != id {
			t.Errorf("reused slot id = %d, want %d", v.id, id)
		}
	}
	if p.InUse() != 3 {
		t.Errorf("InUse = %d, want 3", p.InUse())
	}
}

// TestPoolScenario_StatsAccounting cross-checks Stats against the same
// sequence.
func TestPoolScenario_StatsAccounting(t *testing.T) {
	p, err := pool.New[item](6)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	var live []*item
	for i := 0; i < 6; i++ {
		v, _ := p.Construct(nil)
		live = append(live, v)
	}
	_, _ = p.Construct(nil)
	_, _ = p.Construct(nil)
	for _, v := range live {
		_ = p.Destroy(v)
	}
	for i := 0; i < 3; i++ {
		_, _ = p.Construct(nil)
	}

	s := p.Stats()
	want := api.PoolStats{
		Capacity:         6,
		InUse:            3,
		Free:             3,
		TotalConstructed: 9,
		TotalDestroyed:   6,
	}
	if s != want {
		t.Errorf("Stats = %+v, want %+v", s, want)
	}
}
