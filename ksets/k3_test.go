// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksets

import "testing"

func TestNewK3RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultK3Config()
	cfg.NumUnits = 0
	if _, err := NewK3(cfg, 0); err == nil {
		t.Fatal("expected error constructing K3 with zero units")
	}
}

func TestNewK3BuildsFullTopology(t *testing.T) {
	cfg := DefaultK3Config()
	cfg.NumUnits = 3
	k3, err := NewK3(cfg, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(k3.pg) != 3 || k3.ob.Len() != 3 {
		t.Fatalf("expected 3 PG channels and 3 OB units, got %d PG, %d OB", len(k3.pg), k3.ob.Len())
	}
	if len(k3.aon.PrimaryNode().Inbound()) == 0 {
		t.Fatal("AON primary node should have inbound connections from OB")
	}
	if len(k3.DPC().Inbound()) == 0 {
		t.Fatal("DPC should have an inbound connection from PC")
	}
}

func TestK3PresentRejectsWrongPatternSize(t *testing.T) {
	cfg := DefaultK3Config()
	cfg.NumUnits = 3
	k3, err := NewK3(cfg, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := k3.Present(10, []Num{1, 0}); err == nil {
		t.Fatal("expected error presenting a pattern of the wrong length")
	}
}

func TestK3DeterministicWithFixedSeed(t *testing.T) {
	cfg := DefaultK3Config()
	cfg.NumUnits = 3
	cfg.Seed = 99

	a, err := NewK3(cfg, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewK3(cfg, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := a.PresentUnit(20, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.PresentUnit(20, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < cfg.NumUnits; i++ {
		av := a.OB().Unit(i).PrimaryNode().GetCurrentOutput()
		bv := b.OB().Unit(i).PrimaryNode().GetCurrentOutput()
		if av != bv {
			t.Fatalf("OB unit %d diverged between identically-seeded runs: %v vs %v", i, av, bv)
		}
	}
}

func TestK3RunHoldsCurrentStimulus(t *testing.T) {
	cfg := DefaultK3Config()
	cfg.NumUnits = 2
	k3, err := NewK3(cfg, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	k3.PG(0).SetExternalStimulus(0.7)
	k3.Run(20)
	if k3.PG(0).PrimaryNode().externalStimulus != 0.7 {
		t.Fatal("Run should not alter externally-set stimulus")
	}
}

func TestK3PerturbOBLateralExcitation(t *testing.T) {
	cfg := DefaultK3Config()
	cfg.NumUnits = 3
	k3, err := NewK3(cfg, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	findTagged := func() *K0Connection {
		for _, c := range k3.ob.Unit(0).PrimaryNode().Inbound() {
			if c.Tag != nil && *c.Tag == tagOBLatExc {
				return c
			}
		}
		return nil
	}
	tagged := findTagged()
	if tagged == nil {
		t.Fatal("expected a tagged OB lateral excitatory connection")
	}
	before := tagged.Weight
	k3.PerturbOBLateralExcitation(0.05)
	after := findTagged().Weight
	if after <= before {
		t.Fatalf("expected lateral excitatory weight to increase: before=%v after=%v", before, after)
	}
}
