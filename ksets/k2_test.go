// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksets

import "testing"

func defaultK2Weights() K2Weights {
	return K2Weights{Wee: 0.5, Wei: 0.4, Wie: -0.4, Wii: -0.2}
}

func TestNewK2RejectsBadSigns(t *testing.T) {
	cases := []K2Weights{
		{Wee: -0.1, Wei: 0.4, Wie: -0.4, Wii: -0.2},
		{Wee: 0.5, Wei: -0.1, Wie: -0.4, Wii: -0.2},
		{Wee: 0.5, Wei: 0.4, Wie: 0.1, Wii: -0.2},
		{Wee: 0.5, Wei: 0.4, Wie: -0.4, Wii: 0.1},
	}
	for i, w := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("case %d: expected panic for %+v", i, w)
				}
			}()
			NewK2("bad", w, 0, DefaultSigmoidQ, 10)
		}()
	}
}

func TestK2NodeThreeWiring(t *testing.T) {
	k := NewK2("wiring", defaultK2Weights(), 0, DefaultSigmoidQ, 10)
	node3 := k.Node(3)
	if len(node3.Inbound()) != 3 {
		t.Fatalf("node 3 should have 3 inbound edges, got %d", len(node3.Inbound()))
	}

	type want struct {
		srcIdx int
		weight Num
	}
	wants := []want{
		{0, defaultK2Weights().Wei},
		{1, defaultK2Weights().Wei},
		{2, defaultK2Weights().Wii},
	}
	for _, w := range wants {
		found := false
		for _, c := range node3.Inbound() {
			if c.Source == k.Node(w.srcIdx) && c.Weight == w.weight {
				found = true
			}
		}
		if !found {
			t.Errorf("node 3 missing inbound edge from node %d weight %v", w.srcIdx, w.weight)
		}
	}
}

func TestK2AsymmetricWiring(t *testing.T) {
	k := NewK2("wiring", defaultK2Weights(), 0, DefaultSigmoidQ, 10)
	w := defaultK2Weights()

	if got := len(k.Node(0).Inbound()); got != 3 {
		t.Errorf("node 0 should have 3 inbound edges, got %d", got)
	}
	if got := len(k.Node(1).Inbound()); got != 2 {
		t.Errorf("node 1 should have 2 inbound edges, got %d", got)
	}
	if got := len(k.Node(2).Inbound()); got != 2 {
		t.Errorf("node 2 should have 2 inbound edges, got %d", got)
	}

	hasEdge := func(dst *K0, srcIdx int, weight Num) bool {
		for _, c := range dst.Inbound() {
			if c.Source == k.Node(srcIdx) && c.Weight == weight {
				return true
			}
		}
		return false
	}
	if !hasEdge(k.Node(1), 0, w.Wee) || !hasEdge(k.Node(1), 3, w.Wie) {
		t.Error("node 1 missing expected inbound edges (wee.0, wie.3)")
	}
	if !hasEdge(k.Node(2), 0, w.Wei) || !hasEdge(k.Node(2), 3, w.Wii) {
		t.Error("node 2 missing expected inbound edges (wei.0, wii.3)")
	}
}

func TestK2PerturbWeightsUpdatesAllEdgesOfCategory(t *testing.T) {
	k := NewK2("perturb", defaultK2Weights(), 0, DefaultSigmoidQ, 10)
	k.PerturbWeights(K2Weights{Wee: 0.1})

	for _, n := range []*K0{k.Node(0), k.Node(1)} {
		for _, c := range n.Inbound() {
			if c.Tag != nil && *c.Tag == tagWee && c.Weight != defaultK2Weights().Wee+0.1 {
				t.Errorf("wee edge not perturbed: got %v", c.Weight)
			}
		}
	}
	if k.Weights().Wee != defaultK2Weights().Wee+0.1 {
		t.Errorf("Weights().Wee not updated: got %v", k.Weights().Wee)
	}
}

func TestK2SustainsOscillation(t *testing.T) {
	// defaultK2Weights are too weak to oscillate: the quad settles to a
	// fixed point under constant input. These gains sustain a limit cycle.
	osc := K2Weights{Wee: 1.8, Wei: 1.0, Wie: -2.0, Wii: -0.8}
	k := NewK2("osc", osc, 0, DefaultSigmoidQ, 500)
	k.SetExternalStimulus(0.8)
	for i := 0; i < 1000; i++ {
		k.CalculateNextState()
		k.CommitNextState()
	}

	h := k.PrimaryNode().History()
	min, max := h.Get(0), h.Get(0)
	for i := 1; i < 200; i++ {
		v := h.Get(i)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max-min < 1e-3 {
		t.Fatalf("expected sustained oscillation in primary node output, range was %v", max-min)
	}
}
