// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksets

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestK0RestsAtZeroWithNoStimulus(t *testing.T) {
	k := NewK0(DefaultSigmoidQ, 10)
	for i := 0; i < 50; i++ {
		k.CalculateAndCommitNextState()
	}
	if math32.Abs(k.x) > 1e-6 || math32.Abs(k.y) > 1e-6 {
		t.Fatalf("unit drifted from rest: x=%v y=%v", k.x, k.y)
	}
	if got := k.GetCurrentOutput(); math32.Abs(got) > 1e-6 {
		t.Fatalf("rest output should be ~0, got %v", got)
	}
}

func TestK0ImpulseDecaysBackToRest(t *testing.T) {
	k := NewK0(DefaultSigmoidQ, 2000)
	k.SetExternalStimulus(1.0)
	for i := 0; i < ODEMillisecondsToIters(200); i++ {
		k.CalculateAndCommitNextState()
	}
	settled := k.x
	if settled <= 0 {
		t.Fatalf("unit should have risen above rest under positive stimulus, got x=%v", settled)
	}

	k.SetExternalStimulus(0)
	for i := 0; i < ODEMillisecondsToIters(500); i++ {
		k.CalculateAndCommitNextState()
	}
	if math32.Abs(k.x) > 1e-3 {
		t.Fatalf("unit failed to decay back to rest: x=%v", k.x)
	}
}

func TestK0ConnectionRespectsDelay(t *testing.T) {
	src := NewK0(DefaultSigmoidQ, 10)
	dst := NewK0(DefaultSigmoidQ, 10)
	dst.AddInboundConnection(src, 1.0, 3, nil)

	src.SetExternalStimulus(1.0)
	for i := 0; i < 5; i++ {
		src.CalculateNextState()
		dst.CalculateNextState()
		src.CommitNextState()
		dst.CommitNextState()
	}

	conn := dst.inbound[0]
	want := src.history.Get(3)
	if got := conn.Output(); got != want {
		t.Fatalf("connection output %v does not match delayed source history %v", got, want)
	}
}

func TestK0PerturbWeightRefusesSignFlip(t *testing.T) {
	src := NewK0(DefaultSigmoidQ, 10)
	dst := NewK0(DefaultSigmoidQ, 10)
	c := dst.AddInboundConnection(src, 0.5, 0, nil)

	if c.PerturbWeight(-10) {
		t.Fatal("perturbation flipping an excitatory weight negative should be refused")
	}
	if c.Weight != 0.5 {
		t.Fatalf("weight should be unchanged after refused perturbation, got %v", c.Weight)
	}
	if !c.PerturbWeight(0.1) {
		t.Fatal("same-sign perturbation should be accepted")
	}
	if math32.Abs(c.Weight-0.6) > 1e-6 {
		t.Fatalf("want weight 0.6, got %v", c.Weight)
	}
}

func TestK0CommitWithoutCalculatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic committing without a staged calculation")
		}
	}()
	k := NewK0(DefaultSigmoidQ, 10)
	k.CommitNextState()
}

func TestK0AdvanceNoiseWithoutStreamPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic advancing noise with no stream attached")
		}
	}()
	k := NewK0(DefaultSigmoidQ, 10)
	k.AdvanceNoise()
}

func TestK0CloneSubgraphPreservesWiringAndIsIndependent(t *testing.T) {
	src := NewK0(DefaultSigmoidQ, 10)
	dst := NewK0(DefaultSigmoidQ, 10)
	dst.AddInboundConnection(src, 0.5, 0, nil)

	clone := dst.CloneSubgraph()
	if clone == dst {
		t.Fatal("clone must be a distinct unit")
	}
	if len(clone.inbound) != 1 {
		t.Fatalf("clone should carry one inbound connection, got %d", len(clone.inbound))
	}
	if clone.inbound[0].Source == src {
		t.Fatal("clone's source should itself be a clone, not the original")
	}

	src.SetExternalStimulus(1.0)
	for i := 0; i < 10; i++ {
		src.CalculateAndCommitNextState()
	}
	if clone.inbound[0].Source.x == src.x {
		t.Fatal("cloned subgraph should be independent of the original once diverged")
	}
}
