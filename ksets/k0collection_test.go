// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksets

import "testing"

func TestNewK0CollectionRejectsEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic constructing a zero-unit collection")
		}
	}()
	NewK0Collection(0, "empty", DefaultSigmoidQ, 10)
}

func TestK0CollectionFanOut(t *testing.T) {
	c := NewK0Collection(3, "fanout", DefaultSigmoidQ, 10)
	c.SetExternalStimulus(1.0)
	for i := 0; i < 20; i++ {
		c.CalculateAndCommitNextState()
	}
	if c.Node(0).x <= 0 {
		t.Fatalf("primary node should have risen under stimulus, got x=%v", c.Node(0).x)
	}
	for i := 1; i < c.Len(); i++ {
		if c.Node(i).x != 0 {
			t.Fatalf("unstimulated node %d should remain at rest, got x=%v", i, c.Node(i).x)
		}
	}
}

func TestK0CollectionRepr(t *testing.T) {
	c := NewK0Collection(2, "probe", DefaultSigmoidQ, 10)
	want := "node 1 @ probe"
	if got := c.Node(1).Repr(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestK0CollectionCloseClearsInbound(t *testing.T) {
	c := NewK0Collection(2, "teardown", DefaultSigmoidQ, 10)
	c.Node(1).AddInboundConnection(c.Node(0), 0.5, 0, nil)
	if len(c.Node(1).Inbound()) != 1 {
		t.Fatal("setup: expected one inbound connection before Close")
	}
	c.Close()
	if len(c.Node(1).Inbound()) != 0 {
		t.Fatal("Close should clear inbound connections")
	}
}
