// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksets

// K1 is a reciprocally-coupled pair of units: a primary node (index 0,
// the collection's input/output point) and a secondary node (index 1),
// each feeding the other. Both connections must carry the same sign --
// a K1 is either mutually excitatory or mutually inhibitory, never mixed.
type K1 struct {
	*K0Collection
}

// NewK1 builds a pair wired with two directed weights -- primaryToSecondary
// drives the secondary node, secondaryToPrimary drives the primary node --
// and a shared per-edge delay. The two weights must carry the same sign;
// a K1 is either mutually excitatory or mutually inhibitory, never mixed.
func NewK1(name string, primaryToSecondary, secondaryToPrimary Num, delay int, sigmoidQ Num, historySize int) *K1 {
	if (primaryToSecondary >= 0) != (secondaryToPrimary >= 0) {
		panic(ErrInvalidConfig("K1: reciprocal weights must share a sign"))
	}
	c := NewK0Collection(2, name, sigmoidQ, historySize)
	primary, secondary := c.Node(0), c.Node(1)
	secondary.AddInboundConnection(primary, primaryToSecondary, delay, nil)
	primary.AddInboundConnection(secondary, secondaryToPrimary, delay, nil)
	return &K1{c}
}

// PrimaryNode returns the pair's input/output node.
func (k *K1) PrimaryNode() *K0 {
	return k.Node(0)
}

// SecondaryNode returns the pair's other node.
func (k *K1) SecondaryNode() *K0 {
	return k.Node(1)
}
