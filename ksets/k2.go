// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksets

// K2 connection categories, used to tag wiring so PerturbWeights can bulk
// adjust every connection of a given kind without tracking indices.
const (
	tagWee ConnTag = iota
	tagWei
	tagWie
	tagWii
)

// K2Weights groups the four connection strengths of a K2 quad: excitatory-
// excitatory, excitatory-inhibitory, inhibitory-excitatory, and
// inhibitory-inhibitory. Wee and Wei must be non-negative; Wie and Wii
// must be non-positive.
type K2Weights struct {
	Wee, Wei, Wie, Wii Num
}

func (w K2Weights) validate() error {
	if w.Wee < 0 || w.Wei < 0 {
		return ErrInvalidConfig("K2Weights: Wee and Wei must be non-negative")
	}
	if w.Wie > 0 || w.Wii > 0 {
		return ErrInvalidConfig("K2Weights: Wie and Wii must be non-positive")
	}
	return nil
}

// K2 is a Freeman excitatory/inhibitory quad: nodes 0 and 1 are
// excitatory, nodes 2 and 3 are inhibitory, wired with the fixed,
// asymmetric topology:
//
//	0 <- wee.1, wie.2, wie.3
//	1 <- wee.0, wie.3
//	2 <- wei.0, wii.3
//	3 <- wei.0, wei.1, wii.2
//
// Node 3 is the "antipodal" node -- the quad's secondary output channel.
type K2 struct {
	*K0Collection
	weights K2Weights
}

// NewK2 builds a quad wired with the given weights and uniform inter-node
// delay.
func NewK2(name string, w K2Weights, delay int, sigmoidQ Num, historySize int) *K2 {
	if err := w.validate(); err != nil {
		panic(err)
	}
	c := NewK0Collection(4, name, sigmoidQ, historySize)
	n0, n1, n2, n3 := c.Node(0), c.Node(1), c.Node(2), c.Node(3)

	wee, wei, wie, wii := w.Wee, w.Wei, w.Wie, w.Wii
	tag := func(t ConnTag) *ConnTag { v := t; return &v }

	n0.AddInboundConnection(n1, wee, delay, tag(tagWee))
	n0.AddInboundConnection(n2, wie, delay, tag(tagWie))
	n0.AddInboundConnection(n3, wie, delay, tag(tagWie))

	n1.AddInboundConnection(n0, wee, delay, tag(tagWee))
	n1.AddInboundConnection(n3, wie, delay, tag(tagWie))

	n2.AddInboundConnection(n0, wei, delay, tag(tagWei))
	n2.AddInboundConnection(n3, wii, delay, tag(tagWii))

	n3.AddInboundConnection(n0, wei, delay, tag(tagWei))
	n3.AddInboundConnection(n1, wei, delay, tag(tagWei))
	n3.AddInboundConnection(n2, wii, delay, tag(tagWii))

	return &K2{K0Collection: c, weights: w}
}

// PrimaryNode returns the quad's excitatory input/output node.
func (k *K2) PrimaryNode() *K0 {
	return k.Node(0)
}

// AntipodalNode returns the quad's inhibitory secondary output node.
func (k *K2) AntipodalNode() *K0 {
	return k.Node(3)
}

// Weights returns the weight set the quad was built with; perturbations
// applied through PerturbWeights are reflected here.
func (k *K2) Weights() K2Weights {
	return k.weights
}

// PerturbWeights adds the given deltas to every connection of the
// matching category. A delta is silently skipped for any connection
// whose perturbation would flip its sign, leaving that single edge
// unchanged; k.weights is updated to the (possibly partially-applied)
// result on the first edge of each category, since all edges of a
// category share a weight by construction.
func (k *K2) PerturbWeights(d K2Weights) {
	applied := map[ConnTag]bool{}
	for _, n := range k.Nodes() {
		for _, c := range n.Inbound() {
			if c.Tag == nil {
				continue
			}
			var delta Num
			switch *c.Tag {
			case tagWee:
				delta = d.Wee
			case tagWei:
				delta = d.Wei
			case tagWie:
				delta = d.Wie
			case tagWii:
				delta = d.Wii
			default:
				continue
			}
			if c.PerturbWeight(delta) && !applied[*c.Tag] {
				applied[*c.Tag] = true
			}
		}
	}
	if applied[tagWee] {
		k.weights.Wee += d.Wee
	}
	if applied[tagWei] {
		k.weights.Wei += d.Wei
	}
	if applied[tagWie] {
		k.weights.Wie += d.Wie
	}
	if applied[tagWii] {
		k.weights.Wii += d.Wii
	}
}
