// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksets

// K0Collection owns a fixed set of K0 units allocated once at
// construction and never relocated, so connections between units (and
// between collections) can hold plain *K0 pointers for the life of the
// collection. K1, K2, K2Layer and K3 are all built on top of a
// K0Collection; this type supplies the fan-out operations common to all
// of them.
type K0Collection struct {
	name  string
	nodes []*K0
}

// NewK0Collection allocates n fresh, unconnected units sharing the given
// sigmoid parameter and history capacity. n must be at least 1.
func NewK0Collection(n int, name string, sigmoidQ Num, historySize int) *K0Collection {
	if n < 1 {
		panic(ErrInvalidConfig("K0Collection: n must be at least 1"))
	}
	c := &K0Collection{name: name, nodes: make([]*K0, n)}
	for i := range c.nodes {
		k := NewK0(sigmoidQ, historySize)
		k.id = i
		k.collection = c
		c.nodes[i] = k
	}
	return c
}

// Name returns the collection's diagnostic name.
func (c *K0Collection) Name() string {
	return c.name
}

// Len returns the number of units in the collection.
func (c *K0Collection) Len() int {
	return len(c.nodes)
}

// Node returns the i-th unit.
func (c *K0Collection) Node(i int) *K0 {
	return c.nodes[i]
}

// Nodes returns the collection's units, in construction order. The slice
// itself must not be mutated by callers.
func (c *K0Collection) Nodes() []*K0 {
	return c.nodes
}

// SetExternalStimulus drives the primary unit (index 0) with u; this is
// the input point for collections used as a single logical input cell
// (K1's primary node, K2's excitatory node 0, ...).
func (c *K0Collection) SetExternalStimulus(u Num) {
	c.nodes[0].SetExternalStimulus(u)
}

// CalculateNextState stages the next tick for every unit in the
// collection, in index order. Staging order never affects the result:
// every unit's net input is computed from already-committed history.
func (c *K0Collection) CalculateNextState() {
	for _, k := range c.nodes {
		k.CalculateNextState()
	}
}

// CommitNextState applies every unit's staged state.
func (c *K0Collection) CommitNextState() {
	for _, k := range c.nodes {
		k.CommitNextState()
	}
}

// CalculateAndCommitNextState advances every unit one full tick.
func (c *K0Collection) CalculateAndCommitNextState() {
	c.CalculateNextState()
	c.CommitNextState()
}

// AdvanceNoise draws the next noise sample for every unit that has a
// noise stream attached. Units with no stream are left untouched, so a
// collection may mix noisy and noiseless units.
func (c *K0Collection) AdvanceNoise() {
	for _, k := range c.nodes {
		if k.noiseSource != nil {
			k.AdvanceNoise()
		}
	}
}

// RandomizeK0States draws a fresh x state for every unit from source,
// leaving y at rest.
func (c *K0Collection) RandomizeK0States(source func() Num) {
	for _, k := range c.nodes {
		k.RandomizeState(source)
	}
}

// Close tears the collection down: every unit's inbound connections are
// cleared, so any external reference to a unit that outlives the
// collection cannot still walk into it. Go's GC would reclaim the cycle
// regardless, but clearing it explicitly keeps CloneSubgraph's notion of
// "what k still depends on" accurate for units whose owning collection
// has been closed.
func (c *K0Collection) Close() {
	for _, k := range c.nodes {
		k.clearInbound()
	}
}
