// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksets

// K0Connection is a single weighted, delayed link feeding into a K0's net
// input. Its Source is read through the source's ActivationHistory, never
// through the source's live state, so a connection always sees a
// consistent, already-committed output regardless of iteration order.
type K0Connection struct {
	Source *K0
	Weight Num
	Delay  int // offset into Source's history; 0 is the most recently committed output
	Tag    *ConnTag
}

// Output returns the delayed, sigmoid-transformed output this connection
// currently contributes.
func (c *K0Connection) Output() Num {
	return c.Source.history.Get(c.Delay)
}

// PerturbWeight adds delta to the connection's weight, refusing the change
// (and returning false) if it would flip the weight's sign -- an
// excitatory connection must stay excitatory, an inhibitory one must stay
// inhibitory.
func (c *K0Connection) PerturbWeight(delta Num) bool {
	next := c.Weight + delta
	if (c.Weight >= 0) != (next >= 0) {
		return false
	}
	c.Weight = next
	return true
}

// K0 is a single Freeman unit: an overdamped second-order unit (two
// distinct real rate constants, ODEDecayRate and ODERiseRate) driven by
// its net input (external stimulus plus the
// weighted, delayed outputs of its inbound connections), with its
// sigmoid-transformed output recorded into a delay-line history that
// both feeds downstream connections and supports rolling-window variance
// monitoring.
type K0 struct {
	id         int
	collection *K0Collection // optional back-reference, for Repr() only

	x, y Num // ODE state: activity and its rate of change
	nx, ny Num // shadow state written by CalculateNextState, applied by CommitNextState
	pending bool

	externalStimulus Num
	noise            Num     // drawn by AdvanceNoise, folded into the *next* tick's input
	noiseSource      func() Num

	sigmoidQ Num
	inbound  []*K0Connection
	history  *ActivationHistory
}

// NewK0 builds an isolated unit with no inbound connections, a history of
// the given capacity, and the given sigmoid saturation parameter.
func NewK0(sigmoidQ Num, historySize int) *K0 {
	return &K0{
		sigmoidQ: sigmoidQ,
		history:  NewActivationHistory(historySize),
	}
}

// Repr renders this unit's canonical diagnostic identifier.
func (k *K0) Repr() string {
	name := ""
	if k.collection != nil {
		name = k.collection.name
	}
	return Repr(name, k.id)
}

// History exposes the unit's delay-line / observability surface.
func (k *K0) History() *ActivationHistory {
	return k.history
}

// SetExternalStimulus sets the constant drive added to this unit's net
// input on every subsequent CalculateNextState, until changed again.
func (k *K0) SetExternalStimulus(u Num) {
	k.externalStimulus = u
}

// SetNoiseStream attaches a noise generator (typically a per-unit
// Gaussian stream) whose draws are folded into the net input one tick
// after AdvanceNoise is called. A nil stream disables noise and makes a
// later AdvanceNoise call fatal.
func (k *K0) SetNoiseStream(source func() Num) {
	k.noiseSource = source
	if source == nil {
		k.noise = 0
	}
}

// AdvanceNoise draws the next noise sample to be applied starting with
// the following CalculateNextState call. It must be called strictly
// after CommitNextState for the current tick, so that the draw used for
// tick t+1 cannot leak into tick t's calculation.
func (k *K0) AdvanceNoise() {
	if k.noiseSource == nil {
		name := ""
		if k.collection != nil {
			name = k.collection.name
		}
		fatalNoiseStream(name, k.id)
	}
	k.noise = k.noiseSource()
}

// RandomizeState draws a fresh x value from source, bypassing the ODE,
// and leaves y at rest -- used once at construction time to break initial
// symmetry between otherwise-identical units.
func (k *K0) RandomizeState(source func() Num) {
	k.x = source()
}

// AddInboundConnection wires a new weighted, delayed link from src into
// this unit and returns it so the caller can tag or later perturb it.
func (k *K0) AddInboundConnection(src *K0, weight Num, delay int, tag *ConnTag) *K0Connection {
	c := &K0Connection{Source: src, Weight: weight, Delay: delay, Tag: tag}
	k.inbound = append(k.inbound, c)
	return c
}

// Inbound returns this unit's inbound connections, in wiring order.
func (k *K0) Inbound() []*K0Connection {
	return k.inbound
}

func (k *K0) clearInbound() {
	k.inbound = nil
}

// calculateNetInput sums the external stimulus, any pending noise draw,
// and every inbound connection's delayed weighted output.
func (k *K0) calculateNetInput() Num {
	u := k.externalStimulus + k.noise
	for _, c := range k.inbound {
		u += c.Weight * c.Output()
	}
	return u
}

// derivative evaluates the K0 ODE, dx/dt = y; dy/dt = -(a+b)y + ab(u-x),
// at the given state under a frozen net input u.
func derivative(x, y, u Num) (dx, dy Num) {
	const a, b = ODEDecayRate, ODERiseRate
	return y, -(a+b)*y + a*b*(u-x)
}

// CalculateNextState computes this tick's successor state with classical
// fourth-order Runge-Kutta over a single fixed ODEStepSize step, holding
// the net input constant across the step. The result is staged, not
// applied -- call CommitNextState to make it visible.
func (k *K0) CalculateNextState() {
	const h = ODEStepSize
	u := k.calculateNetInput()

	k1x, k1y := derivative(k.x, k.y, u)
	k2x, k2y := derivative(k.x+h/2*k1x, k.y+h/2*k1y, u)
	k3x, k3y := derivative(k.x+h/2*k2x, k.y+h/2*k2y, u)
	k4x, k4y := derivative(k.x+h*k3x, k.y+h*k3y, u)

	k.nx = k.x + h/6*(k1x+2*k2x+2*k3x+k4x)
	k.ny = k.y + h/6*(k1y+2*k2y+2*k3y+k4y)
	k.pending = true
}

// CommitNextState applies the state staged by CalculateNextState and
// records its sigmoid-transformed output into the history. It panics if
// called without a matching CalculateNextState call.
func (k *K0) CommitNextState() {
	if !k.pending {
		panic(ErrHistoryOffset("K0.CommitNextState: no staged state to commit for " + k.Repr()))
	}
	k.x, k.y = k.nx, k.ny
	k.pending = false
	k.history.Put(Sigmoid(k.x, k.sigmoidQ))
}

// CalculateAndCommitNextState advances the unit one full tick in a single
// call -- convenient for driving an isolated unit in tests, but unsafe
// for a connected graph since it doesn't freeze the whole neighborhood.
func (k *K0) CalculateAndCommitNextState() {
	k.CalculateNextState()
	k.CommitNextState()
}

// GetCurrentOutput returns the most recently committed sigmoid output.
func (k *K0) GetCurrentOutput() Num {
	return k.history.Get(0)
}

// GetDelayedOutput returns the sigmoid output committed `delay` ticks ago.
func (k *K0) GetDelayedOutput(delay int) Num {
	return k.history.Get(delay)
}

// CloneSubgraph deep-copies this unit together with every unit it
// transitively depends on through inbound connections, preserving the
// wiring between the copies. Units with no path back to k are left
// untouched; units reachable from multiple paths are cloned once and
// shared, matching the original graph's topology.
func (k *K0) CloneSubgraph() *K0 {
	seen := make(map[*K0]*K0)
	return k.cloneInto(seen)
}

func (k *K0) cloneInto(seen map[*K0]*K0) *K0 {
	if clone, ok := seen[k]; ok {
		return clone
	}
	clone := &K0{
		id:               k.id,
		collection:       k.collection,
		x:                k.x,
		y:                k.y,
		externalStimulus: k.externalStimulus,
		sigmoidQ:         k.sigmoidQ,
		noiseSource:      k.noiseSource,
		history:          k.history.clone(),
	}
	seen[k] = clone
	for _, c := range k.inbound {
		srcClone := c.Source.cloneInto(seen)
		tag := c.Tag
		clone.inbound = append(clone.inbound, &K0Connection{
			Source: srcClone,
			Weight: c.Weight,
			Delay:  c.Delay,
			Tag:    tag,
		})
	}
	return clone
}
