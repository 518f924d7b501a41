// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksets

import "github.com/wqferr/ksets-go/ksets/ksrand"

// tagOBLatExc marks the olfactory bulb's lateral excitatory connections
// so a parameter search can perturb them as a group without walking the
// whole graph looking for them.
const tagOBLatExc ConnTag = 100

// K3 is the full olfactory assembly: an array of periglomerular input
// pairs (PG), an olfactory bulb layer (OB), an anterior olfactory
// nucleus (AON), a prepiriform cortex (PC), and a single deep pyramid
// cell (DPC). PG channels feed OB channels one-to-one; OB's primary
// nodes drive AON and PC (the lateral olfactory tract); AON and DPC feed
// back onto earlier stages (the medial olfactory tract, and DPC's
// antipodal feedback); PC and DPC are reciprocally coupled.
type K3 struct {
	config K3Config

	pg  []*K1
	ob  *K2Layer
	aon *K2
	pc  *K2
	dpc *K0Collection
}

// NewK3 builds and fully wires an assembly from cfg, validating cfg
// first. On success, every unit's initial state has been randomized, the
// tagged OB lateral weights have been perturbed, noise streams are
// installed, output histories are sized and monitored, and the assembly
// has been run at rest (zero external stimulus) for restMilliseconds to
// dissipate transients from that randomization before the caller
// presents anything.
func NewK3(cfg K3Config, restMilliseconds Num) (*K3, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	k3 := &K3{config: cfg}
	k3.pg = make([]*K1, cfg.NumUnits)
	for i := range k3.pg {
		k3.pg[i] = NewK1(unitName("pg", i), cfg.PGIntraUnitPS, cfg.PGIntraUnitSP, 0, cfg.SigmoidQ, cfg.NonOutputHistorySize)
	}
	k3.ob = NewK2Layer("ob", cfg.NumUnits, cfg.OBWeights, 0, cfg.SigmoidQ, cfg.OutputHistorySize)
	k3.aon = NewK2("aon", cfg.AONWeights, 0, cfg.SigmoidQ, cfg.OutputHistorySize)
	k3.pc = NewK2("pc", cfg.PCWeights, 0, cfg.SigmoidQ, cfg.OutputHistorySize)
	k3.dpc = NewK0Collection(1, "dpc", cfg.SigmoidQ, cfg.NonOutputHistorySize)

	k3.wire()
	k3.perturbOBLateralWeights()
	k3.installNoise()
	k3.randomizeInitialState()
	k3.installOutputMonitoring()

	if restMilliseconds > 0 {
		k3.Rest(restMilliseconds)
	}
	return k3, nil
}

// wire builds every connection in the assembly, following the topology
// laid out for the K3 level: PG lateral and intra-unit coupling, PG->OB
// feedforward, OB's internal lateral coupling, and the OB/AON/PC/DPC
// inter-regional pathways (LOT forward, MOT and DPC feedback).
func (k3 *K3) wire() {
	cfg := k3.config

	if len(k3.pg) > 1 {
		scaled := cfg.PGInterUnit / Num(len(k3.pg)-1)
		for i, dst := range k3.pg {
			for j, src := range k3.pg {
				if i == j {
					continue
				}
				dst.PrimaryNode().AddInboundConnection(src.PrimaryNode(), scaled, cfg.PGInterUnitDelay, nil)
			}
		}
	}
	for i, pg := range k3.pg {
		k3.ob.Unit(i).PrimaryNode().AddInboundConnection(pg.PrimaryNode(), cfg.PGToOB, cfg.PGToOBDelay, nil)
	}

	tag := tagOBLatExc
	k3.ob.ConnectPrimaryNodesLaterally(cfg.OBInterPrimary, 0, &tag)
	k3.ob.ConnectAntipodalNodesLaterally(cfg.OBInterAntipodal, 0, nil)

	for _, ob := range k3.ob.Units() {
		k3.aon.PrimaryNode().AddInboundConnection(ob.PrimaryNode(), cfg.OBToAONLot, cfg.OBToAONLotDelay, nil)
		k3.pc.PrimaryNode().AddInboundConnection(ob.PrimaryNode(), cfg.OBToPCLot, cfg.OBToPCLotDelay, nil)
		ob.AntipodalNode().AddInboundConnection(k3.aon.PrimaryNode(), cfg.AONToOBAntipodal, cfg.AONToOBAntipodalDelay, nil)
		ob.AntipodalNode().AddInboundConnection(k3.dpc.Node(0), cfg.DPCToOBAntipodal, cfg.DPCToOBAntipodalDelay, nil)
	}
	for _, pg := range k3.pg {
		pg.PrimaryNode().AddInboundConnection(k3.aon.PrimaryNode(), cfg.AONToPGMot, cfg.AONToPGMotDelay, nil)
	}

	k3.aon.AntipodalNode().AddInboundConnection(k3.pc.PrimaryNode(), cfg.PCToAONAntipodal, cfg.PCToAONAntipodalDelay, nil)
	k3.dpc.Node(0).AddInboundConnection(k3.pc.AntipodalNode(), cfg.PCToDPC, cfg.PCToDPCDelay, nil)
	k3.pc.AntipodalNode().AddInboundConnection(k3.dpc.Node(0), cfg.DPCToPC, cfg.DPCToPCDelay, nil)
}

// perturbOBLateralWeights adds an independent Gaussian draw (stddev
// noiseObLateralWeights / (N-1)) to each tagged OB lateral excitatory
// edge, one draw per edge; a draw that would flip an edge's sign is
// refused and leaves that edge unchanged.
func (k3 *K3) perturbOBLateralWeights() {
	if len(k3.ob.Units()) < 2 {
		return
	}
	cfg := k3.config
	stddev := cfg.NoiseObLateralWeights / Num(len(k3.ob.Units())-1)
	if stddev == 0 {
		return
	}
	draw := ksrand.NewGaussianStream(float32(stddev), int64(cfg.Seed)+2)
	for _, ob := range k3.ob.Units() {
		for _, c := range ob.PrimaryNode().Inbound() {
			if c.Tag != nil && *c.Tag == tagOBLatExc {
				c.PerturbWeight(Num(draw()))
			}
		}
	}
}

// installNoise attaches an independent Gaussian stream to every AON, PG,
// and OB primary node, seeded from cfg.Seed (or OS entropy if Seed == 0).
func (k3 *K3) installNoise() {
	cfg := k3.config
	var nextSeed func() int64
	if cfg.Seed == 0 {
		nextSeed = ksrand.NewOSSeedGenerator(cfg.RngSeedGenBatchSize)
	} else {
		nextSeed = ksrand.NewSeedGenerator(int64(cfg.Seed), cfg.RngSeedGenBatchSize)
	}

	k3.aon.PrimaryNode().SetNoiseStream(ksrand.NewGaussianStream(float32(cfg.NoiseAON), nextSeed()))
	for _, pg := range k3.pg {
		pg.PrimaryNode().SetNoiseStream(ksrand.NewGaussianStream(float32(cfg.NoisePG), nextSeed()))
	}
	for _, ob := range k3.ob.Units() {
		ob.PrimaryNode().SetNoiseStream(ksrand.NewGaussianStream(float32(cfg.NoiseOB), nextSeed()))
	}
}

// randomizeInitialState draws every K0's position state from a Gaussian
// with stddev noiseInitialK0States, breaking symmetry between otherwise
// identical channels before the initial rest period runs.
func (k3 *K3) randomizeInitialState() {
	cfg := k3.config
	var nextSeed func() int64
	if cfg.Seed == 0 {
		nextSeed = ksrand.NewOSSeedGenerator(cfg.RngSeedGenBatchSize)
	} else {
		nextSeed = ksrand.NewSeedGenerator(int64(cfg.Seed)+1, cfg.RngSeedGenBatchSize)
	}
	source := ksrand.NewGaussianStream(float32(cfg.NoiseInitialK0States), nextSeed())

	for _, pg := range k3.pg {
		pg.RandomizeK0States(source)
	}
	k3.ob.RandomizeK0States(source)
	k3.aon.RandomizeK0States(source)
	k3.pc.RandomizeK0States(source)
	k3.dpc.RandomizeK0States(source)
}

// installOutputMonitoring enables the rolling-variance window on the
// nodes this assembly treats as observable outputs: every OB unit's
// primary and antipodal node, AON's primary node, and PC's primary node.
// Those nodes keep OutputHistorySize; the remaining OB/AON/PC nodes are
// resized to NonOutputHistorySize.
func (k3 *K3) installOutputMonitoring() {
	w := k3.config.OutputActivityMonitoring
	internal := k3.config.NonOutputHistorySize
	for _, ob := range k3.ob.Units() {
		ob.PrimaryNode().History().SetActivityMonitoring(w)
		ob.AntipodalNode().History().SetActivityMonitoring(w)
		ob.Node(1).History().Resize(internal)
		ob.Node(2).History().Resize(internal)
	}
	k3.aon.PrimaryNode().History().SetActivityMonitoring(w)
	k3.pc.PrimaryNode().History().SetActivityMonitoring(w)
	for i := 1; i < 4; i++ {
		k3.aon.Node(i).History().Resize(internal)
		k3.pc.Node(i).History().Resize(internal)
	}
}

// PG returns the i-th periglomerular channel.
func (k3 *K3) PG(i int) *K1 {
	return k3.pg[i]
}

// OB returns the olfactory bulb layer.
func (k3 *K3) OB() *K2Layer {
	return k3.ob
}

// AON returns the anterior olfactory nucleus.
func (k3 *K3) AON() *K2 {
	return k3.aon
}

// PC returns the prepiriform cortex.
func (k3 *K3) PC() *K2 {
	return k3.pc
}

// DPC returns the deep pyramid cell's single-node collection.
func (k3 *K3) DPC() *K0 {
	return k3.dpc.Node(0)
}

// PerturbOBLateralExcitation adds delta to every tagged OB lateral
// excitatory connection, used by a parameter search sweeping wOB_LAT_E
// without reconstructing the assembly.
func (k3 *K3) PerturbOBLateralExcitation(delta Num) {
	for _, ob := range k3.ob.Units() {
		for _, c := range ob.PrimaryNode().Inbound() {
			if c.Tag != nil && *c.Tag == tagOBLatExc {
				c.PerturbWeight(delta)
			}
		}
	}
}

// Step advances every unit in the assembly by one fixed ODEStepSize
// tick, under the two-phase protocol: every unit calculates its next
// state from the current (already-committed) graph before any unit
// commits, so the tick's result never depends on traversal order. Noise
// for the following tick is drawn only after every commit has landed.
func (k3 *K3) Step() {
	for _, pg := range k3.pg {
		pg.CalculateNextState()
	}
	k3.ob.CalculateNextState()
	k3.aon.CalculateNextState()
	k3.pc.CalculateNextState()
	k3.dpc.CalculateNextState()

	for _, pg := range k3.pg {
		pg.CommitNextState()
	}
	k3.ob.CommitNextState()
	k3.aon.CommitNextState()
	k3.pc.CommitNextState()
	k3.dpc.CommitNextState()

	k3.AdvanceSystemNoise()
}

// AdvanceSystemNoise draws the next tick's noise sample for every node
// with a stream attached. Step calls this automatically; it is exported
// so a caller driving PG/OB/AON/PC/DPC manually can still advance noise
// in the correct order.
func (k3 *K3) AdvanceSystemNoise() {
	k3.aon.PrimaryNode().AdvanceNoise()
	for _, pg := range k3.pg {
		pg.PrimaryNode().AdvanceNoise()
	}
	for _, ob := range k3.ob.Units() {
		ob.PrimaryNode().AdvanceNoise()
	}
}

// Rest advances the assembly for the given duration with every PG and OB
// primary node's external stimulus at zero.
func (k3 *K3) Rest(milliseconds Num) {
	for i := range k3.pg {
		k3.pg[i].SetExternalStimulus(0)
	}
	for _, ob := range k3.ob.Units() {
		ob.SetExternalStimulus(0)
	}
	n := ODEMillisecondsToIters(milliseconds)
	for i := 0; i < n; i++ {
		k3.Step()
	}
}

// Present drives each PG and OB channel i's primary node with pattern[i]
// for the given duration, without clearing stimuli on return. len(pattern)
// must equal the number of channels.
func (k3 *K3) Present(milliseconds Num, pattern []Num) error {
	if len(pattern) != len(k3.pg) {
		return ErrPatternSize(len(pattern), len(k3.pg))
	}
	for i, u := range pattern {
		k3.pg[i].SetExternalStimulus(u)
		k3.ob.Unit(i).SetExternalStimulus(u)
	}
	n := ODEMillisecondsToIters(milliseconds)
	for i := 0; i < n; i++ {
		k3.Step()
	}
	return nil
}

// PresentUnit is a convenience wrapper around Present that drives a
// single channel with a unit stimulus and leaves every other channel at
// zero.
func (k3 *K3) PresentUnit(milliseconds Num, unit int) error {
	if unit < 0 || unit >= len(k3.pg) {
		return ErrInvalidConfig("K3.PresentUnit: unit index out of range")
	}
	pattern := make([]Num, len(k3.pg))
	pattern[unit] = 1.0
	return k3.Present(milliseconds, pattern)
}

// Run advances the assembly for the given duration holding whatever
// external stimulus is currently set on each channel.
func (k3 *K3) Run(milliseconds Num) {
	n := ODEMillisecondsToIters(milliseconds)
	for i := 0; i < n; i++ {
		k3.Step()
	}
}
