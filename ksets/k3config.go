// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksets

import "github.com/c2h5oh/datasize"

// K3Config gathers every parameter needed to build a K3: unit counts,
// integration parameters, the internal weights of each region, the
// inter-regional and lateral pathway weights (with the individual delays
// of the inter-regional pathways), and the noise/history parameters
// governing construction. Call DefaultK3Config to obtain a configuration
// with conventional values, then override individual fields before
// passing it to NewK3. Intra-unit wiring (each K1's reciprocal pair,
// each K2's fixed quad topology) and the OB lateral couplings always use
// delay 0, matching the original model -- only the ten inter-regional
// pathways listed below carry their own configurable delay, since
// forward (feedforward/local) and feedback (medial olfactory tract)
// pathways operate on very different latencies in the original source.
type K3Config struct {
	// NumUnits is the number of parallel channels in the periglomerular
	// array and in the olfactory bulb layer; PG[i] feeds OB[i].
	NumUnits int
	// SigmoidQ is the saturation parameter shared by every unit in the
	// assembly.
	SigmoidQ Num
	// Seed seeds every per-node noise stream and the initial-state
	// randomization draws. Seed == 0 selects OS entropy, for runs that
	// don't need to be reproducible.
	Seed RngSeed
	// RngSeedGenBatchSize is the batch size used when refilling the seed
	// generators that seed every per-node stream.
	RngSeedGenBatchSize int

	// PGInterUnit (wPG_interUnit) is the pre-normalization PG-PG lateral
	// weight; NewK3 divides it by NumUnits-1.
	PGInterUnit Num
	// PGInterUnitDelay (dPG_interUnit) is the delay on every PG-PG
	// lateral connection.
	PGInterUnitDelay int
	// PGIntraUnitPS and PGIntraUnitSP (wPG_intraUnit.{ps,sp}) are the two
	// directed weights of each PG channel's internal K1 pair. The K1
	// pair itself carries no delay, matching the original source.
	PGIntraUnitPS, PGIntraUnitSP Num
	// PGToOB (wPG_OB) is the feedforward weight from PG[i]'s primary node
	// to OB[i]'s primary node.
	PGToOB Num
	// PGToOBDelay (dPG_OB) is the delay on the PG->OB feedforward
	// connection.
	PGToOBDelay int

	// OBWeights are the olfactory bulb's internal K2 weights. Intra-unit
	// K2 wiring carries no delay, matching the original source.
	OBWeights K2Weights
	// OBInterPrimary (wOB_inter[0]) couples OB primary nodes to each
	// other; NewK3 divides it by NumUnits-1 and tags every edge it
	// creates so it can be perturbed later as a group. This lateral
	// coupling carries no delay, matching the original source.
	OBInterPrimary Num
	// OBInterAntipodal (wOB_inter[1]) couples OB antipodal nodes to each
	// other; NewK3 divides it by NumUnits-1. This lateral coupling
	// carries no delay, matching the original source.
	OBInterAntipodal Num

	// AONWeights are the anterior olfactory nucleus's internal K2
	// weights. Intra-unit K2 wiring carries no delay.
	AONWeights K2Weights
	// PCWeights are the prepiriform cortex's internal K2 weights.
	// Intra-unit K2 wiring carries no delay.
	PCWeights K2Weights

	// OBToAONLot (wOB_AON_lot) is the per-channel weight from every OB
	// primary node to the AON primary node (the lateral olfactory
	// tract).
	OBToAONLot Num
	// OBToAONLotDelay (dOB_AON_lot) is the delay on the OB->AON LOT
	// connection.
	OBToAONLotDelay int
	// OBToPCLot (wOB_PC_lot) is the analogous per-channel weight into PC.
	OBToPCLot Num
	// OBToPCLotDelay (dOB_PC_lot) is the delay on the OB->PC LOT
	// connection.
	OBToPCLotDelay int
	// AONToPGMot (wAON_PG_mot) is the feedback weight from the AON
	// primary node to every PG primary node (the medial olfactory
	// tract).
	AONToPGMot Num
	// AONToPGMotDelay (dAON_PG_mot) is the delay on the AON->PG MOT
	// feedback connection -- a long delay relative to the forward
	// pathways, per the original source.
	AONToPGMotDelay int
	// AONToOBAntipodal (wAON_OB_toAntipodal) is the feedback weight from
	// the AON primary node to every OB antipodal node.
	AONToOBAntipodal Num
	// AONToOBAntipodalDelay (dAON_OB_toAntipodal) is the delay on the
	// AON->OB antipodal MOT feedback connection.
	AONToOBAntipodalDelay int
	// PCToAONAntipodal (wPC_AON_toAntipodal) is the weight from PC's
	// primary node to AON's antipodal node.
	PCToAONAntipodal Num
	// PCToAONAntipodalDelay (dPC_AON_toAntipodal) is the delay on the
	// PC->AON antipodal feedback connection.
	PCToAONAntipodalDelay int
	// PCToDPC (wPC_DPC) is the weight from PC's antipodal node to the
	// deep pyramid cell.
	//
	// THIS DEFAULT VALUE IS A GUESS!
	PCToDPC Num
	// PCToDPCDelay (dPC_DPC) is the delay on the PC antipodal->DPC
	// connection.
	PCToDPCDelay int
	// DPCToPC (wDPC_PC) is the feedback weight from the deep pyramid
	// cell to PC's antipodal node.
	//
	// THIS DEFAULT VALUE IS A GUESS!
	DPCToPC Num
	// DPCToPCDelay (dDPC_PC) is the delay on the DPC->PC antipodal
	// feedback connection.
	DPCToPCDelay int
	// DPCToOBAntipodal (wDPC_OB_toAntipodal) is the feedback weight from
	// the deep pyramid cell to every OB antipodal node.
	//
	// THIS DEFAULT VALUE IS A GUESS!
	DPCToOBAntipodal Num
	// DPCToOBAntipodalDelay (dDPC_OB_toAntipodal) is the delay on the
	// DPC->OB antipodal feedback connection -- the longest delay in the
	// assembly, per the original source.
	DPCToOBAntipodalDelay int

	// NoiseAON, NoisePG, NoiseOB are the Gaussian noise standard
	// deviations for the AON primary node, every PG primary node, and
	// every OB primary node, respectively.
	NoiseAON, NoisePG, NoiseOB Num
	// NoiseInitialK0States is the standard deviation used to randomize
	// every K0's initial position state.
	NoiseInitialK0States Num
	// NoiseObLateralWeights is the standard deviation used to perturb
	// the tagged OB primary lateral weights after construction.
	NoiseObLateralWeights Num

	// OutputHistorySize is the ActivationHistory capacity for the output
	// nodes: every OB primary and antipodal node, and the AON and PC
	// primary nodes.
	OutputHistorySize int
	// OutputActivityMonitoring is the rolling-variance window installed
	// on those same output histories; 0 disables monitoring.
	OutputActivityMonitoring int
	// NonOutputHistorySize is the ActivationHistory capacity for every
	// other node in the assembly (PG, DPC, and OB/AON/PC's unmonitored
	// nodes).
	NonOutputHistorySize int
}

// DefaultK3Config returns a configuration with conventional Freeman K3
// parameters: five channels, positive weights on every inter-regional
// pathway except PCToDPC (negative) and a negative OB antipodal lateral
// coupling, matching the sign conventions Validate enforces.
func DefaultK3Config() K3Config {
	return K3Config{
		NumUnits:            5,
		SigmoidQ:            DefaultSigmoidQ,
		Seed:                1,
		RngSeedGenBatchSize: 32,

		PGInterUnit:      0.1,
		PGInterUnitDelay: 1,
		PGIntraUnitPS:    0.3,
		PGIntraUnitSP:    0.3,
		PGToOB:           0.4,
		PGToOBDelay:      1,

		OBWeights:        K2Weights{Wee: 0.6, Wei: 0.4, Wie: -0.4, Wii: -0.2},
		OBInterPrimary:   0.2,
		OBInterAntipodal: -0.1,

		AONWeights: K2Weights{Wee: 0.5, Wei: 0.4, Wie: -0.4, Wii: -0.2},
		PCWeights:  K2Weights{Wee: 0.5, Wei: 0.4, Wie: -0.4, Wii: -0.2},

		OBToAONLot:            0.5,
		OBToAONLotDelay:       1,
		OBToPCLot:             0.5,
		OBToPCLotDelay:        1,
		AONToPGMot:            0.3,
		AONToPGMotDelay:       17,
		AONToOBAntipodal:      0.3,
		AONToOBAntipodalDelay: 25,
		PCToAONAntipodal:      0.3,
		PCToAONAntipodalDelay: 25,
		PCToDPC:               -0.2,
		PCToDPCDelay:          1,
		DPCToPC:               0.2,
		DPCToPCDelay:          1,
		DPCToOBAntipodal:      0.2,
		DPCToOBAntipodalDelay: 40,

		NoiseAON:              0.02,
		NoisePG:               0.02,
		NoiseOB:               0.02,
		NoiseInitialK0States:  0.05,
		NoiseObLateralWeights: 0.02,

		OutputHistorySize:        DefaultHistorySize,
		OutputActivityMonitoring: 50,
		NonOutputHistorySize:     DefaultHistorySize,
	}
}

// Validate checks unit counts, history sizes, delays, and every pathway
// weight's sign: the PG weights and every inter-regional weight must be
// positive except PCToDPC, which must be negative; OBInterPrimary must be
// non-negative and OBInterAntipodal non-positive. Each region's own
// internal K2Weights are checked as well.
func (c K3Config) Validate() error {
	if c.NumUnits < 1 {
		return ErrInvalidConfig("K3Config: NumUnits must be at least 1")
	}
	if c.OutputHistorySize < 1 || c.NonOutputHistorySize < 1 {
		return ErrInvalidConfig("K3Config: history sizes must be at least 1")
	}
	if c.OutputActivityMonitoring > c.OutputHistorySize {
		return ErrInvalidConfig("K3Config: OutputActivityMonitoring must not exceed OutputHistorySize")
	}
	if c.RngSeedGenBatchSize < 1 {
		return ErrInvalidConfig("K3Config: RngSeedGenBatchSize must be at least 1")
	}

	delays := map[string]int{
		"PGInterUnitDelay":      c.PGInterUnitDelay,
		"PGToOBDelay":           c.PGToOBDelay,
		"OBToAONLotDelay":       c.OBToAONLotDelay,
		"OBToPCLotDelay":        c.OBToPCLotDelay,
		"AONToPGMotDelay":       c.AONToPGMotDelay,
		"AONToOBAntipodalDelay": c.AONToOBAntipodalDelay,
		"PCToAONAntipodalDelay": c.PCToAONAntipodalDelay,
		"PCToDPCDelay":          c.PCToDPCDelay,
		"DPCToPCDelay":          c.DPCToPCDelay,
		"DPCToOBAntipodalDelay": c.DPCToOBAntipodalDelay,
	}
	for name, d := range delays {
		if d < 0 {
			return ErrInvalidConfig("K3Config: " + name + " must be non-negative")
		}
	}

	positive := map[string]Num{
		"PGInterUnit":      c.PGInterUnit,
		"PGIntraUnitPS":    c.PGIntraUnitPS,
		"PGIntraUnitSP":    c.PGIntraUnitSP,
		"PGToOB":           c.PGToOB,
		"OBToAONLot":       c.OBToAONLot,
		"OBToPCLot":        c.OBToPCLot,
		"AONToPGMot":       c.AONToPGMot,
		"AONToOBAntipodal": c.AONToOBAntipodal,
		"PCToAONAntipodal": c.PCToAONAntipodal,
		"DPCToPC":          c.DPCToPC,
		"DPCToOBAntipodal": c.DPCToOBAntipodal,
		"NoiseAON":         c.NoiseAON,
		"NoisePG":          c.NoisePG,
		"NoiseOB":          c.NoiseOB,
	}
	for name, w := range positive {
		if w <= 0 {
			return ErrInvalidConfig("K3Config: " + name + " must be positive")
		}
	}

	nonNegative := map[string]Num{
		"OBInterPrimary":        c.OBInterPrimary,
		"NoiseInitialK0States":  c.NoiseInitialK0States,
		"NoiseObLateralWeights": c.NoiseObLateralWeights,
	}
	for name, w := range nonNegative {
		if w < 0 {
			return ErrInvalidConfig("K3Config: " + name + " must be non-negative")
		}
	}

	if c.OBInterAntipodal > 0 {
		return ErrInvalidConfig("K3Config: OBInterAntipodal must be non-positive")
	}
	if c.PCToDPC >= 0 {
		return ErrInvalidConfig("K3Config: PCToDPC must be negative")
	}

	if err := c.OBWeights.validate(); err != nil {
		return err
	}
	if err := c.AONWeights.validate(); err != nil {
		return err
	}
	if err := c.PCWeights.validate(); err != nil {
		return err
	}
	return nil
}

// OutputHistoryBytes reports the memory footprint of a single output
// node's ActivationHistory (OB primary/antipodal, AON primary, PC
// primary) under this configuration -- a sweep over NumUnits and
// OutputHistorySize routinely multiplies this across hundreds of nodes,
// so a human-readable figure is useful diagnostic output.
func (c K3Config) OutputHistoryBytes() datasize.ByteSize {
	return HistoryByteSize(c.OutputHistorySize)
}

// NonOutputHistoryBytes reports the memory footprint of a single
// non-output node's ActivationHistory (PG, DPC, and OB/AON/PC's
// unmonitored nodes) under this configuration.
func (c K3Config) NonOutputHistoryBytes() datasize.ByteSize {
	return HistoryByteSize(c.NonOutputHistorySize)
}
