// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksets

import "strconv"

// K2Layer is an array of K2 units representing a cortical sheet (the
// olfactory bulb, in a K3): each unit receives its own external
// stimulus, and units are coupled laterally through their primary
// (excitatory) or antipodal (inhibitory) nodes. Two aggregate histories
// track the layer-average primary and antipodal output on every tick,
// giving a single observability point for the whole sheet.
type K2Layer struct {
	units []*K2

	avgPrimary   *ActivationHistory
	avgAntipodal *ActivationHistory
}

// NewK2Layer builds n independently-wired K2 units sharing the given
// weights, with no lateral coupling yet installed.
func NewK2Layer(name string, n int, w K2Weights, delay int, sigmoidQ Num, historySize int) *K2Layer {
	if n < 1 {
		panic(ErrInvalidConfig("K2Layer: n must be at least 1"))
	}
	l := &K2Layer{
		units:        make([]*K2, n),
		avgPrimary:   NewActivationHistory(historySize),
		avgAntipodal: NewActivationHistory(historySize),
	}
	for i := range l.units {
		l.units[i] = NewK2(unitName(name, i), w, delay, sigmoidQ, historySize)
	}
	return l
}

func unitName(layer string, i int) string {
	return layer + "[" + strconv.Itoa(i) + "]"
}

// Len returns the number of units in the layer.
func (l *K2Layer) Len() int {
	return len(l.units)
}

// Unit returns the i-th K2.
func (l *K2Layer) Unit(i int) *K2 {
	return l.units[i]
}

// Units returns the layer's units in construction order.
func (l *K2Layer) Units() []*K2 {
	return l.units
}

// AveragePrimaryHistory is the delay-line of the layer-wide mean
// excitatory output, updated every CommitNextState.
func (l *K2Layer) AveragePrimaryHistory() *ActivationHistory {
	return l.avgPrimary
}

// AverageAntipodalHistory is the delay-line of the layer-wide mean
// inhibitory output, updated every CommitNextState.
func (l *K2Layer) AverageAntipodalHistory() *ActivationHistory {
	return l.avgAntipodal
}

// ConnectPrimaryNodesLaterally wires every unit's primary node to every
// other unit's primary node with the given weight and delay, scaled by
// 1/(n-1) so each unit's total lateral drive stays independent of layer
// size. tag is attached to every edge created, or may be nil. No-op on a
// single-unit layer.
func (l *K2Layer) ConnectPrimaryNodesLaterally(weight Num, delay int, tag *ConnTag) {
	if len(l.units) < 2 {
		return
	}
	scaled := weight / Num(len(l.units)-1)
	for i, dst := range l.units {
		for j, src := range l.units {
			if i == j {
				continue
			}
			dst.PrimaryNode().AddInboundConnection(src.PrimaryNode(), scaled, delay, tag)
		}
	}
}

// ConnectAntipodalNodesLaterally wires every unit's antipodal node to
// every other unit's antipodal node with the given weight and delay,
// scaled by 1/(n-1). tag is attached to every edge created, or may be
// nil. No-op on a single-unit layer.
func (l *K2Layer) ConnectAntipodalNodesLaterally(weight Num, delay int, tag *ConnTag) {
	if len(l.units) < 2 {
		return
	}
	scaled := weight / Num(len(l.units)-1)
	for i, dst := range l.units {
		for j, src := range l.units {
			if i == j {
				continue
			}
			dst.AntipodalNode().AddInboundConnection(src.AntipodalNode(), scaled, delay, tag)
		}
	}
}

// SetExternalStimulus drives the i-th unit's primary node.
func (l *K2Layer) SetExternalStimulus(i int, u Num) {
	l.units[i].SetExternalStimulus(u)
}

// CalculateNextState stages the next tick for every unit in the layer.
func (l *K2Layer) CalculateNextState() {
	for _, u := range l.units {
		u.CalculateNextState()
	}
}

// CommitNextState applies every unit's staged state, then updates the
// layer-average primary and antipodal histories from the freshly
// committed outputs.
func (l *K2Layer) CommitNextState() {
	var sumPrimary, sumAntipodal Num
	for _, u := range l.units {
		u.CommitNextState()
		sumPrimary += u.PrimaryNode().GetCurrentOutput()
		sumAntipodal += u.AntipodalNode().GetCurrentOutput()
	}
	n := Num(len(l.units))
	l.avgPrimary.Put(sumPrimary / n)
	l.avgAntipodal.Put(sumAntipodal / n)
}

// CalculateAndCommitNextState advances the whole layer one full tick.
func (l *K2Layer) CalculateAndCommitNextState() {
	l.CalculateNextState()
	l.CommitNextState()
}

// AdvanceNoise draws the next noise sample for every unit's nodes that
// have a stream attached.
func (l *K2Layer) AdvanceNoise() {
	for _, u := range l.units {
		u.AdvanceNoise()
	}
}

// RandomizeK0States draws a fresh x state for every node in every unit,
// leaving y at rest.
func (l *K2Layer) RandomizeK0States(source func() Num) {
	for _, u := range l.units {
		u.RandomizeK0States(source)
	}
}
