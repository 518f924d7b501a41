// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksets

import (
	"github.com/c2h5oh/datasize"
	"github.com/chewxy/math32"
)

// Num is the scalar numeric type used throughout ksets for weights,
// states, and history -- single precision is sufficient for this model
// and keeps the hot per-tick path from promoting to float64.
type Num = float32

// RngSeed is the integer type used to seed per-node noise streams.
type RngSeed = int64

// ConnTag optionally marks a K0Connection so it can be found again
// later (e.g. for perturbation), without identifying it by position.
type ConnTag = int32

// DefaultHistorySize is the default ActivationHistory capacity.
const DefaultHistorySize = 1000

// ODEStepSize is the fixed RK4 step, in simulated milliseconds.
const ODEStepSize Num = 0.5

// odeStepReciprocal caches 1/ODEStepSize for the ms->iters conversion.
const odeStepReciprocal Num = 1 / ODEStepSize

// ODEMillisecondsToIters returns the number of fixed-step ticks needed
// to cover the given duration, rounding up.
func ODEMillisecondsToIters(milliseconds Num) int {
	return int(math32.Ceil(milliseconds * odeStepReciprocal))
}

// ODEItersToMilliseconds is the inverse of ODEMillisecondsToIters.
func ODEItersToMilliseconds(nIter int) Num {
	return Num(nIter) * ODEStepSize
}

// ODEDecayRate (a) and ODERiseRate (b) parameterize the K0 second-order
// ODE: dx/dt = y; dy/dt = -(a+b)y + ab(u-x).
const (
	ODEDecayRate Num = 0.22
	ODERiseRate  Num = 0.72
)

// DefaultSigmoidQ is the default saturation parameter for Sigmoid.
const DefaultSigmoidQ Num = 5.0

// Sigmoid is the asymmetric activation nonlinearity used to turn a K0's
// ODE position component into an output: it saturates at +q for large x
// and at -1 for large negative x.
func Sigmoid(x, q Num) Num {
	return math32.Max(
		q*(1-math32.Exp(-(math32.Exp(x)-1)/q)),
		Num(-1.0),
	)
}

// HistoryByteSize reports the memory footprint of an ActivationHistory
// of the given capacity, for diagnostics (parameter sweeps routinely
// push outputHistorySize into the thousands across hundreds of units).
func HistoryByteSize(capacity int) datasize.ByteSize {
	return datasize.ByteSize(capacity * 4) // 4 bytes per Num (float32)
}
