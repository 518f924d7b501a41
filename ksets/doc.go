// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ksets implements Freeman's K-set hierarchy of coupled
// second-order nonlinear oscillators: K0 (single unit), K1 (reciprocally
// coupled pair), K2 (excitatory/inhibitory quad), K2Layer (array of K2 units
// with lateral coupling), and K3 (the full olfactory assembly: input
// cells, olfactory bulb, anterior olfactory nucleus, prepiriform cortex,
// and deep pyramid cells).
//
// Every unit advances in fixed-step lockstep under a two-phase protocol
// (CalculateNextState then CommitNextState) that freezes the whole
// graph's neighborhood during calculation, so that within-tick
// iteration order never matters. Units read each other's outputs
// through a delay-line activation history rather than direct state
// access, which is both the feedback mechanism and the observability
// surface (rolling-window variance/stddev).
package ksets
