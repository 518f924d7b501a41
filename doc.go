// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ksetsgo is the overall repository for a Go implementation of
Freeman's K-set hierarchy of coupled nonlinear oscillators, used to model
the mesoscopic dynamics of the mammalian olfactory system.

This top level of the repository has no functional code -- everything is
organized into the following sub-packages:

* ksets: the simulation core -- ActivationHistory, K0 through K3, and
their configuration structs. This is the only package a caller needs to
drive a model.

* ksets/ksrand: deterministic per-stream Gaussian noise sources and
batch-refilled seed generation, kept separate from ksets so that the
core never depends on a shared or global random source.

* cmd/ksdemo: a small runnable program that builds a K3, presents a
pattern, and prints a summary -- the starting point for exploring a
model interactively.

* cmd/ksparamsearch: the parameter-search driver used to sweep K3
connection weights and emit per-unit activation traces as CSV.
*/
package ksetsgo
