// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ksrand supplies the noise sources a ksets assembly needs:
// independent per-node Gaussian streams, and a batch-refilled seed
// generator so a large number of those streams can be seeded
// deterministically without drawing from a single shared generator (which
// would serialize otherwise-independent nodes and make their noise
// order-dependent).
package ksrand

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
)

// NewSeedGenerator returns a function that yields a fresh int64 seed on
// every call, drawn from a master generator seeded with seed. Seeds are
// produced in batches of batchSize so that constructing many streams
// doesn't thrash a single generator one draw at a time; the batch is
// opaque to callers, who just call the returned function once per stream
// they need to seed.
func NewSeedGenerator(seed int64, batchSize int) func() int64 {
	if batchSize < 1 {
		batchSize = 1
	}
	master := mathrand.New(mathrand.NewSource(seed))
	batch := make([]int64, 0, batchSize)
	return func() int64 {
		if len(batch) == 0 {
			batch = batch[:batchSize]
			for i := range batch {
				batch[i] = master.Int63()
			}
		}
		s := batch[len(batch)-1]
		batch = batch[:len(batch)-1]
		return s
	}
}

// NewOSSeedGenerator is NewSeedGenerator seeded from the OS's
// cryptographically secure entropy source rather than a caller-supplied
// seed, for runs that don't need to be reproducible.
func NewOSSeedGenerator(batchSize int) func() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand.Read failing means the OS entropy source itself is
		// broken; fall back to a fixed seed rather than leaving the
		// generator uninitialized.
		return NewSeedGenerator(1, batchSize)
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]))
	return NewSeedGenerator(seed, batchSize)
}

// NewGaussianStream returns a function that yields independent draws from
// a zero-mean normal distribution with the given standard deviation,
// seeded deterministically from seed. Two streams built with the same
// seed and stddev produce identical sequences.
func NewGaussianStream(stddev float32, seed int64) func() float32 {
	r := mathrand.New(mathrand.NewSource(seed))
	sd := float64(stddev)
	return func() float32 {
		return float32(r.NormFloat64() * sd)
	}
}
