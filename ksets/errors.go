// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksets

import (
	"errors"
	"fmt"
	"log"
)

// Repr renders a diagnostic identifier for a node within its collection,
// in the canonical "node <id> @ <collection name>" form used by every
// fault message that can name a specific K0.
func Repr(collectionName string, id int) string {
	if collectionName == "" {
		collectionName = "<unnamed>"
	}
	return fmt.Sprintf("node %d @ %s", id, collectionName)
}

// ErrInvalidConfig wraps a configuration validity failure (weight sign
// violations, zero unit counts, monitoring window larger than history)
// as a recoverable fault.
func ErrInvalidConfig(msg string) error {
	return errors.New(msg)
}

// ErrPatternSize wraps a present() pattern/layer-size mismatch as a
// recoverable fault.
func ErrPatternSize(got, want int) error {
	return fmt.Errorf("pattern length %d does not match input layer size %d", got, want)
}

// ErrHistoryOffset wraps an out-of-range ActivationHistory offset or
// window as a recoverable fault.
func ErrHistoryOffset(msg string) error {
	return errors.New(msg)
}

// fatalNoiseStream is raised when AdvanceNoise is called on a K0 with no
// noise stream attached -- this is a logic error in the caller's wiring,
// not a runtime condition the model can recover from, so it terminates
// the program the same way the original implementation does for
// unrecoverable faults.
func fatalNoiseStream(collectionName string, id int) {
	msg := fmt.Sprintf("advanceNoise called with no noise stream attached: %s", Repr(collectionName, id))
	log.Printf(msg)
	panic(msg)
}
