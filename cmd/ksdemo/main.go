// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ksdemo builds a K3 assembly, presents a single-channel pattern, and
// prints a short summary of the resulting activity -- the starting point
// for exploring a model interactively from the command line.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/wqferr/ksets-go/ksets"
)

func main() {
	units := flag.Int("units", 5, "number of PG/OB channels")
	channel := flag.Int("channel", 0, "PG channel to present the pattern on")
	seed := flag.Int64("seed", 1, "noise and initial-state seed (0 selects OS entropy)")
	restMs := flag.Float64("rest", 500, "initial rest period in milliseconds")
	presentMs := flag.Float64("present", 200, "pattern presentation duration in milliseconds")
	flag.Parse()

	cfg := ksets.DefaultK3Config()
	cfg.NumUnits = *units
	cfg.Seed = ksets.RngSeed(*seed)

	k3, err := ksets.NewK3(cfg, ksets.Num(*restMs))
	if err != nil {
		log.Fatalf("building assembly: %v", err)
	}

	if err := k3.PresentUnit(ksets.Num(*presentMs), *channel); err != nil {
		log.Fatalf("presenting pattern: %v", err)
	}

	fmt.Printf("assembly: %d channels, presented channel %d for %gms after %gms rest\n",
		*units, *channel, *presentMs, *restMs)
	fmt.Println("unit\tOB primary\tOB antipodal")
	for i := 0; i < k3.OB().Len(); i++ {
		ob := k3.OB().Unit(i)
		fmt.Printf("%d\t%.4f\t%.4f\n", i, ob.PrimaryNode().GetCurrentOutput(), ob.AntipodalNode().GetCurrentOutput())
	}
	fmt.Printf("AON\t%.4f\n", k3.AON().PrimaryNode().GetCurrentOutput())
	fmt.Printf("PC\t%.4f\n", k3.PC().PrimaryNode().GetCurrentOutput())
	fmt.Printf("DPC\t%.4f\n", k3.DPC().GetCurrentOutput())
}
