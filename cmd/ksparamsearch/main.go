// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ksparamsearch runs a K3 assembly with one set of ten connection weights
// given on the command line and emits each olfactory bulb unit's full
// activation history as a CSV row, for an external driver that sweeps
// the weights to score against a target response.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/wqferr/ksets-go/ksets"
)

const numUnits = 5

var argNames = [10]string{
	"wOB_AON", "wOB_PC", "wAON_OB", "wAON_PG", "wPC_AON",
	"wDPC_OB", "wDPC_PC", "wPC_DPC", "wOB_LAT_E", "wOB_LAT_I",
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: ksparamsearch %s %s %s %s %s %s %s %s %s %s\n",
		argNames[0], argNames[1], argNames[2], argNames[3], argNames[4],
		argNames[5], argNames[6], argNames[7], argNames[8], argNames[9])
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) != len(argNames) {
		usage()
	}

	w := make([]ksets.Num, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 32)
		if err != nil {
			log.Fatalf("parsing %s (%q): %v", argNames[i], a, err)
		}
		w[i] = ksets.Num(v)
	}

	cfg := ksets.DefaultK3Config()
	cfg.NumUnits = numUnits
	cfg.Seed = 1
	// The CSV row must hold exactly the 5000ms sweep protocol's worth of
	// samples; NewK3's own rest period runs before the protocol starts, so
	// sizing history to exactly that many ticks leaves precisely the
	// protocol's output in the ring once the run completes.
	cfg.OutputHistorySize = ksets.ODEMillisecondsToIters(5000)
	cfg.OBToAONLot = w[0]
	cfg.OBToPCLot = w[1]
	cfg.AONToOBAntipodal = w[2]
	cfg.AONToPGMot = w[3]
	cfg.PCToAONAntipodal = w[4]
	cfg.DPCToOBAntipodal = w[5]
	cfg.DPCToPC = w[6]
	cfg.PCToDPC = w[7]
	cfg.OBInterPrimary = w[8]
	cfg.OBInterAntipodal = w[9]

	k3, err := ksets.NewK3(cfg, 500)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	k3.Rest(1000)
	if err := k3.PresentUnit(1000, 0); err != nil {
		log.Fatalf("presenting first channel: %v", err)
	}
	k3.Rest(1000)
	if err := k3.PresentUnit(1000, cfg.NumUnits-1); err != nil {
		log.Fatalf("presenting last channel: %v", err)
	}
	k3.Rest(1000)

	out := csv.NewWriter(os.Stdout)
	defer out.Flush()
	for i := 0; i < k3.OB().Len(); i++ {
		h := k3.OB().Unit(i).PrimaryNode().History()
		row := make([]string, 0, h.Size()+1)
		row = append(row, fmt.Sprintf("unit%d", i))
		for _, v := range h.TailN(h.Size()) {
			row = append(row, strconv.FormatFloat(float64(v), 'f', 6, 32))
		}
		if err := out.Write(row); err != nil {
			log.Fatalf("writing csv row: %v", err)
		}
	}
}
