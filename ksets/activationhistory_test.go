// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksets

import (
	"testing"

	"github.com/chewxy/math32"
)

const difTol = Num(1.0e-4)

func TestActivationHistoryFreshIsZero(t *testing.T) {
	h := NewActivationHistory(10)
	for i := 0; i < 10; i++ {
		if h.Get(i) != 0 {
			t.Errorf("offset %d: want 0, got %v", i, h.Get(i))
		}
	}
}

func TestActivationHistoryPutGet(t *testing.T) {
	h := NewActivationHistory(5)
	vals := []Num{1, 2, 3, 4, 5, 6, 7}
	for _, v := range vals {
		h.Put(v)
	}
	// last 5 puts were 3,4,5,6,7 -- offset 0 is most recent (7)
	want := []Num{7, 6, 5, 4, 3}
	for i, w := range want {
		if got := h.Get(i); got != w {
			t.Errorf("offset %d: want %v, got %v", i, w, got)
		}
	}
	if h.Size() != 5 {
		t.Errorf("Size: want 5, got %d", h.Size())
	}
}

func TestActivationHistoryResizePreservesTail(t *testing.T) {
	h := NewActivationHistory(5)
	for _, v := range []Num{1, 2, 3, 4, 5} {
		h.Put(v)
	}
	h.Resize(3)
	want := []Num{5, 4, 3}
	for i, w := range want {
		if got := h.Get(i); got != w {
			t.Errorf("offset %d: want %v, got %v", i, w, got)
		}
	}
	h.Resize(6)
	if h.Size() != 6 {
		t.Errorf("Size after grow: want 6, got %d", h.Size())
	}
	if h.Get(0) != 5 {
		t.Errorf("most recent after grow: want 5, got %v", h.Get(0))
	}
}

func TestActivationHistoryMonitoringMatchesWelford(t *testing.T) {
	h := NewActivationHistory(200)
	h.SetActivityMonitoring(20)

	src := int64(42)
	next := func() Num {
		src = src*6364136223846793005 + 1442695040888963407
		return Num(float64(uint64(src)>>11)/(1<<53))*2 - 1
	}

	for i := 0; i < 150; i++ {
		h.Put(next())
		rolling := h.Variance()
		direct := h.VarianceWindow(20)
		dif := math32.Abs(rolling - direct)
		rel := dif
		if math32.Abs(direct) > 1e-6 {
			rel = dif / math32.Abs(direct)
		}
		if rel > difTol {
			t.Fatalf("iter %d: rolling variance %v vs direct %v (dif %v)", i, rolling, direct, dif)
		}
	}
}

func TestActivationHistorySetActivityMonitoringRejectsOversizedWindow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for window > history size")
		}
	}()
	h := NewActivationHistory(10)
	h.SetActivityMonitoring(11)
}

func TestActivationHistoryVarianceWithoutMonitoringPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for Variance() with no monitored window")
		}
	}()
	h := NewActivationHistory(10)
	h.Variance()
}

func TestActivationHistoryZeroWindowVarianceIsZero(t *testing.T) {
	h := NewActivationHistory(10)
	if v := h.VarianceWindow(1); v != 0 {
		t.Errorf("window of size 1: want variance 0, got %v", v)
	}
	if v := h.VarianceWindow(0); v != 0 {
		t.Errorf("window of size 0: want variance 0, got %v", v)
	}
}
