// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksets

import "github.com/chewxy/math32"

func sqrtNum(x Num) Num {
	if x <= 0 {
		return 0
	}
	return math32.Sqrt(x)
}

// ActivationHistory is a fixed-capacity ring of past K0 outputs. It
// doubles as the delay line that inbound connections read from (offset
// 0 is the most recently committed output) and as an observability
// surface: an optional monitored window maintains incrementally updated
// sum/variance-numerator so Variance/Stddev over that window are O(1).
type ActivationHistory struct {
	buf   []Num
	start int // index of the oldest element in buf
	n     int // number of Puts made so far

	window     int // 0 disables monitoring
	windowSum  Num
	windowVarN Num
}

// NewActivationHistory returns a zero-filled history of the given
// capacity. A capacity below 1 selects DefaultHistorySize.
func NewActivationHistory(capacity int) *ActivationHistory {
	if capacity < 1 {
		capacity = DefaultHistorySize
	}
	return &ActivationHistory{buf: make([]Num, capacity)}
}

// Size returns the history's fixed capacity H.
func (h *ActivationHistory) Size() int {
	return len(h.buf)
}

// Put appends a new value, evicting the oldest, and updates the
// monitored window (if any) using the incremental rolling-variance
// update from the component design.
func (h *ActivationHistory) Put(v Num) {
	// oldest is the value leaving the monitored window, not the buffer.
	var oldest Num
	if h.window > 0 {
		oldest = h.Get(h.window - 1)
	}
	h.buf[h.start] = v
	h.start = (h.start + 1) % len(h.buf)
	h.n++

	if h.window > 0 {
		w := Num(h.window)
		oldMean := h.windowSum / w
		newSum := h.windowSum - oldest + v
		newMean := newSum / w
		h.windowVarN += (v + oldest - oldMean - newMean) * (v - oldest)
		h.windowSum = newSum
	}
}

// idx converts a "steps back from most recent" offset into a buf index.
// offset 0 is the element just Put.
func (h *ActivationHistory) idx(offset int) int {
	// h.start points one past the most recent element.
	return ((h.start-1-offset)%len(h.buf) + len(h.buf)) % len(h.buf)
}

// Get returns the element offset steps back from the most recent Put
// (0 = just put, 1 = previous, ...). Panics if offset >= Size().
func (h *ActivationHistory) Get(offset int) Num {
	if offset < 0 || offset >= len(h.buf) {
		panic(ErrHistoryOffset("ActivationHistory.Get: offset out of range"))
	}
	return h.buf[h.idx(offset)]
}

// Resize changes capacity to newSize, preserving the most-recent tail
// (zero-filling if growing).
func (h *ActivationHistory) Resize(newSize int) {
	if newSize < 1 {
		panic(ErrHistoryOffset("ActivationHistory.Resize: size must be positive"))
	}
	tail := h.TailN(min(newSize, len(h.buf)))
	nb := make([]Num, newSize)
	// place tail at the end, oldest-first, zero-padding the front
	copy(nb[newSize-len(tail):], tail)
	h.buf = nb
	h.start = 0 // buf is laid out oldest-first starting fresh at index 0
	if h.window > newSize {
		h.SetActivityMonitoring(0)
	}
}

// TailN returns the last n committed values, oldest-first. n must be
// <= Size().
func (h *ActivationHistory) TailN(n int) []Num {
	if n < 0 || n > len(h.buf) {
		panic(ErrHistoryOffset("ActivationHistory.TailN: length exceeds history size"))
	}
	out := make([]Num, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = h.Get(i)
	}
	return out
}

// SetActivityMonitoring installs (window > 0) or clears (window == 0) a
// rolling-window variance tracker. window must not exceed Size().
func (h *ActivationHistory) SetActivityMonitoring(window int) {
	if window > len(h.buf) {
		panic(ErrHistoryOffset("ActivationHistory.SetActivityMonitoring: window exceeds history size"))
	}
	h.window = window
	h.windowSum = 0
	h.windowVarN = 0
	if window > 0 {
		tail := h.TailN(window)
		for _, v := range tail {
			h.windowSum += v
		}
		mean := h.windowSum / Num(window)
		for _, v := range tail {
			d := v - mean
			h.windowVarN += d * d
		}
	}
}

// MonitoringWindow returns the currently active monitoring window size,
// or 0 if monitoring is disabled.
func (h *ActivationHistory) MonitoringWindow() int {
	return h.window
}

// Variance returns the O(1) variance over the active monitored window.
// Panics if no window is installed; use Variance(w) for an ad-hoc window.
func (h *ActivationHistory) Variance() Num {
	if h.window == 0 {
		panic(ErrHistoryOffset("ActivationHistory.Variance: no monitored window installed"))
	}
	return varianceFromNumerator(h.windowVarN, h.window)
}

// Stddev returns the O(1) standard deviation over the active monitored
// window.
func (h *ActivationHistory) Stddev() Num {
	return sqrtNum(h.Variance())
}

// VarianceWindow returns the variance over an ad-hoc window of the last
// w samples, computed with Welford's online algorithm in O(w).
func (h *ActivationHistory) VarianceWindow(w int) Num {
	if w > len(h.buf) {
		panic(ErrHistoryOffset("ActivationHistory.VarianceWindow: window exceeds history size"))
	}
	if w < 2 {
		return 0
	}
	var mean, m2 Num
	for i := 0; i < w; i++ {
		x := h.Get(w - 1 - i)
		count := Num(i + 1)
		delta := x - mean
		mean += delta / count
		delta2 := x - mean
		m2 += delta * delta2
	}
	return varianceFromNumerator(m2, w)
}

// StddevWindow returns the standard deviation over an ad-hoc window of
// the last w samples.
func (h *ActivationHistory) StddevWindow(w int) Num {
	return sqrtNum(h.VarianceWindow(w))
}

// clone returns an independent copy of h, sharing no backing storage.
func (h *ActivationHistory) clone() *ActivationHistory {
	nb := make([]Num, len(h.buf))
	copy(nb, h.buf)
	return &ActivationHistory{
		buf:        nb,
		start:      h.start,
		n:          h.n,
		window:     h.window,
		windowSum:  h.windowSum,
		windowVarN: h.windowVarN,
	}
}

func varianceFromNumerator(varNum Num, window int) Num {
	if window < 2 {
		return 0
	}
	return varNum / Num(window-1)
}
