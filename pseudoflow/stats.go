// SPDX-License-Identifier: MIT
// Package: hpf/pseudoflow
//
// stats.go — the five event counters and three wall-clock timers exposed
// on every Result.
package pseudoflow

import "time"

// Stats holds the solver's five event counters. All fields are
// cumulative across every max-flow solve performed during one SolveFlat
// call (i.e. across the whole parametric sweep, not just the first λ).
type Stats struct {
	NumArcScans uint64
	NumMergers  uint64
	NumPushes   uint64
	NumRelabels uint64
	NumGap      uint64
}

// add accumulates another Stats into the receiver (used to roll per-λ
// solver stats into the Result-level total during a parametric sweep).
func (s *Stats) add(o Stats) {
	s.NumArcScans += o.NumArcScans
	s.NumMergers += o.NumMergers
	s.NumPushes += o.NumPushes
	s.NumRelabels += o.NumRelabels
	s.NumGap += o.NumGap
}

// Times holds the solve's three wall-clock durations, reported in
// seconds at the Result boundary.
type Times struct {
	ReadDataSeconds       float64
	InitializationSeconds float64
	SolveSeconds          float64
}

// stopwatch is an internal helper timing one phase; it is never exposed.
type stopwatch struct {
	start time.Time
}

func startStopwatch() stopwatch { return stopwatch{start: time.Now()} }

func (w stopwatch) elapsedSeconds() float64 { return time.Since(w.start).Seconds() }
