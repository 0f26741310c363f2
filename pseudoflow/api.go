// SPDX-License-Identifier: MIT
// Package: hpf/pseudoflow
//
// api.go — SolveFlat, the core entry point. All validation happens here
// before any pool is allocated, per errors.go's stated policy.
package pseudoflow

import "fmt"

// validateInput checks every structural precondition before a single arc or
// node pool is allocated.
func validateInput(in *Input) error {
	if in.NumNodes < 2 {
		return &InputError{Reason: "num_nodes must be >= 2"}
	}
	if in.Source < 0 || in.Source >= in.NumNodes {
		return &InputError{Reason: "source out of range"}
	}
	if in.Sink < 0 || in.Sink >= in.NumNodes {
		return &InputError{Reason: "sink out of range"}
	}
	if in.Source == in.Sink {
		return &InputError{Reason: "source and sink must differ"}
	}
	if in.LambdaLow > in.LambdaHigh {
		return &InputError{Reason: "lambda_low must be <= lambda_high"}
	}

	for _, a := range in.Arcs {
		if a.From < 0 || a.From >= in.NumNodes || a.To < 0 || a.To >= in.NumNodes {
			return &InputError{Reason: "arc endpoint out of range"}
		}
		if a.From == a.To {
			return &InputError{Reason: "self-loop arc not permitted"}
		}
		if a.From == in.Source && a.MultCap < 0 {
			return &MultiplierPolarityError{From: a.From, To: a.To, MultCap: a.MultCap, sentinel: ErrMultiplierPolaritySourceArc}
		}
		if a.To == in.Sink && a.MultCap > 0 {
			return &MultiplierPolarityError{From: a.From, To: a.To, MultCap: a.MultCap, sentinel: ErrMultiplierPolaritySinkArc}
		}
		if a.From != in.Source && a.To != in.Sink && a.MultCap != 0 {
			return &InputError{Reason: fmt.Sprintf("internal arc (%d,%d) must have zero mult_cap", a.From, a.To)}
		}
	}

	return nil
}

// SolveFlat is the core pseudoflow contract: given a flat Input, return a
// minimal min-cut (non-parametric) or the full breakpoint sequence of
// minimal min-cuts (parametric).
func SolveFlat(in *Input, opts ...Option) (*Result, error) {
	readWatch := startStopwatch()
	err := validateInput(in)
	readSeconds := readWatch.elapsedSeconds()
	if err != nil {
		return nil, err
	}

	initWatch := startStopwatch()
	cfg := newConfig(opts...)
	initSeconds := initWatch.elapsedSeconds()

	// Capacities are affine in λ, so resolving every arc at both ends of the
	// range catches a negative capacity before any pool is allocated.
	ends := []float64{in.LambdaLow}
	if in.Parametric {
		ends = append(ends, in.LambdaHigh)
	}
	for _, lambda := range ends {
		for _, a := range in.Arcs {
			if _, err := resolveCapacity(a, lambda, in, cfg); err != nil {
				return nil, err
			}
		}
	}

	solveWatch := startStopwatch()
	var total Stats
	result := &Result{}

	var final *solver
	if !in.Parametric {
		s, err := solveOnce(in, cfg, in.LambdaLow)
		if err != nil {
			return nil, err
		}
		total.add(s.stats)
		result.Cuts = [][]bool{extractCut(s)}
		final = s
	} else {
		sw, sHi, err := runParametric(in, cfg, &total)
		if err != nil {
			return nil, err
		}
		result.Breakpoints = sw.breakpoints
		result.Cuts = sw.cuts
		final = sHi
	}
	solveSeconds := solveWatch.elapsedSeconds()

	if cfg.diagnostics {
		result.diag = snapshotDiagnostics(final)
	}
	result.flows = snapshotFlows(final)
	result.Stats = total
	result.Times = Times{
		ReadDataSeconds:       readSeconds,
		InitializationSeconds: initSeconds,
		SolveSeconds:          solveSeconds,
	}

	return result, nil
}

// snapshotFlows reads back the recovered maximum flow on every arc, in
// input order, from the solver's latest cut extraction (arc records are
// 1:1 with Input.Arcs).
func snapshotFlows(s *solver) []float64 {
	flows := make([]float64, len(s.recoveredFlows))
	copy(flows, s.recoveredFlows)

	return flows
}

// snapshotDiagnostics reads back per-node state of the preserved terminal
// pseudoflow — labels, tree arcs, and any stranded excess. ParentArc is
// the Input.Arcs index of the node's tree arc, or -1 at a root.
func snapshotDiagnostics(s *solver) []NodeState {
	out := make([]NodeState, s.numNodes)
	for i := 0; i < s.numNodes; i++ {
		parentArc := s.nodes[i].arcToParent
		if s.nodes[i].parent == -1 {
			parentArc = -1
		}
		out[i] = NodeState{
			Node:      i,
			Label:     s.nodes[i].label,
			Excess:    s.nodes[i].excess,
			ParentArc: parentArc,
		}
	}

	return out
}
