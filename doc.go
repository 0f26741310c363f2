// Package hpf is the module root for github.com/katalvlaran/hpf — a pure-Go
// implementation of Hochbaum's pseudoflow (HPF) algorithm for minimum s–t
// cuts, including the parametric variant that tracks how the optimal cut
// evolves as arc capacities change with a scalar parameter λ.
//
// Sub-packages:
//
//   - pseudoflow — the solver core: the flat SolveFlat contract, the
//     parametric sweep with breakpoint recovery, stats and timers.
//   - netgraph   — a small thread-safe container for directed capacitated
//     networks with per-arc parametric capacities, consumed by
//     pseudoflow.SolveNetwork.
//
// Design principles:
//
//   - Pure Go: no cgo, no hidden dependencies.
//   - Deterministic: identical inputs yield identical breakpoints and cuts.
//   - Allocation discipline: solver pools are sized once per max-flow solve;
//     the inner processing loops allocate nothing.
//
// Start with pseudoflow.SolveFlat for the flat arc-matrix contract,
// pseudoflow.SolveNetwork to feed a netgraph.Network directly, or
// pseudoflow.SolveWeightedDirected for networks already held as
// gonum.org/v1/gonum graphs.
package hpf
