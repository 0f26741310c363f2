// SPDX-License-Identifier: MIT
// Package: hpf/pseudoflow
//
// types.go — the public, language-neutral solve contract, expressed as Go
// structs instead of a flat C-style buffer quadruple.
package pseudoflow

// ArcSpec is one directed, parametrically-capacitated arc:
// c(λ) = ConstCap + λ·MultCap.
type ArcSpec struct {
	From, To          int
	ConstCap, MultCap float64
}

// Input is the flat, language-neutral solve request.
//
//   - NumNodes must be ≥ 2; nodes are identified 0..NumNodes-1.
//   - Source and Sink must be distinct valid node indices (not required to
//     be 0 and NumNodes-1, though that is the conventional layout a front
//     end remaps to).
//   - Arcs[i].From/To must be valid node indices; self-loops are rejected.
//   - MultCap must be ≥ 0 on source-adjacent arcs, ≤ 0 on sink-adjacent
//     arcs, and exactly 0 on internal arcs.
//   - LambdaLow/LambdaHigh bound the parametric sweep; for a non-parametric
//     call set Parametric = false and leave every MultCap at 0.
type Input struct {
	NumNodes              int
	Arcs                  []ArcSpec
	Source, Sink          int
	LambdaLow, LambdaHigh float64
	Parametric            bool
}

// Result is the flat solve response.
//
//   - Breakpoints is nil when the originating Input was non-parametric
//     (the boundary's "[none]" convention — see DESIGN.md Open Question
//     #2); otherwise it is strictly increasing and ends at LambdaHigh.
//   - Cuts[j][i] is true iff node i is on the source side of the minimal
//     min-cut at λ = Breakpoints[j] (or at the sole non-parametric cut
//     when Breakpoints is nil).
//   - There is no Free method: Result is an ordinary garbage-collected
//     value (see DESIGN.md Open Question #5).
type Result struct {
	Breakpoints []float64
	Cuts        [][]bool
	Stats       Stats
	Times       Times

	// flows and diag back the flow-readback and diagnostics supplements;
	// diag is populated only when WithDiagnostics(true) was set, so the
	// default path pays nothing for it.
	flows []float64
	diag  []NodeState

	// nodeIDs is set only by SolveNetwork and nodeNums only by
	// SolveWeightedDirected, translating flat node indices back to the
	// caller's original node identifiers for CutFor / CutForNode.
	nodeIDs  []string
	nodeNums []int64
}

// CutFor reports whether node id sits on the source side of the cut at
// Cuts[segment], translating back from the flat node index SolveNetwork
// assigned it. Returns false, false if id is unknown or the Result did not
// originate from SolveNetwork.
func (r *Result) CutFor(segment int, id string) (onSourceSide bool, ok bool) {
	if r.nodeIDs == nil || segment < 0 || segment >= len(r.Cuts) {
		return false, false
	}
	for i, nid := range r.nodeIDs {
		if nid == id {
			return r.Cuts[segment][i], true
		}
	}

	return false, false
}

// CutForNode reports whether node id sits on the source side of the cut at
// Cuts[segment], translating back from the flat index SolveWeightedDirected
// assigned it. Returns false, false if id is unknown or the Result did not
// originate from SolveWeightedDirected.
func (r *Result) CutForNode(segment int, id int64) (onSourceSide bool, ok bool) {
	if r.nodeNums == nil || segment < 0 || segment >= len(r.Cuts) {
		return false, false
	}
	for i, nid := range r.nodeNums {
		if nid == id {
			return r.Cuts[segment][i], true
		}
	}

	return false, false
}

// Flows returns the realized flow on each arc (parallel to Input.Arcs) at
// the last solved λ — LambdaHigh for a parametric solve, LambdaLow
// otherwise.
func (r *Result) Flows() []float64 { return r.flows }

// Diagnostics returns per-node final solver state, populated only when
// WithDiagnostics(true) was passed to the solve.
func (r *Result) Diagnostics() []NodeState { return r.diag }

// NodeState is one node's final tree/label/excess snapshot, used only by
// Result.Diagnostics.
type NodeState struct {
	Node      int
	Label     int
	Excess    float64
	ParentArc int // index into the originating Input.Arcs, or -1 at a root
}
