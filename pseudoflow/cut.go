// SPDX-License-Identifier: MIT
// Package: hpf/pseudoflow
//
// cut.go — minimum-cut extraction. A maximum flow is recovered on the side
// (flows and excesses snapshotted first), the residual graph of that flow
// is walked forward from the source, and then the pseudoflow state is
// restored: the normalized tree, labels, and excesses survive untouched as
// the warm start for the next parametric λ step. The reached set is the
// source side of the unique minimal minimum cut (the intersection of every
// optimal source set), so the result is deterministic regardless of how
// ties were broken during the solve.
package pseudoflow

// extractCut returns a bitmap of length numNodes, true for every node the
// source reaches in the residual graph of the recovered maximum flow:
// forward over unsaturated arcs, backward over flow-carrying arcs. As a
// side effect it refreshes s.recoveredFlows and s.flowValue, the recovered
// per-arc flows and their value at the solver's current λ.
func extractCut(s *solver) []bool {
	for i := range s.arcs {
		s.flowSave[i] = s.arcs[i].flow
	}
	for i := range s.nodes {
		s.excessSave[i] = s.nodes[i].excess
		s.nodes[i].nextIn = s.inHead[i]
	}

	s.recoverFlow()
	for i := range s.arcs {
		s.recoveredFlows[i] = s.arcs[i].flow
	}

	eps := s.cfg.epsilon
	onSourceSide := make([]bool, s.numNodes)
	onSourceSide[s.source] = true

	stack := make([]int, 0, s.numNodes)
	stack = append(stack, s.source)
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for ai := s.outHead[u]; ai != -1; ai = s.outNext[ai] {
			a := &s.arcs[ai]
			if a.capacity-a.flow > eps && !onSourceSide[a.to] {
				onSourceSide[a.to] = true
				stack = append(stack, a.to)
			}
		}
		for ai := s.inHead[u]; ai != -1; ai = s.inNext[ai] {
			a := &s.arcs[ai]
			if a.flow > eps && !onSourceSide[a.from] {
				onSourceSide[a.from] = true
				stack = append(stack, a.from)
			}
		}
	}

	for i := range s.arcs {
		s.arcs[i].flow = s.flowSave[i]
	}
	for i := range s.nodes {
		s.nodes[i].excess = s.excessSave[i]
	}

	return onSourceSide
}

// cutsEqual reports whether two cut bitmaps describe the same partition,
// used by the parametric driver to decide whether a λ sample found a new
// segment or landed on a known one.
func cutsEqual(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
