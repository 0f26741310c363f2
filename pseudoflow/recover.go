// SPDX-License-Identifier: MIT
// Package: hpf/pseudoflow
//
// recover.go — conversion of the terminal pseudoflow into a feasible
// maximum flow. Phase one may finish with deficits still open at
// sink-adjacent nodes and with excess stranded at roots that could not
// reach the sink region; recovery settles the deficits against their own
// saturated sink arcs and then decomposes each stranded excess back to the
// source along flow-carrying arcs, canceling flow cycles on the way.
// Afterward every interior node conserves flow, which is what makes the
// residual reachability walk in cut.go yield the minimal source set.
package pseudoflow

// recoverFlow turns the terminal pseudoflow into a maximum flow and records
// the realized flow value. The caller is expected to have reset the nextIn
// cursors; path stamps need no reset because s.iteration only grows across
// recoveries.
func (s *solver) recoverFlow() {
	eps := s.cfg.epsilon

	// Settle each open deficit against the node's own saturated sink arcs:
	// the deficit exists only because initialization promised the sink more
	// than phase one could deliver.
	snk := &s.nodes[s.sink]
	for k := 0; k < snk.numOut; k++ {
		a := &s.arcs[snk.outOfTree[k]]
		tail := &s.nodes[a.from]
		if tail.excess >= 0 {
			continue
		}
		if tail.excess+a.flow < 0 {
			tail.excess += a.flow
			a.flow = 0
		} else {
			a.flow += tail.excess
			tail.excess = 0
		}
	}

	s.nodes[s.source].excess = 0
	s.nodes[s.sink].excess = 0

	for i := 0; i < s.numNodes; i++ {
		if i == s.source || i == s.sink {
			continue
		}
		for s.nodes[i].excess > eps {
			s.iteration++
			s.decompose(i, &s.iteration)
		}
	}

	s.flowValue = 0
	for ai := s.inHead[s.sink]; ai != -1; ai = s.inNext[ai] {
		s.flowValue += s.arcs[ai].flow
	}
}

// decompose walks backward from excess node v along flow-carrying arcs.
// Reaching the source cancels the path's bottleneck against v's excess;
// re-entering an already-stamped node instead cancels the flow cycle it
// closes. Either way at least one arc's flow drops (to zero on the
// bottleneck), so repeated calls terminate.
func (s *solver) decompose(v int, iteration *int) {
	eps := s.cfg.epsilon
	bottleneck := s.nodes[v].excess
	current := v

	for current != s.source && s.nodes[current].visited < *iteration {
		s.nodes[current].visited = *iteration
		ai := s.flowSourceArc(current)
		if s.arcs[ai].flow < bottleneck {
			bottleneck = s.arcs[ai].flow
		}
		current = s.arcs[ai].from
	}

	if current == s.source {
		s.nodes[v].excess -= bottleneck
		for current = v; current != s.source; {
			ai := s.flowSourceArc(current)
			a := &s.arcs[ai]
			a.flow -= bottleneck
			if a.flow <= eps {
				a.flow = 0
				s.nodes[current].nextIn = s.inNext[ai]
			}
			current = a.from
		}
		return
	}

	// The walk closed a cycle at current; measure its bottleneck and cancel
	// it, leaving v's excess for a later pass.
	*iteration++
	bottleneck = s.arcs[s.flowSourceArc(current)].flow
	probe := current
	for s.nodes[probe].visited < *iteration {
		s.nodes[probe].visited = *iteration
		ai := s.flowSourceArc(probe)
		if s.arcs[ai].flow < bottleneck {
			bottleneck = s.arcs[ai].flow
		}
		probe = s.arcs[ai].from
	}

	*iteration++
	for s.nodes[current].visited < *iteration {
		s.nodes[current].visited = *iteration
		ai := s.flowSourceArc(current)
		a := &s.arcs[ai]
		a.flow -= bottleneck
		if a.flow <= eps {
			a.flow = 0
			s.nodes[current].nextIn = s.inNext[ai]
		}
		current = a.from
	}
}

// flowSourceArc returns the incoming arc v's recovery cursor points at,
// first advancing it past arcs whose flow is already spent. Flow
// conservation guarantees a flow-carrying incoming arc exists whenever a
// node still holds excess or forwards flow, and flows only decrease during
// recovery, so the cursor never needs to back up. The skip threshold is an
// exact zero, not epsilon: several sub-epsilon inflows can together back
// an above-epsilon excess.
func (s *solver) flowSourceArc(v int) int {
	ai := s.nodes[v].nextIn
	for s.arcs[ai].flow <= 0 {
		ai = s.inNext[ai]
	}
	s.nodes[v].nextIn = ai

	return ai
}
