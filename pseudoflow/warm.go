// SPDX-License-Identifier: MIT
// Package: hpf/pseudoflow
//
// warm.go — the warm-start surface of the parametric sweep. Between λ
// steps the solver is not rebuilt: advanceTo applies the capacity deltas
// of the source- and sink-adjacent arcs to the preserved residual state,
// injecting the freed capacity as fresh excess at the affected nodes; a
// node inside a tree passes it up to its root, and roots left with excess
// re-enter the buckets at their current labels. A
// subsequent run() resumes phase one from the preserved normalized tree
// and labels. clone forks the whole state so one warm chain can branch at
// a λ sample while the original stays usable at its lower λ.
package pseudoflow

// advanceTo re-resolves every λ-dependent capacity at newLambda and applies
// the delta in place. Source-adjacent capacities are non-decreasing and the
// arc is kept saturated, so the growth is pushed straight through as new
// excess at the head; sink-adjacent capacities are non-increasing, so the
// shrinkage withdraws part of the initialization's commitment and returns
// it as excess at the tail. Residuals keep summing to the realized
// capacity, and labels stay valid because the only residual that grows
// points back toward the source.
func (s *solver) advanceTo(in *Input, newLambda float64) error {
	if newLambda < s.lambda {
		return pseudoflowErrorf("advanceTo", "λ must not decrease: %v -> %v", s.lambda, newLambda)
	}

	for i := range s.arcs {
		a := &s.arcs[i]
		if a.multCap == 0 {
			continue
		}
		spec := ArcSpec{From: a.from, To: a.to, ConstCap: a.constCap, MultCap: a.multCap}
		newCap, err := resolveCapacity(spec, newLambda, in, s.cfg)
		if err != nil {
			return err
		}
		delta := newCap - a.capacity
		a.capacity = newCap
		a.flow = newCap
		if delta == 0 {
			continue
		}
		if a.from == s.source {
			s.inject(a.to, delta)
		} else {
			s.inject(a.from, -delta)
		}
	}
	s.lambda = newLambda

	return nil
}

// inject credits amount of fresh excess to node v. A node buried inside a
// tree pushes the new excess up its tree path at once, splitting on
// saturation as a merger push does, so excess keeps residing at roots
// only; a root that turns positive is queued at its current label.
func (s *solver) inject(v int, amount float64) {
	if amount <= 0 {
		return
	}
	nd := &s.nodes[v]
	nd.excess += amount
	if nd.excess <= s.cfg.epsilon {
		return
	}

	if nd.parent != -1 {
		s.pushExcess(v)
		return
	}

	if !nd.inBucket {
		if nd.label < s.lowestLabel {
			s.lowestLabel = nd.label
		}
		s.pushActive(v)
	}
}

// clone forks the solver's full mutable state — arcs, nodes, buckets,
// counts — sharing only the immutable adjacency chains. Statistics start
// at zero on the fork; the driver harvests each solver's counters
// separately.
func (s *solver) clone() *solver {
	c := *s
	c.arcs = append([]arc(nil), s.arcs...)
	c.nodes = append([]node(nil), s.nodes...)
	for i := range c.nodes {
		c.nodes[i].outOfTree = append([]int(nil), s.nodes[i].outOfTree...)
	}
	c.active = append([]int(nil), s.active...)
	c.labelCount = append([]int(nil), s.labelCount...)
	c.flowSave = make([]float64, len(s.flowSave))
	c.excessSave = make([]float64, len(s.excessSave))
	c.recoveredFlows = append([]float64(nil), s.recoveredFlows...)
	c.stats = Stats{}

	return &c
}

// drainStats returns the counters accumulated since the last drain and
// zeroes them, so clones forked afterward never double-count.
func (s *solver) drainStats() Stats {
	st := s.stats
	s.stats = Stats{}

	return st
}
