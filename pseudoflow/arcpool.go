// SPDX-License-Identifier: MIT
// Package: hpf/pseudoflow
//
// arcpool.go — the arc arena: a fixed array of arc records with
// capacity/flow state, plus the static adjacency chains the cut extractor
// and flow-recovery walk over. Arc records are allocated 1:1 with
// Input.Arcs, so an arc index doubles as the caller's input index for flow
// readback and diagnostics.
package pseudoflow

// arc is one directed arc record. capacity is the realized c(λ) for the
// solver's λ, after negative-capacity rounding; flow is the routed amount.
//
// direction orients the record while it serves as a tree arc: 1 means
// `from` is the child end (excess travels with the arc, flow increases),
// 0 means `to` is the child end (excess travels against the arc, flow
// decreases). It is meaningless while the arc is out of tree.
type arc struct {
	from, to          int
	constCap, multCap float64
	capacity          float64
	flow              float64
	direction         uint8
}

// resolveCapacity evaluates c(λ) = constCap + λ·multCap for one arc spec,
// applying the negative-capacity rounding policy: a negative result on a
// source- or sink-adjacent arc is clamped to 0 when rounding is enabled,
// and rejected with a CapacityError otherwise. Internal arcs carry a zero
// multiplier, so a negative result there means a negative constant — always
// rejected.
func resolveCapacity(spec ArcSpec, lambda float64, in *Input, cfg *config) (float64, error) {
	c := spec.ConstCap + lambda*spec.MultCap
	if c < 0 {
		if (spec.From == in.Source || spec.To == in.Sink) && cfg.roundNegativeCapacity {
			return 0, nil
		}

		return 0, &CapacityError{From: spec.From, To: spec.To, Lambda: lambda, Capacity: c}
	}

	return c, nil
}

// buildPools sizes and wires every per-solve arena: the arc records with
// capacities resolved at s.lambda, the static forward/reverse adjacency
// chains, and each node's out-of-tree working list. All allocation for one
// max-flow solve happens here; the processing loops allocate nothing.
func (s *solver) buildPools(in *Input) error {
	n, m := s.numNodes, len(in.Arcs)
	s.arcs = make([]arc, m)
	s.outHead = make([]int, n)
	s.inHead = make([]int, n)
	s.outNext = make([]int, m)
	s.inNext = make([]int, m)
	s.active = make([]int, n+1)
	s.labelCount = make([]int, n+1)
	s.flowSave = make([]float64, m)
	s.excessSave = make([]float64, n)
	s.recoveredFlows = make([]float64, m)
	for i := 0; i < n; i++ {
		s.outHead[i] = -1
		s.inHead[i] = -1
	}
	for l := 0; l <= n; l++ {
		s.active[l] = -1
	}

	for i, spec := range in.Arcs {
		c, err := resolveCapacity(spec, s.lambda, in, s.cfg)
		if err != nil {
			return err
		}
		s.arcs[i] = arc{
			from: spec.From, to: spec.To,
			constCap: spec.ConstCap, multCap: spec.MultCap,
			capacity: c, direction: 1,
		}
		s.outNext[i] = s.outHead[spec.From]
		s.outHead[spec.From] = i
		s.inNext[i] = s.inHead[spec.To]
		s.inHead[spec.To] = i
	}

	// Out-of-tree lists hold only the arcs phase one may scan: arcs into
	// the source and out of the sink can never carry useful pseudoflow and
	// are left out entirely; a direct source→sink arc is delivered at full
	// capacity immediately and never enters a list.
	deg := make([]int, n)
	for i := range s.arcs {
		a := &s.arcs[i]
		if a.to == s.source || a.from == s.sink || (a.from == s.source && a.to == s.sink) {
			continue
		}
		deg[a.from]++
		deg[a.to]++
	}

	s.nodes = make([]node, n)
	for i := 0; i < n; i++ {
		s.nodes[i] = node{
			parent: -1, arcToParent: -1,
			firstChild: -1, nextSibling: -1,
			nextScan: -1, nextRoot: -1,
			outOfTree: make([]int, deg[i]),
			nextIn:    s.inHead[i],
		}
	}

	for i := range s.arcs {
		a := &s.arcs[i]
		switch {
		case a.to == s.source || a.from == s.sink:
			// unusable for s→t flow; stays idle with flow 0
		case a.from == s.source && a.to == s.sink:
			a.flow = a.capacity
		case a.from == s.source:
			s.addOutOfTree(s.source, i)
		case a.to == s.sink:
			s.addOutOfTree(s.sink, i)
		default:
			s.addOutOfTree(a.from, i)
		}
	}

	return nil
}

// addOutOfTree appends arc index ai to u's out-of-tree working list.
func (s *solver) addOutOfTree(u, ai int) {
	nd := &s.nodes[u]
	nd.outOfTree[nd.numOut] = ai
	nd.numOut++
}
