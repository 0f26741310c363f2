// SPDX-License-Identifier: MIT
// Package: hpf/pseudoflow
//
// engine.go — one max-flow computation with the pseudoflow method,
// simple-label lowest-label variant: initialization saturates every
// source- and sink-adjacent arc, then excess-carrying tree roots are
// processed lowest label first, merging into lower-labeled trees and
// pushing their excess along the combined tree path until every root is
// exhausted or a label gap proves the remainder unreachable.
package pseudoflow

import "fmt"

// solver owns one max-flow solve's arenas. It is never shared across
// goroutines; concurrent solves must use disjoint solver instances.
type solver struct {
	cfg    *config
	lambda float64

	numNodes int
	source   int
	sink     int

	arcs  []arc
	nodes []node

	// static adjacency over the arc arena, by from-endpoint and to-endpoint
	outHead, outNext []int
	inHead, inNext   []int

	// bucket index: LIFO root chains and population counts per label
	active      []int
	labelCount  []int
	lowestLabel int

	// flow-recovery bookkeeping: iteration is the persistent path stamp for
	// decompose; flowSave/excessSave let cut extraction recover a maximum
	// flow on the side and then restore the pseudoflow, preserving the
	// normalized tree as the warm start for the next λ step.
	iteration  int
	flowSave   []float64
	excessSave []float64

	// outputs of the latest extraction: the recovered maximum flow per arc
	// and its value.
	recoveredFlows []float64
	flowValue      float64

	stats Stats
}

// newSolver allocates a solver for one max-flow at the given λ.
func newSolver(in *Input, cfg *config, lambda float64) (*solver, error) {
	s := &solver{
		cfg:      cfg,
		lambda:   lambda,
		numNodes: in.NumNodes,
		source:   in.Source,
		sink:     in.Sink,
	}
	if err := s.buildPools(in); err != nil {
		return nil, err
	}

	return s, nil
}

// initialize establishes the starting pseudoflow: every source-adjacent arc
// is saturated, creating excess at its head; every sink-adjacent arc is
// saturated, creating a deficit at its tail. Excess nodes become singleton
// roots at label 1; everything else starts at label 0 except the source,
// pinned at numNodes so it never participates in merging.
func (s *solver) initialize() {
	src := &s.nodes[s.source]
	for k := 0; k < src.numOut; k++ {
		a := &s.arcs[src.outOfTree[k]]
		a.flow = a.capacity
		s.nodes[a.to].excess += a.capacity
	}
	snk := &s.nodes[s.sink]
	for k := 0; k < snk.numOut; k++ {
		a := &s.arcs[snk.outOfTree[k]]
		a.flow = a.capacity
		s.nodes[a.from].excess -= a.capacity
	}
	s.nodes[s.source].excess = 0
	s.nodes[s.sink].excess = 0

	for i := 0; i < s.numNodes; i++ {
		if i == s.source || i == s.sink {
			continue
		}
		if s.nodes[i].excess > s.cfg.epsilon {
			s.nodes[i].label = 1
			s.labelCount[1]++
			s.pushActive(i)
		}
	}

	s.nodes[s.source].label = s.numNodes
	s.nodes[s.sink].label = 0
	s.labelCount[0] = (s.numNodes - 2) - s.labelCount[1]
	s.lowestLabel = 1
}

// run drives phase one to termination: process the lowest-labeled
// excess-carrying root until none remains or a gap ends the phase.
func (s *solver) run() {
	for r := s.lowestStrongRoot(); r != -1; r = s.lowestStrongRoot() {
		s.processRoot(r)
	}
}

// processRoot searches root r's entire tree, depth first, for a merger arc
// into a tree at label lowestLabel−1. The first hit merges the trees and
// pushes r's excess along the combined path; if the whole tree scans dry,
// every scanned node has been relabeled one step up and r is re-bucketed at
// its new label.
func (s *solver) processRoot(r int) {
	strongNode := r
	s.nodes[r].nextScan = s.nodes[r].firstChild

	if ai, weak, ok := s.scanForMerger(r); ok {
		s.merge(weak, r, ai)
		s.pushExcess(r)
		return
	}
	s.checkChildren(r)

	for strongNode != -1 {
		for s.nodes[strongNode].nextScan != -1 {
			next := s.nodes[strongNode].nextScan
			s.nodes[strongNode].nextScan = s.nodes[next].nextSibling
			strongNode = next
			s.nodes[strongNode].nextScan = s.nodes[strongNode].firstChild

			if ai, weak, ok := s.scanForMerger(strongNode); ok {
				s.merge(weak, strongNode, ai)
				s.pushExcess(r)
				return
			}
			s.checkChildren(strongNode)
		}
		if strongNode = s.nodes[strongNode].parent; strongNode != -1 {
			s.checkChildren(strongNode)
		}
	}

	s.pushActive(r)
}

// scanForMerger resumes u's out-of-tree arc scan at its cursor, looking for
// an arc whose far endpoint sits at label lowestLabel−1. A hit removes the
// arc from the list (swap with the tail) and orients its direction so the
// far endpoint is the parent end.
func (s *solver) scanForMerger(u int) (ai, weak int, ok bool) {
	nd := &s.nodes[u]
	want := s.lowestLabel - 1

	for i := nd.nextArc; i < nd.numOut; i++ {
		s.stats.NumArcScans++
		cand := nd.outOfTree[i]
		a := &s.arcs[cand]

		switch {
		case s.nodes[a.to].label == want:
			weak = a.to
			a.direction = 1
		case s.nodes[a.from].label == want:
			weak = a.from
			a.direction = 0
		default:
			continue
		}

		nd.nextArc = i
		nd.numOut--
		nd.outOfTree[i] = nd.outOfTree[nd.numOut]

		return cand, weak, true
	}

	nd.nextArc = nd.numOut

	return 0, 0, false
}

// merge splices strongNode's tree under weakNode: the path from strongNode
// up to its root is reversed (each hop's parent/child roles swap, flipping
// the tree arc's direction), then strongNode hangs off weakNode via the
// merger arc. The old root — still holding the tree's excess — ends up
// deepest, ready for pushExcess to drain it along the new path.
func (s *solver) merge(weakNode, strongNode, mergerArc int) {
	s.stats.NumMergers++
	if s.cfg.trace != nil {
		s.tracef("merge: node %d joins tree via node %d\n", strongNode, weakNode)
	}

	current := strongNode
	newParent := weakNode
	newArc := mergerArc

	for s.nodes[current].parent != -1 {
		oldArc := s.nodes[current].arcToParent
		s.nodes[current].arcToParent = newArc
		oldParent := s.nodes[current].parent
		s.removeChild(oldParent, current)
		s.addChild(newParent, current)

		newParent = current
		current = oldParent
		newArc = oldArc
		s.arcs[newArc].direction = 1 - s.arcs[newArc].direction
	}

	s.nodes[current].arcToParent = newArc
	s.addChild(newParent, current)
}

// pushExcess drains root r's excess along its parent chain. Each hop pushes
// through the tree arc in whichever direction the arc's orientation
// records; a hop that saturates splits the child off as a fresh root
// keeping the unpushed remainder. Whatever reaches a node with a deficit is
// absorbed there; a destination root left with new positive excess is
// bucketed for processing.
func (s *solver) pushExcess(r int) {
	current := r
	prevEx := 1.0

	for s.nodes[current].excess > s.cfg.epsilon && s.nodes[current].parent != -1 {
		parent := s.nodes[current].parent
		prevEx = s.nodes[parent].excess

		ai := s.nodes[current].arcToParent
		if s.arcs[ai].direction != 0 {
			s.pushUpward(ai, current, parent)
		} else {
			s.pushDownward(ai, current, parent)
		}
		current = parent
	}

	if s.nodes[current].excess > s.cfg.epsilon && prevEx <= s.cfg.epsilon {
		if s.nodes[current].label < s.lowestLabel {
			s.lowestLabel = s.nodes[current].label
		}
		s.pushActive(current)
	}
}

// pushUpward pushes child's excess to parent along the arc's natural
// direction. Saturating the arc splits child off: the arc flips
// orientation, returns to parent's out-of-tree list, and child becomes a
// root again with the remainder.
func (s *solver) pushUpward(ai, child, parent int) {
	s.stats.NumPushes++
	a := &s.arcs[ai]
	resCap := a.capacity - a.flow
	ex := s.nodes[child].excess

	if resCap >= ex {
		s.nodes[parent].excess += ex
		a.flow += ex
		s.nodes[child].excess = 0
		return
	}

	a.direction = 0
	s.nodes[parent].excess += resCap
	s.nodes[child].excess -= resCap
	a.flow = a.capacity
	s.addOutOfTree(parent, ai)
	s.removeChild(parent, child)

	if s.nodes[child].label < s.lowestLabel {
		s.lowestLabel = s.nodes[child].label
	}
	s.pushActive(child)
}

// pushDownward pushes child's excess to parent against the arc's natural
// direction, consuming the arc's routed flow. Draining the arc to zero
// splits child off symmetrically to pushUpward.
func (s *solver) pushDownward(ai, child, parent int) {
	s.stats.NumPushes++
	a := &s.arcs[ai]
	ex := s.nodes[child].excess

	if a.flow >= ex {
		s.nodes[parent].excess += ex
		a.flow -= ex
		s.nodes[child].excess = 0
		return
	}

	a.direction = 1
	s.nodes[child].excess -= a.flow
	s.nodes[parent].excess += a.flow
	a.flow = 0
	s.addOutOfTree(parent, ai)
	s.removeChild(parent, child)

	if s.nodes[child].label < s.lowestLabel {
		s.lowestLabel = s.nodes[child].label
	}
	s.pushActive(child)
}

// checkChildren relabels u one step up once no child shares its label —
// the simple-label rule: a node may rise only after its whole subtree has
// risen past it. The out-of-tree cursor resets so the next merger scan
// revisits arcs that were inadmissible at the old label.
func (s *solver) checkChildren(u int) {
	nd := &s.nodes[u]
	for ; nd.nextScan != -1; nd.nextScan = s.nodes[nd.nextScan].nextSibling {
		if s.nodes[nd.nextScan].label == nd.label {
			return
		}
	}

	s.labelCount[nd.label]--
	nd.label++
	s.labelCount[nd.label]++
	s.stats.NumRelabels++
	if s.cfg.trace != nil {
		s.tracef("relabel: node %d -> %d\n", u, nd.label)
	}
	nd.nextArc = 0
}

// tracef writes one event line to the configured trace writer.
func (s *solver) tracef(format string, args ...interface{}) {
	fmt.Fprintf(s.cfg.trace, format, args...)
}
