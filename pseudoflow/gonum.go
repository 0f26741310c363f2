// SPDX-License-Identifier: MIT
// Package: hpf/pseudoflow
//
// gonum.go — ingestion adapter for gonum graphs, playing the same
// collaborator role ingest.go plays for netgraph.Network: callers who
// already hold a gonum.org/v1/gonum/graph value (e.g. a
// simple.WeightedDirectedGraph) solve it directly, without rebuilding the
// network in another container. A gonum edge carries a single weight, so
// the weight is the constant capacity term and the λ-multipliers arrive in
// a side table keyed by the ordered endpoint IDs.
package pseudoflow

import "gonum.org/v1/gonum/graph"

// SolveWeightedDirected adapts a gonum weighted directed graph to the flat
// SolveFlat contract. Node IDs are remapped so the source becomes index 0,
// the sink index n−1, and the remaining nodes follow the graph's node
// iteration order in between; Result.CutForNode resolves rows back to
// graph IDs. Edge weights are the constant capacity term; multCap supplies
// per-arc λ-multipliers keyed by {from, to} (nil, or a missing entry,
// means λ-invariant).
//
// The solve is parametric iff multCap carries at least one non-zero entry
// for an existing edge; otherwise the graph is solved once, Breakpoints is
// nil, and the given λ range is ignored in favor of the sentinel [0, 0].
func SolveWeightedDirected(g graph.WeightedDirected, source, sink int64, multCap map[[2]int64]float64, lambdaLow, lambdaHigh float64, opts ...Option) (*Result, error) {
	if g.Node(source) == nil {
		return nil, &InputError{Reason: "source node not found in graph"}
	}
	if g.Node(sink) == nil {
		return nil, &InputError{Reason: "sink node not found in graph"}
	}
	if source == sink {
		return nil, &InputError{Reason: "source and sink must differ"}
	}

	ids := make([]int64, 0)
	ids = append(ids, source)
	it := g.Nodes()
	for it.Next() {
		id := it.Node().ID()
		if id != source && id != sink {
			ids = append(ids, id)
		}
	}
	ids = append(ids, sink)

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	var arcs []ArcSpec
	parametric := false
	for _, uid := range ids {
		succ := g.From(uid)
		for succ.Next() {
			vid := succ.Node().ID()
			w, _ := g.Weight(uid, vid)
			mult := multCap[[2]int64{uid, vid}]
			if mult != 0 {
				parametric = true
			}
			arcs = append(arcs, ArcSpec{
				From:     index[uid],
				To:       index[vid],
				ConstCap: w,
				MultCap:  mult,
			})
		}
	}

	if !parametric {
		lambdaLow, lambdaHigh = 0, 0
	}

	in := &Input{
		NumNodes:   len(ids),
		Arcs:       arcs,
		Source:     0,
		Sink:       len(ids) - 1,
		LambdaLow:  lambdaLow,
		LambdaHigh: lambdaHigh,
		Parametric: parametric,
	}

	result, err := SolveFlat(in, opts...)
	if err != nil {
		return nil, err
	}
	result.nodeNums = ids

	return result, nil
}
