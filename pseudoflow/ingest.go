// SPDX-License-Identifier: MIT
// Package: hpf/pseudoflow
//
// ingest.go — the netgraph.Network convenience front end. The core
// contract is SolveFlat's flat arc matrix; this layer plays the ingestion
// collaborator, remapping string node IDs onto the dense indices the arc
// pools require, and the marshalling collaborator, translating cut rows
// back to the caller's IDs via Result.CutFor.
package pseudoflow

import "github.com/katalvlaran/hpf/netgraph"

// SolveNetwork adapts a netgraph.Network solve request to the flat
// SolveFlat contract. Node IDs are remapped so the source becomes index 0,
// the sink index n−1, and interior nodes keep their insertion order in
// between — the row order of the returned cut matrix, which Result.CutFor
// resolves back to IDs.
//
// The solve is parametric iff the network carries at least one non-zero
// λ-multiplier; a multiplier-free network is solved once and yields
// Result.Breakpoints == nil, and the given λ range is ignored in favor of
// the sentinel [0, 0].
func SolveNetwork(g *netgraph.Network, source, sink string, lambdaLow, lambdaHigh float64, opts ...Option) (*Result, error) {
	if !g.HasNode(source) {
		return nil, &InputError{Reason: "source node not found in network"}
	}
	if !g.HasNode(sink) {
		return nil, &InputError{Reason: "sink node not found in network"}
	}
	if source == sink {
		return nil, &InputError{Reason: "source and sink must differ"}
	}

	ids := g.Nodes()
	n := len(ids)
	index := make(map[string]int, n)
	nodeIDs := make([]string, 0, n)

	index[source] = 0
	nodeIDs = append(nodeIDs, source)
	for _, id := range ids {
		if id == source || id == sink {
			continue
		}
		index[id] = len(nodeIDs)
		nodeIDs = append(nodeIDs, id)
	}
	index[sink] = len(nodeIDs)
	nodeIDs = append(nodeIDs, sink)

	parametric := g.Parametric()
	if !parametric {
		lambdaLow, lambdaHigh = 0, 0
	}

	netArcs := g.Arcs()
	arcs := make([]ArcSpec, len(netArcs))
	for i, a := range netArcs {
		arcs[i] = ArcSpec{
			From:     index[a.From],
			To:       index[a.To],
			ConstCap: a.ConstCap,
			MultCap:  a.MultCap,
		}
	}

	in := &Input{
		NumNodes:   n,
		Arcs:       arcs,
		Source:     0,
		Sink:       n - 1,
		LambdaLow:  lambdaLow,
		LambdaHigh: lambdaHigh,
		Parametric: parametric,
	}

	result, err := SolveFlat(in, opts...)
	if err != nil {
		return nil, err
	}
	result.nodeIDs = nodeIDs

	return result, nil
}
