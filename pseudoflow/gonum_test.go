package pseudoflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/hpf/pseudoflow"
)

// buildGonumChain is the gonum twin of chainInput, with deliberately
// non-contiguous node IDs to exercise the ID remapping.
func buildGonumChain() *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph(0, 0)
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(10), T: simple.Node(20), W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(20), T: simple.Node(30), W: 9})

	return g
}

// TestSolveWeightedDirectedParametric verifies the gonum adapter end to
// end: multipliers from the side table switch the solve parametric, and
// CutForNode resolves cut rows by graph ID.
func TestSolveWeightedDirectedParametric(t *testing.T) {
	g := buildGonumChain()
	mult := map[[2]int64]float64{
		{10, 20}: 5,
		{20, 30}: -3,
	}

	res, err := pseudoflow.SolveWeightedDirected(g, 10, 30, mult, 0, 2)
	require.NoError(t, err)

	require.Len(t, res.Breakpoints, 2)
	require.InDelta(t, 1.0, res.Breakpoints[0], 1e-5)
	require.InDelta(t, 2.0, res.Breakpoints[1], 1e-5)

	for segment, want := range map[int]map[int64]bool{
		0: {10: true, 20: false, 30: false},
		1: {10: true, 20: true, 30: false},
	} {
		for id, side := range want {
			got, ok := res.CutForNode(segment, id)
			require.True(t, ok, "segment %d id %d", segment, id)
			require.Equal(t, side, got, "segment %d id %d", segment, id)
		}
	}

	_, ok := res.CutForNode(0, 99)
	require.False(t, ok)
}

// TestSolveWeightedDirectedNonParametric verifies that a nil multiplier
// table yields a single cut with no breakpoints, whatever λ range was
// passed.
func TestSolveWeightedDirectedNonParametric(t *testing.T) {
	g := buildGonumChain()

	res, err := pseudoflow.SolveWeightedDirected(g, 10, 30, nil, 0, 10)
	require.NoError(t, err)
	require.Nil(t, res.Breakpoints)
	require.Len(t, res.Cuts, 1)

	onSource, ok := res.CutForNode(0, 10)
	require.True(t, ok)
	require.True(t, onSource)
	onSource, ok = res.CutForNode(0, 20)
	require.True(t, ok)
	require.False(t, onSource)
}

// TestSolveWeightedDirectedValidation covers the adapter preconditions and
// the polarity checks running after remapping.
func TestSolveWeightedDirectedValidation(t *testing.T) {
	g := buildGonumChain()

	_, err := pseudoflow.SolveWeightedDirected(g, 99, 30, nil, 0, 0)
	require.ErrorIs(t, err, pseudoflow.ErrMalformedInput)

	_, err = pseudoflow.SolveWeightedDirected(g, 10, 99, nil, 0, 0)
	require.ErrorIs(t, err, pseudoflow.ErrMalformedInput)

	_, err = pseudoflow.SolveWeightedDirected(g, 10, 10, nil, 0, 0)
	require.ErrorIs(t, err, pseudoflow.ErrMalformedInput)

	mult := map[[2]int64]float64{{10, 20}: -5}
	_, err = pseudoflow.SolveWeightedDirected(g, 10, 30, mult, 0, 2)
	require.ErrorIs(t, err, pseudoflow.ErrMultiplierPolaritySourceArc)
}
