package netgraph_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hpf/netgraph"
)

// TestAddArcCreatesEndpoints verifies that arc endpoints are registered on
// first use, in insertion order.
func TestAddArcCreatesEndpoints(t *testing.T) {
	g := netgraph.New()
	require.NoError(t, g.AddArc("s", "a", 3, 0))
	require.NoError(t, g.AddArc("a", "t", 2, -1))

	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 2, g.ArcCount())
	require.Equal(t, []string{"s", "a", "t"}, g.Nodes())
	require.True(t, g.HasNode("a"))
	require.False(t, g.HasNode("b"))
}

// TestAddNodeIdempotent verifies explicit node insertion and its
// idempotence.
func TestAddNodeIdempotent(t *testing.T) {
	g := netgraph.New()
	require.NoError(t, g.AddNode("x"))
	require.NoError(t, g.AddNode("x"))
	require.Equal(t, 1, g.NodeCount())

	require.ErrorIs(t, g.AddNode(""), netgraph.ErrEmptyNodeID)
}

// TestAddArcRejections covers the construction errors.
func TestAddArcRejections(t *testing.T) {
	g := netgraph.New()
	require.ErrorIs(t, g.AddArc("", "t", 1, 0), netgraph.ErrEmptyNodeID)
	require.ErrorIs(t, g.AddArc("s", "", 1, 0), netgraph.ErrEmptyNodeID)
	require.ErrorIs(t, g.AddArc("s", "s", 1, 0), netgraph.ErrSelfLoop)
	require.Equal(t, 0, g.ArcCount())
}

// TestParallelArcsPermitted verifies the multigraph behavior: parallel
// arcs accumulate independently.
func TestParallelArcsPermitted(t *testing.T) {
	g := netgraph.New()
	require.NoError(t, g.AddArc("s", "t", 1, 0))
	require.NoError(t, g.AddArc("s", "t", 4, 0))

	arcs := g.Arcs()
	require.Len(t, arcs, 2)
	require.Equal(t, 1.0, arcs[0].ConstCap)
	require.Equal(t, 4.0, arcs[1].ConstCap)
}

// TestParametricDetection flips once a non-zero multiplier appears.
func TestParametricDetection(t *testing.T) {
	g := netgraph.New()
	require.NoError(t, g.AddArc("s", "a", 1, 0))
	require.False(t, g.Parametric())

	require.NoError(t, g.AddArc("a", "t", 2, -1))
	require.True(t, g.Parametric())
}

// TestArcsReturnsCopy verifies callers cannot mutate internal state
// through the returned slices.
func TestArcsReturnsCopy(t *testing.T) {
	g := netgraph.New()
	require.NoError(t, g.AddArc("s", "t", 1, 0))

	arcs := g.Arcs()
	arcs[0].ConstCap = 99
	require.Equal(t, 1.0, g.Arcs()[0].ConstCap)

	nodes := g.Nodes()
	nodes[0] = "mutated"
	require.Equal(t, "s", g.Nodes()[0])
}

// TestConcurrentAssembly builds a network from several goroutines and
// checks the totals, exercising the internal locking.
func TestConcurrentAssembly(t *testing.T) {
	g := netgraph.New()
	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				from := fmt.Sprintf("n%d-%d", w, i)
				to := fmt.Sprintf("n%d-%d-b", w, i)
				_ = g.AddArc(from, to, 1, 0)
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, workers*perWorker, g.ArcCount())
	require.Equal(t, 2*workers*perWorker, g.NodeCount())
}
