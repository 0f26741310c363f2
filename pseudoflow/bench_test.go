package pseudoflow_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hpf/pseudoflow"
)

// buildRandomInput constructs a non-parametric instance with V nodes and
// roughly p probability of an internal arc between any ordered interior
// pair; every interior node gets a source and a sink arc. Capacities are
// uniform in [1, maxWeight+1). The seed is fixed for reproducibility.
func buildRandomInput(V int, p float64, maxWeight float64, seed int64) *pseudoflow.Input {
	r := rand.New(rand.NewSource(seed))
	source, sink := 0, V-1

	var arcs []pseudoflow.ArcSpec
	for i := 1; i < V-1; i++ {
		arcs = append(arcs, pseudoflow.ArcSpec{From: source, To: i, ConstCap: r.Float64()*maxWeight + 1})
		arcs = append(arcs, pseudoflow.ArcSpec{From: i, To: sink, ConstCap: r.Float64()*maxWeight + 1})
	}
	for u := 1; u < V-1; u++ {
		for v := 1; v < V-1; v++ {
			if u == v {
				continue
			}
			if r.Float64() < p {
				arcs = append(arcs, pseudoflow.ArcSpec{From: u, To: v, ConstCap: r.Float64()*maxWeight + 1})
			}
		}
	}

	return &pseudoflow.Input{NumNodes: V, Arcs: arcs, Source: source, Sink: sink}
}

// BenchmarkSolveFlat measures single max-flow solves on graphs of
// increasing size and density.
func BenchmarkSolveFlat(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		edgeProb float64
		seed     int64
	}{
		{"Small", 100, 0.05, 42},
		{"Medium", 300, 0.02, 43},
		{"Dense", 100, 0.30, 44},
	}

	for _, bc := range cases {
		in := buildRandomInput(bc.vertices, bc.edgeProb, 10.0, bc.seed)
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := pseudoflow.SolveFlat(in); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkParametricSweep measures the full breakpoint recovery on
// parametric ladders of increasing width.
func BenchmarkParametricSweep(b *testing.B) {
	cases := []struct {
		name     string
		interior int
		seed     int64
	}{
		{"Narrow", 6, 7},
		{"Wide", 12, 8},
	}

	for _, bc := range cases {
		in := randomLadder(bc.seed, bc.interior)
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := pseudoflow.SolveFlat(in, pseudoflow.WithRoundNegativeCapacity(true)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
