// Package netgraph defines a small, thread-safe container for directed
// capacitated networks whose source- and sink-adjacent arc capacities may be
// affine functions of a scalar parameter λ:
//
//	c(λ) = ConstCap + λ·MultCap
//
// It is the ingestion type consumed by pseudoflow.SolveNetwork: callers build
// a Network with string node identifiers, and the solver remaps them to the
// dense integer indices its arc pools require.
//
// All mutating and reading APIs take an internal sync.RWMutex, so a Network
// may be assembled from multiple goroutines. A Network is append-only: nodes
// and arcs can be added but not removed, which keeps the node insertion
// order stable — the order pseudoflow.SolveNetwork uses when assigning dense
// indices, and therefore the order of rows in the returned cut matrix.
//
// Errors:
//
//	ErrEmptyNodeID - node ID is the empty string.
//	ErrSelfLoop    - arc endpoints are the same node.
package netgraph
