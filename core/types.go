// Package core defines the Graph and Edge types used by lvroute and the
// sentinel errors returned by graph construction.
//
// This file declares Edge, Graph, the sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex label is the empty string.
//	ErrVertexNotFound - an edge endpoint is not a registered vertex.
//	ErrBadWeight      - edge weight is NaN or infinite.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex label is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-registered vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a weight that is not a finite real number.
	ErrBadWeight = errors.New("core: edge weight must be finite")
)

// Edge is a directed, weighted connection owned by its source vertex.
//
// The source is implicit: an Edge only ever appears in the outgoing list
// of the vertex it leaves.
type Edge struct {
	// To is the destination vertex label.
	To string

	// Weight is the cost of travelling this edge.
	// Shortest-path search assumes Weight >= 0; this is not enforced here.
	Weight float64
}

// Graph is an append-only, directed, weighted graph keyed by vertex label.
//
// Parallel edges between the same ordered pair are kept as separate entries.
// mu guards both the vertex set and the adjacency lists; the graph is expected
// to be built once and then queried, so a single RWMutex is sufficient.
type Graph struct {
	mu sync.RWMutex

	// vertices is the interned label set.
	vertices map[string]struct{}

	// adjacency[from] is the ordered list of edges leaving from.
	// Every registered vertex has an entry, possibly empty.
	adjacency map[string][]Edge

	// edgeCount is the total number of edges across all adjacency lists.
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string][]Edge),
	}
}
