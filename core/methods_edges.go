// File: methods_edges.go
// Role: Edge insertion & adjacency queries.
//
// Determinism:
//   - OutgoingEdges() preserves insertion order.
package core

import (
	"fmt"
	"math"
)

// AddEdge appends a directed edge source→destination with the given weight.
//
// Both endpoints must already be registered with AddVertex; use Connect for
// the form that registers them on the fly.
//
// Returns:
//   - ErrEmptyVertexID if either label is empty.
//   - ErrBadWeight if weight is NaN or ±Inf.
//   - ErrVertexNotFound (wrapped with the missing label) if an endpoint is unknown.
//
// Parallel edges are appended, never merged. Complexity: O(1) amortized.
func (g *Graph) AddEdge(source, destination string, weight float64) error {
	// 1) Input validation
	if source == "" || destination == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: edge %s→%s weight=%v", ErrBadWeight, source, destination, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Endpoints must be registered
	if _, ok := g.vertices[source]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}
	if _, ok := g.vertices[destination]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, destination)
	}

	// 3) Append to the source's outgoing list
	g.adjacency[source] = append(g.adjacency[source], Edge{To: destination, Weight: weight})
	g.edgeCount++

	return nil
}

// Connect registers source and destination if missing, then adds the edge.
// It is equivalent to AddVertex(source), AddVertex(destination), AddEdge(...),
// performed under a single lock.
func (g *Graph) Connect(source, destination string, weight float64) error {
	if source == "" || destination == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: edge %s→%s weight=%v", ErrBadWeight, source, destination, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(source)
	g.addVertexLocked(destination)
	g.adjacency[source] = append(g.adjacency[source], Edge{To: destination, Weight: weight})
	g.edgeCount++

	return nil
}

// OutgoingEdges returns a copy of the edges leaving id, in insertion order.
// An unknown vertex is treated as having no outgoing edges: the result is nil
// and no error is reported.
// Complexity: O(deg(id)).
func (g *Graph) OutgoingEdges(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.adjacency[id]
	if len(out) == 0 {
		return nil
	}
	cp := make([]Edge, len(out))
	copy(cp, out)

	return cp
}

// EdgeCount returns the total number of edges, parallel edges included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
