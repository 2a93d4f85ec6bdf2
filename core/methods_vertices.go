// File: methods_vertices.go
// Role: Vertex registration & queries.
//
// Determinism:
//   - Vertices() returns labels sorted lexicographically ascending.
package core

import "sort"

// AddVertex registers a vertex label if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty label (ErrEmptyVertexID).
//   - Stage 2: Under write lock, check presence; if missing, register the label
//     and bootstrap an empty outgoing-edge list.
//
// Re-registering an existing label is a no-op and never an error.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// 1) Empty labels are not allowed.
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Register only if absent.
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id; caller must hold g.mu for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = nil
}

// HasVertex reports whether a vertex with the given label is registered.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty label is never registered
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertices returns every registered vertex label, sorted ascending.
//
// The vertex set has no inherent order; sorting only makes enumeration
// reproducible (stable menu numbering, golden test output).
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of registered vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
