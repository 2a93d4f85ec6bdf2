// Package core provides the in-memory, directed, weighted Graph that lvroute
// builds from a network description and hands to the shortest-path engine.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are string labels, interned (no duplicates).
//   - Edges are directed and owned by their source vertex: adjacency[from] = []Edge{To, Weight}.
//   - Parallel edges are kept as separate entries.
//   - Weights are finite float64 values. Non-negativity is a precondition of
//     dijkstra.ShortestPath and is not checked here.
//   - There are no removal operations: the graph is built once, then queried.
//
// Construction:
//
//	AddVertex(id string) error                         // O(1), idempotent
//	AddEdge(from, to string, weight float64) error     // O(1), endpoints must exist
//	Connect(from, to string, weight float64) error     // O(1), registers endpoints first
//
// Queries:
//
//	HasVertex(id string) bool                          // O(1)
//	Vertices() []string                                // O(V log V), sorted
//	OutgoingEdges(id string) []Edge                    // O(deg), unknown id → nil
//	VertexCount() int, EdgeCount() int                 // O(1)
//
// Concurrency:
//
// A single sync.RWMutex guards the graph. Any number of readers may query a
// fully built graph concurrently; mixing writers with readers is safe but
// callers should finish loading before querying.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddVertex("Denver")
//	_ = g.AddVertex("Omaha")
//	_ = g.AddEdge("Denver", "Omaha", 4)
//	fmt.Println(g.OutgoingEdges("Denver")) // [{Omaha 4}]
package core
