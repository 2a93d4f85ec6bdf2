// Package dijkstra finds the minimum-cost route between two vertices of a
// directed graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath runs Dijkstra's algorithm from a start vertex and stops as
//     soon as the end vertex is settled, then rebuilds the route from the
//     predecessor map.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - The result is an explicit optional: (Path, true) or (Path{}, false).
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each edge relaxation may push one new entry (up to E pushes).
//   - Each heap Push/Pop costs O(log N) where N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor maps.
//   - O(E) worst-case entries in the heap under the “lazy decrease-key” strategy:
//     improved vertices are pushed again and stale entries are skipped on pop.
//
// Tie-breaking:
//
// Frontier entries with equal distance pop in lexicographic label order
// (then by push order). Among several routes of equal cost the one returned
// is therefore the same on every run.
//
// Failure semantics:
//
// ShortestPath performs no I/O and returns no error. Unknown start/end
// labels and unreachable targets both yield found == false. Option
// constructors panic on nonsensical values (ErrBadMaxCost, ErrBadInfThreshold).
//
// API reference:
//
//	func ShortestPath(g Graph, start, end string, opts ...Option) (Path, bool)
//
//	  - g:     any Graph (HasVertex + OutgoingEdges); *core.Graph satisfies it.
//	  - opts:  zero or more functional options:
//	      • WithMaxCost(float64):          ignore routes costing more than the cap.
//	      • WithInfEdgeThreshold(float64): skip any edge whose weight ≥ threshold.
//
// Thread safety:
//
//   - Each call allocates its own working state, so concurrent queries against a
//     graph that is no longer being modified are safe.
package dijkstra
