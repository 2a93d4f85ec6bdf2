package dijkstra

import (
	"container/heap"
	"math"
)

// ShortestPath computes the minimum-cost route from start to end in g.
//
// Returns:
//
//   - (path, true):  path.Vertices runs start..end inclusive, path.Cost is its total weight.
//   - (Path{}, false): end is unreachable from start, or start/end is not a
//     registered vertex. The two cases are deliberately not distinguished.
//
// A query with start == end yields a single-vertex path with cost 0.
//
// Preconditions (documented, not checked):
//
//   - Every edge weight is a finite, non-negative number.
//   - g is not mutated for the duration of the call.
//
// The search stops as soon as end is extracted from the frontier: with
// non-negative weights its first settlement is already optimal.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g Graph, start, end string, opts ...Option) (Path, bool) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Unknown endpoints produce the same not-found signal as disconnection.
	if g == nil || !g.HasVertex(start) || !g.HasVertex(end) {
		return Path{}, false
	}

	// 3) Fresh working state for this query only.
	r := &runner{
		g:       g,
		options: cfg,
		end:     end,
		dist:    make(map[string]float64),
		prev:    make(map[string]string),
	}
	r.init(start)
	r.process()

	// 4) end never improved from +Inf: no directed walk exists.
	if r.distance(end) == math.Inf(1) {
		return Path{}, false
	}

	return Path{Vertices: r.reconstruct(start), Cost: r.dist[end]}, true
}

// runner holds the mutable state for a single ShortestPath execution.
type runner struct {
	g       Graph              // The input graph; read-only within the search.
	options Options            // Cost cap and impassable-edge threshold.
	end     string             // Target vertex; settling it ends the search.
	dist    map[string]float64 // Vertex ID → best-known distance; absent means +Inf.
	prev    map[string]string  // Vertex ID → predecessor on the best-known path.
	pq      nodePQ             // Min-heap of *nodeItem, lazy decrease-key.
	seq     uint64             // Push counter for deterministic ordering.
}

// distance returns the best-known distance to v, +Inf if none yet.
// Keeping absent vertices implicit avoids an O(V) initialisation pass.
func (r *runner) distance(v string) float64 {
	if d, ok := r.dist[v]; ok {
		return d
	}

	return math.Inf(1)
}

// init records dist[start] = 0 and seeds the frontier with (start, 0).
func (r *runner) init(start string) {
	r.dist[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

// push adds (id, dist) to the frontier.
func (r *runner) push(id string, dist float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
}

// process is the core loop. It repeatedly extracts the closest frontier entry
// and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (every reachable vertex settled).
//   - The target vertex is extracted (early exit).
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance entry.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) Target reached: its distance is final.
		if item.id == r.end {
			return
		}

		// 3) Skip entries pushed before the vertex was improved.
		if item.dist > r.distance(item.id) {
			continue
		}

		// 4) Settle and relax.
		r.relax(item.id)
	}
}

// relax tries to improve every destination reachable by one edge from u.
// Parallel edges are treated as independent candidates.
func (r *runner) relax(u string) {
	du := r.dist[u]
	for _, e := range r.g.OutgoingEdges(u) {
		// Impassable edge.
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		candidate := du + e.Weight
		if candidate > r.options.MaxCost {
			continue
		}
		// Strict "<": equal-cost alternatives keep the first predecessor found.
		if candidate >= r.distance(e.To) {
			continue
		}

		r.dist[e.To] = candidate
		r.prev[e.To] = u
		r.push(e.To, candidate)
	}
}

// reconstruct walks predecessor links back from end to start and returns the
// labels in travel order.
func (r *runner) reconstruct(start string) []string {
	var rev []string
	for cur := r.end; ; cur = r.prev[cur] {
		rev = append(rev, cur)
		if cur == start {
			break
		}
	}

	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}

// nodeItem is a frontier entry: a vertex and the distance it was pushed with.
type nodeItem struct {
	id   string  // vertex ID
	dist float64 // distance from start at push time
	seq  uint64  // push order, last-resort tie-break
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id, then seq.
// Equal distances therefore pop in lexicographic label order, which makes
// the chosen route reproducible across runs and platforms.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then label, then push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	if pq[i].id != pq[j].id {
		return pq[i].id < pq[j].id
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
