// Package dijkstra_test contains unit tests for ShortestPath: the concrete
// route scenarios, not-found outcomes, options, tie-breaking, and agreement
// with an exhaustive search on small graphs.
package dijkstra_test

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type edge struct {
	U, V string
	W    float64
}

// buildGraph registers every endpoint and adds the edges in order.
func buildGraph(t testing.TB, vertices []string, edges []edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		require.NoError(t, g.Connect(e.U, e.V, e.W))
	}

	return g
}

// buildDiamond is the A-B:1, B-C:2, A-C:5, C-D:1 network.
func buildDiamond(t testing.TB) *core.Graph {
	return buildGraph(t, []string{"A", "B", "C", "D"}, []edge{
		{"A", "B", 1},
		{"B", "C", 2},
		{"A", "C", 5},
		{"C", "D", 1},
	})
}

// ------------------------------------------------------------------------
// 1. Concrete scenarios
// ------------------------------------------------------------------------

func TestShortestPath_PrefersCheaperDetour(t *testing.T) {
	g := buildDiamond(t)

	path, ok := dijkstra.ShortestPath(g, "A", "D")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path.Vertices)
	assert.Equal(t, 4.0, path.Cost)
	assert.Equal(t, "A >> B >> C >> D", path.String())
	assert.Equal(t, 3, path.Hops())
}

func TestShortestPath_SameStartAndEnd(t *testing.T) {
	g := buildDiamond(t)

	for _, v := range g.Vertices() {
		path, ok := dijkstra.ShortestPath(g, v, v)
		require.True(t, ok)
		assert.Equal(t, []string{v}, path.Vertices)
		assert.Equal(t, 0.0, path.Cost)
		assert.Equal(t, 0, path.Hops())
	}
}

func TestShortestPath_SameStartAndEnd_WithSelfLoop(t *testing.T) {
	g := buildGraph(t, nil, []edge{{"X", "X", 3}})

	path, ok := dijkstra.ShortestPath(g, "X", "X")
	require.True(t, ok)
	assert.Equal(t, []string{"X"}, path.Vertices)
	assert.Equal(t, 0.0, path.Cost)
}

func TestShortestPath_ParallelEdges(t *testing.T) {
	g := buildGraph(t, nil, []edge{
		{"A", "B", 5},
		{"A", "B", 2},
		{"B", "C", 1},
	})

	path, ok := dijkstra.ShortestPath(g, "A", "C")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C"}, path.Vertices)
	assert.Equal(t, 3.0, path.Cost)
}

func TestShortestPath_FractionalWeights(t *testing.T) {
	g := buildGraph(t, nil, []edge{
		{"A", "B", 0.5},
		{"B", "C", 0.25},
		{"A", "C", 0.8},
	})

	path, ok := dijkstra.ShortestPath(g, "A", "C")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C"}, path.Vertices)
	assert.InDelta(t, 0.75, path.Cost, 1e-12)
}

func TestShortestPath_ZeroWeightEdges(t *testing.T) {
	g := buildGraph(t, nil, []edge{
		{"A", "B", 0},
		{"B", "C", 0},
		{"A", "C", 1},
	})

	path, ok := dijkstra.ShortestPath(g, "A", "C")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C"}, path.Vertices)
	assert.Equal(t, 0.0, path.Cost)
}

func TestShortestPath_StaleEntriesSkipped(t *testing.T) {
	// B is pushed at 10 first, then improved to 2 via C; the stale entry must
	// not relax B's edges with the worse distance.
	g := buildGraph(t, nil, []edge{
		{"S", "B", 10},
		{"S", "C", 1},
		{"C", "B", 1},
		{"B", "T", 1},
	})

	path, ok := dijkstra.ShortestPath(g, "S", "T")
	require.True(t, ok)
	assert.Equal(t, []string{"S", "C", "B", "T"}, path.Vertices)
	assert.Equal(t, 3.0, path.Cost)
}

// ------------------------------------------------------------------------
// 2. Not-found outcomes
// ------------------------------------------------------------------------

func TestShortestPath_DisjointComponents(t *testing.T) {
	g := buildGraph(t, nil, []edge{
		{"A", "B", 1},
		{"X", "Y", 1},
	})

	_, ok := dijkstra.ShortestPath(g, "A", "Y")
	assert.False(t, ok)
}

func TestShortestPath_RespectsDirection(t *testing.T) {
	g := buildDiamond(t)

	path, ok := dijkstra.ShortestPath(g, "D", "A")
	assert.False(t, ok)
	assert.Empty(t, path.Vertices)
}

func TestShortestPath_UnknownVertices(t *testing.T) {
	g := buildDiamond(t)

	_, ok := dijkstra.ShortestPath(g, "Z", "A")
	assert.False(t, ok, "unknown start")
	_, ok = dijkstra.ShortestPath(g, "A", "Z")
	assert.False(t, ok, "unknown end")
	_, ok = dijkstra.ShortestPath(g, "Z", "Z")
	assert.False(t, ok, "unknown start == end")
	_, ok = dijkstra.ShortestPath(nil, "A", "B")
	assert.False(t, ok, "nil graph")
}

func TestShortestPath_IsolatedVertex(t *testing.T) {
	g := buildGraph(t, []string{"A", "Lonely"}, []edge{{"A", "B", 1}})

	_, ok := dijkstra.ShortestPath(g, "A", "Lonely")
	assert.False(t, ok)
}

// ------------------------------------------------------------------------
// 3. Determinism & idempotence
// ------------------------------------------------------------------------

func TestShortestPath_Idempotent(t *testing.T) {
	g := buildDiamond(t)

	first, ok := dijkstra.ShortestPath(g, "A", "D")
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := dijkstra.ShortestPath(g, "A", "D")
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestShortestPath_TieBreakLexicographic(t *testing.T) {
	// Two routes of cost 2: S>>A>>T and S>>B>>T. Edges to B are inserted
	// first, yet A is settled first because it sorts lower.
	g := buildGraph(t, nil, []edge{
		{"S", "B", 1},
		{"S", "A", 1},
		{"B", "T", 1},
		{"A", "T", 1},
	})

	path, ok := dijkstra.ShortestPath(g, "S", "T")
	require.True(t, ok)
	assert.Equal(t, []string{"S", "A", "T"}, path.Vertices)
	assert.Equal(t, 2.0, path.Cost)
}

func TestShortestPath_ConcurrentQueries(t *testing.T) {
	g := buildDiamond(t)

	var wg sync.WaitGroup
	wg.Add(16)
	for i := 0; i < 16; i++ {
		go func() {
			defer wg.Done()
			path, ok := dijkstra.ShortestPath(g, "A", "D")
			assert.True(t, ok)
			assert.Equal(t, 4.0, path.Cost)
		}()
	}
	wg.Wait()
}

// ------------------------------------------------------------------------
// 4. Options
// ------------------------------------------------------------------------

func TestShortestPath_MaxCost(t *testing.T) {
	g := buildDiamond(t)

	_, ok := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMaxCost(3.5))
	assert.False(t, ok)

	path, ok := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMaxCost(4))
	require.True(t, ok)
	assert.Equal(t, 4.0, path.Cost)

	path, ok = dijkstra.ShortestPath(g, "A", "A", dijkstra.WithMaxCost(0))
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, path.Vertices)
}

func TestShortestPath_InfEdgeThreshold(t *testing.T) {
	// Graph: A→B(2), B→C(4), A→C(5), C→D(7).
	g := buildGraph(t, nil, []edge{
		{"A", "B", 2},
		{"B", "C", 4},
		{"A", "C", 5},
		{"C", "D", 7},
	})

	// Without a threshold the direct edge wins.
	path, ok := dijkstra.ShortestPath(g, "A", "C")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C"}, path.Vertices)

	// Threshold 5 closes A→C, leaving A→B→C with total cost 6.
	path, ok = dijkstra.ShortestPath(g, "A", "C", dijkstra.WithInfEdgeThreshold(5))
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C"}, path.Vertices)
	assert.Equal(t, 6.0, path.Cost)

	// C→D is a wall at the same threshold.
	_, ok = dijkstra.ShortestPath(g, "A", "D", dijkstra.WithInfEdgeThreshold(5))
	assert.False(t, ok)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxCost.Error(), func() {
		dijkstra.ShortestPath(core.NewGraph(), "A", "B", dijkstra.WithMaxCost(-1))
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.ShortestPath(core.NewGraph(), "A", "B", dijkstra.WithInfEdgeThreshold(0))
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxCost.Error(), func() {
		dijkstra.ShortestPath(core.NewGraph(), "A", "B", dijkstra.WithMaxCost(math.NaN()))
	})
}

func TestDefaultOptions(t *testing.T) {
	opts := dijkstra.DefaultOptions()
	assert.True(t, math.IsInf(opts.MaxCost, 1))
	assert.True(t, math.IsInf(opts.InfEdgeThreshold, 1))
}

// ------------------------------------------------------------------------
// 5. Agreement with exhaustive search
// ------------------------------------------------------------------------

// bruteForce returns the minimum cost over every simple directed path
// start→end, or +Inf if none exists. Non-negative weights make simple paths
// sufficient.
func bruteForce(g *core.Graph, start, end string) float64 {
	best := math.Inf(1)
	visited := map[string]bool{start: true}
	var walk func(u string, cost float64)
	walk = func(u string, cost float64) {
		if u == end {
			if cost < best {
				best = cost
			}
			return
		}
		for _, e := range g.OutgoingEdges(u) {
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			walk(e.To, cost+e.Weight)
			visited[e.To] = false
		}
	}
	walk(start, 0)

	return best
}

// pathCost sums the cheapest edge between each consecutive pair and fails if
// some hop has no edge.
func pathCost(t *testing.T, g *core.Graph, vertices []string) float64 {
	t.Helper()
	total := 0.0
	for i := 0; i+1 < len(vertices); i++ {
		hop := math.Inf(1)
		for _, e := range g.OutgoingEdges(vertices[i]) {
			if e.To == vertices[i+1] && e.Weight < hop {
				hop = e.Weight
			}
		}
		require.False(t, math.IsInf(hop, 1), "no edge %s→%s", vertices[i], vertices[i+1])
		total += hop
	}

	return total
}

func TestShortestPath_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 40; round++ {
		n := 2 + r.Intn(6)
		g := core.NewGraph()
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i)))
		}
		m := r.Intn(n * 3)
		for i := 0; i < m; i++ {
			u := fmt.Sprintf("V%d", r.Intn(n))
			v := fmt.Sprintf("V%d", r.Intn(n))
			w := float64(r.Intn(10)) // integral weights keep sums exact
			require.NoError(t, g.AddEdge(u, v, w))
		}

		for _, s := range g.Vertices() {
			for _, e := range g.Vertices() {
				want := bruteForce(g, s, e)
				path, ok := dijkstra.ShortestPath(g, s, e)
				if math.IsInf(want, 1) {
					assert.False(t, ok, "round %d %s→%s should be unreachable", round, s, e)
					continue
				}
				require.True(t, ok, "round %d %s→%s should be reachable", round, s, e)
				assert.Equal(t, want, path.Cost, "round %d %s→%s", round, s, e)
				assert.Equal(t, s, path.Vertices[0])
				assert.Equal(t, e, path.Vertices[len(path.Vertices)-1])
				assert.Equal(t, path.Cost, pathCost(t, g, path.Vertices))
			}
		}
	}
}
