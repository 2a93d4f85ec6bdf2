// Package dijkstra defines the result type, graph interface and configuration
// options for the point-to-point shortest-path search.
//
// Options:
//
//	– MaxCost:          optional cap on route cost; routes costing more are not reported.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel, raised via panic from option constructors only):
//
//	– ErrBadMaxCost      if MaxCost < 0 or NaN.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 or NaN.
package dijkstra

import (
	"errors"
	"math"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors for invalid option values.
var (
	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// PathSeparator joins vertex labels in Path.String.
const PathSeparator = " >> "

// Graph is the read-only view the search needs. *core.Graph satisfies it.
type Graph interface {
	HasVertex(id string) bool
	OutgoingEdges(id string) []core.Edge
}

// Path is a minimum-cost route from Vertices[0] to Vertices[len-1].
//
// Cost is the sum of the weights of the edges actually travelled.
// A Path is built once per query and never shared.
type Path struct {
	Vertices []string
	Cost     float64
}

// String renders the route as "A >> B >> C".
func (p Path) String() string {
	return strings.Join(p.Vertices, PathSeparator)
}

// Hops returns the number of edges travelled; zero for a single-vertex path.
func (p Path) Hops() int {
	if len(p.Vertices) == 0 {
		return 0
	}

	return len(p.Vertices) - 1
}

// Options configures the behavior of ShortestPath.
//
// MaxCost          – routes whose total cost exceeds this value are not reported.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	MaxCost          float64 // Maximum route cost to explore
	InfEdgeThreshold float64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxCost sets a maximum route cost.
// Vertices whose cost would exceed max are never reached.
// Must pass a non-negative value; anything else panics with ErrBadMaxCost.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Edges with weight ≥ threshold are skipped.
// Must pass a positive value; anything else panics with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no cost cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxCost:          math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
