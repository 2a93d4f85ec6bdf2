// Package network reads route-network descriptions and turns them into a
// core.Graph ready for shortest-path queries.
//
// A network is an ordered list of city labels plus a list of directed,
// weighted routes. Four on-disk forms are understood (see Load):
//
//   - text   (.txt, .csv): first line "CityA, CityB, ...", then one "from, to, cost" per line
//   - YAML   (.yaml, .yml): cities: [...] and routes: [{from, to, cost}]
//   - HCL    (.hcl):        cities = [...] and route "from" "to" { cost = n } blocks
//   - SQLite (.db, .sqlite, .sqlite3): tables cities and routes, see SQLiteStore
//
// Every parser trims labels and rejects malformed weights before anything
// reaches the graph: core never sees unvalidated text.
package network

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors returned while reading a network.
var (
	// ErrEmptyNetwork indicates a source with no city header at all.
	ErrEmptyNetwork = errors.New("network: no cities defined")

	// ErrBadWeight indicates a weight that is not a finite number.
	ErrBadWeight = errors.New("network: invalid route cost")

	// ErrNegativeWeight indicates a route with a cost below zero.
	ErrNegativeWeight = errors.New("network: negative route cost")

	// ErrEmptyLabel indicates a route whose source or destination is blank.
	ErrEmptyLabel = errors.New("network: empty city name")

	// ErrUnsupportedFormat indicates a path whose extension Load does not know.
	ErrUnsupportedFormat = errors.New("network: unsupported file format")
)

// Record is one directed route: Source → Destination at cost Weight.
type Record struct {
	Source      string
	Destination string
	Weight      float64
}

// Network is a parsed description: the declared cities, in declaration
// order, and every route record.
type Network struct {
	Cities  []string
	Records []Record
}

// validate trims the labels of r and checks its weight.
func (r Record) validate() (Record, error) {
	r.Source = strings.TrimSpace(r.Source)
	r.Destination = strings.TrimSpace(r.Destination)
	if r.Source == "" || r.Destination == "" {
		return r, ErrEmptyLabel
	}
	if math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0) {
		return r, fmt.Errorf("%w: %v", ErrBadWeight, r.Weight)
	}
	if r.Weight < 0 {
		return r, fmt.Errorf("%w: %s→%s cost=%v", ErrNegativeWeight, r.Source, r.Destination, r.Weight)
	}

	return r, nil
}

// normalize trims and validates every city and record, dropping blank city names.
// label describes the source for error messages.
func normalize(cities []string, records []Record, label string) (Network, error) {
	var n Network
	for _, c := range cities {
		if c = strings.TrimSpace(c); c != "" {
			n.Cities = append(n.Cities, c)
		}
	}
	if len(n.Cities) == 0 {
		return Network{}, fmt.Errorf("%w: %s", ErrEmptyNetwork, label)
	}

	n.Records = make([]Record, 0, len(records))
	for i, r := range records {
		vr, err := r.validate()
		if err != nil {
			return Network{}, fmt.Errorf("%s: route %d: %w", label, i+1, err)
		}
		n.Records = append(n.Records, vr)
	}

	return n, nil
}

// Graph builds a core.Graph from n.
//
// Cities are registered first, in declaration order. A route may name a city
// missing from the header; it is registered explicitly before the edge is
// added, so the graph ends up with the same vertex set as the description.
func (n Network) Graph() (*core.Graph, error) {
	g := core.NewGraph()

	// 1) Declared cities.
	for _, c := range n.Cities {
		if err := g.AddVertex(c); err != nil {
			return nil, fmt.Errorf("network: city %q: %w", c, err)
		}
	}

	// 2) Routes, registering undeclared endpoints as they appear.
	for i, r := range n.Records {
		for _, v := range [2]string{r.Source, r.Destination} {
			if g.HasVertex(v) {
				continue
			}
			if err := g.AddVertex(v); err != nil {
				return nil, fmt.Errorf("network: route %d: %w", i+1, err)
			}
		}
		if err := g.AddEdge(r.Source, r.Destination, r.Weight); err != nil {
			return nil, fmt.Errorf("network: route %d: %w", i+1, err)
		}
	}

	return g, nil
}
