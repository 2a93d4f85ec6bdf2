// Package lvroute finds the cheapest route between two named cities of a
// small, static, directed route network.
//
// What is in the box?
//
//	core/        — the directed, weighted Graph keyed by city label
//	dijkstra/    — point-to-point shortest path with early exit and route reconstruction
//	network/     — text, YAML, HCL and SQLite network sources → core.Graph
//	config/      — viper-backed settings (network path, log level, cost caps)
//	cmd/lvroute/ — the command-line front end (interactive menu, one-shot queries, import)
//	examples/    — a runnable city-route walk-through
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.Connect("A", "B", 1)
//	_ = g.Connect("B", "C", 2)
//	_ = g.Connect("A", "C", 5)
//	path, ok := dijkstra.ShortestPath(g, "A", "C")
//	// ok == true, path.String() == "A >> B >> C", path.Cost == 3
//
// Network text format (the default static/ticket_to_ride.txt):
//
//	Seattle, Portland, San Francisco
//	Seattle, Portland, 1
//	Portland, San Francisco, 5
//
// The first line lists the cities; each further line is a one-way route
// "from, to, cost". Costs must be finite and non-negative.
//
//	go install github.com/katalvlaran/lvroute/cmd/lvroute@latest
//	lvroute route
package lvroute
