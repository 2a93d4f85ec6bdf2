package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/network"
	"github.com/spf13/cobra"
)

// errReported marks a failure whose message was already printed for the user.
var errReported = errors.New("reported")

var errNotNumeric = errors.New("not a number")

// --- route ---

func routeCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find the cheapest route between two cities",
		Long: `Find the cheapest route between two cities.

Without --from/--to the cities are listed with numbers and both ends are
read interactively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			g, err := loadGraph(cmd.Context(), cfg.Network.Path)
			if err != nil {
				fmt.Fprintf(out, "Error reading file: %v\n", err)
				return errReported
			}

			opts := routeOptions(cfg)
			if from != "" || to != "" {
				return runRouteByName(out, g, from, to, opts)
			}

			return runRouteInteractive(cmd.InOrStdin(), out, g, opts)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "starting city name (skips the menu)")
	cmd.Flags().StringVar(&to, "to", "", "destination city name (skips the menu)")
	return cmd
}

func loadGraph(ctx context.Context, path string) (*core.Graph, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	g, err := network.LoadGraph(ctx, path, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("graph ready", "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

// routeOptions translates the route section of the config into search options.
func routeOptions(c *config.Config) []dijkstra.Option {
	var opts []dijkstra.Option
	if c == nil {
		return opts
	}
	if c.Route.MaxCost > 0 {
		opts = append(opts, dijkstra.WithMaxCost(c.Route.MaxCost))
	}
	if c.Route.ClosedThreshold > 0 {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(c.Route.ClosedThreshold))
	}
	return opts
}

// runRouteInteractive prints the numbered city menu, reads a starting and a
// destination number from in, and prints the result. Bad input is reported
// on out and ends the session without an error.
func runRouteInteractive(in io.Reader, out io.Writer, g *core.Graph, opts []dijkstra.Option) error {
	cities := g.Vertices()

	fmt.Fprintln(out, "Please select a Starting and Destination city: <Enter the city number>")
	printCities(out, cities)

	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	fmt.Fprint(out, "\nPlease enter starting city:\n")
	startIdx, err := readIndex(sc)
	if err != nil {
		return reportInputError(out, err)
	}
	fmt.Fprint(out, "Please enter destination city:\n")
	endIdx, err := readIndex(sc)
	if err != nil {
		return reportInputError(out, err)
	}

	if !validIndex(startIdx, cities) || !validIndex(endIdx, cities) {
		fmt.Fprintln(out, "Invalid city number selected")
		return nil
	}

	printRoute(out, g, cities[startIdx], cities[endIdx], opts)
	return nil
}

// runRouteByName answers a single query given city labels.
func runRouteByName(out io.Writer, g *core.Graph, from, to string, opts []dijkstra.Option) error {
	if from == "" || to == "" {
		return errors.New("both --from and --to are required")
	}
	for _, c := range []string{from, to} {
		if !g.HasVertex(c) {
			logger.Warn("unknown city", "city", c)
		}
	}

	printRoute(out, g, from, to, opts)
	return nil
}

func printCities(out io.Writer, cities []string) {
	for i, c := range cities {
		fmt.Fprintf(out, "%d > %s\n", i, c)
	}
}

func printRoute(out io.Writer, g *core.Graph, start, end string, opts []dijkstra.Option) {
	path, ok := dijkstra.ShortestPath(g, start, end, opts...)
	if !ok {
		logger.Debug("no route", "from", start, "to", end)
		fmt.Fprintf(out, "\nNo route found between %s and %s\n", start, end)
		return
	}
	logger.Debug("route found", "from", start, "to", end, "hops", path.Hops(), "cost", path.Cost)
	fmt.Fprintf(out, "\nThe shortest route from %s to %s: %s (cost %.1f)\n", start, end, path, path.Cost)
}

// readIndex reads the next whitespace-separated token as an integer.
func readIndex(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotNumeric, sc.Text())
	}
	return n, nil
}

func validIndex(i int, cities []string) bool {
	return i >= 0 && i < len(cities)
}

func reportInputError(out io.Writer, err error) error {
	if errors.Is(err, errNotNumeric) {
		fmt.Fprintln(out, "Please enter valid numeric city numbers")
		return nil
	}
	fmt.Fprintf(out, "An error occurred: %v\n", err)
	return nil
}

// --- cities ---

func citiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the cities of the network with their menu numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadGraph(cmd.Context(), cfg.Network.Path)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Error reading file: %v\n", err)
				return errReported
			}
			printCities(cmd.OutOrStdout(), g.Vertices())
			return nil
		},
	}
}

// --- import ---

func importCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import <network-file>",
		Short: "Copy a text, YAML or HCL network into the SQLite store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Storage.Path
			if dbPath != "" {
				path = dbPath
			}
			n, err := runImport(cmd.Context(), args[0], path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cities and %d routes into %s\n", len(n.Cities), len(n.Records), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "database path (overrides config)")
	return cmd
}

func runImport(ctx context.Context, src, dbPath string) (network.Network, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	n, err := network.Load(ctx, src, logger)
	if err != nil {
		return network.Network{}, err
	}
	// Validate the graph before persisting anything.
	if _, err := n.Graph(); err != nil {
		return network.Network{}, err
	}

	store, err := network.NewSQLiteStore(dbPath)
	if err != nil {
		return network.Network{}, err
	}
	defer store.Close() //nolint:errcheck // best-effort cleanup

	if err := store.Init(ctx); err != nil {
		return network.Network{}, fmt.Errorf("initializing database: %w", err)
	}
	if err := store.Save(ctx, n); err != nil {
		return network.Network{}, err
	}
	logger.Info("network imported", "source", src, "db", dbPath, "cities", len(n.Cities), "routes", len(n.Records))

	return n, nil
}
