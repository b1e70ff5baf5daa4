// Command routeq runs a single route query against a network file and prints
// the result. Exit status is 0 for a valid route, 1 for any failure.
//
// Usage:
//
//	routeq -network city.json -from A -to D [-max-toll 25] [-rate 0.75] [-trace]
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/dkresling/roadway/internal/store"
	"github.com/dkresling/roadway/route"
)

func main() {
	var (
		networkPath = flag.String("network", "", "path to the network JSON file (required)")
		from        = flag.String("from", "", "start node ID (required)")
		to          = flag.String("to", "", "goal node ID (required)")
		maxToll     = flag.Float64("max-toll", math.Inf(1), "cumulative toll ceiling")
		rate        = flag.Float64("rate", 1.0, "fuel consumed per unit of distance")
		maxSettled  = flag.Int("max-settled", 0, "settlement budget, 0 for unbounded")
		trace       = flag.Bool("trace", false, "print each settlement to stderr")
	)
	flag.Parse()

	if *networkPath == "" || *from == "" || *to == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *rate <= 0 {
		fatal(fmt.Errorf("-rate must be positive, got %v", *rate))
	}
	if *maxToll < 0 {
		fatal(fmt.Errorf("-max-toll must be non-negative, got %v", *maxToll))
	}

	source, err := store.NewFileSource(*networkPath)
	if err != nil {
		fatal(err)
	}
	net, err := source.Load(context.Background())
	if err != nil {
		fatal(err)
	}

	opts := []route.Option{route.WithConsumptionRate(*rate)}
	if !math.IsInf(*maxToll, 1) {
		opts = append(opts, route.WithMaxToll(*maxToll))
	}
	if *maxSettled > 0 {
		opts = append(opts, route.WithMaxSettled(*maxSettled))
	}
	if *trace {
		opts = append(opts, route.WithOnSettle(func(s route.Settlement) {
			fmt.Fprintf(os.Stderr, "settle %-12s cost=%-10.3f distance=%-10.3f fuel=%.3f\n",
				s.Node, s.Cost, s.Distance, s.Fuel)
		}))
	}

	res, err := route.FindRoute(net, *from, *to, opts...)
	if err != nil {
		fatal(err)
	}

	if !res.Valid {
		fmt.Fprintf(os.Stderr, "no route: %s\n", res.Reason)
		os.Exit(1)
	}

	fmt.Printf("route:    %v\n", res.Path)
	fmt.Printf("cost:     %.3f\n", res.TotalCost)
	fmt.Printf("distance: %.3f\n", res.Distance)
	fmt.Printf("toll:     %.3f\n", res.Toll)
	fmt.Printf("stations: %v\n", res.Stations)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "routeq:", err)
	os.Exit(1)
}
