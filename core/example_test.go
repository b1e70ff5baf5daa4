// Package core_test provides runnable examples for building road networks.
package core_test

import (
	"fmt"

	"github.com/dkresling/roadway/core"
)

// ExampleNetwork demonstrates declaring a small network: two towns joined by
// a congested toll road, with a refuel station at the origin.
func ExampleNetwork() {
	// 1) A network whose vehicles carry at most 40 fuel units.
	n := core.NewNetwork(40)

	// 2) Mark "A" as a refuel station before wiring roads.
	_ = n.AddNode("A", core.WithStation())

	// 3) Declare one bidirectional road; both directions appear.
	_ = n.AddEdge("A", "B", 10, 0.5, 3)

	fmt.Println("nodes:", n.Nodes())
	fmt.Println("edges:", n.EdgeCount())
	fmt.Println("A is station:", n.HasStation("A"))
	fmt.Printf("A->B cost: %.1f\n", n.Neighbors("A")[0].Cost())
	// Output:
	// nodes: [A B]
	// edges: 2
	// A is station: true
	// A->B cost: 15.0
}

// ExampleWithOneWay shows a one-way road: the mirror edge is suppressed.
func ExampleWithOneWay() {
	n := core.NewNetwork(10)
	_ = n.AddEdge("ramp", "highway", 2, 0, 0, core.WithOneWay())

	fmt.Println("ramp out-degree:", len(n.Neighbors("ramp")))
	fmt.Println("highway out-degree:", len(n.Neighbors("highway")))
	// Output:
	// ramp out-degree: 1
	// highway out-degree: 0
}
