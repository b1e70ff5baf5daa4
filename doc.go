// Package roadway is a constrained shortest-path engine for road networks
// with consumable fuel and cumulative tolls.
//
// 🚗 What is roadway?
//
//	A small, focused library that answers one question well: what is the
//	cheapest drivable route between two points when
//		• every kilometre costs more under congestion,
//		• tolls add to the bill and may be capped by the caller,
//		• the tank is finite and refills only at station nodes?
//
// The answer comes from a modified Dijkstra search that treats fuel as a
// hard physical constraint and the toll ceiling as a soft budget, so
// failures are diagnosed precisely: structurally unreachable,
// fuel-infeasible, or over budget.
//
// Organization:
//
//	core/  — the road-network model: nodes (with refuel-station flags),
//	         symmetric multi-attribute edges, tank capacity
//	route/ — the search engine: FindRoute, functional options, Result with
//	         a closed failure-reason enum, settlement tracing
//
// The packages under internal/ and cmd/ embed the engine in an HTTP service
// (network loading from JSON files or Neo4j, a gorilla/mux API, a one-shot
// CLI). They are deliberately thin: the library is the product.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    E───D───C
//
//	a five-town network; mark stations, weight the roads, ask for A→C.
//
// See the core and route package docs for the full API, complexity bounds
// and error contracts.
package roadway
