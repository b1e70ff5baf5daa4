// Package core provides the road-network model consumed by the route engine:
// nodes that may host refuel stations, symmetric multi-attribute edges, and a
// global tank capacity.
//
// Overview:
//
//   - A Network is built once through AddNode / AddEdge and then queried.
//     Every declared road is inserted into both adjacency lists unless the
//     caller marks it one-way, matching how real road data is declared.
//   - Each Edge carries three independent attributes: Distance (> 0),
//     Congestion (∈ [0,1]) and Toll (≥ 0). Edge.Cost folds distance and
//     congestion into the routing cost; tolls are accumulated separately by
//     the engine so that toll budgets can be enforced without re-deriving
//     them from the total.
//   - Capacity is a property of the Network, not of a query: it bounds how
//     far any vehicle can travel between stations.
//
// Concurrency contract:
//
//   - A Network has no internal locking. Build it, then query it; do not
//     mutate it while a query is in flight. Any number of concurrent queries
//     may share one frozen Network, since queries never write to it.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyNodeID:   a node identifier is the empty string.
//   - ErrBadDistance:   edge distance is not a positive finite number.
//   - ErrBadCongestion: congestion factor is outside [0,1].
//   - ErrBadToll:       toll is negative or not finite.
//
// NewNetwork panics on a non-positive capacity: a tank that holds nothing is
// a programmer error, not a runtime condition.
package core
