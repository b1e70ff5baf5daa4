// Package core: Network method implementations.
//
// All mutators validate first and touch the maps only after every check has
// passed, so a failed AddEdge leaves the Network exactly as it was.
package core

import (
	"math"
	"sort"
)

// AddNode registers or updates the node with the given ID.
// Re-adding an existing ID overwrites its station flag (idempotent upsert),
// so declaring the topology is order-insensitive.
// Returns ErrEmptyNodeID if id is empty.
// Complexity: O(1) amortized.
func (n *Network) AddNode(id string, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	node := Node{ID: id}
	for _, opt := range opts {
		opt(&node)
	}
	n.nodes[id] = node

	return nil
}

// AddEdge declares a road between a and b with the given distance,
// congestion factor and toll. By default the edge is inserted into both
// adjacency lists; WithOneWay() suppresses the b→a mirror. Endpoints are
// upserted implicitly, preserving any station flag already declared.
//
// Validation (in order): distance must be positive and finite
// (ErrBadDistance), congestion must lie in [0,1] (ErrBadCongestion), toll
// must be non-negative and finite (ErrBadToll), and both IDs must be
// non-empty (ErrEmptyNodeID).
// Complexity: O(1) amortized.
func (n *Network) AddEdge(a, b string, distance, congestion, toll float64, opts ...EdgeOption) error {
	// 1) Attribute validation. NaN fails every comparison, so the forms
	//    below reject NaN as well as out-of-range values.
	if !(distance > 0) || math.IsInf(distance, 1) {
		return ErrBadDistance
	}
	if !(congestion >= 0 && congestion <= 1) {
		return ErrBadCongestion
	}
	if !(toll >= 0) || math.IsInf(toll, 1) {
		return ErrBadToll
	}

	// 2) Endpoint validation and implicit upsert: only missing nodes are
	//    created, so an existing station flag survives.
	if a == "" || b == "" {
		return ErrEmptyNodeID
	}
	if _, ok := n.nodes[a]; !ok {
		n.nodes[a] = Node{ID: a}
	}
	if _, ok := n.nodes[b]; !ok {
		n.nodes[b] = Node{ID: b}
	}

	// 3) Per-declaration options.
	var spec edgeSpec
	for _, opt := range opts {
		opt(&spec)
	}

	// 4) Insert the forward edge, and the mirror unless one-way.
	n.adjacency[a] = append(n.adjacency[a], Edge{From: a, To: b, Distance: distance, Congestion: congestion, Toll: toll})
	n.edgeCount++
	if !spec.oneWay {
		n.adjacency[b] = append(n.adjacency[b], Edge{From: b, To: a, Distance: distance, Congestion: congestion, Toll: toll})
		n.edgeCount++
	}

	return nil
}

// Neighbors returns the outgoing edges of the given node.
// The order of edges is unspecified. Unknown IDs yield nil.
// The returned slice is the Network's own storage: callers must treat it as
// read-only.
// Complexity: O(1).
func (n *Network) Neighbors(id string) []Edge {
	return n.adjacency[id]
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (n *Network) HasNode(id string) bool {
	_, ok := n.nodes[id]

	return ok
}

// HasStation reports whether the given node exists and hosts a refuel
// station.
// Complexity: O(1).
func (n *Network) HasStation(id string) bool {
	return n.nodes[id].Station
}

// Capacity returns the tank capacity shared by all queries on this Network.
func (n *Network) Capacity() float64 {
	return n.capacity
}

// Nodes returns all node IDs in sorted order.
// Complexity: O(V log V).
func (n *Network) Nodes() []string {
	ids := make([]string, 0, len(n.nodes))
	for id := range n.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Node returns the node record for the given ID and whether it exists.
// Complexity: O(1).
func (n *Network) Node(id string) (Node, bool) {
	node, ok := n.nodes[id]

	return node, ok
}

// NodeCount returns the number of nodes. O(1).
func (n *Network) NodeCount() int {
	return len(n.nodes)
}

// EdgeCount returns the number of directed edge records; a bidirectional
// road counts twice. O(1).
func (n *Network) EdgeCount() int {
	return n.edgeCount
}

// Clone returns a deep copy of the Network: capacity, nodes, and adjacency.
// Useful when a caller wants to mutate a scenario without disturbing
// queries running against the original.
// Complexity: O(V + E).
func (n *Network) Clone() *Network {
	clone := NewNetwork(n.capacity)
	for id, node := range n.nodes {
		clone.nodes[id] = node
	}
	for id, edges := range n.adjacency {
		clone.adjacency[id] = append([]Edge(nil), edges...)
	}
	clone.edgeCount = n.edgeCount

	return clone
}
