// Package core: type declarations for the road-network model.
//
// This file declares Node, Edge, Network, the option types, the sentinel
// errors, and the NewNetwork constructor.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for network construction.
var (
	// ErrEmptyNodeID indicates a node identifier is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrBadDistance indicates an edge distance that is not a positive finite number.
	ErrBadDistance = errors.New("core: edge distance must be positive and finite")

	// ErrBadCongestion indicates a congestion factor outside the [0,1] range.
	ErrBadCongestion = errors.New("core: congestion factor must be within [0,1]")

	// ErrBadToll indicates a negative or non-finite toll.
	ErrBadToll = errors.New("core: toll must be non-negative and finite")
)

// Node represents a junction or town in the road network.
//
// ID uniquely identifies the Node within its Network; Station marks whether
// a vehicle can refuel here.
type Node struct {
	// ID is the caller-chosen unique identifier.
	ID string

	// Station reports whether this node hosts a refuel station.
	Station bool
}

// Edge represents one direction of a road between two nodes.
//
// A bidirectional road is stored as two mirrored Edge values, one in each
// endpoint's adjacency list.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Distance is the road length; always positive.
	Distance float64

	// Congestion is the traffic factor in [0,1]; it scales the distance
	// component of the routing cost.
	Congestion float64

	// Toll is the fee charged for traversing the edge; always non-negative.
	Toll float64
}

// Cost returns the non-toll routing cost of traversing e:
// Distance + Distance*Congestion. Tolls are accumulated separately by the
// engine (they join the minimized total there, but feed the budget check
// from their own accumulator).
func (e Edge) Cost() float64 {
	return e.Distance + e.Distance*e.Congestion
}

// NodeOption configures a node as it is added to the Network.
type NodeOption func(*Node)

// WithStation marks the node as a refuel station.
func WithStation() NodeOption {
	return func(n *Node) { n.Station = true }
}

// EdgeOption configures an edge declaration.
type EdgeOption func(*edgeSpec)

// edgeSpec collects per-declaration edge settings.
type edgeSpec struct {
	oneWay bool
}

// WithOneWay suppresses the mirrored reverse edge, declaring the road as
// traversable only from its first endpoint to its second.
func WithOneWay() EdgeOption {
	return func(s *edgeSpec) { s.oneWay = true }
}

// Network is the in-memory road-network model.
//
// It stores nodes, per-node outgoing adjacency, and the global tank
// capacity. A Network is a build-then-query value: it carries no locks, and
// callers must not mutate it while a query is in flight. Concurrent queries
// against a frozen Network are safe.
type Network struct {
	capacity  float64           // tank capacity; positive
	nodes     map[string]Node   // node ID → Node
	adjacency map[string][]Edge // node ID → outgoing edges
	edgeCount int               // declared directed edges (a two-way road counts twice)
}

// NewNetwork creates an empty Network with the given tank capacity.
// It panics if capacity is not a positive finite number: an undrivable
// network is a programmer error, per the engine's contract.
// Complexity: O(1).
func NewNetwork(capacity float64) *Network {
	if !(capacity > 0) || math.IsInf(capacity, 1) {
		panic("core: tank capacity must be positive and finite")
	}

	return &Network{
		capacity:  capacity,
		nodes:     make(map[string]Node),
		adjacency: make(map[string][]Edge),
	}
}
