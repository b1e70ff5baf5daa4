// Package core_test contains unit tests for the road-network model:
// construction validation, symmetric insertion, station upserts, one-way
// roads, and cloning.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkresling/roadway/core"
)

// ------------------------------------------------------------------------
// 1. Constructor contract.
// ------------------------------------------------------------------------

func TestNewNetwork_PanicsOnBadCapacity(t *testing.T) {
	assert.Panics(t, func() { core.NewNetwork(0) })
	assert.Panics(t, func() { core.NewNetwork(-3) })
	assert.Panics(t, func() { core.NewNetwork(math.NaN()) })
	assert.Panics(t, func() { core.NewNetwork(math.Inf(1)) })
	assert.NotPanics(t, func() { core.NewNetwork(0.5) })
}

func TestNewNetwork_CapacityIsExposed(t *testing.T) {
	n := core.NewNetwork(42)
	assert.Equal(t, 42.0, n.Capacity())
}

// ------------------------------------------------------------------------
// 2. Node management: upsert semantics and station flags.
// ------------------------------------------------------------------------

func TestAddNode_EmptyID(t *testing.T) {
	n := core.NewNetwork(10)
	assert.ErrorIs(t, n.AddNode(""), core.ErrEmptyNodeID)
}

func TestAddNode_StationFlagUpsert(t *testing.T) {
	n := core.NewNetwork(10)
	require.NoError(t, n.AddNode("A"))
	assert.False(t, n.HasStation("A"))

	// Re-adding with WithStation overwrites the flag.
	require.NoError(t, n.AddNode("A", core.WithStation()))
	assert.True(t, n.HasStation("A"))

	// And re-adding plain clears it again: the upsert is total.
	require.NoError(t, n.AddNode("A"))
	assert.False(t, n.HasStation("A"))

	assert.Equal(t, 1, n.NodeCount())
}

func TestHasStation_UnknownNode(t *testing.T) {
	n := core.NewNetwork(10)
	assert.False(t, n.HasStation("ghost"))
}

// ------------------------------------------------------------------------
// 3. Edge management: validation, symmetry, one-way roads.
// ------------------------------------------------------------------------

func TestAddEdge_Validation(t *testing.T) {
	n := core.NewNetwork(10)

	assert.ErrorIs(t, n.AddEdge("A", "B", 0, 0, 0), core.ErrBadDistance)
	assert.ErrorIs(t, n.AddEdge("A", "B", -1, 0, 0), core.ErrBadDistance)
	assert.ErrorIs(t, n.AddEdge("A", "B", math.NaN(), 0, 0), core.ErrBadDistance)
	assert.ErrorIs(t, n.AddEdge("A", "B", math.Inf(1), 0, 0), core.ErrBadDistance)

	assert.ErrorIs(t, n.AddEdge("A", "B", 1, -0.1, 0), core.ErrBadCongestion)
	assert.ErrorIs(t, n.AddEdge("A", "B", 1, 1.1, 0), core.ErrBadCongestion)
	assert.ErrorIs(t, n.AddEdge("A", "B", 1, math.NaN(), 0), core.ErrBadCongestion)

	assert.ErrorIs(t, n.AddEdge("A", "B", 1, 0, -2), core.ErrBadToll)
	assert.ErrorIs(t, n.AddEdge("A", "B", 1, 0, math.NaN()), core.ErrBadToll)

	assert.ErrorIs(t, n.AddEdge("", "B", 1, 0, 0), core.ErrEmptyNodeID)
	assert.ErrorIs(t, n.AddEdge("A", "", 1, 0, 0), core.ErrEmptyNodeID)

	// A failed AddEdge leaves the network untouched.
	assert.Equal(t, 0, n.NodeCount())
	assert.Equal(t, 0, n.EdgeCount())
}

func TestAddEdge_SymmetricInsertion(t *testing.T) {
	n := core.NewNetwork(10)
	require.NoError(t, n.AddEdge("A", "B", 5, 0.3, 2))

	// One declared road, two directed edge records.
	assert.Equal(t, 2, n.EdgeCount())

	ab := n.Neighbors("A")
	require.Len(t, ab, 1)
	assert.Equal(t, "A", ab[0].From)
	assert.Equal(t, "B", ab[0].To)
	assert.Equal(t, 5.0, ab[0].Distance)
	assert.Equal(t, 0.3, ab[0].Congestion)
	assert.Equal(t, 2.0, ab[0].Toll)

	ba := n.Neighbors("B")
	require.Len(t, ba, 1)
	assert.Equal(t, "B", ba[0].From)
	assert.Equal(t, "A", ba[0].To)
	assert.Equal(t, ab[0].Distance, ba[0].Distance)
	assert.Equal(t, ab[0].Congestion, ba[0].Congestion)
	assert.Equal(t, ab[0].Toll, ba[0].Toll)
}

func TestAddEdge_OneWay(t *testing.T) {
	n := core.NewNetwork(10)
	require.NoError(t, n.AddEdge("A", "B", 5, 0, 0, core.WithOneWay()))

	assert.Equal(t, 1, n.EdgeCount())
	assert.Len(t, n.Neighbors("A"), 1)
	assert.Empty(t, n.Neighbors("B"))
}

func TestAddEdge_ImplicitUpsertPreservesStations(t *testing.T) {
	n := core.NewNetwork(10)
	require.NoError(t, n.AddNode("A", core.WithStation()))
	require.NoError(t, n.AddEdge("A", "B", 5, 0, 0))

	// AddEdge must not clobber A's station flag, and must create B plain.
	assert.True(t, n.HasStation("A"))
	assert.True(t, n.HasNode("B"))
	assert.False(t, n.HasStation("B"))
}

func TestNeighbors_UnknownNode(t *testing.T) {
	n := core.NewNetwork(10)
	assert.Nil(t, n.Neighbors("nowhere"))
}

// ------------------------------------------------------------------------
// 4. Edge cost model.
// ------------------------------------------------------------------------

func TestEdgeCost_FoldsCongestion(t *testing.T) {
	e := core.Edge{Distance: 10, Congestion: 0.8}
	assert.InDelta(t, 18.0, e.Cost(), 1e-9)

	free := core.Edge{Distance: 7, Congestion: 0}
	assert.InDelta(t, 7.0, free.Cost(), 1e-9)

	// Toll never leaks into the congestion cost.
	tolled := core.Edge{Distance: 7, Congestion: 0, Toll: 100}
	assert.InDelta(t, 7.0, tolled.Cost(), 1e-9)
}

// ------------------------------------------------------------------------
// 5. Accessors and Clone.
// ------------------------------------------------------------------------

func TestNodes_Sorted(t *testing.T) {
	n := core.NewNetwork(10)
	for _, id := range []string{"delta", "alpha", "charlie", "bravo"} {
		require.NoError(t, n.AddNode(id))
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, n.Nodes())
}

func TestNodeLookup(t *testing.T) {
	n := core.NewNetwork(10)
	require.NoError(t, n.AddNode("A", core.WithStation()))

	node, ok := n.Node("A")
	require.True(t, ok)
	assert.Equal(t, core.Node{ID: "A", Station: true}, node)

	_, ok = n.Node("B")
	assert.False(t, ok)
}

func TestClone_IsDeep(t *testing.T) {
	n := core.NewNetwork(12)
	require.NoError(t, n.AddNode("A", core.WithStation()))
	require.NoError(t, n.AddEdge("A", "B", 5, 0.3, 1))

	clone := n.Clone()
	require.NoError(t, clone.AddEdge("B", "C", 2, 0, 0))
	require.NoError(t, clone.AddNode("A")) // clears station flag on the clone only

	assert.Equal(t, 2, n.EdgeCount())
	assert.Equal(t, 4, clone.EdgeCount())
	assert.True(t, n.HasStation("A"))
	assert.False(t, clone.HasStation("A"))
	assert.False(t, n.HasNode("C"))
}
