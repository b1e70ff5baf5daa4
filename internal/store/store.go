// Package store loads road networks from backing stores: a JSON document on
// disk or a Bolt-speaking graph database. Both produce a *core.Network ready
// for querying; the network is immutable once loaded.
package store

import (
	"context"
	"errors"

	"github.com/dkresling/roadway/core"
)

// Source loads a road network from a backing store.
type Source interface {
	// Load builds the network. Validation failures in the stored data are
	// reported as errors wrapping the core sentinels.
	Load(ctx context.Context) (*core.Network, error)

	// Close releases any underlying connections.
	Close(ctx context.Context) error
}

var (
	// ErrMissingPath indicates no network file path was provided.
	ErrMissingPath = errors.New("store: network file path is required")

	// ErrMissingURI indicates the graph database URI is not provided.
	ErrMissingURI = errors.New("store: graph URI is required")

	// ErrBadCapacity indicates a non-positive tank capacity in the stored
	// network description.
	ErrBadCapacity = errors.New("store: capacity must be positive")
)
