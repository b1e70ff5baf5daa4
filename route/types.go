// Package route: configuration options, sentinel errors and the trace type
// for the constrained search engine.
package route

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by FindRoute for construction-time contract
// violations. Search outcomes (no path, infeasible, over budget, deadline)
// are never errors; they are carried by Result.Reason.
var (
	// ErrNilNetwork indicates a nil *core.Network was passed to FindRoute.
	ErrNilNetwork = errors.New("route: network is nil")

	// ErrEmptyNodeID indicates the start or goal identifier is empty.
	ErrEmptyNodeID = errors.New("route: start and goal IDs must be non-empty")

	// ErrNodeNotFound indicates the start or goal node is absent from the
	// network.
	ErrNodeNotFound = errors.New("route: node not found in network")
)

// Settlement is one trace record: a node whose minimum cost has just been
// finalized, with the accumulated cost, distance and remaining fuel of the
// state that settled it. Emitted in settlement order via WithOnSettle.
type Settlement struct {
	Node     string
	Cost     float64
	Distance float64
	Fuel     float64
}

// Options configures a single FindRoute query.
//
// MaxToll         – cumulative toll ceiling; routes above it are rejected.
// ConsumptionRate – fuel consumed per unit of edge distance.
// MaxSettled      – settlement-count budget; exhaustion yields
//
//	ReasonDeadlineExceeded.
//
// Ctx             – deadline / cancellation; checked once per settlement.
// OnSettle        – optional trace hook, called once per settlement.
type Options struct {
	MaxToll         float64
	ConsumptionRate float64
	MaxSettled      int
	Ctx             context.Context
	OnSettle        func(Settlement)
}

// Option represents a functional option for configuring FindRoute.
type Option func(*Options)

// WithMaxToll caps the cumulative toll a route may incur.
// Must be non-negative; NaN and negative values panic.
// Default (if not set) is +Inf (no ceiling).
func WithMaxToll(maxToll float64) Option {
	return func(o *Options) {
		if !(maxToll >= 0) {
			// Panic to signal invalid configuration early, as option
			// constructors cannot return errors.
			panic("route: MaxToll must be non-negative")
		}
		o.MaxToll = maxToll
	}
}

// WithConsumptionRate sets how much fuel one unit of distance consumes.
// Must be positive and finite; anything else panics.
// Default (if not set) is 1.0.
func WithConsumptionRate(rate float64) Option {
	return func(o *Options) {
		if !(rate > 0) || math.IsInf(rate, 1) {
			panic("route: ConsumptionRate must be positive and finite")
		}
		o.ConsumptionRate = rate
	}
}

// WithContext attaches a context whose deadline or cancellation aborts the
// search with ReasonDeadlineExceeded. The context is consulted once per
// settlement; there are no other suspension points inside the engine.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			panic("route: context must be non-nil")
		}
		o.Ctx = ctx
	}
}

// WithMaxSettled bounds how many nodes the search may settle before giving
// up with ReasonDeadlineExceeded — a step-count deadline for embedders that
// prefer determinism over wall clocks. Must be positive; else panics.
func WithMaxSettled(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("route: MaxSettled must be positive")
		}
		o.MaxSettled = n
	}
}

// WithOnSettle installs a trace hook invoked once per settlement, in
// settlement order. The hook observes the search; it must not mutate the
// network. Diagnostics only.
func WithOnSettle(fn func(Settlement)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// DefaultOptions returns the Options FindRoute starts from before applying
// functional overrides.
//
// Defaults:
//   - MaxToll:         +Inf (no toll ceiling).
//   - ConsumptionRate: 1.0 (one fuel unit per distance unit).
//   - MaxSettled:      unbounded.
//   - Ctx:             context.Background().
//   - OnSettle:        nil (no tracing).
func DefaultOptions() Options {
	return Options{
		MaxToll:         math.Inf(1),
		ConsumptionRate: 1.0,
		MaxSettled:      math.MaxInt,
		Ctx:             context.Background(),
	}
}
