// Package route implements the constrained shortest-path engine: a modified
// Dijkstra search over a core.Network that minimizes congestion-weighted
// distance plus tolls, subject to a hard fuel constraint and a soft toll
// ceiling.
//
// Overview:
//
//   - FindRoute computes the minimum-cost route between two nodes. Cost per
//     edge is Edge.Cost() + Edge.Toll; tolls are additionally tracked in
//     their own accumulator so the ceiling can be checked without deriving
//     it back out of the total.
//   - Fuel is consumed at ConsumptionRate per distance unit from a tank of
//     the Network's capacity, refilled only at station nodes. Refuelling is
//     free, instant and always to full, so the engine refuels greedily: a
//     fuller tank can never make a future edge less feasible, which keeps
//     the greedy rule optimal.
//   - An edge is considered only if it is fuel-feasible first and within the
//     toll budget second. Fuel is the physical constraint; the ordering is
//     what makes the failure diagnosis meaningful (infeasible vs over
//     budget).
//
// Search mechanics:
//
//   - Min-heap frontier keyed on accumulated cost (container/heap with the
//     lazy decrease-key pattern: improved paths push duplicates; stale
//     entries are discarded when popped against the settled set).
//   - A node is settled strictly after being popped. There is deliberately
//     NO best-cost-per-node pruning at push time: a cheaper way to reach a
//     node with less fuel can be a dead end where a dearer, fuller state
//     survives, so cost alone must never suppress a frontier entry.
//   - Every frontier state owns its path and station slices; branches never
//     share mutable buffers.
//
// Outcomes:
//
//   - Search failures never surface as errors. FindRoute always returns a
//     Result whose Valid flag and closed Reason enum callers can branch on:
//     ReasonNoPath, ReasonFuelInfeasible, ReasonTollExceeded,
//     ReasonDeadlineExceeded.
//   - ReasonTollExceeded vs ReasonFuelInfeasible is decided by a secondary
//     toll-unlimited run; ReasonNoPath by a constraint-free reachability
//     sweep. The cold failure path pays for the diagnosis, not the hot loop.
//
// Errors (sentinel, construction-time only):
//
//   - ErrNilNetwork:  the network pointer is nil.
//   - ErrEmptyNodeID: start or goal is the empty string.
//   - ErrNodeNotFound: start or goal is not in the network.
//
// Options:
//
//   - WithMaxToll(t):          cumulative toll ceiling (default: none).
//   - WithConsumptionRate(r):  fuel per distance unit (default: 1.0).
//   - WithContext(ctx):        wall-clock deadline / cancellation.
//   - WithMaxSettled(n):       settlement budget, a step-count deadline.
//   - WithOnSettle(fn):        ordered per-settlement trace hook; purely
//     diagnostic, never part of the correctness contract.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — settlement order is non-decreasing in cost
//     because edge costs are non-negative and the constraint rules only
//     remove candidate edges, never reprice surviving ones.
//   - Space: O(V + E) states in the worst case; each state stores its own
//     path, so path reconstruction is O(1) at the goal.
package route
