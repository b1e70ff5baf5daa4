// Package route: the modified Dijkstra engine.
//
// The implementation mirrors classic Dijkstra — lazy decrease-key heap,
// settle strictly after pop — with two constraint gates applied per edge,
// fuel first and toll second. The constraint gates only remove candidate
// edges; they never change the cost of a surviving one, so the usual
// optimality argument carries over untouched.
package route

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/dkresling/roadway/core"
)

// FindRoute computes the minimum-cost, fuel-feasible, toll-feasible route
// from start to goal on the given network.
//
// Returns:
//
//   - Result: always populated. Valid reports success; on failure Reason
//     carries the closed-enum diagnosis (see Result docs).
//   - err: non-nil only for construction-time contract violations
//     (ErrEmptyNodeID, ErrNilNetwork, ErrNodeNotFound). A validly
//     constructed query never produces an error, whatever the outcome.
//
// Preconditions and validation (in order):
//  1. start and goal must be non-empty (ErrEmptyNodeID).
//  2. n must be non-nil (ErrNilNetwork).
//  3. start and goal must exist in n (ErrNodeNotFound).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func FindRoute(n *core.Network, start, goal string, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate identifiers before touching the network.
	if start == "" || goal == "" {
		return Result{}, ErrEmptyNodeID
	}

	// 3) Validate the network pointer.
	if n == nil {
		return Result{}, ErrNilNetwork
	}

	// 4) Validate membership, naming the offending ID.
	if !n.HasNode(start) {
		return Result{}, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}
	if !n.HasNode(goal) {
		return Result{}, fmt.Errorf("%w: goal %q", ErrNodeNotFound, goal)
	}

	// 5) Trivial single-node route: no travel, no stops, no search.
	if start == goal {
		return Result{
			Path:     []string{start},
			Stations: []string{},
			Valid:    true,
			Reason:   ReasonNone,
		}, nil
	}

	return run(n, start, goal, cfg), nil
}

// run executes one search with already-validated inputs. The failure
// classifier reuses it with relaxed options.
func run(n *core.Network, start, goal string, cfg Options) Result {
	r := &runner{
		net:     n,
		start:   start,
		goal:    goal,
		opts:    cfg,
		settled: make(map[string]bool, n.NodeCount()),
	}
	r.init()

	return r.process()
}

// searchState is one candidate partial route on the frontier. States are
// immutable once pushed: every branch owns its path and stations slices, so
// divergent expansions can never alias each other's history.
type searchState struct {
	node     string   // frontier node this state has reached
	cost     float64  // accumulated total cost (congestion-weighted distance + tolls)
	distance float64  // accumulated raw distance
	toll     float64  // accumulated toll, kept separate for the budget gate
	fuel     float64  // fuel remaining on arrival at node
	path     []string // node sequence from start to node, inclusive
	stations []string // stations where refuelling actually happened, in order
	seq      uint64   // insertion order; breaks cost ties deterministically
}

// runner holds the mutable state of a single search execution.
type runner struct {
	net          *core.Network
	start, goal  string
	opts         Options
	settled      map[string]bool // nodes whose minimum cost is finalized
	settledCount int
	pq           statePQ
	seq          uint64
}

// init seeds the frontier with the start state: full tank, zero everything.
func (r *runner) init() {
	r.pq = make(statePQ, 0, r.net.NodeCount())
	heap.Init(&r.pq)
	heap.Push(&r.pq, &searchState{
		node: r.start,
		fuel: r.net.Capacity(),
		path: []string{r.start},
	})
}

// process is the main loop: pop, discard stale, settle, terminate or expand.
func (r *runner) process() Result {
	for r.pq.Len() > 0 {
		// 1) Pop the minimum-cost frontier entry.
		st := heap.Pop(&r.pq).(*searchState)

		// 2) Stale entry for an already-settled node: this is how an
		//    improved-cost re-insertion is resolved — discard, not mutate.
		if r.settled[st.node] {
			continue
		}

		// 3) Deadline gates, checked once per would-be settlement. All
		//    intermediate state is private to this call, so expiry has no
		//    side effects to undo.
		if r.opts.Ctx.Err() != nil {
			return invalidResult(ReasonDeadlineExceeded)
		}
		if r.settledCount >= r.opts.MaxSettled {
			return invalidResult(ReasonDeadlineExceeded)
		}

		// 4) Settle: st.cost is now the final minimum cost for st.node.
		r.settled[st.node] = true
		r.settledCount++
		if r.opts.OnSettle != nil {
			r.opts.OnSettle(Settlement{Node: st.node, Cost: st.cost, Distance: st.distance, Fuel: st.fuel})
		}

		// 5) Goal settled: the first accepted pop of the goal is optimal.
		if st.node == r.goal {
			return successResult(st)
		}

		// 6) Relax outgoing edges through the constraint gates.
		r.expand(st)
	}

	// 7) Frontier exhausted without reaching the goal.
	return r.classify()
}

// expand pushes a new frontier state for every neighbor edge that survives
// the fuel gate and then the toll gate.
func (r *runner) expand(st *searchState) {
	capacity := r.net.Capacity()
	for _, e := range r.net.Neighbors(st.node) {
		if r.settled[e.To] {
			continue
		}

		// Fuel gate (hard constraint, checked first).
		need := e.Distance * r.opts.ConsumptionRate
		fuel := st.fuel
		refueled := false
		if fuel < need {
			if !r.net.HasStation(st.node) {
				continue // stranded: not enough fuel, nowhere to fill up
			}
			if capacity < need {
				continue // even a full tank cannot cross this edge
			}
			fuel = capacity
			refueled = true
		}
		fuel -= need

		// Toll gate (soft budget, only after fuel feasibility).
		toll := st.toll + e.Toll
		if toll > r.opts.MaxToll {
			continue
		}

		next := &searchState{
			node:     e.To,
			cost:     st.cost + e.Cost() + e.Toll,
			distance: st.distance + e.Distance,
			toll:     toll,
			fuel:     fuel,
			path:     appendCopy(st.path, e.To),
			stations: st.stations,
			seq:      r.nextSeq(),
		}
		if refueled {
			next.stations = appendCopy(st.stations, st.node)
		}
		// No cost-based pre-pruning here: a cheaper state with less fuel
		// can be infeasible downstream where this one is not. The settled
		// check after pop is the only suppression allowed.
		heap.Push(&r.pq, next)
	}
}

// classify diagnoses an exhausted frontier per the failure taxonomy:
// toll-limited queries are rerun without the ceiling (success there means
// the budget was the blocker), then a constraint-free sweep separates
// structural unreachability from fuel starvation.
func (r *runner) classify() Result {
	if !math.IsInf(r.opts.MaxToll, 1) {
		relaxed := r.opts
		relaxed.MaxToll = math.Inf(1)
		relaxed.OnSettle = nil // diagnostics must not re-trace
		res := run(r.net, r.start, r.goal, relaxed)
		if res.Reason == ReasonDeadlineExceeded {
			return res // classification itself timed out; report honestly
		}
		if res.Valid {
			return invalidResult(ReasonTollExceeded)
		}
	}
	if !reachable(r.net, r.start, r.goal) {
		return invalidResult(ReasonNoPath)
	}

	return invalidResult(ReasonFuelInfeasible)
}

func (r *runner) nextSeq() uint64 {
	r.seq++

	return r.seq
}

// successResult freezes a goal state into the query Result.
func successResult(st *searchState) Result {
	stations := st.stations
	if stations == nil {
		stations = []string{}
	}

	return Result{
		Path:      st.path,
		TotalCost: st.cost,
		Distance:  st.distance,
		Toll:      st.toll,
		Stations:  stations,
		Valid:     true,
		Reason:    ReasonNone,
	}
}

// reachable reports whether goal can be reached from start ignoring every
// constraint — pure adjacency connectivity.
func reachable(n *core.Network, start, goal string) bool {
	if start == goal {
		return true
	}
	seen := map[string]bool{start: true}
	frontier := []string{start}
	for len(frontier) > 0 {
		u := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, e := range n.Neighbors(u) {
			if seen[e.To] {
				continue
			}
			if e.To == goal {
				return true
			}
			seen[e.To] = true
			frontier = append(frontier, e.To)
		}
	}

	return false
}

// appendCopy returns a fresh slice holding s plus v. Frontier states share
// ancestors' slices read-only; every append allocates, so no branch can
// ever write into another branch's history.
func appendCopy(s []string, v string) []string {
	out := make([]string, len(s)+1)
	copy(out, s)
	out[len(s)] = v

	return out
}

// statePQ is a min-heap of *searchState ordered by accumulated cost, with
// insertion order as the tie-break (lazy decrease-key: duplicates are pushed
// and stale entries ignored on pop).
type statePQ []*searchState

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by cost ascending, then by insertion sequence.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be a *searchState.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*searchState)) }

// Pop removes and returns the minimum element.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
