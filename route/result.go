// Package route: the query Result and the closed failure-reason enum.
package route

// Reason classifies why a query produced no valid route. It is a closed
// enumeration so callers can branch exhaustively instead of parsing error
// strings.
type Reason int

const (
	// ReasonNone means the query succeeded; Result.Valid is true.
	ReasonNone Reason = iota

	// ReasonNoPath means the goal is structurally unreachable from the
	// start, regardless of fuel or toll.
	ReasonNoPath

	// ReasonFuelInfeasible means every route to the goal demands more fuel
	// than station placement allows, even with an unlimited toll budget.
	ReasonFuelInfeasible

	// ReasonTollExceeded means a fuel-feasible route exists, but every such
	// route busts the toll ceiling.
	ReasonTollExceeded

	// ReasonDeadlineExceeded means the context deadline or the settlement
	// budget expired before the search concluded. No partial state escapes:
	// everything the search built was private to the call.
	ReasonDeadlineExceeded
)

// String returns the stable textual form of the reason, suitable for logs
// and wire payloads.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNoPath:
		return "no_path"
	case ReasonFuelInfeasible:
		return "fuel_infeasible"
	case ReasonTollExceeded:
		return "toll_exceeded"
	case ReasonDeadlineExceeded:
		return "deadline_exceeded"
	default:
		return "unknown"
	}
}

// Result is the immutable outcome of one FindRoute query.
//
// On success (Valid == true): Path holds the node sequence from start to
// goal inclusive, TotalCost the minimized cost (congestion-weighted distance
// plus tolls), Distance and Toll the respective accumulators, and Stations
// the nodes where the vehicle actually refuelled, in visit order.
//
// On failure (Valid == false): Path and Stations are empty, the numeric
// fields are zero, and Reason says why.
type Result struct {
	Path      []string
	TotalCost float64
	Distance  float64
	Toll      float64
	Stations  []string
	Valid     bool
	Reason    Reason
}

// invalidResult builds the failure Result for the given reason.
func invalidResult(reason Reason) Result {
	return Result{
		Path:     []string{},
		Stations: []string{},
		Valid:    false,
		Reason:   reason,
	}
}
