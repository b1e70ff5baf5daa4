package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dkresling/roadway/core"
	"github.com/dkresling/roadway/internal/config"
	"github.com/dkresling/roadway/route"
)

// Handlers serves route queries against a network loaded at startup. The
// network is never mutated after construction, so handlers need no locking.
type Handlers struct {
	logger *slog.Logger
	net    *core.Network
	query  config.QueryConfig
}

// NewHandlers constructs the handler set.
func NewHandlers(logger *slog.Logger, net *core.Network, query config.QueryConfig) *Handlers {
	return &Handlers{
		logger: logger,
		net:    net,
		query:  query,
	}
}

// routeRequest is the POST /routes payload. MaxToll and ConsumptionRate are
// pointers so absence and zero stay distinguishable.
type routeRequest struct {
	From            string   `json:"from"`
	To              string   `json:"to"`
	MaxToll         *float64 `json:"max_toll,omitempty"`
	ConsumptionRate *float64 `json:"consumption_rate,omitempty"`
}

type routeResponse struct {
	Valid     bool     `json:"valid"`
	Reason    string   `json:"reason,omitempty"`
	Path      []string `json:"path"`
	TotalCost float64  `json:"total_cost"`
	Distance  float64  `json:"distance"`
	Toll      float64  `json:"toll"`
	Stations  []string `json:"stations"`
}

type nodeResponse struct {
	ID      string `json:"id"`
	Station bool   `json:"station"`
}

func (h *Handlers) handleRoute(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.From == "" || req.To == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}
	// Option constructors panic on bad values; reject them at the edge
	// where they are client errors, not programming errors.
	if req.MaxToll != nil && !(*req.MaxToll >= 0) {
		writeError(w, http.StatusBadRequest, "max_toll must be non-negative")
		return
	}
	if req.ConsumptionRate != nil && !(*req.ConsumptionRate > 0) {
		writeError(w, http.StatusBadRequest, "consumption_rate must be positive")
		return
	}

	ctx := r.Context()
	if h.query.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.query.Timeout)
		defer cancel()
	}

	opts := []route.Option{route.WithContext(ctx)}
	if req.MaxToll != nil {
		opts = append(opts, route.WithMaxToll(*req.MaxToll))
	}
	if req.ConsumptionRate != nil {
		opts = append(opts, route.WithConsumptionRate(*req.ConsumptionRate))
	}
	if h.query.MaxSettled > 0 {
		opts = append(opts, route.WithMaxSettled(h.query.MaxSettled))
	}

	res, err := route.FindRoute(h.net, req.From, req.To, opts...)
	if err != nil {
		if errors.Is(err, route.ErrNodeNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("route query failed", "error", err, "from", req.From, "to", req.To)
		writeError(w, http.StatusInternalServerError, "route query failed")
		return
	}

	resp := routeResponse{
		Valid:     res.Valid,
		Path:      res.Path,
		TotalCost: res.TotalCost,
		Distance:  res.Distance,
		Toll:      res.Toll,
		Stations:  res.Stations,
	}
	if !res.Valid {
		resp.Reason = res.Reason.String()
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *Handlers) handleNodes(w http.ResponseWriter, _ *http.Request) {
	ids := h.net.Nodes()
	nodes := make([]nodeResponse, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, nodeResponse{ID: id, Station: h.net.HasStation(id)})
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"capacity": h.net.Capacity(),
		"nodes":    nodes,
	})
}

func (h *Handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"nodes":  h.net.NodeCount(),
		"edges":  h.net.EdgeCount(),
	})
}
