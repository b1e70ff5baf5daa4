package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dkresling/roadway/core"
	"github.com/dkresling/roadway/internal/config"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	n := core.NewNetwork(20)
	_ = n.AddNode("A", core.WithStation())
	_ = n.AddEdge("A", "C", 5, 0, 10)
	_ = n.AddEdge("A", "B", 8, 0.1, 0)
	_ = n.AddEdge("B", "C", 7, 0.1, 0)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandlers(logger, n, config.QueryConfig{Timeout: time.Second})

	return NewRouter(logger, h)
}

func postRoute(t *testing.T, router http.Handler, body string) (*httptest.ResponseRecorder, routeResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/routes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload routeResponse
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return rec, payload
}

func TestHandleRoute(t *testing.T) {
	router := testRouter(t)

	rec, payload := postRoute(t, router, `{"from": "A", "to": "C"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !payload.Valid {
		t.Fatalf("expected a valid route, got reason %q", payload.Reason)
	}
	if got, want := strings.Join(payload.Path, ","), "A,C"; got != want {
		t.Fatalf("expected path %s, got %s", want, got)
	}
	if payload.TotalCost != 15 {
		t.Fatalf("expected total cost 15, got %v", payload.TotalCost)
	}
}

func TestHandleRoute_TollCeiling(t *testing.T) {
	router := testRouter(t)

	rec, payload := postRoute(t, router, `{"from": "A", "to": "C", "max_toll": 5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got, want := strings.Join(payload.Path, ","), "A,B,C"; got != want {
		t.Fatalf("expected detour %s, got %s", want, got)
	}
	if payload.Toll != 0 {
		t.Fatalf("expected toll 0, got %v", payload.Toll)
	}
}

func TestHandleRoute_InvalidOutcomeIsStill200(t *testing.T) {
	// Search failures are payloads, not HTTP errors.
	router := testRouter(t)

	rec, payload := postRoute(t, router, `{"from": "A", "to": "C", "max_toll": 0, "consumption_rate": 100}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if payload.Valid {
		t.Fatal("expected an invalid outcome")
	}
	if payload.Reason == "" {
		t.Fatal("expected a populated reason")
	}
}

func TestHandleRoute_BadRequests(t *testing.T) {
	router := testRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"from": `},
		{"missing ids", `{"from": "A"}`},
		{"negative max_toll", `{"from": "A", "to": "C", "max_toll": -1}`},
		{"zero consumption_rate", `{"from": "A", "to": "C", "consumption_rate": 0}`},
	}
	for _, tc := range cases {
		rec, _ := postRoute(t, router, tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", tc.name, rec.Code)
		}
	}
}

func TestHandleRoute_UnknownNode(t *testing.T) {
	router := testRouter(t)

	rec, _ := postRoute(t, router, `{"from": "A", "to": "ghost"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestHandleNodes(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nodes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var payload struct {
		Capacity float64        `json:"capacity"`
		Nodes    []nodeResponse `json:"nodes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Capacity != 20 {
		t.Fatalf("expected capacity 20, got %v", payload.Capacity)
	}
	if len(payload.Nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(payload.Nodes))
	}
	if payload.Nodes[0].ID != "A" || !payload.Nodes[0].Station {
		t.Fatalf("expected station A first, got %+v", payload.Nodes[0])
	}
}

func TestHandleHealth(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health payload: %s", rec.Body.String())
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/routes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}
