// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Server wires HTTP routes for the dashboard.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	dashboardHandler *dashboardHandler
	predictHandler   *predictHandler
}

// NewServer creates a new API server with all handlers. client may be nil,
// in which case POST /predict answers 503.
func NewServer(client Predictor, statsProvider StatsProvider, pageCacheSize int) (*Server, error) {
	dh, err := newDashboardHandler(pageCacheSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServe, err)
	}
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider, dh.cacheLen),
		dashboardHandler: dh,
		predictHandler:   &predictHandler{client: client},
	}, nil
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	route := func(path, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(path, RequestIDMiddleware(MetricsMiddleware(h, endpoint)))
	}
	route("/healthz", "healthz", s.healthHandler.HandleHealth)
	route("/stats", "stats", s.statsHandler.HandleStats)
	route("/dashboard", "dashboard", s.dashboardHandler.HandleDashboard)
	route("/dashboard/data", "dashboard_data", s.dashboardHandler.HandleDashboardData)
	route("/predict", "predict", s.predictHandler.HandlePredict)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
