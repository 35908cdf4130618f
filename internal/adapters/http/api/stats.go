package api

import (
	"net/http"
)

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	GetStats() map[string]any
}

// StatsHandler handles stats requests.
type StatsHandler struct {
	statsProvider StatsProvider
	cacheLen      func() int
}

// NewStatsHandler creates a new stats handler. cacheLen may be nil.
func NewStatsHandler(statsProvider StatsProvider, cacheLen func() int) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider, cacheLen: cacheLen}
}

// HandleStats handles GET /stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", NewKind("stats", ErrMethod))
		return
	}
	stats := map[string]any{}
	if h.statsProvider != nil {
		for k, v := range h.statsProvider.GetStats() {
			stats[k] = v
		}
	}
	if h.cacheLen != nil {
		stats["page_cache_entries"] = h.cacheLen()
	}
	writeJSON(w, http.StatusOK, stats)
}
