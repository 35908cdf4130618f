package api

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/okian/footrisk/internal/domain/dashboard"
	"github.com/okian/footrisk/pkg/metrics"
)

const (
	formatHTML = "html"
	formatJSON = "json"
)

type pageKey struct {
	tab       dashboard.Tab
	timeframe dashboard.Timeframe
}

// dashboardHandler renders the dashboard. Rendered pages never change for a
// given selection, so they are kept in an LRU cache.
type dashboardHandler struct {
	tmpl  *template.Template
	pages *lru.Cache[pageKey, []byte]
}

func newDashboardHandler(cacheSize int) (*dashboardHandler, error) {
	if cacheSize < 1 {
		cacheSize = 1
	}
	pages, err := lru.New[pageKey, []byte](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create page cache: %w", err)
	}
	tmpl, err := template.ParseFS(apiStaticFS, "static/dashboard.html")
	if err != nil {
		return nil, fmt.Errorf("parse dashboard template: %w", err)
	}
	return &dashboardHandler{tmpl: tmpl, pages: pages}, nil
}

// cacheLen reports how many rendered pages are cached.
func (h *dashboardHandler) cacheLen() int { return h.pages.Len() }

// HandleDashboard handles GET /dashboard?tab=&timeframe=.
func (h *dashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	const op = "dashboard"
	state, ok := readState(w, r, op)
	if !ok {
		return
	}

	key := pageKey{tab: state.Tab, timeframe: state.Timeframe}
	page, hit := h.pages.Get(key)
	metrics.RecordPageCache(hit)
	if !hit {
		var buf bytes.Buffer
		if err := h.tmpl.Execute(&buf, dashboard.Build(state)); err != nil {
			writeError(w, http.StatusInternalServerError, "render_error", WrapKind(op, ErrRender, err))
			return
		}
		page = buf.Bytes()
		h.pages.Add(key, page)
	}
	metrics.RecordDashboardRender(string(state.Tab), formatHTML)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// HandleDashboardData handles GET /dashboard/data and returns the view model.
func (h *dashboardHandler) HandleDashboardData(w http.ResponseWriter, r *http.Request) {
	state, ok := readState(w, r, "dashboard_data")
	if !ok {
		return
	}
	metrics.RecordDashboardRender(string(state.Tab), formatJSON)
	writeJSON(w, http.StatusOK, dashboard.Build(state))
}

// readState applies the query selection to the initial state and writes a
// 400 when it is invalid.
func readState(w http.ResponseWriter, r *http.Request, op string) (dashboard.State, bool) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", NewKind(op, ErrMethod))
		return dashboard.State{}, false
	}
	state := dashboard.NewState()
	q := r.URL.Query()

	tab, err := dashboard.ParseTab(q.Get("tab"))
	if err == nil {
		err = state.Select(tab)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return dashboard.State{}, false
	}

	tf, err := dashboard.ParseTimeframe(q.Get("timeframe"))
	if err == nil {
		err = state.SetTimeframe(tf)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return dashboard.State{}, false
	}
	return state, true
}
