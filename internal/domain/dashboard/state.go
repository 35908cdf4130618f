// Package dashboard holds the diabetic foot risk dashboard: its fixed example
// datasets, the tab and timeframe selection, and the view model for one tab.
package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/footrisk/internal/domain/prediction"
)

// Tab identifies one dashboard section.
type Tab string

// Tabs, in display order.
const (
	TabOverview      Tab = "overview"
	TabUlceration    Tab = "ulceration"
	TabDeformity     Tab = "deformity"
	TabNeuropathy    Tab = "neuropathy"
	TabPressure      Tab = "pressure"
	TabInterventions Tab = "interventions"
)

// DefaultTab is selected on first load.
const DefaultTab = TabOverview

// TabInfo is a tab and its label.
type TabInfo struct {
	ID    Tab    `json:"id"`
	Label string `json:"label"`
}

var tabs = []TabInfo{
	{ID: TabOverview, Label: "Overview"},
	{ID: TabUlceration, Label: "Ulceration Risk"},
	{ID: TabDeformity, Label: "Deformity Progression"},
	{ID: TabNeuropathy, Label: "Neuropathy Advancement"},
	{ID: TabPressure, Label: "Pressure Hotspots"},
	{ID: TabInterventions, Label: "Interventions"},
}

// Tabs returns the tab strip in display order.
func Tabs() []TabInfo {
	out := make([]TabInfo, len(tabs))
	copy(out, tabs)
	return out
}

// Label returns the display label of t, or "" when t is unknown.
func (t Tab) Label() string {
	for _, ti := range tabs {
		if ti.ID == t {
			return ti.Label
		}
	}
	return ""
}

// Valid reports whether t is on the tab strip.
func (t Tab) Valid() bool { return t.Label() != "" }

// ParseTab parses a tab identifier. Empty input yields DefaultTab.
func ParseTab(s string) (Tab, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultTab, nil
	}
	t := Tab(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
	}
	return t, nil
}

// Timeframe is a prediction horizon in years.
type Timeframe int

// DefaultTimeframe is selected on first load.
const DefaultTimeframe Timeframe = 5

var timeframes = []Timeframe{1, 2, 3, 5, 10}

// Timeframes returns the offered horizons in ascending order.
func Timeframes() []Timeframe {
	out := make([]Timeframe, len(timeframes))
	copy(out, timeframes)
	return out
}

// Valid reports whether y is an offered horizon.
func (y Timeframe) Valid() bool {
	for _, t := range timeframes {
		if t == y {
			return true
		}
	}
	return false
}

// Label is the selector text, e.g. "5 Years".
func (y Timeframe) Label() string {
	if y == 1 {
		return "1 Year"
	}
	return strconv.Itoa(int(y)) + " Years"
}

// ParseTimeframe parses a horizon in years. Empty input yields DefaultTimeframe.
func ParseTimeframe(s string) (Timeframe, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultTimeframe, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !Timeframe(n).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTimeframe, s)
	}
	return Timeframe(n), nil
}

// State is the UI selection. PatientData is reserved for a submitted
// prediction; the view renders the fixed datasets whether or not it is set.
type State struct {
	Tab         Tab
	Timeframe   Timeframe
	PatientData *prediction.Response
}

// NewState returns the initial selection.
func NewState() State {
	return State{Tab: DefaultTab, Timeframe: DefaultTimeframe}
}

// Select switches the active tab.
func (s *State) Select(t Tab) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTab, string(t))
	}
	s.Tab = t
	return nil
}

// SetTimeframe switches the selected horizon.
func (s *State) SetTimeframe(y Timeframe) error {
	if !y.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTimeframe, int(y))
	}
	s.Timeframe = y
	return nil
}
