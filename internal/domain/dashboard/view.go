package dashboard

import "math"

// Page texts.
const (
	Title    = "Diabetic Foot Predictive Analytics Dashboard"
	Subtitle = "Multi-modal AI-powered prediction system for diabetic foot complications"
)

var dataSources = []string{"5 Foot Images", "Neurotouch Data", "Pedoscan Data"}

// TabLink is a tab strip entry.
type TabLink struct {
	TabInfo
	Active bool `json:"active"`
}

// TimeframeOption is a timeframe selector button.
type TimeframeOption struct {
	Years    int    `json:"years"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// View is everything needed to draw one dashboard page.
// Only the section of the active tab is set.
type View struct {
	Title       string            `json:"title"`
	Subtitle    string            `json:"subtitle"`
	DataSources []string          `json:"data_sources"`
	Tabs        []TabLink         `json:"tabs"`
	Timeframes  []TimeframeOption `json:"timeframes"`
	ActiveTab   Tab               `json:"active_tab"`
	Timeframe   int               `json:"timeframe"`

	Overview      *OverviewSection      `json:"overview,omitempty"`
	Ulceration    *UlcerationSection    `json:"ulceration,omitempty"`
	Deformity     *DeformitySection     `json:"deformity,omitempty"`
	Neuropathy    *RegionSection        `json:"neuropathy,omitempty"`
	Pressure      *RegionSection        `json:"pressure,omitempty"`
	Interventions *InterventionsSection `json:"interventions,omitempty"`
}

// OverviewSection is the overview tab.
type OverviewSection struct {
	Summary        Summary     `json:"summary"`
	KeyPredictions []Indicator `json:"key_predictions"`
}

// RiskBar is a RiskPoint with its display color.
type RiskBar struct {
	RiskPoint
	Percent int    `json:"percent"`
	Color   string `json:"color"`
}

// UlcerationSection is the ulceration risk tab.
type UlcerationSection struct {
	Timeline []RiskBar `json:"timeline"`
	Alert    Alert     `json:"alert"`
}

// DeformitySection is the deformity progression tab.
type DeformitySection struct {
	Timeline []DeformityPoint `json:"timeline"`
	Cards    []ChangeCard     `json:"cards"`
}

// RegionSection is a per-region table, used for neuropathy and pressure.
type RegionSection struct {
	Heading string         `json:"heading"`
	Unit    string         `json:"unit"`
	Regions []RegionSeries `json:"regions"`
	Alert   Alert          `json:"alert"`
}

// InterventionItem is an Intervention with its badge class.
type InterventionItem struct {
	Intervention
	UrgencyClass string `json:"urgency_class"`
}

// InterventionsSection is the interventions tab.
type InterventionsSection struct {
	Timeline []InterventionItem `json:"timeline"`
	Alert    Alert              `json:"alert"`
}

// Build returns the view for s. Invalid selections fall back to the defaults.
func Build(s State) View {
	if !s.Tab.Valid() {
		s.Tab = DefaultTab
	}
	if !s.Timeframe.Valid() {
		s.Timeframe = DefaultTimeframe
	}

	v := View{
		Title:       Title,
		Subtitle:    Subtitle,
		DataSources: append([]string(nil), dataSources...),
		ActiveTab:   s.Tab,
		Timeframe:   int(s.Timeframe),
	}
	for _, ti := range tabs {
		v.Tabs = append(v.Tabs, TabLink{TabInfo: ti, Active: ti.ID == s.Tab})
	}
	for _, y := range timeframes {
		v.Timeframes = append(v.Timeframes, TimeframeOption{Years: int(y), Label: y.Label(), Selected: y == s.Timeframe})
	}

	switch s.Tab {
	case TabOverview:
		v.Overview = &OverviewSection{
			Summary:        overviewSummary,
			KeyPredictions: append([]Indicator(nil), keyPredictions...),
		}
	case TabUlceration:
		sec := &UlcerationSection{Alert: alerts[TabUlceration]}
		for _, p := range ulcerationRisk {
			sec.Timeline = append(sec.Timeline, RiskBar{
				RiskPoint: p,
				Percent:   int(math.Round(p.Probability * 100)),
				Color:     RiskColor(p.Probability),
			})
		}
		v.Ulceration = sec
	case TabDeformity:
		v.Deformity = &DeformitySection{
			Timeline: DeformityProgression(),
			Cards:    append([]ChangeCard(nil), deformityCards...),
		}
	case TabNeuropathy:
		v.Neuropathy = &RegionSection{
			Heading: "Sensory Loss Progression Maps",
			Unit:    "% sensation",
			Regions: NeuropathyProgression(),
			Alert:   alerts[TabNeuropathy],
		}
	case TabPressure:
		v.Pressure = &RegionSection{
			Heading: "Pressure Hotspot Evolution",
			Unit:    "kPa",
			Regions: PressureHotspots(),
			Alert:   alerts[TabPressure],
		}
	case TabInterventions:
		sec := &InterventionsSection{Alert: alerts[TabInterventions]}
		for _, iv := range interventionRecommendations {
			sec.Timeline = append(sec.Timeline, InterventionItem{Intervention: iv, UrgencyClass: UrgencyColor(iv.Urgency)})
		}
		v.Interventions = sec
	}
	return v
}
