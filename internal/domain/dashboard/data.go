package dashboard

// RiskPoint is the ulceration probability at a horizon.
type RiskPoint struct {
	Year        int     `json:"year"`
	Probability float64 `json:"probability"`
	Confidence  float64 `json:"confidence"`
}

// DeformityPoint is the foot geometry at a horizon.
type DeformityPoint struct {
	Year          int     `json:"year"`
	ArchHeight    float64 `json:"arch_height"`    // mm
	ToeAngle      float64 `json:"toe_angle"`      // degrees
	HeelDeviation float64 `json:"heel_deviation"` // mm
}

// RegionSeries is one foot region's values over the horizons.
type RegionSeries struct {
	Region  string  `json:"region"`
	Current float64 `json:"current"`
	Year1   float64 `json:"year1"`
	Year2   float64 `json:"year2"`
	Year3   float64 `json:"year3"`
	Year5   float64 `json:"year5"`
	Year10  float64 `json:"year10"`
}

// Intervention is a recommended intervention on the timeline.
type Intervention struct {
	Intervention  string  `json:"intervention"`
	Timing        string  `json:"timing"`
	Urgency       string  `json:"urgency"`
	Effectiveness float64 `json:"effectiveness"` // percent
}

// Alert is a highlighted message under a chart.
type Alert struct {
	Headline string `json:"headline"`
	Detail   string `json:"detail"`
	Tone     string `json:"tone"`
}

// ChangeCard is a summary tile such as "Arch Height ↓68%".
type ChangeCard struct {
	Title  string `json:"title"`
	Change string `json:"change"`
	Note   string `json:"note"`
	Tone   string `json:"tone"`
}

// Indicator is a colored bullet in the key predictions list.
type Indicator struct {
	Text string `json:"text"`
	Tone string `json:"tone"`
}

// Summary is the overview risk summary.
type Summary struct {
	RiskLevel     string `json:"risk_level"`
	FiveYearRisk  string `json:"five_year_risk"`
	Interventions string `json:"interventions"`
}

// Tones used by alerts, cards and indicators.
const (
	ToneRed    = "red"
	ToneOrange = "orange"
	ToneYellow = "yellow"
	ToneBlue   = "blue"
)

// The datasets are fixed examples; they do not depend on any patient.
var (
	ulcerationRisk = []RiskPoint{
		{Year: 1, Probability: 0.15, Confidence: 0.85},
		{Year: 2, Probability: 0.28, Confidence: 0.82},
		{Year: 3, Probability: 0.45, Confidence: 0.78},
		{Year: 5, Probability: 0.67, Confidence: 0.72},
		{Year: 10, Probability: 0.82, Confidence: 0.65},
	}

	deformityProgression = []DeformityPoint{
		{Year: 0, ArchHeight: 25, ToeAngle: 10, HeelDeviation: 2},
		{Year: 1, ArchHeight: 23, ToeAngle: 12, HeelDeviation: 3},
		{Year: 2, ArchHeight: 20, ToeAngle: 15, HeelDeviation: 5},
		{Year: 3, ArchHeight: 17, ToeAngle: 18, HeelDeviation: 7},
		{Year: 5, ArchHeight: 12, ToeAngle: 25, HeelDeviation: 12},
		{Year: 10, ArchHeight: 8, ToeAngle: 35, HeelDeviation: 18},
	}

	neuropathyProgression = []RegionSeries{
		{Region: "Toes", Current: 85, Year1: 78, Year2: 70, Year3: 60, Year5: 45, Year10: 25},
		{Region: "Forefoot", Current: 90, Year1: 85, Year2: 78, Year3: 70, Year5: 55, Year10: 35},
		{Region: "Midfoot", Current: 95, Year1: 90, Year2: 85, Year3: 78, Year5: 65, Year10: 45},
		{Region: "Heel", Current: 88, Year1: 82, Year2: 75, Year3: 68, Year5: 50, Year10: 30},
	}

	pressureHotspots = []RegionSeries{
		{Region: "Metatarsal 1", Current: 180, Year1: 195, Year2: 215, Year3: 240, Year5: 285, Year10: 350},
		{Region: "Metatarsal 2", Current: 160, Year1: 170, Year2: 185, Year3: 205, Year5: 240, Year10: 290},
		{Region: "Metatarsal 3", Current: 140, Year1: 150, Year2: 165, Year3: 185, Year5: 220, Year10: 270},
		{Region: "Heel", Current: 120, Year1: 130, Year2: 145, Year3: 165, Year5: 195, Year10: 245},
	}

	interventionRecommendations = []Intervention{
		{Intervention: "Custom Orthotics", Timing: "6 months", Urgency: "High", Effectiveness: 85},
		{Intervention: "Neuropathy Management", Timing: "3 months", Urgency: "Critical", Effectiveness: 70},
		{Intervention: "Pressure Offloading", Timing: "2 months", Urgency: "Critical", Effectiveness: 90},
		{Intervention: "Surgical Correction", Timing: "2 years", Urgency: "Medium", Effectiveness: 95},
		{Intervention: "Enhanced Monitoring", Timing: "Immediate", Urgency: "High", Effectiveness: 60},
	}

	overviewSummary = Summary{
		RiskLevel:     "Moderate-High",
		FiveYearRisk:  "67%",
		Interventions: "3 Required",
	}

	keyPredictions = []Indicator{
		{Text: "High pressure areas developing", Tone: ToneRed},
		{Text: "Neuropathy progression accelerating", Tone: ToneOrange},
		{Text: "Structural deformities emerging", Tone: ToneYellow},
	}

	deformityCards = []ChangeCard{
		{Title: "Arch Height", Change: "↓68%", Note: "Significant flattening", Tone: ToneBlue},
		{Title: "Toe Deformity", Change: "↑250%", Note: "Severe claw toe development", Tone: ToneRed},
		{Title: "Heel Deviation", Change: "↑800%", Note: "Progressive misalignment", Tone: ToneYellow},
	}

	alerts = map[Tab]Alert{
		TabUlceration: {
			Headline: "Critical Risk Alert: 67% probability of ulceration within 5 years",
			Detail:   "Immediate intervention recommended to reduce risk trajectory",
			Tone:     ToneRed,
		},
		TabNeuropathy: {
			Headline: "Rapid neuropathy progression detected in toe region",
			Detail:   "Expected 71% sensory loss in toes within 10 years",
			Tone:     ToneOrange,
		},
		TabPressure: {
			Headline: "Critical pressure elevation predicted in Metatarsal 1",
			Detail:   "Pressure expected to increase by 94% over 10 years - immediate offloading required",
			Tone:     ToneRed,
		},
		TabInterventions: {
			Headline: "Next Action Required: Schedule custom orthotics fitting within 6 months",
			Detail:   "This intervention has the highest immediate impact on reducing ulceration risk",
			Tone:     ToneBlue,
		},
	}
)

// UlcerationRisk returns the ulceration probability timeline.
func UlcerationRisk() []RiskPoint { return append([]RiskPoint(nil), ulcerationRisk...) }

// DeformityProgression returns the foot geometry timeline.
func DeformityProgression() []DeformityPoint {
	return append([]DeformityPoint(nil), deformityProgression...)
}

// NeuropathyProgression returns sensation (percent) per region over time.
func NeuropathyProgression() []RegionSeries {
	return append([]RegionSeries(nil), neuropathyProgression...)
}

// PressureHotspots returns peak pressure (kPa) per region over time.
func PressureHotspots() []RegionSeries { return append([]RegionSeries(nil), pressureHotspots...) }

// InterventionRecommendations returns the intervention timeline.
func InterventionRecommendations() []Intervention {
	return append([]Intervention(nil), interventionRecommendations...)
}

// OverviewSummary returns the overview risk summary.
func OverviewSummary() Summary { return overviewSummary }
