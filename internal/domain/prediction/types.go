// Package prediction contains the request and response documents exchanged
// with the remote prediction service.
package prediction

import "encoding/json"

// Request is the multimodal input submitted to POST /predict.
// A nil group means the modality was not measured and is left out of the body.
type Request struct {
	PatientID  string      `json:"patient_id,omitempty"`
	Neurotouch *Neurotouch `json:"neurotouch,omitempty"`
	Pedoscan   *Pedoscan   `json:"pedoscan,omitempty"`
	FootImages []string    `json:"foot_images,omitempty"` // data:<mime>;base64,<payload>
	Arterial   *Arterial   `json:"arterial,omitempty"`
}

// Neurotouch holds sensory testing results.
type Neurotouch struct {
	Monofilament   *Monofilament `json:"monofilament,omitempty"`
	Vibration      *Vibration    `json:"vibration,omitempty"`
	HotPerception  *Perception   `json:"hot_perception,omitempty"`
	ColdPerception *Perception   `json:"cold_perception,omitempty"`
}

// Monofilament is the tactile monofilament test.
type Monofilament struct {
	RiskScore        float64  `json:"risk_score"`
	TactileSensation float64  `json:"tactile_sensation"`
	AffectedPoints   []string `json:"affected_points"`
}

// Vibration is the vibration threshold test. Threshold is in Hz.
type Vibration struct {
	RiskScore      float64  `json:"risk_score"`
	Threshold      float64  `json:"threshold"`
	AffectedPoints []string `json:"affected_points"`
}

// MarshalJSON always sends affected_points. A nil list is written as [].
func (m Monofilament) MarshalJSON() ([]byte, error) {
	type plain Monofilament
	p := plain(m)
	if p.AffectedPoints == nil {
		p.AffectedPoints = []string{}
	}
	return json.Marshal(p)
}

// MarshalJSON always sends affected_points. A nil list is written as [].
func (v Vibration) MarshalJSON() ([]byte, error) {
	type plain Vibration
	p := plain(v)
	if p.AffectedPoints == nil {
		p.AffectedPoints = []string{}
	}
	return json.Marshal(p)
}

// Perception is a hot or cold perception test. Threshold is in °C.
type Perception struct {
	RiskScore float64 `json:"risk_score"`
	Threshold float64 `json:"threshold"`
}

// Pedoscan is a plantar pressure map in kPa.
type Pedoscan struct {
	PressureMatrix [][]float64 `json:"pressure_matrix"`
}

// Arterial holds vascular measurements.
type Arterial struct {
	ABI       *SidePair          `json:"abi,omitempty"`
	TBI       *SidePair          `json:"tbi,omitempty"`
	Pressures *ArterialPressures `json:"pressures,omitempty"`
}

// SidePair is a right/left index pair.
type SidePair struct {
	Right float64 `json:"right"`
	Left  float64 `json:"left"`
}

// ArterialPressures are systolic pressures in mmHg.
type ArterialPressures struct {
	ArmRight   float64 `json:"arm_right"`
	ArmLeft    float64 `json:"arm_left"`
	AnkleRight float64 `json:"ankle_right"`
	AnkleLeft  float64 `json:"ankle_left"`
	ToeRight   float64 `json:"toe_right"`
	ToeLeft    float64 `json:"toe_left"`
}

// Response is the body returned by POST /predict.
type Response struct {
	PatientID              string                `json:"patient_id,omitempty"`
	Timestamp              string                `json:"timestamp"`
	RiskAssessment         RiskAssessment        `json:"risk_assessment"`
	FeatureAnalysis        FeatureAnalysis       `json:"feature_analysis"`
	ProgressionPredictions map[string]Projection `json:"progression_predictions"`
	Recommendations        []Recommendation      `json:"recommendations"`
}

// RiskAssessment is the current ulceration risk.
type RiskAssessment struct {
	CurrentUlcerationRisk float64 `json:"current_ulceration_risk"`
	RiskLevel             string  `json:"risk_level"`
	Confidence            float64 `json:"confidence"`
}

// FeatureAnalysis summarizes the features the model extracted.
type FeatureAnalysis struct {
	NeurotouchScore  float64          `json:"neurotouch_score"`
	PressureAnalysis PressureAnalysis `json:"pressure_analysis"`
	VascularAnalysis VascularAnalysis `json:"vascular_analysis"`
}

// PressureAnalysis summarizes the pedoscan.
type PressureAnalysis struct {
	MaxPressure            float64 `json:"max_pressure"`
	HighPressurePercentage float64 `json:"high_pressure_percentage"`
}

// VascularAnalysis summarizes arterial indices.
type VascularAnalysis struct {
	ABIAverage        float64 `json:"abi_average"`
	TBIAverage        float64 `json:"tbi_average"`
	VascularRiskScore float64 `json:"vascular_risk_score"`
}

// Projection is the predicted state at one horizon.
type Projection struct {
	UlcerationRisk       float64 `json:"ulceration_risk"`
	NeuropathyDecline    float64 `json:"neuropathy_decline"`
	PressureIncrease     float64 `json:"pressure_increase"`
	DeformityProgression float64 `json:"deformity_progression"`
}

// Recommendation is one suggested intervention.
type Recommendation struct {
	Intervention  string  `json:"intervention"`
	Timing        string  `json:"timing"`
	Urgency       string  `json:"urgency"`
	Effectiveness float64 `json:"effectiveness"`
	Description   string  `json:"description"`
}

// HealthStatus is the body returned by GET /health.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
