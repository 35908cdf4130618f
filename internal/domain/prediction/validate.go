package prediction

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Validate checks value ranges and encodings. The client never calls it;
// callers that build requests by hand can use it before submitting.
func (r *Request) Validate() error {
	if r.Neurotouch != nil {
		if err := r.Neurotouch.validate(); err != nil {
			return err
		}
	}
	if r.Pedoscan != nil {
		if err := validateMatrix(r.Pedoscan.PressureMatrix); err != nil {
			return err
		}
	}
	for i, img := range r.FootImages {
		if err := validateDataURI(img); err != nil {
			return fmt.Errorf("%w: foot_images[%d]: %w", ErrInvalidRequest, i, err)
		}
	}
	return nil
}

func (n *Neurotouch) validate() error {
	scores := map[string]*float64{}
	if n.Monofilament != nil {
		scores["neurotouch.monofilament.risk_score"] = &n.Monofilament.RiskScore
		scores["neurotouch.monofilament.tactile_sensation"] = &n.Monofilament.TactileSensation
	}
	if n.Vibration != nil {
		scores["neurotouch.vibration.risk_score"] = &n.Vibration.RiskScore
	}
	if n.HotPerception != nil {
		scores["neurotouch.hot_perception.risk_score"] = &n.HotPerception.RiskScore
	}
	if n.ColdPerception != nil {
		scores["neurotouch.cold_perception.risk_score"] = &n.ColdPerception.RiskScore
	}
	for field, v := range scores {
		if *v < 0 || *v > 1 {
			return fmt.Errorf("%w: %s must be within [0,1], got %g", ErrInvalidRequest, field, *v)
		}
	}
	return nil
}

func validateMatrix(m [][]float64) error {
	if len(m) == 0 {
		return fmt.Errorf("%w: pedoscan.pressure_matrix is empty", ErrInvalidRequest)
	}
	width := len(m[0])
	for i, row := range m {
		if len(row) != width || width == 0 {
			return fmt.Errorf("%w: pedoscan.pressure_matrix row %d has %d columns, want %d",
				ErrInvalidRequest, i, len(row), width)
		}
		for j, v := range row {
			if v < 0 {
				return fmt.Errorf("%w: pedoscan.pressure_matrix[%d][%d] is negative", ErrInvalidRequest, i, j)
			}
		}
	}
	return nil
}

func validateDataURI(s string) error {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return fmt.Errorf("missing data: prefix")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return fmt.Errorf("missing payload separator")
	}
	if !strings.HasSuffix(meta, ";base64") {
		return fmt.Errorf("payload is not base64")
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
