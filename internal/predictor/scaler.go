package predictor

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
)

// Scaler is a pre-fitted standard-scaling transform loaded from disk. It is
// immutable after loading and safe to share across sessions.
type Scaler struct {
	FeatureNames []string  `json:"feature_names"`
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
}

// LoadScaler reads and validates a scaler artifact.
func LoadScaler(path string) (*Scaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scaler artifact: %w", err)
	}

	var s Scaler
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scaler artifact: %w", err)
	}

	if len(s.FeatureNames) == 0 {
		return nil, fmt.Errorf("scaler artifact %s has no feature names", path)
	}
	if len(s.Mean) != len(s.FeatureNames) || len(s.Scale) != len(s.FeatureNames) {
		return nil, fmt.Errorf("scaler artifact %s is malformed: %d features, %d means, %d scales",
			path, len(s.FeatureNames), len(s.Mean), len(s.Scale))
	}
	for i, sc := range s.Scale {
		if sc == 0 {
			return nil, fmt.Errorf("scaler artifact %s has zero scale for feature %q", path, s.FeatureNames[i])
		}
	}

	return &s, nil
}

// Transform applies (x - mean) / scale element-wise. The output has the
// same shape as the input.
func (s *Scaler) Transform(vector []float64) ([]float64, error) {
	if len(vector) != len(s.FeatureNames) {
		return nil, fmt.Errorf("feature vector has %d values, scaler expects %d",
			len(vector), len(s.FeatureNames))
	}

	scaled := make([]float64, len(vector))
	copy(scaled, vector)
	floats.Sub(scaled, s.Mean)
	floats.Div(scaled, s.Scale)
	return scaled, nil
}
