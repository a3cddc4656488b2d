package predictor

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
)

// Model is a pre-trained linear regression artifact loaded from disk:
// price = coefficients · scaled + intercept. Importances are aligned with
// the unscaled feature names. Immutable after loading.
type Model struct {
	FeatureNames       []string  `json:"feature_names"`
	Coefficients       []float64 `json:"coefficients"`
	Intercept          float64   `json:"intercept"`
	FeatureImportances []float64 `json:"feature_importances"`
}

// LoadModel reads and validates a model artifact.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	if len(m.FeatureNames) == 0 {
		return nil, fmt.Errorf("model artifact %s has no feature names", path)
	}
	if len(m.Coefficients) != len(m.FeatureNames) {
		return nil, fmt.Errorf("model artifact %s is malformed: %d features but %d coefficients",
			path, len(m.FeatureNames), len(m.Coefficients))
	}
	if len(m.FeatureImportances) != len(m.FeatureNames) {
		return nil, fmt.Errorf("model artifact %s is malformed: %d features but %d importances",
			path, len(m.FeatureNames), len(m.FeatureImportances))
	}

	return &m, nil
}

// Infer maps a scaled feature vector to a predicted price.
func (m *Model) Infer(scaled []float64) (float64, error) {
	if len(scaled) != len(m.Coefficients) {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d",
			len(scaled), len(m.Coefficients))
	}
	return floats.Dot(m.Coefficients, scaled) + m.Intercept, nil
}
