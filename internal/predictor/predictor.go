package predictor

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"roomrate/server/internal/features"
	"roomrate/server/internal/models"
)

// Predictor pairs the loaded scaler and model. Both artifacts are read once
// at startup and never mutated afterwards, so a single Predictor can serve
// concurrent sessions without locking.
type Predictor struct {
	scaler *Scaler
	model  *Model
	logger *logrus.Logger
}

// Load reads both artifacts and verifies that they agree with the feature
// assembler on the number, order and names of features. Any mismatch here
// means the artifacts were trained against a different feature layout, so
// predictions would be silently wrong; it is reported as an error and is
// expected to abort startup.
func Load(modelPath, scalerPath string, logger *logrus.Logger) (*Predictor, error) {
	scaler, err := LoadScaler(scalerPath)
	if err != nil {
		return nil, err
	}
	model, err := LoadModel(modelPath)
	if err != nil {
		return nil, err
	}

	if err := checkFeatureLayout("scaler", scaler.FeatureNames); err != nil {
		return nil, err
	}
	if err := checkFeatureLayout("model", model.FeatureNames); err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"model":    modelPath,
		"scaler":   scalerPath,
		"features": len(model.FeatureNames),
	}).Info("Loaded prediction artifacts")

	return &Predictor{
		scaler: scaler,
		model:  model,
		logger: logger,
	}, nil
}

func checkFeatureLayout(artifact string, names []string) error {
	if len(names) != len(features.FeatureNames) {
		return fmt.Errorf("%s was fitted with %d features, assembler produces %d",
			artifact, len(names), len(features.FeatureNames))
	}
	for i, name := range features.FeatureNames {
		if names[i] != name {
			return fmt.Errorf("%s feature %d is %q, assembler produces %q",
				artifact, i, names[i], name)
		}
	}
	return nil
}

// Predict scales a feature vector and runs it through the model.
func (p *Predictor) Predict(vector []float64) (float64, error) {
	scaled, err := p.scaler.Transform(vector)
	if err != nil {
		return 0, err
	}
	return p.model.Infer(scaled)
}

// TopImportances returns the n most important features by raw weight,
// descending. Features with equal weight keep their original order.
func (p *Predictor) TopImportances(n int) []models.FeatureImportance {
	idx := make([]int, len(p.model.FeatureImportances))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return p.model.FeatureImportances[idx[a]] > p.model.FeatureImportances[idx[b]]
	})

	if n > len(idx) {
		n = len(idx)
	}
	top := make([]models.FeatureImportance, n)
	for i := 0; i < n; i++ {
		top[i] = models.FeatureImportance{
			Feature:    p.model.FeatureNames[idx[i]],
			Importance: p.model.FeatureImportances[idx[i]],
		}
	}
	return top
}
