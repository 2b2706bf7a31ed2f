package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nflorant/diagnosis/internal/encoding"
)

// Artifact file names inside the artifact directory. The training command
// writes these; the serve command loads them. The feature ordering in
// FeatureSpaceFile must match the ordering the model was trained with —
// encoding against anything else silently corrupts predictions.
const (
	ModelFile        = "model.json"
	FeatureSpaceFile = "feature_space.json"
	SeverityFile     = "severity.json"
)

// modelArtifact is the on-disk form of a trained Softmax classifier.
type modelArtifact struct {
	Classes  []string    `json:"classes"`
	Features int         `json:"num_features"`
	Weights  [][]float64 `json:"weights"`
	Bias     []float64   `json:"bias"`
}

// Artifacts bundles the immutable state loaded once at startup and shared
// read-only across all requests.
type Artifacts struct {
	Classifier   Classifier
	FeatureSpace *encoding.FeatureSpace
	Severity     *encoding.SeverityTable
}

// LoadArtifacts reads the classifier, feature space, and severity table from
// dir. Any missing or corrupt file fails with an *ArtifactError; the loaded
// model and feature space are cross-checked so a dimension mismatch is caught
// here instead of on the first request.
func LoadArtifacts(dir string) (*Artifacts, error) {
	var m modelArtifact
	modelPath := filepath.Join(dir, ModelFile)
	if err := readJSON(modelPath, &m); err != nil {
		return nil, &ArtifactError{Path: modelPath, Err: err}
	}
	classifier, err := NewSoftmax(m.Classes, m.Features, m.Weights, m.Bias)
	if err != nil {
		return nil, &ArtifactError{Path: modelPath, Err: err}
	}

	var names []string
	featurePath := filepath.Join(dir, FeatureSpaceFile)
	if err := readJSON(featurePath, &names); err != nil {
		return nil, &ArtifactError{Path: featurePath, Err: err}
	}
	space, err := encoding.NewFeatureSpace(names)
	if err != nil {
		return nil, &ArtifactError{Path: featurePath, Err: err}
	}
	if space.Len() != classifier.Features() {
		return nil, &ArtifactError{
			Path: featurePath,
			Err: fmt.Errorf("feature space has %d dimensions, model expects %d",
				space.Len(), classifier.Features()),
		}
	}

	var weights map[string]int
	severityPath := filepath.Join(dir, SeverityFile)
	if err := readJSON(severityPath, &weights); err != nil {
		return nil, &ArtifactError{Path: severityPath, Err: err}
	}

	return &Artifacts{
		Classifier:   classifier,
		FeatureSpace: space,
		Severity:     encoding.NewSeverityTable(weights),
	}, nil
}

// SaveArtifacts writes the three artifact files produced by training.
func SaveArtifacts(dir string, m *Softmax, space *encoding.FeatureSpace, severity *encoding.SeverityTable) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}
	artifact := modelArtifact{
		Classes:  m.classes,
		Features: m.features,
		Weights:  m.weights,
		Bias:     m.bias,
	}
	if err := writeJSON(filepath.Join(dir, ModelFile), artifact); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, FeatureSpaceFile), space.Names()); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, SeverityFile), severity.Map())
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
