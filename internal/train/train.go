package train

import (
	"fmt"
	"math/rand"

	"github.com/nflorant/diagnosis/internal/model"
)

// Config drives an end-to-end training run.
type Config struct {
	DatasetPath  string
	SeverityPath string
	OutDir       string
	HoldoutFrac  float64 // fraction of rows held out for evaluation
	Seed         int64
	Fit          FitConfig
}

// DefaultConfig mirrors the reference pipeline: 20% holdout, fixed seed.
func DefaultConfig() Config {
	return Config{
		HoldoutFrac: 0.2,
		Seed:        42,
		Fit:         DefaultFitConfig(),
	}
}

// Report summarizes a training run.
type Report struct {
	Classes   int
	Features  int
	TrainRows int
	TestRows  int
	Accuracy  float64
}

// Run executes the full pipeline: load and clean the dataset, build the
// feature space and severity table, encode the matrix, fit on a shuffled
// train split, evaluate on the holdout, and write the serving artifacts.
// Deterministic for a fixed seed.
func Run(cfg Config) (*Report, error) {
	cases, err := LoadDataset(cfg.DatasetPath)
	if err != nil {
		return nil, err
	}
	severity, err := LoadSeverity(cfg.SeverityPath)
	if err != nil {
		return nil, err
	}
	space, err := ExtractFeatureSpace(cases)
	if err != nil {
		return nil, err
	}

	x, y := BuildMatrix(cases, space, severity)

	trainX, trainY, testX, testY := split(x, y, cfg.HoldoutFrac, cfg.Seed)

	m, err := Fit(trainX, trainY, cfg.Fit)
	if err != nil {
		return nil, err
	}

	// Small datasets can leave the holdout empty; fall back to the train split
	// so the report still carries a number.
	evalX, evalY := testX, testY
	if len(evalX) == 0 {
		evalX, evalY = trainX, trainY
	}
	acc, err := Evaluate(m, evalX, evalY)
	if err != nil {
		return nil, err
	}

	if cfg.OutDir != "" {
		if err := model.SaveArtifacts(cfg.OutDir, m, space, severity); err != nil {
			return nil, fmt.Errorf("save artifacts: %w", err)
		}
	}

	return &Report{
		Classes:   len(m.Classes()),
		Features:  space.Len(),
		TrainRows: len(trainX),
		TestRows:  len(testX),
		Accuracy:  acc,
	}, nil
}

// split shuffles row indices with the given seed and carves off the holdout.
func split(x [][]float64, y []string, frac float64, seed int64) (trainX [][]float64, trainY []string, testX [][]float64, testY []string) {
	order := rand.New(rand.NewSource(seed)).Perm(len(x))

	nTest := int(float64(len(x)) * frac)
	if nTest >= len(x) {
		nTest = len(x) - 1
	}
	if nTest < 0 {
		nTest = 0
	}

	for i, idx := range order {
		if i < nTest {
			testX = append(testX, x[idx])
			testY = append(testY, y[idx])
		} else {
			trainX = append(trainX, x[idx])
			trainY = append(trainY, y[idx])
		}
	}
	return trainX, trainY, testX, testY
}
