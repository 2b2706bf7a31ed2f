package model

import (
	"fmt"
	"math"
)

// Softmax is a multinomial logistic regression classifier: one linear score
// per class pushed through a softmax. It is the native artifact format this
// service trains and serves; anything satisfying Classifier can replace it.
type Softmax struct {
	classes  []string
	features int
	weights  [][]float64 // [class][feature]
	bias     []float64   // [class]
}

// NewSoftmax builds a classifier from trained parameters. weights must hold
// one row per class, each of length features; bias one entry per class.
func NewSoftmax(classes []string, features int, weights [][]float64, bias []float64) (*Softmax, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("softmax: no classes")
	}
	if len(weights) != len(classes) || len(bias) != len(classes) {
		return nil, fmt.Errorf("softmax: %d classes but %d weight rows and %d biases",
			len(classes), len(weights), len(bias))
	}
	for i, row := range weights {
		if len(row) != features {
			return nil, fmt.Errorf("softmax: weight row %d has %d entries, want %d", i, len(row), features)
		}
	}
	return &Softmax{
		classes:  append([]string(nil), classes...),
		features: features,
		weights:  weights,
		bias:     bias,
	}, nil
}

// Classes returns the class labels in training order.
func (m *Softmax) Classes() []string { return m.classes }

// Features returns the expected input dimensionality.
func (m *Softmax) Features() int { return m.features }

// PredictProbabilities computes softmax(Wx + b). The max score is subtracted
// before exponentiation for numerical stability.
func (m *Softmax) PredictProbabilities(vec []float64) ([]float64, error) {
	if len(vec) != m.features {
		return nil, &DimensionError{Got: len(vec), Want: m.features}
	}

	scores := make([]float64, len(m.classes))
	maxScore := math.Inf(-1)
	for c, row := range m.weights {
		s := m.bias[c]
		for i, w := range row {
			s += w * vec[i]
		}
		scores[c] = s
		if s > maxScore {
			maxScore = s
		}
	}

	var sum float64
	for c, s := range scores {
		scores[c] = math.Exp(s - maxScore)
		sum += scores[c]
	}
	for c := range scores {
		scores[c] /= sum
	}
	return scores, nil
}
