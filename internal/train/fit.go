package train

import (
	"fmt"
	"math"
	"sort"

	"github.com/nflorant/diagnosis/internal/model"
)

// FitConfig controls the gradient-descent fit.
type FitConfig struct {
	Epochs       int
	LearningRate float64
	L2           float64
}

// DefaultFitConfig returns settings that converge on the symptom dataset in
// a few seconds.
func DefaultFitConfig() FitConfig {
	return FitConfig{Epochs: 300, LearningRate: 0.5, L2: 1e-4}
}

// Fit trains a multinomial logistic regression by full-batch gradient
// descent on the cross-entropy loss. Class order is the sorted label set,
// which fixes the tie-break order the ranker inherits. Deterministic: no
// random initialization, fixed iteration order.
func Fit(x [][]float64, y []string, cfg FitConfig) (*model.Softmax, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, fmt.Errorf("fit: %d rows and %d labels", len(x), len(y))
	}
	features := len(x[0])

	classSet := make(map[string]bool, len(y))
	for _, label := range y {
		classSet[label] = true
	}
	classes := make([]string, 0, len(classSet))
	for label := range classSet {
		classes = append(classes, label)
	}
	sort.Strings(classes)
	classIdx := make(map[string]int, len(classes))
	for i, c := range classes {
		classIdx[c] = i
	}

	weights := make([][]float64, len(classes))
	for c := range weights {
		weights[c] = make([]float64, features)
	}
	bias := make([]float64, len(classes))

	gradW := make([][]float64, len(classes))
	for c := range gradW {
		gradW[c] = make([]float64, features)
	}
	gradB := make([]float64, len(classes))
	scores := make([]float64, len(classes))

	n := float64(len(x))
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		for c := range gradW {
			for i := range gradW[c] {
				gradW[c][i] = 0
			}
			gradB[c] = 0
		}

		for r, row := range x {
			softmaxInto(scores, weights, bias, row)
			target := classIdx[y[r]]
			for c := range classes {
				diff := scores[c]
				if c == target {
					diff -= 1
				}
				for i, v := range row {
					if v != 0 {
						gradW[c][i] += diff * v
					}
				}
				gradB[c] += diff
			}
		}

		for c := range classes {
			for i := range gradW[c] {
				weights[c][i] -= cfg.LearningRate * (gradW[c][i]/n + cfg.L2*weights[c][i])
			}
			bias[c] -= cfg.LearningRate * gradB[c] / n
		}
	}

	return model.NewSoftmax(classes, features, weights, bias)
}

// softmaxInto writes softmax(Wx+b) into dst.
func softmaxInto(dst []float64, weights [][]float64, bias []float64, row []float64) {
	maxScore := math.Inf(-1)
	for c := range dst {
		s := bias[c]
		for i, v := range row {
			if v != 0 {
				s += weights[c][i] * v
			}
		}
		dst[c] = s
		if s > maxScore {
			maxScore = s
		}
	}
	var sum float64
	for c := range dst {
		dst[c] = math.Exp(dst[c] - maxScore)
		sum += dst[c]
	}
	for c := range dst {
		dst[c] /= sum
	}
}

// Evaluate returns argmax accuracy on the given rows.
func Evaluate(m *model.Softmax, x [][]float64, y []string) (float64, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("evaluate: no rows")
	}
	classes := m.Classes()
	correct := 0
	for r, row := range x {
		probs, err := m.PredictProbabilities(row)
		if err != nil {
			return 0, err
		}
		best := 0
		for c := range probs {
			if probs[c] > probs[best] {
				best = c
			}
		}
		if classes[best] == y[r] {
			correct++
		}
	}
	return float64(correct) / float64(len(x)), nil
}
