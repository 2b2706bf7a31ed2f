package model

import (
	"math"
	"sort"
)

// Prediction pairs a disease label with its rounded probability.
type Prediction struct {
	Disease     string  `json:"disease"`
	Probability float64 `json:"probability"`
}

// TopK ranks classes by probability descending and returns the K most
// probable. Ties keep the model's class-label order: the sort is stable over
// the classes slice, so equal probabilities never reorder between runs.
// Probabilities are rounded to 4 decimals in the output. k above the class
// count returns everything; k <= 0 returns nothing.
func TopK(classes []string, probs []float64, k int) []Prediction {
	if k <= 0 || len(classes) == 0 {
		return []Prediction{}
	}

	order := make([]int, len(classes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return probs[order[a]] > probs[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}
	out := make([]Prediction, 0, k)
	for _, idx := range order[:k] {
		out = append(out, Prediction{
			Disease:     classes[idx],
			Probability: Round(probs[idx], 4),
		})
	}
	return out
}

// Round rounds x to the given number of decimal places.
func Round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
