package predict

import "github.com/nflorant/diagnosis/internal/model"

// ContributionEntry scores one (disease, symptom) pair: raw is the severity-
// weighted probability drop when the symptom is ablated, scaled maps it onto
// 0–100 relative to the largest raw score in the whole result set.
type ContributionEntry struct {
	Raw    float64 `json:"raw"`
	Scaled float64 `json:"scaled"`
}

// Contributions maps disease → canonical symptom → entry.
type Contributions map[string]map[string]ContributionEntry

// Result is the full outcome of one prediction request.
type Result struct {
	Predictions   []model.Prediction `json:"predictions"`
	Contributions Contributions      `json:"symptom_contributions"`
}
