package predict

import (
	"github.com/nflorant/diagnosis/internal/model"
)

// contributions runs the leave-one-out analysis: for every top-K disease and
// every recognized input symptom, re-predict with that symptom's dimension
// zeroed and score the probability drop weighted by severity. Raw scores are
// then rescaled to 0–100 against the single largest score across the entire
// result set, so scaled values are comparable between diseases.
//
// A symptom whose removal raises the disease's probability is clamped to a
// zero contribution rather than a negative one. Diseases with no recognized
// symptoms keep an empty map. Deterministic for fixed inputs.
func (s *Service) contributions(
	baseline []float64,
	baselineProbs []float64,
	top []model.Prediction,
	symptoms []string,
) (Contributions, error) {
	classIdx := make(map[string]int, len(s.classifier.Classes()))
	for i, c := range s.classifier.Classes() {
		classIdx[c] = i
	}

	recognized := s.space.Recognized(symptoms)

	raw := make(map[string]map[string]float64, len(top))
	maxScore := 0.0

	for _, pred := range top {
		d, ok := classIdx[pred.Disease]
		if !ok {
			continue
		}
		scores := make(map[string]float64, len(recognized))

		for _, symptom := range recognized {
			i, ok := s.space.Index(symptom)
			if !ok {
				continue
			}

			perturbed := append([]float64(nil), baseline...)
			perturbed[i] = 0

			probs, err := s.classifier.PredictProbabilities(perturbed)
			if err != nil {
				return nil, err
			}

			drop := baselineProbs[d] - probs[d]
			if drop < 0 {
				drop = 0
			}
			score := drop * float64(s.severity.Weight(symptom))
			scores[symptom] = score
			if score > maxScore {
				maxScore = score
			}
		}
		raw[pred.Disease] = scores
	}

	// No scores at all: scale against 1 so the division below stays defined.
	divisor := maxScore
	if divisor == 0 {
		divisor = 1
	}

	out := make(Contributions, len(raw))
	for disease, scores := range raw {
		entries := make(map[string]ContributionEntry, len(scores))
		for symptom, score := range scores {
			scaled := 0.0
			if maxScore > 0 {
				scaled = model.Round(score/divisor*100, 2)
			}
			entries[symptom] = ContributionEntry{
				Raw:    model.Round(score, 6),
				Scaled: scaled,
			}
		}
		out[disease] = entries
	}
	return out, nil
}
