package predict

import (
	"context"
	"fmt"
	"sort"

	"github.com/nflorant/diagnosis/internal/encoding"
	"github.com/nflorant/diagnosis/internal/model"
)

// Service runs the inference pipeline: encode → predict → rank → explain.
// All fields are set at construction from the loaded artifacts and never
// mutated, so one Service safely serves concurrent requests.
type Service struct {
	classifier model.Classifier
	space      *encoding.FeatureSpace
	severity   *encoding.SeverityTable
	topK       int
}

// NewService wires a prediction service over loaded artifacts. topK bounds
// the number of ranked diseases per request.
func NewService(arts *model.Artifacts, topK int) (*Service, error) {
	if topK < 1 {
		return nil, fmt.Errorf("top-k must be at least 1, got %d", topK)
	}
	return &Service{
		classifier: arts.Classifier,
		space:      arts.FeatureSpace,
		severity:   arts.Severity,
		topK:       topK,
	}, nil
}

// Symptoms returns every canonical symptom name the model understands,
// sorted, for client-side autocomplete.
func (s *Service) Symptoms() []string {
	names := s.space.Names()
	// Feature-space order is training order; sort for a stable listing.
	sort.Strings(names)
	return names
}

// Predict ranks the top-K diseases for the given raw symptoms and attributes
// each prediction to the symptoms that drove it. Unknown symptoms contribute
// nothing and raise no error; an all-unknown request still predicts from the
// model's baseline on a zero vector. The cost is dominated by the
// contribution analysis: one classifier call per (disease, recognized
// symptom) pair on top of the baseline call.
func (s *Service) Predict(ctx context.Context, symptoms []string) (*Result, error) {
	_ = ctx // no cancellation points inside the core; kept for interface symmetry

	baseline := s.space.Encode(symptoms, s.severity)
	probs, err := s.classifier.PredictProbabilities(baseline)
	if err != nil {
		return nil, fmt.Errorf("baseline inference: %w", err)
	}

	top := model.TopK(s.classifier.Classes(), probs, s.topK)

	contribs, err := s.contributions(baseline, probs, top, symptoms)
	if err != nil {
		return nil, fmt.Errorf("contribution analysis: %w", err)
	}

	return &Result{Predictions: top, Contributions: contribs}, nil
}
