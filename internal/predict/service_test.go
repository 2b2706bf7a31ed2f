package predict

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nflorant/diagnosis/internal/encoding"
	"github.com/nflorant/diagnosis/internal/model"
)

// tableClassifier returns canned distributions per input vector, so tests
// can pin exact probabilities for baseline and perturbed calls.
type tableClassifier struct {
	classes []string
	table   map[string][]float64
}

func (c *tableClassifier) Classes() []string { return c.classes }

func (c *tableClassifier) PredictProbabilities(vec []float64) ([]float64, error) {
	probs, ok := c.table[vecKey(vec)]
	if !ok {
		return nil, fmt.Errorf("no canned distribution for vector %v", vec)
	}
	return probs, nil
}

func vecKey(vec []float64) string { return fmt.Sprint(vec) }

func newTestService(t *testing.T, classifier model.Classifier, topK int) *Service {
	t.Helper()
	space, err := encoding.NewFeatureSpace([]string{"itching", "skin_rash", "fatigue"})
	require.NoError(t, err)
	arts := &model.Artifacts{
		Classifier:   classifier,
		FeatureSpace: space,
		Severity:     encoding.NewSeverityTable(map[string]int{"itching": 1, "skin_rash": 3, "fatigue": 4}),
	}
	svc, err := NewService(arts, topK)
	require.NoError(t, err)
	return svc
}

func TestPredictTopPrediction(t *testing.T) {
	classifier := &tableClassifier{
		classes: []string{"FungalInfection", "Flu"},
		table: map[string][]float64{
			vecKey([]float64{1, 0, 0}): {0.9, 0.1},
			vecKey([]float64{0, 0, 0}): {0.5, 0.5},
		},
	}
	svc := newTestService(t, classifier, 1)

	res, err := svc.Predict(context.Background(), []string{"itching"})
	require.NoError(t, err)
	require.Len(t, res.Predictions, 1)
	assert.Equal(t, "FungalInfection", res.Predictions[0].Disease)
	assert.Equal(t, 0.9, res.Predictions[0].Probability)
}

func TestPredictContributionScaling(t *testing.T) {
	classifier := &tableClassifier{
		classes: []string{"FungalInfection", "Flu"},
		table: map[string][]float64{
			vecKey([]float64{1, 3, 0}): {0.95, 0.05}, // baseline: itching + skin_rash
			vecKey([]float64{1, 0, 0}): {0.70, 0.30}, // skin_rash ablated
			vecKey([]float64{0, 3, 0}): {0.90, 0.10}, // itching ablated
		},
	}
	svc := newTestService(t, classifier, 2)

	res, err := svc.Predict(context.Background(), []string{"itching", "skin rash"})
	require.NoError(t, err)

	fungal := res.Contributions["FungalInfection"]
	require.NotNil(t, fungal)

	// drop 0.25 * weight 3 = 0.75 is the global max → scaled 100.
	assert.Equal(t, 0.75, fungal["skin_rash"].Raw)
	assert.Equal(t, 100.0, fungal["skin_rash"].Scaled)

	// drop 0.05 * weight 1 = 0.05 → 0.05/0.75*100 ≈ 6.67.
	assert.Equal(t, 0.05, fungal["itching"].Raw)
	assert.Equal(t, 6.67, fungal["itching"].Scaled)

	// Ablating either symptom raises Flu's probability; negative drops clamp to 0.
	flu := res.Contributions["Flu"]
	require.NotNil(t, flu)
	assert.Equal(t, ContributionEntry{Raw: 0, Scaled: 0}, flu["skin_rash"])
	assert.Equal(t, ContributionEntry{Raw: 0, Scaled: 0}, flu["itching"])
}

func TestPredictContributionInvariants(t *testing.T) {
	classifier := &tableClassifier{
		classes: []string{"FungalInfection", "Flu"},
		table: map[string][]float64{
			vecKey([]float64{1, 3, 0}): {0.95, 0.05},
			vecKey([]float64{1, 0, 0}): {0.70, 0.30},
			vecKey([]float64{0, 3, 0}): {0.90, 0.10},
		},
	}
	svc := newTestService(t, classifier, 2)

	res, err := svc.Predict(context.Background(), []string{"itching", "skin rash"})
	require.NoError(t, err)

	sawHundred := false
	for _, entries := range res.Contributions {
		for _, e := range entries {
			assert.GreaterOrEqual(t, e.Raw, 0.0)
			assert.GreaterOrEqual(t, e.Scaled, 0.0)
			assert.LessOrEqual(t, e.Scaled, 100.0)
			if e.Scaled == 100.0 {
				sawHundred = true
			}
		}
	}
	assert.True(t, sawHundred, "a non-empty result set with a positive raw score must contain a 100")
}

func TestPredictUnknownSymptomsFallBackToBaseline(t *testing.T) {
	classifier := &tableClassifier{
		classes: []string{"FungalInfection", "Flu"},
		table: map[string][]float64{
			vecKey([]float64{0, 0, 0}): {0.6, 0.4},
		},
	}
	svc := newTestService(t, classifier, 2)

	res, err := svc.Predict(context.Background(), []string{"not_a_real_symptom"})
	require.NoError(t, err)
	require.Len(t, res.Predictions, 2)
	assert.Equal(t, "FungalInfection", res.Predictions[0].Disease)

	// No recognized symptoms: every disease keys an empty, non-nil map.
	for _, disease := range []string{"FungalInfection", "Flu"} {
		entries, ok := res.Contributions[disease]
		require.True(t, ok, "disease %s missing from contributions", disease)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	}
}

func TestPredictIsDeterministic(t *testing.T) {
	classifier := &tableClassifier{
		classes: []string{"FungalInfection", "Flu"},
		table: map[string][]float64{
			vecKey([]float64{1, 3, 0}): {0.95, 0.05},
			vecKey([]float64{1, 0, 0}): {0.70, 0.30},
			vecKey([]float64{0, 3, 0}): {0.90, 0.10},
		},
	}
	svc := newTestService(t, classifier, 2)

	first, err := svc.Predict(context.Background(), []string{"itching", "skin rash"})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := svc.Predict(context.Background(), []string{"itching", "skin rash"})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPredictPropagatesClassifierErrors(t *testing.T) {
	classifier := &tableClassifier{
		classes: []string{"FungalInfection"},
		table:   map[string][]float64{}, // every call fails
	}
	svc := newTestService(t, classifier, 1)

	_, err := svc.Predict(context.Background(), []string{"itching"})
	assert.Error(t, err)
}

func TestNewServiceRejectsBadTopK(t *testing.T) {
	classifier := &tableClassifier{classes: []string{"a"}}
	space, err := encoding.NewFeatureSpace([]string{"itching"})
	require.NoError(t, err)
	arts := &model.Artifacts{
		Classifier:   classifier,
		FeatureSpace: space,
		Severity:     encoding.NewSeverityTable(nil),
	}
	_, err = NewService(arts, 0)
	assert.Error(t, err)
}

func TestSymptomsListingIsSorted(t *testing.T) {
	classifier := &tableClassifier{classes: []string{"a"}}
	space, err := encoding.NewFeatureSpace([]string{"skin_rash", "itching", "fatigue"})
	require.NoError(t, err)
	arts := &model.Artifacts{
		Classifier:   classifier,
		FeatureSpace: space,
		Severity:     encoding.NewSeverityTable(nil),
	}
	svc, err := NewService(arts, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"fatigue", "itching", "skin_rash"}, svc.Symptoms())
}
