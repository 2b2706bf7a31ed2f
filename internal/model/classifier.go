package model

// Classifier is the opaque probabilistic multi-class model the prediction
// core runs against. Implementations must be safe for concurrent use: the
// serving process loads one instance at startup and shares it across
// requests without locking.
type Classifier interface {
	// Classes returns the class labels in the model's fixed order. The
	// returned slice must not be mutated by callers.
	Classes() []string

	// PredictProbabilities returns one probability per class, aligned with
	// Classes(), each in [0,1] and summing to ~1. A vector whose length
	// disagrees with the model's input dimensionality fails with a
	// *DimensionError; no partial inference is attempted.
	PredictProbabilities(vec []float64) ([]float64, error)
}
