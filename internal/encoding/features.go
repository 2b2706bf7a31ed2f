package encoding

import "fmt"

// FeatureSpace is the ordered list of canonical symptom names the classifier
// was trained against. The ordering is fixed at training time; index i is the
// vector dimension for symptom i. Immutable after construction and safe for
// concurrent reads.
type FeatureSpace struct {
	names []string
	index map[string]int
}

// NewFeatureSpace builds a feature space from training-ordered canonical
// names. Names must already be canonical and unique; a duplicate or
// non-canonical name indicates a corrupt artifact.
func NewFeatureSpace(names []string) (*FeatureSpace, error) {
	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" || name != Normalize(name) {
			return nil, fmt.Errorf("feature %d: %q is not a canonical symptom name", i, name)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("feature %d: duplicate symptom %q", i, name)
		}
		index[name] = i
	}
	return &FeatureSpace{names: append([]string(nil), names...), index: index}, nil
}

// Len returns the number of dimensions F.
func (fs *FeatureSpace) Len() int { return len(fs.names) }

// Names returns the dimension names in training order.
func (fs *FeatureSpace) Names() []string {
	return append([]string(nil), fs.names...)
}

// Index returns the dimension for a canonical symptom name.
func (fs *FeatureSpace) Index(symptom string) (int, bool) {
	i, ok := fs.index[symptom]
	return i, ok
}

// Encode maps raw user symptoms to a length-F vector. Each recognized symptom
// sets its dimension to the severity weight; everything else stays 0.
// Symptoms that don't normalize into the feature space are dropped without
// error, tolerating free-text drift. Pure: identical input always yields an
// identical vector.
func (fs *FeatureSpace) Encode(symptoms []string, severity *SeverityTable) []float64 {
	vec := make([]float64, len(fs.names))
	for _, raw := range symptoms {
		name := Normalize(raw)
		i, ok := fs.index[name]
		if !ok {
			continue
		}
		// Severity is keyed by the normalized name as well. The reference
		// behavior looked the weight up by the raw string, which only worked
		// when the client pre-normalized; one key space removes that trap.
		vec[i] = float64(severity.Weight(name))
	}
	return vec
}

// Recognized returns the deduplicated canonical names of the input symptoms
// that are feature-space dimensions, in first-seen order.
func (fs *FeatureSpace) Recognized(symptoms []string) []string {
	seen := make(map[string]bool, len(symptoms))
	out := make([]string, 0, len(symptoms))
	for _, raw := range symptoms {
		name := Normalize(raw)
		if name == "" || seen[name] {
			continue
		}
		if _, ok := fs.index[name]; !ok {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
