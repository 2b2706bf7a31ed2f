package encoding

import "sort"

// DefaultWeight is used for any symptom absent from the severity reference.
const DefaultWeight = 1

// SeverityTable maps canonical symptom names to positive integer weights.
// Keys are normalized at construction; the table is immutable afterwards and
// safe for concurrent reads.
type SeverityTable struct {
	weights map[string]int
}

// NewSeverityTable builds a table from raw symptom→weight pairs. Keys are
// normalized, entries whose key normalizes to "" or whose weight is not
// positive are dropped.
func NewSeverityTable(raw map[string]int) *SeverityTable {
	weights := make(map[string]int, len(raw))
	for k, w := range raw {
		key := Normalize(k)
		if key == "" || w <= 0 {
			continue
		}
		weights[key] = w
	}
	return &SeverityTable{weights: weights}
}

// Weight returns the severity weight for a canonical symptom name,
// defaulting to DefaultWeight when the symptom is not in the table.
func (t *SeverityTable) Weight(symptom string) int {
	if w, ok := t.weights[symptom]; ok {
		return w
	}
	return DefaultWeight
}

// Len returns the number of symptoms with an explicit weight.
func (t *SeverityTable) Len() int { return len(t.weights) }

// Symptoms returns all explicitly weighted symptom names, sorted.
func (t *SeverityTable) Symptoms() []string {
	out := make([]string, 0, len(t.weights))
	for k := range t.weights {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Map returns a copy of the underlying weights, for artifact serialization.
func (t *SeverityTable) Map() map[string]int {
	out := make(map[string]int, len(t.weights))
	for k, v := range t.weights {
		out[k] = v
	}
	return out
}
