package encoding

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a raw symptom string so that user input, the
// severity reference data, and the trained feature space all share one key
// space: NFKC fold, trim, lowercase, spaces to underscores, then one pass
// collapsing "__" to "_". The same function runs at training and inference
// time; a mismatch between the two would silently corrupt every encoding.
func Normalize(raw string) string {
	s := norm.NFKC.String(raw)
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "__", "_")
	return s
}

// NormalizeAll normalizes a slice of symptom names, dropping entries that
// normalize to the empty string.
func NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if n := Normalize(r); n != "" {
			out = append(out, n)
		}
	}
	return out
}
