package train

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/nflorant/diagnosis/internal/encoding"
)

// Case is one training row: a disease label and its reported symptoms,
// already canonicalized.
type Case struct {
	Disease  string
	Symptoms []string
}

// LoadDataset reads the wide-format training CSV: a header row, then one row
// per case with the disease in the first column and symptom slots in the
// rest. Cells are canonicalized, the dataset's known diarrhoea/diarrhea
// spelling inconsistency is fixed, empty and "nan" cells are dropped, and
// exact duplicate rows are removed.
func LoadDataset(path string) ([]Case, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("dataset %s: need a header and at least one row", path)
	}

	cases := make([]Case, 0, len(rows)-1)
	seen := make(map[string]bool, len(rows)-1)

	for _, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}
		disease := strings.TrimSpace(row[0])
		if disease == "" {
			continue
		}

		symptoms := make([]string, 0, len(row)-1)
		for _, cell := range row[1:] {
			s := encoding.Normalize(cell)
			if s == "diarrhoea" {
				s = "diarrhea"
			}
			if s == "" || s == "nan" {
				continue
			}
			symptoms = append(symptoms, s)
		}

		key := disease + "\x00" + strings.Join(symptoms, "\x00")
		if seen[key] {
			continue
		}
		seen[key] = true
		cases = append(cases, Case{Disease: disease, Symptoms: symptoms})
	}

	if len(cases) == 0 {
		return nil, fmt.Errorf("dataset %s: no usable rows", path)
	}
	return cases, nil
}

// LoadSeverity reads the symptom severity reference CSV (Symptom,weight).
func LoadSeverity(path string) (*encoding.SeverityTable, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("severity %s: need a header and at least one row", path)
	}

	weights := make(map[string]int, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}
		w, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("severity %s row %d: weight %q is not an integer", path, i+2, row[1])
		}
		weights[row[0]] = w
	}
	return encoding.NewSeverityTable(weights), nil
}

// ExtractFeatureSpace returns the sorted unique symptom set across all cases,
// fixing the dimension ordering the model will be trained and served with.
func ExtractFeatureSpace(cases []Case) (*encoding.FeatureSpace, error) {
	set := make(map[string]bool)
	for _, c := range cases {
		for _, s := range c.Symptoms {
			set[s] = true
		}
	}
	names := make([]string, 0, len(set))
	for s := range set {
		names = append(names, s)
	}
	sort.Strings(names)
	return encoding.NewFeatureSpace(names)
}

// BuildMatrix encodes every case into a severity-weighted feature row.
func BuildMatrix(cases []Case, space *encoding.FeatureSpace, severity *encoding.SeverityTable) (x [][]float64, y []string) {
	x = make([][]float64, len(cases))
	y = make([]string, len(cases))
	for i, c := range cases {
		x[i] = space.Encode(c.Symptoms, severity)
		y[i] = c.Disease
	}
	return x, y
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // symptom slot counts vary between exports
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}
