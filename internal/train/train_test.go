package train

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nflorant/diagnosis/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const testDataset = `Disease,Symptom_1,Symptom_2,Symptom_3
Fungal Infection,Itching,skin rash,
Fungal Infection,itching,Skin Rash,nan
Fungal Infection,itching,,
Flu,fatigue,high fever,
Flu,High Fever,fatigue,
Flu,fatigue,,
Gastro,diarrhoea,vomiting,
Gastro,vomiting,Diarrhoea,
Gastro,diarrhea,,
`

const testSeverity = `Symptom,weight
Itching,1
Skin Rash,3
fatigue,4
high fever,7
diarrhea,6
vomiting,5
`

func TestLoadDatasetCleansRows(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "dataset.csv", testDataset)

	cases, err := LoadDataset(path)
	require.NoError(t, err)

	for _, c := range cases {
		for _, s := range c.Symptoms {
			assert.NotEqual(t, "diarrhoea", s, "spelling fixup must apply")
			assert.NotEqual(t, "nan", s)
			assert.NotEmpty(t, s)
		}
	}

	// "Itching,skin rash" and "itching,Skin Rash" normalize to the same row.
	fungal := 0
	for _, c := range cases {
		if c.Disease == "Fungal Infection" {
			fungal++
		}
	}
	assert.Equal(t, 2, fungal, "duplicate rows must be dropped")
}

func TestExtractFeatureSpaceIsSortedAndUnique(t *testing.T) {
	dir := t.TempDir()
	cases, err := LoadDataset(writeFile(t, dir, "dataset.csv", testDataset))
	require.NoError(t, err)

	space, err := ExtractFeatureSpace(cases)
	require.NoError(t, err)

	names := space.Names()
	assert.Equal(t, []string{"diarrhea", "fatigue", "high_fever", "itching", "skin_rash", "vomiting"}, names)
}

func TestRunTrainsAndWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.DatasetPath = writeFile(t, dir, "dataset.csv", testDataset)
	cfg.SeverityPath = writeFile(t, dir, "severity.csv", testSeverity)
	cfg.OutDir = filepath.Join(dir, "artifacts")

	report, err := Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Classes)
	assert.Equal(t, 6, report.Features)
	assert.Greater(t, report.TrainRows, 0)

	arts, err := model.LoadArtifacts(cfg.OutDir)
	require.NoError(t, err)

	// The trained model must separate this linearly separable toy set.
	vec := arts.FeatureSpace.Encode([]string{"itching", "skin rash"}, arts.Severity)
	probs, err := arts.Classifier.PredictProbabilities(vec)
	require.NoError(t, err)

	classes := arts.Classifier.Classes()
	best := 0
	for c := range probs {
		if probs[c] > probs[best] {
			best = c
		}
	}
	assert.Equal(t, "Fungal Infection", classes[best])
}

func TestRunIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.DatasetPath = writeFile(t, dir, "dataset.csv", testDataset)
	cfg.SeverityPath = writeFile(t, dir, "severity.csv", testSeverity)

	first, err := Run(cfg)
	require.NoError(t, err)
	second, err := Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFitRejectsEmptyInput(t *testing.T) {
	_, err := Fit(nil, nil, DefaultFitConfig())
	assert.Error(t, err)
}

func TestLoadSeverityRejectsBadWeight(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "severity.csv", "Symptom,weight\nitching,heavy\n")
	_, err := LoadSeverity(path)
	assert.Error(t, err)
}
