package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datar-psa/schemaeval/api"
)

func sampleResults() []api.EvaluationResult {
	return []api.EvaluationResult{
		{
			PromptID:         "p1",
			SchemaCountMatch: true,
			FieldCoverage:    0.5,
			TypeAccuracy:     1.0,
			StructureScore:   0.75,
			SemanticScore:    0.8,
			OverallScore:     0.748,
			GenerationTimeMs: 412.6,
		},
		{
			PromptID:         "p2",
			Errors:           []string{"Generated schemas is not a valid list or dict", "Evaluation error: boom"},
			GenerationTimeMs: 0,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResults()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"p1", "true", "0.500", "1.000", "0.750", "0.800", "0.748", "", "412.6"}, rows[1])
	assert.Equal(t, "p2", rows[2][0])
	assert.Equal(t, "false", rows[2][1])
	assert.Equal(t, "Generated schemas is not a valid list or dict; Evaluation error: boom", rows[2][7])
	assert.Equal(t, "0.0", rows[2][8])
}

func TestWriteCSVEmptyResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, WriteCSVFile(path, sampleResults()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "prompt_id")
	assert.Contains(t, string(data), "p1")
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]api.EvaluationResult{
		{OverallScore: 0.8, GenerationTimeMs: 100},
		{OverallScore: 0.4, GenerationTimeMs: 300},
	})

	assert.Equal(t, 2, summary.Prompts)
	assert.InDelta(t, 0.6, summary.MeanOverallScore, 1e-9)
	assert.InDelta(t, 200.0, summary.MeanGenerationTimeMs, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}
