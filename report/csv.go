// Package report serializes evaluation results into a flat tabular report.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/datar-psa/schemaeval/api"
)

var csvHeader = []string{
	"prompt_id",
	"schema_count_match",
	"field_coverage",
	"type_accuracy",
	"structure_score",
	"semantic_score",
	"overall_score",
	"errors",
	"generation_time_ms",
}

// WriteCSV writes one row per result. Scores carry three decimals,
// generation time one; the errors sequence is flattened with "; ".
func WriteCSV(w io.Writer, results []api.EvaluationResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range results {
		record := []string{
			r.PromptID,
			strconv.FormatBool(r.SchemaCountMatch),
			fmt.Sprintf("%.3f", r.FieldCoverage),
			fmt.Sprintf("%.3f", r.TypeAccuracy),
			fmt.Sprintf("%.3f", r.StructureScore),
			fmt.Sprintf("%.3f", r.SemanticScore),
			fmt.Sprintf("%.3f", r.OverallScore),
			strings.Join(r.Errors, "; "),
			fmt.Sprintf("%.1f", r.GenerationTimeMs),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the report to path, creating or truncating it.
func WriteCSVFile(path string, results []api.EvaluationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteCSV(f, results); err != nil {
		return err
	}
	return f.Close()
}

// Summary aggregates a finished run.
type Summary struct {
	Prompts              int
	MeanOverallScore     float64
	MeanGenerationTimeMs float64
}

// Summarize computes the run summary. An empty result set yields a zero
// Summary.
func Summarize(results []api.EvaluationResult) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	var scoreSum, timeSum float64
	for _, r := range results {
		scoreSum += r.OverallScore
		timeSum += r.GenerationTimeMs
	}

	return Summary{
		Prompts:              len(results),
		MeanOverallScore:     scoreSum / float64(len(results)),
		MeanGenerationTimeMs: timeSum / float64(len(results)),
	}
}
