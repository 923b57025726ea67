// Package metric implements the four similarity dimensions used to compare
// generated schemas against ground truth: field coverage, type accuracy,
// structure, and semantic match. Every metric pools fields across the whole
// document sequence before comparing, so a field named identically in two
// forms on either side has a single pooled identity.
package metric

import (
	"context"

	"github.com/datar-psa/schemaeval/alias"
	"github.com/datar-psa/schemaeval/api"
	"github.com/datar-psa/schemaeval/schemadoc"
)

// FieldCoverage returns a metric that measures what share of pooled
// ground-truth field names appear in the pooled generated field names.
// Types are ignored. An empty ground truth is vacuously covered (1.0).
func FieldCoverage(n *alias.Normalizer) api.Metric {
	return &fieldCoverageMetric{norm: n}
}

type fieldCoverageMetric struct {
	norm *alias.Normalizer
}

func (m *fieldCoverageMetric) Score(ctx context.Context, in api.MetricInputs) api.MetricScore {
	result := api.MetricScore{
		Name:     "FieldCoverage",
		Metadata: make(map[string]any),
	}

	gtFields := schemadoc.PoolFields(m.norm, in.GroundTruth)
	genFields := schemadoc.PoolFields(m.norm, in.Generated)

	result.Metadata["ground_truth_fields"] = len(gtFields)
	result.Metadata["generated_fields"] = len(genFields)

	if len(gtFields) == 0 {
		result.Score = 1.0
		return result
	}

	covered := 0
	for name := range gtFields {
		if _, ok := genFields[name]; ok {
			covered++
		}
	}

	result.Score = float64(covered) / float64(len(gtFields))
	result.Metadata["covered_fields"] = covered
	return result
}
