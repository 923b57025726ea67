package metric

import (
	"context"

	"github.com/datar-psa/schemaeval/alias"
	"github.com/datar-psa/schemaeval/api"
	"github.com/datar-psa/schemaeval/schemadoc"
)

// TypeAccuracy returns a metric that measures how many of the field names
// present in both pooled maps carry the same canonical type. 1.0 when ground
// truth has no fields; 0.0 when ground truth has fields but none of them
// appear in the generated set.
func TypeAccuracy(n *alias.Normalizer) api.Metric {
	return &typeAccuracyMetric{norm: n}
}

type typeAccuracyMetric struct {
	norm *alias.Normalizer
}

func (m *typeAccuracyMetric) Score(ctx context.Context, in api.MetricInputs) api.MetricScore {
	result := api.MetricScore{
		Name:     "TypeAccuracy",
		Metadata: make(map[string]any),
	}

	gtFields := schemadoc.PoolFields(m.norm, in.GroundTruth)
	genFields := schemadoc.PoolFields(m.norm, in.Generated)

	if len(gtFields) == 0 {
		result.Score = 1.0
		return result
	}

	overlapping := 0
	correct := 0
	for name, gtType := range gtFields {
		genType, ok := genFields[name]
		if !ok {
			continue
		}
		overlapping++
		if genType == gtType {
			correct++
		}
	}

	result.Metadata["overlapping_fields"] = overlapping
	result.Metadata["correct_types"] = correct

	// Zero overlap with a non-empty ground truth scores 0, not 1.
	if overlapping == 0 {
		result.Score = 0.0
		return result
	}

	result.Score = float64(correct) / float64(overlapping)
	return result
}
