package metric

import (
	"context"
	"strings"

	"github.com/datar-psa/schemaeval/alias"
	"github.com/datar-psa/schemaeval/api"
	"github.com/datar-psa/schemaeval/schemadoc"
)

// Structure returns a metric built from an accumulator of independent
// checks, each contributing at most 1.0:
//
//   - a count check, always performed, satisfied when the generated and
//     ground-truth sequences have equal length;
//   - per ground-truth schema that has a generated counterpart, a
//     required-field check: full credit for set equality, otherwise
//     overlap / |ground-truth required set|.
//
// A ground-truth schema with no counterpart adds no check and no penalty
// beyond the count mismatch. The score is the accumulated credit divided by
// the number of checks performed.
func Structure(n *alias.Normalizer) api.Metric {
	return &structureMetric{norm: n}
}

type structureMetric struct {
	norm *alias.Normalizer
}

func (m *structureMetric) Score(ctx context.Context, in api.MetricInputs) api.MetricScore {
	result := api.MetricScore{
		Name:     "Structure",
		Metadata: make(map[string]any),
	}

	score := 0.0
	checks := 1
	if len(in.Generated) == len(in.GroundTruth) {
		score += 1.0
	}

	matchedSchemas := 0
	for _, gtDoc := range in.GroundTruth {
		genDoc, ok := matchSchema(gtDoc, in.Generated)
		if !ok {
			continue
		}
		matchedSchemas++
		checks++
		score += requiredFieldCredit(gtDoc, genDoc)
	}

	result.Metadata["checks"] = checks
	result.Metadata["matched_schemas"] = matchedSchemas

	if checks == 0 {
		result.Score = 0.0
		return result
	}

	result.Score = score / float64(checks)
	return result
}

// matchSchema finds the first generated schema matching gtDoc, either by
// case-insensitive formId equality or by case-insensitive containment of the
// ground-truth description in the generated description.
func matchSchema(gtDoc api.SchemaDocument, generated []api.SchemaDocument) (api.SchemaDocument, bool) {
	gtFormID := strings.ToLower(gtDoc.FormID)
	gtDescription := strings.ToLower(gtDoc.Description)

	for _, genDoc := range generated {
		if gtFormID == strings.ToLower(genDoc.FormID) ||
			strings.Contains(strings.ToLower(genDoc.Description), gtDescription) {
			return genDoc, true
		}
	}
	return api.SchemaDocument{}, false
}

// requiredFieldCredit compares the required-field sets of a matched pair:
// 1.0 for exact equality, otherwise overlap / |ground-truth required set|,
// which is 0 when the ground-truth required set is empty and the sets differ.
func requiredFieldCredit(gtDoc, genDoc api.SchemaDocument) float64 {
	gtRequired := schemadoc.RequiredFields(gtDoc)
	genRequired := schemadoc.RequiredFields(genDoc)

	if setsEqual(gtRequired, genRequired) {
		return 1.0
	}
	if len(gtRequired) == 0 {
		return 0.0
	}

	overlap := 0
	for name := range gtRequired {
		if _, ok := genRequired[name]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(gtRequired))
}

func setsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for name := range a {
		if _, ok := b[name]; !ok {
			return false
		}
	}
	return true
}
