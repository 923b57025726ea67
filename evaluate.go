package schemaeval

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/datar-psa/schemaeval/api"
	"github.com/datar-psa/schemaeval/schemadoc"
)

// Fixed weights of the overall score. The four metrics form a convex
// combination, so the overall score stays in [0, 1].
const (
	WeightFieldCoverage = 0.30
	WeightTypeAccuracy  = 0.25
	WeightStructure     = 0.25
	WeightSemantic      = 0.20
)

// Request carries one prompt's evaluation inputs. Generated and GroundTruth
// are raw JSON payloads; shape tolerance is handled during evaluation, not
// by the caller.
type Request struct {
	PromptID         string
	Prompt           string
	Generated        json.RawMessage
	GroundTruth      json.RawMessage
	GenerationTimeMs float64
}

// Evaluate scores one generated payload against its ground truth and
// assembles the full result record.
//
// Malformed payloads are coerced (empty or singleton sequence) with a
// diagnostic in the result's Errors; scoring proceeds with the coerced
// value. Any fault inside scoring is recovered here and only here: the
// returned result is fully zeroed, its Errors describe the fault, and err
// wraps ErrScoringFault so the caller can decide to log and continue. No
// partial result escapes a faulting evaluation.
func (e *Evaluator) Evaluate(ctx context.Context, req Request) (result api.EvaluationResult, err error) {
	var diags []string

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrScoringFault, r)
			result = api.EvaluationResult{
				PromptID:         req.PromptID,
				SchemaCountMatch: false,
				Errors:           append(diags, fmt.Sprintf("Evaluation error: %v", r)),
				GenerationTimeMs: req.GenerationTimeMs,
			}
		}
	}()

	generated, genDiags := schemadoc.DecodeGenerated(req.Generated)
	diags = append(diags, genDiags...)

	groundTruth, gtDiags := schemadoc.DecodeGroundTruth(req.GroundTruth)
	diags = append(diags, gtDiags...)

	in := api.MetricInputs{
		Prompt:      req.Prompt,
		Generated:   generated,
		GroundTruth: groundTruth,
	}

	fieldCoverage := e.fieldCoverage.Score(ctx, in).Score
	typeAccuracy := e.typeAccuracy.Score(ctx, in).Score
	structure := e.structure.Score(ctx, in).Score
	semantic := e.semantic.Score(ctx, in).Score

	overall := WeightFieldCoverage*fieldCoverage +
		WeightTypeAccuracy*typeAccuracy +
		WeightStructure*structure +
		WeightSemantic*semantic

	result = api.EvaluationResult{
		PromptID:         req.PromptID,
		SchemaCountMatch: len(generated) == len(groundTruth),
		FieldCoverage:    fieldCoverage,
		TypeAccuracy:     typeAccuracy,
		StructureScore:   structure,
		SemanticScore:    semantic,
		OverallScore:     overall,
		Errors:           diags,
		GenerationTimeMs: req.GenerationTimeMs,
	}
	return result, nil
}
