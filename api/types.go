package api

import (
	"context"
	"encoding/json"
)

// SchemaDocument is one form schema as produced by a generative model or
// loaded from ground-truth storage. Input is untrusted: any attribute may be
// absent and Fields may be nil.
type SchemaDocument struct {
	AppsID      string                     `json:"appsId"`
	FormID      string                     `json:"formId"`
	Description string                     `json:"description"`
	Fields      map[string]FieldDefinition `json:"fields"`
}

// FieldDefinition describes a single field of a form schema.
// Only FieldType and Required participate in scoring; the remaining
// attributes are carried so generated payloads round-trip unchanged.
type FieldDefinition struct {
	FieldID            string          `json:"fieldId,omitempty"`
	FieldType          string          `json:"fieldType,omitempty"`
	Required           bool            `json:"required,omitempty"`
	Unique             bool            `json:"unique,omitempty"`
	Default            any             `json:"default,omitempty"`
	AllowMultiple      bool            `json:"allowMultiple,omitempty"`
	RefPickListID      string          `json:"refPickListId,omitempty"`
	FractionDigits     int             `json:"fractionDigits,omitempty"`
	CurrencyCode       string          `json:"currencyCode,omitempty"`
	EmbeddedFormSchema *EmbeddedSchema `json:"embeddedFormSchema,omitempty"`
}

// EmbeddedSchema holds the nested fields of an EMBED field.
type EmbeddedSchema struct {
	Fields map[string]FieldDefinition `json:"fields"`
}

// EvaluationResult is one row of the evaluation report: the four component
// metrics plus their weighted combination for a single prompt.
// All score fields are in [0, 1]. Immutable once returned.
type EvaluationResult struct {
	PromptID         string   `json:"prompt_id"`
	SchemaCountMatch bool     `json:"schema_count_match"`
	FieldCoverage    float64  `json:"field_coverage"`
	TypeAccuracy     float64  `json:"type_accuracy"`
	StructureScore   float64  `json:"structure_score"`
	SemanticScore    float64  `json:"semantic_score"`
	OverallScore     float64  `json:"overall_score"`
	Errors           []string `json:"errors"`
	GenerationTimeMs float64  `json:"generation_time_ms"`
}

// MetricInputs carries inputs for scoring across the metric calculators.
//
// Fields usage conventions:
// - Prompt:      the original user prompt (used by the semantic metric only)
// - Generated:   the decoded model output
// - GroundTruth: the decoded reference schemas
type MetricInputs struct {
	Prompt      string
	Generated   []SchemaDocument
	GroundTruth []SchemaDocument
}

// MetricScore is the result of one metric calculator.
type MetricScore struct {
	// Name identifies the metric that produced this result
	Name string
	// Score is a value between 0 and 1, where 1 is the best possible score
	Score float64
	// Metadata contains additional information about the scoring process
	Metadata map[string]any
}

// Metric computes one similarity dimension between generated and
// ground-truth schemas.
type Metric interface {
	// Score evaluates the inputs and returns a score in [0, 1]
	Score(ctx context.Context, in MetricInputs) MetricScore
}

// SchemaGenerator produces candidate schemas for a prompt.
// This interface must be implemented by library consumers.
// A Gemini implementation is provided in the gemini subpackage.
type SchemaGenerator interface {
	// GenerateSchemas returns the raw JSON payload produced by the model
	// (an object or an array of SchemaDocument shapes) together with the
	// elapsed generation time in milliseconds. The elapsed time is
	// meaningful even when err is non-nil.
	GenerateSchemas(ctx context.Context, prompt string) (raw json.RawMessage, elapsedMs float64, err error)
}

// EntityExtractor mines domain-entity terms from prompt text.
// Implementations supplement the semantic metric's fixed vocabulary;
// a Google Cloud Natural Language implementation is provided in the
// gemini subpackage.
type EntityExtractor interface {
	// Entities returns lower-cased entity terms found in text
	Entities(ctx context.Context, text string) ([]string, error)
}
