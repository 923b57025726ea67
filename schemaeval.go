package schemaeval

import (
	"fmt"

	"github.com/datar-psa/schemaeval/alias"
	"github.com/datar-psa/schemaeval/api"
	"github.com/datar-psa/schemaeval/metric"
)

// Evaluator scores generated schemas against ground truth. It holds the
// read-only alias tables and the four metric calculators; a constructed
// Evaluator is safe to share across any number of concurrent evaluations.
type Evaluator struct {
	norm *alias.Normalizer

	fieldCoverage api.Metric
	typeAccuracy  api.Metric
	structure     api.Metric
	semantic      api.Metric
}

// EvaluatorOptions configures Evaluator creation
type EvaluatorOptions struct {
	fieldAliasPath string
	typeAliasPath  string
	extractor      api.EntityExtractor
}

// WithAliasFiles sets the paths of the field-name and type alias tables
func WithAliasFiles(fieldAliasPath, typeAliasPath string) func(*EvaluatorOptions) {
	return func(opts *EvaluatorOptions) {
		opts.fieldAliasPath = fieldAliasPath
		opts.typeAliasPath = typeAliasPath
	}
}

// WithEntityExtractor sets an optional entity extractor for the semantic
// metric
func WithEntityExtractor(extractor api.EntityExtractor) func(*EvaluatorOptions) {
	return func(opts *EvaluatorOptions) {
		opts.extractor = extractor
	}
}

// NewEvaluator creates a new Evaluator using functional options. The alias
// tables are loaded once here and held for the Evaluator's lifetime.
func NewEvaluator(opts ...func(*EvaluatorOptions)) (*Evaluator, error) {
	options := &EvaluatorOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.fieldAliasPath == "" || options.typeAliasPath == "" {
		return nil, fmt.Errorf("%w: alias file paths are required", ErrAliasConfig)
	}

	norm, err := alias.NewNormalizer(options.fieldAliasPath, options.typeAliasPath)
	if err != nil {
		return nil, err
	}

	return &Evaluator{
		norm:          norm,
		fieldCoverage: metric.FieldCoverage(norm),
		typeAccuracy:  metric.TypeAccuracy(norm),
		structure:     metric.Structure(norm),
		semantic:      metric.Semantic(options.extractor),
	}, nil
}
