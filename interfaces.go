package schemaeval

import (
	"github.com/datar-psa/schemaeval/api"
)

type SchemaDocument = api.SchemaDocument
type FieldDefinition = api.FieldDefinition
type EmbeddedSchema = api.EmbeddedSchema
type EvaluationResult = api.EvaluationResult
type MetricInputs = api.MetricInputs
type MetricScore = api.MetricScore
type Metric = api.Metric
type SchemaGenerator = api.SchemaGenerator
type EntityExtractor = api.EntityExtractor
