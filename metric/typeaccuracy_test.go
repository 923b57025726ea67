package metric

import (
	"context"
	"testing"

	"github.com/datar-psa/schemaeval/api"
)

func TestTypeAccuracy(t *testing.T) {
	ctx := context.Background()
	m := TypeAccuracy(newTestNormalizer(t))

	tests := []struct {
		name        string
		generated   []api.SchemaDocument
		groundTruth []api.SchemaDocument
		wantScore   float64
	}{
		{
			name:        "empty ground truth scores full",
			generated:   []api.SchemaDocument{doc("Product", map[string]api.FieldDefinition{"price": field("MONEY")})},
			groundTruth: nil,
			wantScore:   1.0,
		},
		{
			name: "no overlap with non-empty ground truth scores zero",
			generated: []api.SchemaDocument{
				doc("Product", map[string]api.FieldDefinition{"stock": field("NUMERIC")}),
			},
			groundTruth: []api.SchemaDocument{
				doc("Product", map[string]api.FieldDefinition{"price": field("MONEY")}),
			},
			wantScore: 0.0,
		},
		{
			name: "overlapping field with matching type",
			generated: []api.SchemaDocument{
				doc("Product", map[string]api.FieldDefinition{"price": field("MONEY")}),
			},
			groundTruth: []api.SchemaDocument{
				doc("Product", map[string]api.FieldDefinition{
					"price": field("MONEY"),
					"name":  field("TEXT"),
				}),
			},
			wantScore: 1.0,
		},
		{
			name: "alias types count as matching",
			generated: []api.SchemaDocument{
				doc("Product", map[string]api.FieldDefinition{"price": field("currency")}),
			},
			groundTruth: []api.SchemaDocument{
				doc("Product", map[string]api.FieldDefinition{"price": field("MONEY")}),
			},
			wantScore: 1.0,
		},
		{
			name: "half the overlapping types match",
			generated: []api.SchemaDocument{
				doc("Product", map[string]api.FieldDefinition{
					"price": field("TEXT"),
					"name":  field("TEXT"),
				}),
			},
			groundTruth: []api.SchemaDocument{
				doc("Product", map[string]api.FieldDefinition{
					"price": field("MONEY"),
					"name":  field("TEXT"),
				}),
			},
			wantScore: 0.5,
		},
		{
			name: "only overlapping fields are graded",
			generated: []api.SchemaDocument{
				doc("Product", map[string]api.FieldDefinition{"price": field("MONEY")}),
			},
			groundTruth: []api.SchemaDocument{
				doc("Product", map[string]api.FieldDefinition{
					"price": field("MONEY"),
					"name":  field("TEXT"),
					"stock": field("NUMERIC"),
				}),
			},
			wantScore: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := m.Score(ctx, api.MetricInputs{Generated: tt.generated, GroundTruth: tt.groundTruth})

			if !almostEqual(result.Score, tt.wantScore) {
				t.Errorf("TypeAccuracy.Score() = %v, want %v", result.Score, tt.wantScore)
			}
			if result.Name != "TypeAccuracy" {
				t.Errorf("TypeAccuracy.Score() name = %v, want 'TypeAccuracy'", result.Name)
			}
		})
	}
}
