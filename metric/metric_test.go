package metric

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/datar-psa/schemaeval/alias"
	"github.com/datar-psa/schemaeval/api"
)

// newTestNormalizer builds a Normalizer from small alias tables written to a
// temp dir. The tables mirror the shape of the production mapping files.
func newTestNormalizer(t *testing.T) *alias.Normalizer {
	t.Helper()
	dir := t.TempDir()
	fieldPath := filepath.Join(dir, "field_name_aliases.json")
	typePath := filepath.Join(dir, "type_aliases.json")

	fieldJSON := `{
		"name": ["title", "label"],
		"price": ["cost", "amount"],
		"email": ["emailAddress", "e_mail"]
	}`
	typeJSON := `{
		"TEXT": ["STRING", "VARCHAR"],
		"NUMERIC": ["NUMBER", "INT", "FLOAT"],
		"MONEY": ["CURRENCY", "PRICE"]
	}`

	if err := os.WriteFile(fieldPath, []byte(fieldJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(typePath, []byte(typeJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := alias.NewNormalizer(fieldPath, typePath)
	if err != nil {
		t.Fatalf("NewNormalizer() error = %v", err)
	}
	return n
}

func doc(formID string, fields map[string]api.FieldDefinition) api.SchemaDocument {
	return api.SchemaDocument{FormID: formID, Fields: fields}
}

func field(fieldType string) api.FieldDefinition {
	return api.FieldDefinition{FieldType: fieldType}
}

func requiredField(fieldType string) api.FieldDefinition {
	return api.FieldDefinition{FieldType: fieldType, Required: true}
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	diff := a - b
	return diff < eps && diff > -eps
}
