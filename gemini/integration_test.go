package gemini_test

import (
	"context"
	"testing"

	"github.com/datar-psa/schemaeval/internal/testutils"
	"github.com/datar-psa/schemaeval/schemadoc"
)

// TestGenerateSchemas_Integration exercises the generator against the real
// Gemini API. It requires valid Google Cloud credentials and uses hypert to
// cache requests.
func TestGenerateSchemas_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	generator := testutils.NewSchemaGenerator(t, testutils.DefaultGeminiTestConfig("generate"), "gemini-2.5-flash")

	raw, elapsedMs, err := generator.GenerateSchemas(ctx, "A simple app to track products with a name and a price")
	if err != nil {
		t.Fatalf("GenerateSchemas() error = %v", err)
	}
	if elapsedMs < 0 {
		t.Errorf("GenerateSchemas() elapsedMs = %v, want >= 0", elapsedMs)
	}

	docs, diags := schemadoc.DecodeGenerated(raw)
	if len(diags) != 0 {
		t.Fatalf("DecodeGenerated() diagnostics = %v", diags)
	}
	if len(docs) == 0 {
		t.Fatal("DecodeGenerated() returned no documents")
	}
	if docs[0].FormID == "" {
		t.Error("generated document has no formId")
	}
	if len(docs[0].Fields) == 0 {
		t.Error("generated document has no fields")
	}
}
