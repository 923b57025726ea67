// Package gemini provides Gemini-backed implementations of the schemaeval
// backend interfaces.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/datar-psa/schemaeval/api"
)

// schemaSystemPrompt describes the form-schema JSON contract the model must
// follow. The response is either a single schema object or an array of them.
const schemaSystemPrompt = `You are an expert database architect that designs schemas for a no-code platform. Generate ALL necessary form schemas for the user's project in one response.

Always include "appsId" in CamelCase (e.g. "SchoolManagement"). Never use a "name" field. If multiple schemas are needed, return a JSON array; if one schema is needed, return a single JSON object. All schemas must share the same appsId.

Schema shape:
{
  "appsId": "CamelCaseAppName",
  "formId": "FormName",
  "description": "Brief description of what this form represents",
  "fields": {
    "fieldName": {
      "fieldId": "fieldName",
      "fieldType": "one of: TEXT, NUMERIC, BOOLEAN, MONEY, DATE, REF_PICK_LIST, EMBED",
      "required": true
    }
  }
}

Rules:
- Valid fieldType values: TEXT, NUMERIC, BOOLEAN, MONEY, DATE, REF_PICK_LIST, EMBED
- For REF_PICK_LIST: include "refPickListId" as "FormName.fieldId"
- For MONEY: include "fractionDigits" (typically 2) and "currencyCode" (e.g. "USD")
- For EMBED: include "embeddedFormSchema" with nested fields
- Use "required", not "isRequired"
- Each field key in fields must match its fieldId
- Return ONLY the JSON (object or array), with NO explanation or extra text.`

// Generator wraps a genai.Client to implement the SchemaGenerator interface
type Generator struct {
	client    *genai.Client
	modelName string
}

// NewGenerator creates a new Gemini schema generator
// client: genai.Client from google.golang.org/genai
// modelName: the model to use (e.g., "gemini-2.5-flash")
func NewGenerator(client *genai.Client, modelName string) *Generator {
	return &Generator{
		client:    client,
		modelName: modelName,
	}
}

// GenerateSchemas implements SchemaGenerator.GenerateSchemas. The returned
// elapsed time covers the full model call and is reported even on failure.
func (g *Generator) GenerateSchemas(ctx context.Context, prompt string) (json.RawMessage, float64, error) {
	start := time.Now()

	content := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	resp, err := g.client.Models.GenerateContent(
		ctx,
		g.modelName,
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{
					{Text: schemaSystemPrompt},
				},
			},
			ResponseMIMEType: "application/json",
		},
	)
	elapsedMs := float64(time.Since(start).Microseconds()) / 1000.0
	if err != nil {
		return nil, elapsedMs, fmt.Errorf("%w: %v", api.ErrGenerationFailed, err)
	}

	if len(resp.Candidates) == 0 {
		return nil, elapsedMs, fmt.Errorf("%w: no candidates returned", api.ErrGenerationFailed)
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, elapsedMs, fmt.Errorf("%w: no parts in response", api.ErrGenerationFailed)
	}

	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	if !json.Valid([]byte(text)) {
		return nil, elapsedMs, fmt.Errorf("%w: response is not valid JSON", api.ErrGenerationFailed)
	}

	return json.RawMessage(text), elapsedMs, nil
}

// Verify that Generator implements SchemaGenerator
var _ api.SchemaGenerator = (*Generator)(nil)
