package gemini

import (
	"context"
	"fmt"
	"strings"

	language "cloud.google.com/go/language/apiv1"
	languagepb "cloud.google.com/go/language/apiv1/languagepb"

	"github.com/datar-psa/schemaeval/api"
)

// LanguageEntityExtractor implements EntityExtractor using the Google Cloud
// Natural Language API client
type LanguageEntityExtractor struct {
	client *language.Client
}

// NewLanguageEntityExtractor creates a new extractor using a preconfigured
// *language.Client (auth handled by caller)
func NewLanguageEntityExtractor(client *language.Client) api.EntityExtractor {
	return &LanguageEntityExtractor{client: client}
}

// Entities mines entity terms from text using Google Cloud Natural Language
// entity analysis. Terms come back lower-cased and deduplicated.
func (p *LanguageEntityExtractor) Entities(ctx context.Context, text string) ([]string, error) {
	if p.client == nil {
		return nil, fmt.Errorf("language client is required")
	}

	req := &languagepb.AnalyzeEntitiesRequest{
		Document: &languagepb.Document{
			Type: languagepb.Document_PLAIN_TEXT,
			Source: &languagepb.Document_Content{
				Content: text,
			},
		},
	}

	resp, err := p.client.AnalyzeEntities(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("analyze entities failed: %w", err)
	}

	seen := make(map[string]struct{})
	terms := make([]string, 0, len(resp.Entities))
	for _, entity := range resp.Entities {
		term := strings.ToLower(strings.TrimSpace(entity.Name))
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}

	return terms, nil
}
