package metric

import (
	"context"
	"strings"

	"github.com/datar-psa/schemaeval/api"
)

// entityVocabulary is the fixed set of domain-entity words scanned for in
// prompts. Kept in scan order for stable metadata.
var entityVocabulary = []string{
	"product", "category", "customer", "order", "user", "student",
	"course", "employee", "department", "event", "booking", "item",
}

// DefaultSemanticScore is returned when no entity word is detected in the
// prompt: the prompt gives the metric nothing to check, so it assumes the
// generation is fine rather than failing it.
const DefaultSemanticScore = 0.8

// Semantic returns a metric that checks whether the domain entities
// mentioned in the prompt surface as generated form identifiers. The score
// is the share of detected entity words contained in some generated formId.
//
// extractor may be nil. When set, it supplements the fixed vocabulary with
// entity terms mined from the prompt; extractor failure falls back to the
// vocabulary alone.
func Semantic(extractor api.EntityExtractor) api.Metric {
	return &semanticMetric{extractor: extractor}
}

type semanticMetric struct {
	extractor api.EntityExtractor
}

func (m *semanticMetric) Score(ctx context.Context, in api.MetricInputs) api.MetricScore {
	result := api.MetricScore{
		Name:     "Semantic",
		Metadata: make(map[string]any),
	}

	entities := m.detectEntities(ctx, in.Prompt, result.Metadata)
	result.Metadata["entities_detected"] = len(entities)

	if len(entities) == 0 {
		result.Score = DefaultSemanticScore
		return result
	}

	formIDs := make([]string, 0, len(in.Generated))
	for _, doc := range in.Generated {
		formIDs = append(formIDs, strings.ToLower(doc.FormID))
	}

	covered := 0
	for _, entity := range entities {
		for _, formID := range formIDs {
			if strings.Contains(formID, entity) {
				covered++
				break
			}
		}
	}

	result.Metadata["entities_covered"] = covered

	score := float64(covered) / float64(len(entities))
	if score > 1.0 {
		score = 1.0
	}
	result.Score = score
	return result
}

// detectEntities scans the case-folded prompt for vocabulary words, then
// asks the extractor, when present, for additional terms.
func (m *semanticMetric) detectEntities(ctx context.Context, prompt string, metadata map[string]any) []string {
	promptLower := strings.ToLower(prompt)

	var entities []string
	seen := make(map[string]struct{})
	for _, word := range entityVocabulary {
		if strings.Contains(promptLower, word) {
			entities = append(entities, word)
			seen[word] = struct{}{}
		}
	}

	if m.extractor == nil {
		return entities
	}

	terms, err := m.extractor.Entities(ctx, prompt)
	if err != nil {
		metadata["entity_extractor_error"] = err.Error()
		return entities
	}

	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		if !strings.Contains(promptLower, term) {
			continue
		}
		entities = append(entities, term)
		seen[term] = struct{}{}
	}

	return entities
}
