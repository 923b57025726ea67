// Package schemadoc decodes untrusted schema payloads into well-typed
// documents and extracts their canonical field maps.
//
// All malformed-input coercion lives here so the metric calculators can
// assume well-shaped input: a payload is decoded exactly once at the
// boundary and every calculator sees the same documents.
package schemadoc

import (
	"bytes"
	"encoding/json"

	"github.com/datar-psa/schemaeval/alias"
	"github.com/datar-psa/schemaeval/api"
)

// Diagnostics recorded when a payload is coerced. The wording is part of the
// reporting contract and must stay stable.
const (
	DiagGeneratedNotList   = "Generated schemas is not a valid list or dict"
	DiagGroundTruthNotList = "Ground truth schemas is not a valid list"
)

// DecodeGenerated decodes a generated-schema payload. A JSON array decodes
// as-is, a single JSON object is wrapped into a one-element slice, and
// anything else coerces to an empty slice with a diagnostic.
func DecodeGenerated(raw []byte) ([]api.SchemaDocument, []string) {
	switch firstToken(raw) {
	case '[':
		var docs []api.SchemaDocument
		if err := json.Unmarshal(raw, &docs); err != nil {
			return nil, []string{DiagGeneratedNotList}
		}
		return docs, nil
	case '{':
		var doc api.SchemaDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, []string{DiagGeneratedNotList}
		}
		return []api.SchemaDocument{doc}, nil
	default:
		return nil, []string{DiagGeneratedNotList}
	}
}

// DecodeGroundTruth decodes a ground-truth payload. Only a JSON array is
// accepted; anything else, a bare object included, coerces to an empty slice
// with a diagnostic.
func DecodeGroundTruth(raw []byte) ([]api.SchemaDocument, []string) {
	if firstToken(raw) != '[' {
		return nil, []string{DiagGroundTruthNotList}
	}
	var docs []api.SchemaDocument
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, []string{DiagGroundTruthNotList}
	}
	return docs, nil
}

// firstToken returns the first non-whitespace byte of raw, or 0 when raw is
// blank.
func firstToken(raw []byte) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// ExtractFields maps each field of doc to its canonical name and type. The
// field key, not its fieldId attribute, is the name source. A document
// without fields yields an empty map. A missing fieldType normalizes the
// empty string.
func ExtractFields(n *alias.Normalizer, doc api.SchemaDocument) map[string]string {
	fields := make(map[string]string, len(doc.Fields))
	for name, def := range doc.Fields {
		fields[n.NormalizeFieldName(name)] = n.NormalizeFieldType(def.FieldType)
	}
	return fields
}

// PoolFields unions the canonical field maps of every document in docs.
// Field identity is pooled across forms: a field named identically in two
// forms collapses to one entry, last write wins.
func PoolFields(n *alias.Normalizer, docs []api.SchemaDocument) map[string]string {
	pooled := make(map[string]string)
	for _, doc := range docs {
		for name, typ := range ExtractFields(n, doc) {
			pooled[name] = typ
		}
	}
	return pooled
}

// RequiredFields returns the set of field keys marked required in doc.
// Keys are not normalized: required-set comparison operates on the raw
// field keys, matching the reference comparison behavior.
func RequiredFields(doc api.SchemaDocument) map[string]struct{} {
	required := make(map[string]struct{})
	for name, def := range doc.Fields {
		if def.Required {
			required[name] = struct{}{}
		}
	}
	return required
}
