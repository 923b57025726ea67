// Package alias canonicalizes field names and field types using
// configurable alias tables.
package alias

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/datar-psa/schemaeval/api"
)

// Normalizer maps acceptable alias spellings of field names and field types
// onto their canonical forms. Field names fold to lower case, field types to
// upper case. A Normalizer is read-only after construction and safe for
// concurrent use.
type Normalizer struct {
	fieldReverse map[string]string
	typeReverse  map[string]string
}

// NewNormalizer loads the two alias tables and builds their reverse lookup
// maps. Each file must contain a JSON object mapping a canonical string to an
// array of alias strings.
//
// Reverse maps are built over canonical keys in sorted order, so when two
// canonical entries claim the same alias the lexicographically later entry
// wins, deterministically on every platform.
func NewNormalizer(fieldAliasPath, typeAliasPath string) (*Normalizer, error) {
	fieldAliases, err := loadTable(fieldAliasPath)
	if err != nil {
		return nil, fmt.Errorf("%w: field name aliases: %v", api.ErrAliasConfig, err)
	}

	typeAliases, err := loadTable(typeAliasPath)
	if err != nil {
		return nil, fmt.Errorf("%w: type aliases: %v", api.ErrAliasConfig, err)
	}

	return &Normalizer{
		fieldReverse: reverseMap(fieldAliases, strings.ToLower),
		typeReverse:  reverseMap(typeAliases, strings.ToUpper),
	}, nil
}

// NormalizeFieldName returns the canonical field name for name, matching
// aliases case-insensitively. Unknown names pass through lower-cased.
func (n *Normalizer) NormalizeFieldName(name string) string {
	folded := strings.ToLower(name)
	if canonical, ok := n.fieldReverse[folded]; ok {
		return canonical
	}
	return folded
}

// NormalizeFieldType returns the canonical field type for typ, matching
// aliases case-insensitively. Unknown types pass through upper-cased.
func (n *Normalizer) NormalizeFieldType(typ string) string {
	folded := strings.ToUpper(typ)
	if canonical, ok := n.typeReverse[folded]; ok {
		return canonical
	}
	return folded
}

func loadTable(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var table map[string][]string
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return table, nil
}

// reverseMap inverts an alias table: every alias and every canonical name,
// case-folded, becomes a key pointing at the canonical name.
func reverseMap(table map[string][]string, fold func(string) string) map[string]string {
	canonicals := make([]string, 0, len(table))
	for canonical := range table {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)

	reverse := make(map[string]string)
	for _, canonical := range canonicals {
		reverse[fold(canonical)] = canonical
		for _, a := range table[canonical] {
			reverse[fold(a)] = canonical
		}
	}
	return reverse
}
