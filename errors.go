package schemaeval

import "github.com/datar-psa/schemaeval/api"

var (
	// ErrAliasConfig is returned when an alias table file is missing or malformed
	ErrAliasConfig = api.ErrAliasConfig
	// ErrGenerationFailed is returned when the schema generation call fails
	ErrGenerationFailed = api.ErrGenerationFailed
	// ErrScoringFault is returned when an unexpected fault occurs during scoring
	ErrScoringFault = api.ErrScoringFault
)
