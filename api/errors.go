package api

import "errors"

var (
	// ErrAliasConfig is returned when an alias table file is missing or malformed
	ErrAliasConfig = errors.New("alias table configuration is invalid")
	// ErrGenerationFailed is returned when the schema generation call fails
	ErrGenerationFailed = errors.New("schema generation failed")
	// ErrScoringFault is returned when an unexpected fault occurs during scoring
	ErrScoringFault = errors.New("scoring fault")
)
