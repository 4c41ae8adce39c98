// Package config reads the plain-text `key = value` configuration file:
// case-insensitive keys, `#` line comments, one recognized key per
// canonical name. Struct-level validation runs through
// go-playground/validator/v10 rather than hand-written field-by-field
// checks.
package config

import "errors"

// Sentinel errors for configuration parsing and validation: unknown
// key, malformed or duplicate line, missing required key, contradictory
// sampler flags. An unknown statistic name surfaces as
// stats.ErrUnknownStatistic from BuildSelection.
var (
	ErrUnknownKey                   = errors.New("config: unknown key")
	ErrMalformedLine                = errors.New("config: malformed key=value line")
	ErrDuplicateKey                 = errors.New("config: key set more than once")
	ErrContradictorySamplerFlags    = errors.New("config: useIFDsampler and useTNTsampler are mutually exclusive")
	ErrConditionalForbidReciprocity = errors.New("config: useConditionalEstimation and forbidReciprocity cannot both be set")
	ErrMissingArclistFile           = errors.New("config: arclistFile is required")
)
