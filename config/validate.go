package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New()

// Validate first rejects a missing arclistFile with ErrMissingArclistFile,
// then runs go-playground/validator/v10's struct-tag checks (the
// numeric-range preconditions every field declares) and then two
// cross-field rules: IFD/TNT are mutually exclusive, and conditional
// estimation combined with forbidReciprocity is rejected outright
// rather than given new meaning (see DESIGN.md, Open Question 4).
func Validate(cfg *Config) error {
	if cfg.ArclistFile == "" {
		return ErrMissingArclistFile
	}
	if err := structValidator.Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if cfg.UseIFDSampler && cfg.UseTNTSampler {
		return ErrContradictorySamplerFlags
	}
	if cfg.ConditionalEstimation() && cfg.ForbidReciprocity {
		return ErrConditionalForbidReciprocity
	}
	return nil
}
