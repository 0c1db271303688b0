// Package validation validates bundle manifests against their struct tags.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/scripthost-dev/scripthost-sdk/domain/entities"
)

// ManifestValidator checks a BundleManifest against its validation tags.
type ManifestValidator struct {
	validate *validator.Validate
}

// NewManifestValidator creates a new ManifestValidator.
// The underlying validator is reused across calls; creating one per
// validation is expensive.
func NewManifestValidator() *ManifestValidator {
	return &ManifestValidator{validate: validator.New()}
}

// Validate runs struct validation on the manifest and reports every
// failing field. A nil manifest is a validation error, not a panic.
func (v *ManifestValidator) Validate(manifest *entities.BundleManifest) (*entities.ValidationResult, error) {
	if manifest == nil {
		return &entities.ValidationResult{
			Valid:  false,
			Errors: []entities.ValidationIssue{{Field: "manifest", Message: "manifest is nil"}},
		}, nil
	}

	err := v.validate.Struct(manifest)
	if err == nil {
		return &entities.ValidationResult{Valid: true}, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError or similar: the input could not be
		// validated at all.
		return nil, fmt.Errorf("manifest validation error: %w", err)
	}

	result := &entities.ValidationResult{Valid: false}
	for _, fe := range fieldErrs {
		result.Errors = append(result.Errors, entities.ValidationIssue{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed %q validation", fe.Tag()),
		})
	}
	return result, nil
}
