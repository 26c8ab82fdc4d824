// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	eanDomain "github.com/allisson/codeval/internal/ean/domain"
	customValidation "github.com/allisson/codeval/internal/validation"
)

// EANValidationRequest contains the EAN code to validate.
type EANValidationRequest struct {
	EANCode string `json:"ean_code"`
}

// Validate checks if the validation request is valid.
func (r *EANValidationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.EANCode,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 64),
		),
	)
}

// EANGenerationRequest contains the parameters for deterministic EAN generation.
type EANGenerationRequest struct {
	BaseCode string `json:"base_code"`
	EANType  string `json:"ean_type"` // "EAN-8", "EAN-13", or "EAN-14"
}

// Validate checks if the generation request is valid.
func (r *EANGenerationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.BaseCode,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 64),
		),
		validation.Field(&r.EANType,
			validation.Required,
			customValidation.NotBlank,
			validation.By(validateEANType),
		),
	)
}

// EANRandomGenerationRequest contains the parameters for random EAN generation.
type EANRandomGenerationRequest struct {
	EANType string `json:"ean_type"` // "EAN-8", "EAN-13", or "EAN-14"
}

// Validate checks if the random generation request is valid.
func (r *EANRandomGenerationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.EANType,
			validation.Required,
			customValidation.NotBlank,
			validation.By(validateEANType),
		),
	)
}

// BulkEANGenerationRequest contains the parameters for bulk EAN generation.
type BulkEANGenerationRequest struct {
	EANType string `json:"ean_type"` // "EAN-8", "EAN-13", or "EAN-14"
	Count   int    `json:"count"`
}

// Validate checks if the bulk generation request is valid.
// The maximum count is configurable, so it is passed in by the handler.
func (r *BulkEANGenerationRequest) Validate(maxCount int) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.EANType,
			validation.Required,
			customValidation.NotBlank,
			validation.By(validateEANType),
		),
		validation.Field(&r.Count,
			validation.Required,
			validation.Min(1),
			validation.Max(maxCount),
		),
	)
}

// validateEANType validates that the EAN type label is supported.
func validateEANType(value interface{}) error {
	label, ok := value.(string)
	if !ok {
		return validation.NewError("validation_ean_type", "must be a string")
	}

	_, err := eanDomain.ParseFormat(label)
	return err
}

// ParseEANType converts an EAN type label to an eanDomain.Format.
// Returns an error if the label is not a supported format.
func ParseEANType(label string) (eanDomain.Format, error) {
	return eanDomain.ParseFormat(label)
}
