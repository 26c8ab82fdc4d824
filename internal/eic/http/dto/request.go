// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/codeval/internal/validation"
)

// EICValidationRequest contains the EIC code to validate.
type EICValidationRequest struct {
	EICCode string `json:"eic_code"`
}

// Validate checks if the validation request is valid.
func (r *EICValidationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.EICCode,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 64),
		),
	)
}

// EICGenerationRequest contains the parameters for EIC generation.
type EICGenerationRequest struct {
	CountryCode string `json:"country_code"` // two character ENTSO-E issuing office code
	EntityType  string `json:"entity_type"`  // one character ENTSO-E object type
}

// Validate checks if the generation request is valid.
func (r *EICGenerationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CountryCode,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(2, 2),
		),
		validation.Field(&r.EntityType,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 1),
		),
	)
}

// BulkEICGenerationRequest contains the parameters for bulk EIC generation.
type BulkEICGenerationRequest struct {
	CountryCode string `json:"country_code"`
	EntityType  string `json:"entity_type"`
	Count       int    `json:"count"`
}

// Validate checks if the bulk generation request is valid.
// The maximum count is configurable, so it is passed in by the handler.
func (r *BulkEICGenerationRequest) Validate(maxCount int) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CountryCode,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(2, 2),
		),
		validation.Field(&r.EntityType,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 1),
		),
		validation.Field(&r.Count,
			validation.Required,
			validation.Min(1),
			validation.Max(maxCount),
		),
	)
}
