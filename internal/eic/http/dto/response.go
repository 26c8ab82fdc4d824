// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	eicDomain "github.com/allisson/codeval/internal/eic/domain"
)

// EICComponentsResponse represents the structural parts of an EIC code.
type EICComponentsResponse struct {
	OfficeID     string `json:"office_id"`
	EntityType   string `json:"entity_type"`
	IndividualID string `json:"individual_id"`
	CheckDigit   string `json:"check_digit"`
}

// EICValidationResponse represents the result of validating an EIC code.
type EICValidationResponse struct {
	IsValid    bool                   `json:"is_valid"`
	EICCode    string                 `json:"eic_code"`
	Errors     []string               `json:"errors"`
	Components *EICComponentsResponse `json:"components,omitempty"`
}

// MapValidationToResponse converts a domain validation result to an API response.
func MapValidationToResponse(result eicDomain.Validation) EICValidationResponse {
	return EICValidationResponse{
		IsValid:    result.IsValid,
		EICCode:    result.Code,
		Errors:     result.Errors,
		Components: mapComponents(result.Components),
	}
}

// EICGenerationResponse contains a generated EIC code with its breakdown.
type EICGenerationResponse struct {
	EICCode    string                 `json:"eic_code"`
	IsValid    bool                   `json:"is_valid"`
	Components *EICComponentsResponse `json:"components,omitempty"`
}

// MapGenerationToResponse builds the response for a freshly generated code.
// Generated codes are valid by construction, but the validation is re-run so
// the response reflects an actual check rather than an assumption.
func MapGenerationToResponse(code string) EICGenerationResponse {
	result := eicDomain.IsValid(code)
	return EICGenerationResponse{
		EICCode:    result.Code,
		IsValid:    result.IsValid,
		Components: mapComponents(result.Components),
	}
}

// BulkEICGenerationResponse contains the result of a bulk generation.
type BulkEICGenerationResponse struct {
	EICCodes []string `json:"eic_codes"`
	Count    int      `json:"count"`
}

func mapComponents(components *eicDomain.Components) *EICComponentsResponse {
	if components == nil {
		return nil
	}
	return &EICComponentsResponse{
		OfficeID:     components.OfficeID,
		EntityType:   components.EntityType,
		IndividualID: components.IndividualID,
		CheckDigit:   components.CheckDigit,
	}
}
