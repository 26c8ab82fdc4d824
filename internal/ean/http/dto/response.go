// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"strings"

	eanDomain "github.com/allisson/codeval/internal/ean/domain"
)

// EANValidationResponse represents the result of validating an EAN code.
type EANValidationResponse struct {
	IsValid bool   `json:"is_valid"`
	Format  string `json:"format,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MapValidationToResponse converts a domain validation result to an API response.
// Multiple validation errors are joined into a single message.
func MapValidationToResponse(result eanDomain.FormatValidation) EANValidationResponse {
	if result.IsValid {
		return EANValidationResponse{
			IsValid: true,
			Format:  result.Format.String(),
		}
	}
	return EANValidationResponse{
		IsValid: false,
		Error:   strings.Join(result.Errors, "; "),
	}
}

// EANGenerationResponse contains a generated EAN code.
type EANGenerationResponse struct {
	GeneratedEAN string `json:"generated_ean"`
}

// BulkEANGenerationResponse contains the result of a bulk generation.
type BulkEANGenerationResponse struct {
	EANCodes []string `json:"ean_codes"`
	Count    int      `json:"count"`
}
