// Package normalize provides shared input normalization for identifier codes.
//
// Codes arrive with display separators (hyphens, spaces) and mixed case;
// engines operate on the canonical form only.
package normalize

import "strings"

// Code strips surrounding whitespace and interior hyphens and spaces.
// EAN codes are digits only, so this is the full normalization for them.
func Code(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	return cleaned
}

// UppercaseCode strips separators and folds the result to uppercase.
// Used for EIC codes, whose alphabet is [0-9A-Z].
func UppercaseCode(raw string) string {
	return strings.ToUpper(Code(raw))
}
