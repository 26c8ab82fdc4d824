package domain

import (
	"strconv"
	"strings"
)

// officeCodes is the ENTSO-E office (issuing office / country) registry:
// the numeric range "10".."59" plus the letter-prefixed ranges X1-X9, Y1-Y9,
// and Z1-Z9. Immutable after initialization.
var officeCodes = buildOfficeCodes()

// entityTypes is the ENTSO-E entity type registry: the documented letter
// types plus the numeric types '0'-'9'. Immutable after initialization.
var entityTypes = buildEntityTypes()

func buildOfficeCodes() map[string]struct{} {
	codes := make(map[string]struct{})
	for i := 10; i <= 59; i++ {
		codes[strconv.Itoa(i)] = struct{}{}
	}
	for _, prefix := range []string{"X", "Y", "Z"} {
		for digit := '1'; digit <= '9'; digit++ {
			codes[prefix+string(digit)] = struct{}{}
		}
	}
	return codes
}

func buildEntityTypes() map[string]struct{} {
	// T=TSO control area, Y=TSO, A=generation unit, V=generation module,
	// W=generation resource, Z=metering point, X=electrical area,
	// B=border point, C=capacity calculator, D=resource provider, E=party,
	// F=system operator, G=resource aggregator, H=tie line, L=location,
	// M=market participant, P=production unit, S=substation.
	const letters = "TYAVWZXBCDEFGHLMPS"
	const digits = "0123456789"

	types := make(map[string]struct{}, len(letters)+len(digits))
	for _, c := range letters + digits {
		types[string(c)] = struct{}{}
	}
	return types
}

// IsValidOfficeCode reports whether code is a registered 2-character office
// code. Matching is case-insensitive.
func IsValidOfficeCode(code string) bool {
	if len(code) != OfficeIDLength {
		return false
	}
	_, ok := officeCodes[strings.ToUpper(code)]
	return ok
}

// IsValidEntityType reports whether entityType is a registered 1-character
// entity type. Matching is case-insensitive.
func IsValidEntityType(entityType string) bool {
	if len(entityType) != EntityTypeLength {
		return false
	}
	_, ok := entityTypes[strings.ToUpper(entityType)]
	return ok
}
