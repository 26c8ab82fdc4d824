// Package domain implements the EIC (Energy Identification Code) model per
// ENTSO-E: 16-character codes over [0-9A-Z] with an ISO 7064 Mod 37,36 check
// character.
//
// Layout: XXYAAAAAAAAAAAAK — office identifier (2), entity type (1),
// individual identifier (12), check character (1).
package domain

// EIC structure lengths.
const (
	Length             = 16
	BaseLength         = 15
	OfficeIDLength     = 2
	EntityTypeLength   = 1
	IndividualIDLength = 12
)

// Components holds the parsed parts of a complete EIC code.
type Components struct {
	OfficeID     string
	EntityType   string
	IndividualID string
	CheckDigit   string
}

// Base returns the 15-character base (everything before the check character).
func (c Components) Base() string {
	return c.OfficeID + c.EntityType + c.IndividualID
}

// FullCode returns the complete 16-character EIC code.
func (c Components) FullCode() string {
	return c.Base() + c.CheckDigit
}

// ParseComponents splits a normalized 16-character EIC code by fixed offsets.
// Returns false if the code does not have the expected length.
func ParseComponents(code string) (Components, bool) {
	if len(code) != Length {
		return Components{}, false
	}

	return Components{
		OfficeID:     code[0:2],
		EntityType:   code[2:3],
		IndividualID: code[3:15],
		CheckDigit:   code[15:16],
	}, true
}

// isUppercaseAlphanumeric reports whether s is non-empty and contains only
// 0-9 and A-Z.
func isUppercaseAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
