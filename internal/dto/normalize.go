package dto

import "strings"

// normalizeIdentifier trims, collapses whitespace runs to underscores, and
// lower-cases an operator-supplied schema identifier
func normalizeIdentifier(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "_"))
}

// RegistrationLeafType returns the normalized registration leaf type
func (g GlobalValues) RegistrationLeafType() string {
	return normalizeIdentifier(g.LeafType)
}

// EventLeafType returns the normalized event-creation leaf type
func (g GlobalValues) EventLeafType() string {
	return normalizeIdentifier(g.LeafTypeEventCreation)
}
