package domain

import "strings"

// NormalizeLocation trims leading/trailing whitespace and collapses internal
// whitespace runs. It is applied to free-text destination and origin fields
// before they reach the knowledge tables.
func NormalizeLocation(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
