// Package knowledge holds the static lookup tables the planner consults:
// destination profiles, country membership, and currency rates. All tables
// are compiled-in constants loaded once at process start; callers must treat
// returned slices as read-only.
package knowledge

import "strings"

// firstMatch returns the first key (in slice order) that is contained,
// case-insensitively, in input. Containment runs key-in-input, not the
// other way around, so "trip to tokyo station" matches the key "tokyo".
//
// Every fuzzy lookup in this package goes through this one primitive.
// Iteration order is the declared table order: when an input contains more
// than one known key, whichever is declared first wins, and callers must
// not rely on any priority beyond that.
func firstMatch(input string, keys []string) (string, bool) {
	in := strings.ToLower(input)
	for _, k := range keys {
		if strings.Contains(in, k) {
			return k, true
		}
	}
	return "", false
}
