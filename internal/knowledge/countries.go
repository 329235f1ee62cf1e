package knowledge

type countryEntry struct {
	country string
	aliases []string
}

// countryTable maps a country to the city names and aliases that imply it.
// Alias matching uses the shared substring primitive, so "New York City"
// and "JFK, New York" both resolve to usa.
var countryTable = []countryEntry{
	{country: "usa", aliases: []string{"new york", "los angeles", "chicago", "miami", "san francisco", "usa", "america"}},
	{country: "japan", aliases: []string{"tokyo", "osaka", "kyoto", "japan"}},
	{country: "france", aliases: []string{"paris", "lyon", "marseille", "france"}},
	{country: "uk", aliases: []string{"london", "manchester", "edinburgh", "uk", "united kingdom"}},
	{country: "india", aliases: []string{"delhi", "mumbai", "bangalore", "chennai", "kolkata", "india"}},
	{country: "uae", aliases: []string{"dubai", "abu dhabi", "uae"}},
	{country: "thailand", aliases: []string{"bangkok", "phuket", "thailand"}},
	{country: "australia", aliases: []string{"sydney", "melbourne", "australia"}},
}

// CountryOf resolves a free-text location to a country key, or "" when the
// table has no match. Unresolved locations are deliberately not an error:
// the transport evaluator treats them as domestic.
func CountryOf(location string) string {
	for _, e := range countryTable {
		if _, ok := firstMatch(location, e.aliases); ok {
			return e.country
		}
	}
	return ""
}

// IsInternationalRoute reports whether origin and destination resolve to two
// different known countries. Either side unresolved means "not international".
func IsInternationalRoute(origin, destination string) bool {
	from := CountryOf(origin)
	to := CountryOf(destination)
	return from != "" && to != "" && from != to
}
