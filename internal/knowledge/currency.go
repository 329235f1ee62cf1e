package knowledge

import "math"

// Currency is a local currency code and its USD exchange rate.
// Rates are static snapshot values, not live data.
type Currency struct {
	Code string
	Rate float64
}

type currencyEntry struct {
	key      string
	currency Currency
}

var currencyTable = []currencyEntry{
	{key: "paris", currency: Currency{Code: "EUR", Rate: 0.92}},
	{key: "france", currency: Currency{Code: "EUR", Rate: 0.92}},
	{key: "tokyo", currency: Currency{Code: "JPY", Rate: 149.5}},
	{key: "japan", currency: Currency{Code: "JPY", Rate: 149.5}},
	{key: "london", currency: Currency{Code: "GBP", Rate: 0.79}},
	{key: "united kingdom", currency: Currency{Code: "GBP", Rate: 0.79}},
	{key: "uk", currency: Currency{Code: "GBP", Rate: 0.79}},
	{key: "new york", currency: Currency{Code: "USD", Rate: 1.0}},
	{key: "usa", currency: Currency{Code: "USD", Rate: 1.0}},
	{key: "america", currency: Currency{Code: "USD", Rate: 1.0}},
	{key: "delhi", currency: Currency{Code: "INR", Rate: 83.2}},
	{key: "india", currency: Currency{Code: "INR", Rate: 83.2}},
	{key: "dubai", currency: Currency{Code: "AED", Rate: 3.67}},
	{key: "uae", currency: Currency{Code: "AED", Rate: 3.67}},
	{key: "sydney", currency: Currency{Code: "AUD", Rate: 1.52}},
	{key: "australia", currency: Currency{Code: "AUD", Rate: 1.52}},
	{key: "singapore", currency: Currency{Code: "SGD", Rate: 1.34}},
	{key: "bangkok", currency: Currency{Code: "THB", Rate: 35.8}},
	{key: "thailand", currency: Currency{Code: "THB", Rate: 35.8}},
}

var currencyKeys = func() []string {
	keys := make([]string, 0, len(currencyTable))
	for _, e := range currencyTable {
		keys = append(keys, e.key)
	}
	return keys
}()

// CurrencyFor resolves the destination's local currency. A miss returns
// USD at rate 1.0 with matched=false so conversion stays total.
func CurrencyFor(destination string) (Currency, bool) {
	key, ok := firstMatch(destination, currencyKeys)
	if !ok {
		return Currency{Code: "USD", Rate: 1.0}, false
	}
	for _, e := range currencyTable {
		if e.key == key {
			return e.currency, true
		}
	}
	return Currency{Code: "USD", Rate: 1.0}, false
}

// ConvertCurrency converts a USD amount into the destination's local
// currency, rounding to the nearest whole unit.
func ConvertCurrency(amountUSD float64, destination string) (int, string) {
	c, _ := CurrencyFor(destination)
	return int(math.Round(amountUSD * c.Rate)), c.Code
}
