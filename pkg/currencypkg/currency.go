// Package currencypkg provides common currency related functionality for apps.
package currencypkg

// Constants for all supported currencies.
const (
	USD = "USD"
	EUR = "EUR"
	RMB = "RMB"
)

// SupportedCurrencies holds all the supported currencies.
var SupportedCurrencies = []string{
	USD,
	EUR,
	RMB,
}

// minorUnits maps a currency to the number of decimal places of its minor unit.
var minorUnits = map[string]int32{
	USD: 2,
	EUR: 2,
	RMB: 2,
}

// IsSupportedCurrency returns true if the currncy is supported.
func IsSupportedCurrency(currency string) bool {
	_, ok := minorUnits[currency]
	return ok
}

// Exponent returns the number of decimal places used by the currency's minor unit.
// Unsupported currencies report ok=false.
func Exponent(currency string) (exp int32, ok bool) {
	exp, ok = minorUnits[currency]
	return exp, ok
}
