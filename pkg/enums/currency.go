package enums

import "fmt"

// Currency is an ISO 4217 code accepted by Razorpay.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencySGD Currency = "SGD"
)

var validCurrencies = []Currency{
	CurrencyINR,
	CurrencyUSD,
	CurrencyEUR,
	CurrencySGD,
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Currency.
func (c Currency) IsValid() bool {
	for _, candidate := range validCurrencies {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCurrency converts raw input into a Currency.
func ParseCurrency(value string) (Currency, error) {
	for _, candidate := range validCurrencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid currency %q", value)
}

// MinorUnitExponent is the number of decimal places between the major
// unit and the amount Razorpay expects on the wire.
func (c Currency) MinorUnitExponent() int32 {
	// Every supported currency uses two decimal places.
	return 2
}
