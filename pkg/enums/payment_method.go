package enums

import "fmt"

// PaymentMethod is the instrument family used for a payment.
type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodNetbanking PaymentMethod = "netbanking"
	PaymentMethodWallet     PaymentMethod = "wallet"
	PaymentMethodEMI        PaymentMethod = "emi"
	PaymentMethodUPI        PaymentMethod = "upi"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodCard,
	PaymentMethodNetbanking,
	PaymentMethodWallet,
	PaymentMethodEMI,
	PaymentMethodUPI,
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentMethod.
func (p PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range validPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}
