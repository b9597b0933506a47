package enums

import "fmt"

// RefundSpeed selects how quickly Razorpay processes a refund.
type RefundSpeed string

const (
	RefundSpeedNormal  RefundSpeed = "normal"
	RefundSpeedOptimum RefundSpeed = "optimum"
)

var validRefundSpeeds = []RefundSpeed{
	RefundSpeedNormal,
	RefundSpeedOptimum,
}

// String implements fmt.Stringer.
func (r RefundSpeed) String() string {
	return string(r)
}

// IsValid reports whether the value is a known RefundSpeed.
func (r RefundSpeed) IsValid() bool {
	for _, candidate := range validRefundSpeeds {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRefundSpeed converts raw input into a RefundSpeed.
func ParseRefundSpeed(value string) (RefundSpeed, error) {
	for _, candidate := range validRefundSpeeds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid refund speed %q", value)
}
