package enums

import "fmt"

// OrderStatus is the lifecycle state of a Razorpay order.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusAttempted OrderStatus = "attempted"
	OrderStatusPaid      OrderStatus = "paid"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusCreated,
	OrderStatusAttempted,
	OrderStatusPaid,
}

// String implements fmt.Stringer.
func (o OrderStatus) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OrderStatus.
func (o OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseOrderStatus converts raw input into a OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
