package enums

import "fmt"

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusCreated       SubscriptionStatus = "created"
	SubscriptionStatusAuthenticated SubscriptionStatus = "authenticated"
	SubscriptionStatusActive        SubscriptionStatus = "active"
	SubscriptionStatusPending       SubscriptionStatus = "pending"
	SubscriptionStatusHalted        SubscriptionStatus = "halted"
	SubscriptionStatusPaused        SubscriptionStatus = "paused"
	SubscriptionStatusCancelled     SubscriptionStatus = "cancelled"
	SubscriptionStatusCompleted     SubscriptionStatus = "completed"
	SubscriptionStatusExpired       SubscriptionStatus = "expired"
)

var validSubscriptionStatuses = []SubscriptionStatus{
	SubscriptionStatusCreated,
	SubscriptionStatusAuthenticated,
	SubscriptionStatusActive,
	SubscriptionStatusPending,
	SubscriptionStatusHalted,
	SubscriptionStatusPaused,
	SubscriptionStatusCancelled,
	SubscriptionStatusCompleted,
	SubscriptionStatusExpired,
}

// String implements fmt.Stringer.
func (s SubscriptionStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SubscriptionStatus.
func (s SubscriptionStatus) IsValid() bool {
	for _, candidate := range validSubscriptionStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSubscriptionStatus converts raw input into a SubscriptionStatus.
func ParseSubscriptionStatus(value string) (SubscriptionStatus, error) {
	for _, candidate := range validSubscriptionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid subscription status %q", value)
}
