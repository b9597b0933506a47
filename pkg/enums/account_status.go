package enums

import "fmt"

// AccountStatus is the onboarding state of a linked account.
type AccountStatus string

const (
	AccountStatusCreated            AccountStatus = "created"
	AccountStatusActivated          AccountStatus = "activated"
	AccountStatusNeedsClarification AccountStatus = "needs_clarification"
	AccountStatusUnderReview        AccountStatus = "under_review"
	AccountStatusSuspended          AccountStatus = "suspended"
	AccountStatusRejected           AccountStatus = "rejected"
)

var validAccountStatuses = []AccountStatus{
	AccountStatusCreated,
	AccountStatusActivated,
	AccountStatusNeedsClarification,
	AccountStatusUnderReview,
	AccountStatusSuspended,
	AccountStatusRejected,
}

// String implements fmt.Stringer.
func (a AccountStatus) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AccountStatus.
func (a AccountStatus) IsValid() bool {
	for _, candidate := range validAccountStatuses {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAccountStatus converts raw input into a AccountStatus.
func ParseAccountStatus(value string) (AccountStatus, error) {
	for _, candidate := range validAccountStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid account status %q", value)
}
