package enums

import "fmt"

// DisputeStatus is the state of a payment dispute.
type DisputeStatus string

const (
	DisputeStatusOpen        DisputeStatus = "open"
	DisputeStatusUnderReview DisputeStatus = "under_review"
	DisputeStatusWon         DisputeStatus = "won"
	DisputeStatusLost        DisputeStatus = "lost"
	DisputeStatusClosed      DisputeStatus = "closed"
)

var validDisputeStatuses = []DisputeStatus{
	DisputeStatusOpen,
	DisputeStatusUnderReview,
	DisputeStatusWon,
	DisputeStatusLost,
	DisputeStatusClosed,
}

// String implements fmt.Stringer.
func (d DisputeStatus) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DisputeStatus.
func (d DisputeStatus) IsValid() bool {
	for _, candidate := range validDisputeStatuses {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDisputeStatus converts raw input into a DisputeStatus.
func ParseDisputeStatus(value string) (DisputeStatus, error) {
	for _, candidate := range validDisputeStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid dispute status %q", value)
}
