package enums

import "fmt"

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusIssued        InvoiceStatus = "issued"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
	InvoiceStatusExpired       InvoiceStatus = "expired"
	InvoiceStatusDeleted       InvoiceStatus = "deleted"
)

var validInvoiceStatuses = []InvoiceStatus{
	InvoiceStatusDraft,
	InvoiceStatusIssued,
	InvoiceStatusPartiallyPaid,
	InvoiceStatusPaid,
	InvoiceStatusCancelled,
	InvoiceStatusExpired,
	InvoiceStatusDeleted,
}

// String implements fmt.Stringer.
func (i InvoiceStatus) String() string {
	return string(i)
}

// IsValid reports whether the value is a known InvoiceStatus.
func (i InvoiceStatus) IsValid() bool {
	for _, candidate := range validInvoiceStatuses {
		if candidate == i {
			return true
		}
	}
	return false
}

// ParseInvoiceStatus converts raw input into a InvoiceStatus.
func ParseInvoiceStatus(value string) (InvoiceStatus, error) {
	for _, candidate := range validInvoiceStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid invoice status %q", value)
}
