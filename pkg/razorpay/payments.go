package razorpay

import (
	"context"

	"github.com/angelmondragon/razorpay-go-client/pkg/enums"
)

// PaymentRefundStatus reports how much of a payment has been refunded.
type PaymentRefundStatus string

const (
	PaymentRefundStatusPartial PaymentRefundStatus = "partial"
	PaymentRefundStatusFull    PaymentRefundStatus = "full"
)

// Payment is the Razorpay payment entity.
type Payment struct {
	ID               PaymentID           `json:"id" decode:"required"`
	Entity           Entity              `json:"entity"`
	Amount           Amount              `json:"amount"`
	Currency         Currency            `json:"currency"`
	Status           enums.PaymentStatus `json:"status"`
	Method           enums.PaymentMethod `json:"method"`
	OrderID          OrderID             `json:"order_id,omitzero"`
	InvoiceID        InvoiceID           `json:"invoice_id,omitzero"`
	Description      string              `json:"description,omitempty"`
	International    bool                `json:"international"`
	RefundStatus     PaymentRefundStatus `json:"refund_status,omitempty"`
	AmountRefunded   Amount              `json:"amount_refunded"`
	Captured         bool                `json:"captured"`
	Email            string              `json:"email"`
	Contact          string              `json:"contact,omitempty"`
	CustomerID       CustomerID          `json:"customer_id,omitzero"`
	Fee              Amount              `json:"fee"`
	Tax              Amount              `json:"tax"`
	Notes            Notes               `json:"notes"`
	CreatedAt        UnixTime            `json:"created_at"`
	CardID           CardID              `json:"card_id,omitzero"`
	Card             *Card               `json:"card,omitempty"`
	Bank             string              `json:"bank,omitempty"`
	Wallet           string              `json:"wallet,omitempty"`
	VPA              string              `json:"vpa,omitempty"`
	AcquirerData     RawObject           `json:"acquirer_data,omitempty"`
	UPI              *PaymentUPI         `json:"upi,omitempty"`
	EMI              *PaymentEMI         `json:"emi,omitempty"`
	Offers           *Collection[Offer]  `json:"offers,omitempty"`
	ErrorCode        string              `json:"error_code,omitempty"`
	ErrorDescription string              `json:"error_description,omitempty"`
	ErrorSource      string              `json:"error_source,omitempty"`
	ErrorStep        string              `json:"error_step,omitempty"`
	ErrorReason      string              `json:"error_reason,omitempty"`
}

// AcquirerData holds the bank references Razorpay reports for a payment.
type AcquirerData struct {
	RRN                           string `json:"rrn,omitempty"`
	AuthenticationReferenceNumber string `json:"authentication_reference_number,omitempty"`
	BankTransactionID             string `json:"bank_transaction_id,omitempty"`
	AuthCode                      string `json:"auth_code,omitempty"`
	UPITransactionID              string `json:"upi_transaction_id,omitempty"`
	ARN                           string `json:"arn,omitempty"`
}

// Acquirer decodes AcquirerData. An absent or empty value yields a zero struct.
func (p Payment) Acquirer() (AcquirerData, error) {
	var out AcquirerData
	if p.AcquirerData.IsEmpty() {
		return out, nil
	}
	err := p.AcquirerData.Decode(&out)
	return out, err
}

// PaymentUPI describes the UPI leg of a payment.
type PaymentUPI struct {
	PayerAccountType string `json:"payer_account_type,omitempty"`
	VPA              string `json:"vpa,omitempty"`
	Flow             string `json:"flow,omitempty"`
}

// PaymentEMI describes the EMI plan chosen for a card payment.
type PaymentEMI struct {
	Issuer   string `json:"issuer"`
	Rate     int64  `json:"rate"`
	Duration int    `json:"duration"`
}

// PaymentExpand names a relation the payment endpoints can inline.
type PaymentExpand string

const (
	PaymentExpandCard   PaymentExpand = "card"
	PaymentExpandEMI    PaymentExpand = "emi"
	PaymentExpandOffers PaymentExpand = "offers"
	PaymentExpandUPI    PaymentExpand = "upi"
)

// CapturePaymentParams is the body of POST /payments/{id}/capture. Amount
// must equal the authorised amount.
type CapturePaymentParams struct {
	Amount   Amount   `json:"amount" validate:"gt=0"`
	Currency Currency `json:"currency" validate:"required,len=3"`
}

// FetchPaymentParams selects relations to expand on GET /payments/{id}.
type FetchPaymentParams struct {
	Expand []PaymentExpand `json:"expand[],omitempty" validate:"dive,oneof=card emi offers upi"`
}

// ListPaymentsParams filters GET /payments. Only card and emi can be expanded.
type ListPaymentsParams struct {
	Filter
	Expand []PaymentExpand `json:"expand[],omitempty" validate:"dive,oneof=card emi"`
}

// UpdatePaymentParams is the body of PATCH /payments/{id}.
type UpdatePaymentParams struct {
	Notes Notes `json:"notes" validate:"required,max=15"`
}

// DowntimeMethod is the payment method affected by a downtime.
type DowntimeMethod string

const (
	DowntimeMethodCard       DowntimeMethod = "card"
	DowntimeMethodUPI        DowntimeMethod = "upi"
	DowntimeMethodNetbanking DowntimeMethod = "netbanking"
)

// DowntimeStatus is the lifecycle state of a downtime.
type DowntimeStatus string

const (
	DowntimeStatusScheduled DowntimeStatus = "scheduled"
	DowntimeStatusStarted   DowntimeStatus = "started"
	DowntimeStatusResolved  DowntimeStatus = "resolved"
	DowntimeStatusCancelled DowntimeStatus = "cancelled"
)

// DowntimeSeverity grades the impact of a downtime.
type DowntimeSeverity string

const (
	DowntimeSeverityHigh   DowntimeSeverity = "high"
	DowntimeSeverityMedium DowntimeSeverity = "medium"
	DowntimeSeverityLow    DowntimeSeverity = "low"
)

// DowntimeInstrument identifies what is down. Only the fields relevant to
// the downtime's method are set.
type DowntimeInstrument struct {
	Bank      string `json:"bank,omitempty"`
	Network   string `json:"network,omitempty"`
	Issuer    string `json:"issuer,omitempty"`
	PSP       string `json:"psp,omitempty"`
	VPAHandle string `json:"vpa_handle,omitempty"`
	CardType  string `json:"card_type,omitempty"`
}

// Downtime is a payment method outage reported by Razorpay.
type Downtime struct {
	ID         DowntimeID         `json:"id" decode:"required"`
	Entity     Entity             `json:"entity"`
	Method     DowntimeMethod     `json:"method"`
	Begin      UnixTime           `json:"begin"`
	End        UnixTime           `json:"end,omitzero"`
	Status     DowntimeStatus     `json:"status"`
	Scheduled  bool               `json:"scheduled"`
	Severity   DowntimeSeverity   `json:"severity"`
	Instrument DowntimeInstrument `json:"instrument"`
	Flow       string             `json:"flow,omitempty"`
	CreatedAt  UnixTime           `json:"created_at"`
	UpdatedAt  UnixTime           `json:"updated_at,omitzero"`
}

// PaymentService groups the /payments endpoints.
type PaymentService struct {
	c *Client
}

// Capture settles an authorised payment.
func (s *PaymentService) Capture(ctx context.Context, id PaymentID, params CapturePaymentParams) (*Payment, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Post[Payment](ctx, s.c, RequestDescriptor{
		Path:      "/payments/" + id.String() + "/capture",
		Payload:   params,
		Operation: "payments.capture",
	})
}

// Fetch loads one payment. params may be nil.
func (s *PaymentService) Fetch(ctx context.Context, id PaymentID, params *FetchPaymentParams) (*Payment, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Payment](ctx, s.c, RequestDescriptor{
		Path:      "/payments/" + id.String(),
		Payload:   params,
		Operation: "payments.fetch",
	})
}

// List returns a page of payments. params may be nil.
func (s *PaymentService) List(ctx context.Context, params *ListPaymentsParams) (*Collection[Payment], error) {
	return Get[Collection[Payment]](ctx, s.c, RequestDescriptor{
		Path:      "/payments",
		Payload:   params,
		Operation: "payments.list",
	})
}

// FetchCard returns the card used for a card payment.
func (s *PaymentService) FetchCard(ctx context.Context, id PaymentID) (*Card, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Card](ctx, s.c, RequestDescriptor{
		Path:      "/payments/" + id.String() + "/card",
		Operation: "payments.fetch_card",
	})
}

// Update replaces the notes of a payment.
func (s *PaymentService) Update(ctx context.Context, id PaymentID, params UpdatePaymentParams) (*Payment, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Patch[Payment](ctx, s.c, RequestDescriptor{
		Path:      "/payments/" + id.String(),
		Payload:   params,
		Operation: "payments.update",
	})
}

// Refund issues a full or partial refund against a captured payment.
func (s *PaymentService) Refund(ctx context.Context, id PaymentID, params CreateRefundParams) (*Refund, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Post[Refund](ctx, s.c, RequestDescriptor{
		Path:      "/payments/" + id.String() + "/refund",
		Payload:   params,
		Operation: "payments.refund",
	})
}

// ListRefunds returns the refunds of one payment. filter may be nil.
func (s *PaymentService) ListRefunds(ctx context.Context, id PaymentID, filter *Filter) (*Collection[Refund], error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Collection[Refund]](ctx, s.c, RequestDescriptor{
		Path:      "/payments/" + id.String() + "/refunds",
		Payload:   filter,
		Operation: "payments.list_refunds",
	})
}

// FetchRefund loads one refund of a payment.
func (s *PaymentService) FetchRefund(ctx context.Context, id PaymentID, refundID RefundID) (*Refund, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := requireID(refundID); err != nil {
		return nil, err
	}
	return Get[Refund](ctx, s.c, RequestDescriptor{
		Path:      "/payments/" + id.String() + "/refunds/" + refundID.String(),
		Operation: "payments.fetch_refund",
	})
}

// ListDowntimes returns current and scheduled payment method downtimes.
func (s *PaymentService) ListDowntimes(ctx context.Context) (*Collection[Downtime], error) {
	return Get[Collection[Downtime]](ctx, s.c, RequestDescriptor{
		Path:      "/payments/downtimes",
		Operation: "payments.list_downtimes",
	})
}

// FetchDowntime loads one downtime.
func (s *PaymentService) FetchDowntime(ctx context.Context, id DowntimeID) (*Downtime, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Downtime](ctx, s.c, RequestDescriptor{
		Path:      "/payments/downtimes/" + id.String(),
		Operation: "payments.fetch_downtime",
	})
}
