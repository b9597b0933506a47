package razorpay

import (
	"context"

	"github.com/angelmondragon/razorpay-go-client/pkg/enums"
)

// Refund is the Razorpay refund entity.
type Refund struct {
	ID             RefundID           `json:"id" decode:"required"`
	Entity         Entity             `json:"entity"`
	Amount         Amount             `json:"amount"`
	Currency       Currency           `json:"currency"`
	PaymentID      PaymentID          `json:"payment_id"`
	Speed          enums.RefundSpeed  `json:"speed,omitempty"`
	CreatedAt      UnixTime           `json:"created_at"`
	BatchID        BatchID            `json:"batch_id,omitzero"`
	Notes          Notes              `json:"notes"`
	Receipt        string             `json:"receipt,omitempty"`
	AcquirerData   RawObject          `json:"acquirer_data,omitempty"`
	Status         enums.RefundStatus `json:"status"`
	SpeedRequested enums.RefundSpeed  `json:"speed_requested,omitempty"`
	SpeedProcessed enums.RefundSpeed  `json:"speed_processed,omitempty"`
}

// Acquirer decodes AcquirerData. An absent or empty value yields a zero struct.
func (r Refund) Acquirer() (AcquirerData, error) {
	var out AcquirerData
	if r.AcquirerData.IsEmpty() {
		return out, nil
	}
	err := r.AcquirerData.Decode(&out)
	return out, err
}

// CreateRefundParams is the body of POST /payments/{id}/refund. A zero
// Amount refunds the full captured amount.
type CreateRefundParams struct {
	Amount  Amount            `json:"amount,omitempty" validate:"gte=0"`
	Speed   enums.RefundSpeed `json:"speed,omitempty" validate:"omitempty,oneof=normal optimum"`
	Notes   Notes             `json:"notes,omitempty" validate:"max=15"`
	Receipt string            `json:"receipt,omitempty" validate:"max=40"`
}

// UpdateRefundParams is the body of PATCH /refunds/{id}.
type UpdateRefundParams struct {
	Notes Notes `json:"notes" validate:"required,max=15"`
}

// RefundService groups the /refunds endpoints.
type RefundService struct {
	c *Client
}

// List returns a page of refunds across all payments. filter may be nil.
func (s *RefundService) List(ctx context.Context, filter *Filter) (*Collection[Refund], error) {
	return Get[Collection[Refund]](ctx, s.c, RequestDescriptor{
		Path:      "/refunds",
		Payload:   filter,
		Operation: "refunds.list",
	})
}

// Fetch loads one refund.
func (s *RefundService) Fetch(ctx context.Context, id RefundID) (*Refund, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Refund](ctx, s.c, RequestDescriptor{
		Path:      "/refunds/" + id.String(),
		Operation: "refunds.fetch",
	})
}

// Update replaces the notes of a refund.
func (s *RefundService) Update(ctx context.Context, id RefundID, params UpdateRefundParams) (*Refund, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Patch[Refund](ctx, s.c, RequestDescriptor{
		Path:      "/refunds/" + id.String(),
		Payload:   params,
		Operation: "refunds.update",
	})
}
