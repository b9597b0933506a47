package razorpay

import (
	"context"

	"github.com/angelmondragon/razorpay-go-client/pkg/enums"
)

// Settlement is a transfer of collected funds to the merchant's bank account.
type Settlement struct {
	ID        SettlementID           `json:"id" decode:"required"`
	Entity    Entity                 `json:"entity"`
	Amount    Amount                 `json:"amount"`
	Status    enums.SettlementStatus `json:"status"`
	Fees      Amount                 `json:"fees"`
	Tax       Amount                 `json:"tax"`
	UTR       string                 `json:"utr,omitempty"`
	CreatedAt UnixTime               `json:"created_at"`
}

// ReconType is the kind of transaction a recon row settles.
type ReconType string

const (
	ReconTypePayment    ReconType = "payment"
	ReconTypeRefund     ReconType = "refund"
	ReconTypeTransfer   ReconType = "transfer"
	ReconTypeAdjustment ReconType = "adjustment"
)

// SettlementRecon is one row of the combined reconciliation report. EntityID
// is a payment, refund, transfer or adjustment id depending on Type.
type SettlementRecon struct {
	EntityID      string       `json:"entity_id"`
	Type          ReconType    `json:"type"`
	Debit         Amount       `json:"debit"`
	Credit        Amount       `json:"credit"`
	Amount        Amount       `json:"amount"`
	Currency      Currency     `json:"currency"`
	Fee           Amount       `json:"fee"`
	Tax           Amount       `json:"tax"`
	OnHold        bool         `json:"on_hold"`
	Settled       bool         `json:"settled"`
	CreatedAt     UnixTime     `json:"created_at"`
	SettledAt     UnixTime     `json:"settled_at,omitzero"`
	SettlementID  SettlementID `json:"settlement_id,omitzero"`
	Description   string       `json:"description,omitempty"`
	Notes         Notes        `json:"notes"`
	PaymentID     PaymentID    `json:"payment_id,omitzero"`
	SettlementUTR string       `json:"settlement_utr,omitempty"`
	OrderID       OrderID      `json:"order_id,omitzero"`
	OrderReceipt  string       `json:"order_receipt,omitempty"`
	Method        string       `json:"method,omitempty"`
	CardNetwork   string       `json:"card_network,omitempty"`
	CardIssuer    string       `json:"card_issuer,omitempty"`
	CardType      string       `json:"card_type,omitempty"`
	DisputeID     DisputeID    `json:"dispute_id,omitzero"`
}

// ReconParams selects the day or month of GET /settlements/recon/combined.
type ReconParams struct {
	Year  int `json:"year" validate:"gte=2000"`
	Month int `json:"month" validate:"gte=1,lte=12"`
	Day   int `json:"day,omitempty" validate:"gte=0,lte=31"`
	Count int `json:"count,omitempty" validate:"gte=0,lte=1000"`
	Skip  int `json:"skip,omitempty" validate:"gte=0"`
}

// InstantSettlementStatus is the lifecycle state of an on-demand settlement.
type InstantSettlementStatus string

const (
	InstantSettlementStatusCreated            InstantSettlementStatus = "created"
	InstantSettlementStatusInitiated          InstantSettlementStatus = "initiated"
	InstantSettlementStatusPartiallyProcessed InstantSettlementStatus = "partially_processed"
	InstantSettlementStatusProcessed          InstantSettlementStatus = "processed"
	InstantSettlementStatusReversed           InstantSettlementStatus = "reversed"
)

// InstantSettlementPayout is one bank payout of an on-demand settlement.
type InstantSettlementPayout struct {
	ID            InstantSettlementPayoutID `json:"id" decode:"required"`
	Entity        Entity                    `json:"entity"`
	InitiatedAt   UnixTime                  `json:"initiated_at,omitzero"`
	ProcessedAt   UnixTime                  `json:"processed_at,omitzero"`
	ReversedAt    UnixTime                  `json:"reversed_at,omitzero"`
	Amount        Amount                    `json:"amount"`
	AmountSettled Amount                    `json:"amount_settled"`
	Fees          Amount                    `json:"fees"`
	Tax           Amount                    `json:"tax"`
	UTR           string                    `json:"utr,omitempty"`
	Status        InstantSettlementStatus   `json:"status"`
	CreatedAt     UnixTime                  `json:"created_at"`
}

// InstantSettlement is an on-demand settlement requested by the merchant.
type InstantSettlement struct {
	ID                InstantSettlementID                  `json:"id" decode:"required"`
	Entity            Entity                               `json:"entity"`
	AmountRequested   Amount                               `json:"amount_requested"`
	AmountSettled     Amount                               `json:"amount_settled"`
	AmountPending     Amount                               `json:"amount_pending"`
	AmountReversed    Amount                               `json:"amount_reversed"`
	Fees              Amount                               `json:"fees"`
	Tax               Amount                               `json:"tax"`
	Currency          Currency                             `json:"currency"`
	SettleFullBalance bool                                 `json:"settle_full_balance"`
	Status            InstantSettlementStatus              `json:"status"`
	Description       string                               `json:"description,omitempty"`
	Notes             Notes                                `json:"notes"`
	CreatedAt         UnixTime                             `json:"created_at"`
	OndemandPayouts   *Collection[InstantSettlementPayout] `json:"ondemand_payouts,omitempty"`
}

// CreateInstantSettlementParams is the body of POST /settlements/ondemand.
type CreateInstantSettlementParams struct {
	Amount            Amount `json:"amount" validate:"gt=0"`
	SettleFullBalance *bool  `json:"settle_full_balance,omitempty"`
	Description       string `json:"description,omitempty" validate:"max=30"`
	Notes             Notes  `json:"notes,omitempty" validate:"max=15"`
}

const expandOndemandPayouts = "ondemand_payouts"

// ListInstantSettlementsParams filters GET /settlements/ondemand.
type ListInstantSettlementsParams struct {
	Filter
	ExpandPayouts bool `json:"-"`
}

type listInstantSettlementsQuery struct {
	Filter
	Expand []string `json:"expand[],omitempty"`
}

type expandQuery struct {
	Expand []string `json:"expand[],omitempty"`
}

// SettlementService groups the /settlements endpoints.
type SettlementService struct {
	c *Client
}

// List returns a page of settlements. filter may be nil.
func (s *SettlementService) List(ctx context.Context, filter *Filter) (*Collection[Settlement], error) {
	return Get[Collection[Settlement]](ctx, s.c, RequestDescriptor{
		Path:      "/settlements",
		Payload:   filter,
		Operation: "settlements.list",
	})
}

// Fetch loads one settlement.
func (s *SettlementService) Fetch(ctx context.Context, id SettlementID) (*Settlement, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Settlement](ctx, s.c, RequestDescriptor{
		Path:      "/settlements/" + id.String(),
		Operation: "settlements.fetch",
	})
}

// Recon returns the combined reconciliation report for a day or a month.
func (s *SettlementService) Recon(ctx context.Context, params ReconParams) (*Collection[SettlementRecon], error) {
	return Get[Collection[SettlementRecon]](ctx, s.c, RequestDescriptor{
		Path:      "/settlements/recon/combined",
		Payload:   params,
		Operation: "settlements.recon",
	})
}

// CreateInstant requests an on-demand settlement.
func (s *SettlementService) CreateInstant(ctx context.Context, params CreateInstantSettlementParams) (*InstantSettlement, error) {
	return Post[InstantSettlement](ctx, s.c, RequestDescriptor{
		Path:      "/settlements/ondemand",
		Payload:   params,
		Operation: "settlements.create_instant",
	})
}

// ListInstant returns a page of on-demand settlements. params may be nil.
func (s *SettlementService) ListInstant(ctx context.Context, params *ListInstantSettlementsParams) (*Collection[InstantSettlement], error) {
	var query listInstantSettlementsQuery
	if params != nil {
		query.Filter = params.Filter
		if params.ExpandPayouts {
			query.Expand = []string{expandOndemandPayouts}
		}
	}
	return Get[Collection[InstantSettlement]](ctx, s.c, RequestDescriptor{
		Path:      "/settlements/ondemand",
		Payload:   query,
		Operation: "settlements.list_instant",
	})
}

// FetchInstant loads one on-demand settlement, optionally with its payouts.
func (s *SettlementService) FetchInstant(ctx context.Context, id InstantSettlementID, expandPayouts bool) (*InstantSettlement, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var query expandQuery
	if expandPayouts {
		query.Expand = []string{expandOndemandPayouts}
	}
	return Get[InstantSettlement](ctx, s.c, RequestDescriptor{
		Path:      "/settlements/ondemand/" + id.String(),
		Payload:   query,
		Operation: "settlements.fetch_instant",
	})
}
