package razorpay

import (
	"context"

	"github.com/angelmondragon/razorpay-go-client/pkg/enums"
)

// Order is the Razorpay order entity.
type Order struct {
	ID             OrderID              `json:"id" decode:"required"`
	Entity         Entity               `json:"entity"`
	Amount         Amount               `json:"amount"`
	PartialPayment bool                 `json:"partial_payment"`
	AmountPaid     Amount               `json:"amount_paid"`
	AmountDue      Amount               `json:"amount_due"`
	Currency       Currency             `json:"currency"`
	Receipt        string               `json:"receipt,omitempty"`
	OfferID        OfferID              `json:"offer_id,omitzero"`
	Payments       *Collection[Payment] `json:"payments,omitempty"`
	Status         enums.OrderStatus    `json:"status"`
	Notes          Notes                `json:"notes"`
	Attempts       int                  `json:"attempts"`
	CreatedAt      UnixTime             `json:"created_at"`
}

// BankAccount restricts which account a TPV order can be paid from.
type BankAccount struct {
	AccountNumber string `json:"account_number" validate:"required"`
	Name          string `json:"name" validate:"required"`
	IFSC          string `json:"ifsc" validate:"required,len=11"`
}

// CreateOrderParams is the body of POST /orders.
type CreateOrderParams struct {
	Amount                Amount       `json:"amount" validate:"gt=0"`
	Currency              Currency     `json:"currency" validate:"required,len=3"`
	Receipt               string       `json:"receipt,omitempty" validate:"max=40"`
	Notes                 Notes        `json:"notes,omitempty" validate:"max=15"`
	PartialPayment        *bool        `json:"partial_payment,omitempty"`
	FirstPaymentMinAmount Amount       `json:"first_payment_min_amount,omitempty" validate:"gte=0"`
	BankAccount           *BankAccount `json:"bank_account,omitempty"`
}

// OrderExpand names a relation the order list endpoint can inline.
type OrderExpand string

const (
	OrderExpandPayments       OrderExpand = "payments"
	OrderExpandPaymentsCard   OrderExpand = "payments.card"
	OrderExpandTransfers      OrderExpand = "transfers"
	OrderExpandVirtualAccount OrderExpand = "virtual_account"
)

// ListOrdersParams filters GET /orders.
type ListOrdersParams struct {
	Filter
	Authorized *IntBool      `json:"authorized,omitempty"`
	Receipt    string        `json:"receipt,omitempty"`
	Expand     []OrderExpand `json:"expand[],omitempty"`
}

// UpdateOrderParams is the body of PATCH /orders/{id}. Only notes can change.
type UpdateOrderParams struct {
	Notes Notes `json:"notes" validate:"required,max=15"`
}

// OrderService groups the /orders endpoints.
type OrderService struct {
	c *Client
}

// Create registers a new order.
func (s *OrderService) Create(ctx context.Context, params CreateOrderParams) (*Order, error) {
	return Post[Order](ctx, s.c, RequestDescriptor{
		Path:      "/orders",
		Payload:   params,
		Operation: "orders.create",
	})
}

// List returns a page of orders. params may be nil.
func (s *OrderService) List(ctx context.Context, params *ListOrdersParams) (*Collection[Order], error) {
	return Get[Collection[Order]](ctx, s.c, RequestDescriptor{
		Path:      "/orders",
		Payload:   params,
		Operation: "orders.list",
	})
}

// Fetch loads one order.
func (s *OrderService) Fetch(ctx context.Context, id OrderID) (*Order, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Order](ctx, s.c, RequestDescriptor{
		Path:      "/orders/" + id.String(),
		Operation: "orders.fetch",
	})
}

// ListPayments returns the payment attempts made against an order.
func (s *OrderService) ListPayments(ctx context.Context, id OrderID) (*Collection[Payment], error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Collection[Payment]](ctx, s.c, RequestDescriptor{
		Path:      "/orders/" + id.String() + "/payments",
		Operation: "orders.list_payments",
	})
}

// Update replaces the notes of an order.
func (s *OrderService) Update(ctx context.Context, id OrderID, params UpdateOrderParams) (*Order, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Patch[Order](ctx, s.c, RequestDescriptor{
		Path:      "/orders/" + id.String(),
		Payload:   params,
		Operation: "orders.update",
	})
}
