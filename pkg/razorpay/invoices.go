package razorpay

import (
	"context"

	"github.com/angelmondragon/razorpay-go-client/pkg/enums"
	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
)

// InvoiceType distinguishes invoices from other documents on /invoices.
type InvoiceType string

const InvoiceTypeInvoice InvoiceType = "invoice"

// NotificationStatus tracks SMS and email delivery of an invoice.
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
)

// NotifyMedium is the channel used to resend an invoice.
type NotifyMedium string

const (
	NotifyMediumSMS   NotifyMedium = "sms"
	NotifyMediumEmail NotifyMedium = "email"
)

// AddressType is the role of a customer address.
type AddressType string

const (
	AddressTypeBilling  AddressType = "billing_address"
	AddressTypeShipping AddressType = "shipping_address"
)

// Address is a customer address stored by Razorpay.
type Address struct {
	ID      AddressID   `json:"id"`
	Type    AddressType `json:"type"`
	Primary bool        `json:"primary"`
	Line1   string      `json:"line1"`
	Line2   string      `json:"line2,omitempty"`
	City    string      `json:"city"`
	Zipcode string      `json:"zipcode"`
	State   string      `json:"state"`
	Country string      `json:"country"`
}

// LineItem is one billed row of an invoice.
type LineItem struct {
	ID          LineItemID `json:"id"`
	ItemID      ItemID     `json:"item_id,omitzero"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Amount      Amount     `json:"amount"`
	Currency    Currency   `json:"currency"`
	Type        ItemType   `json:"type"`
	Quantity    int        `json:"quantity"`
}

// InvoiceCustomer is the customer snapshot copied onto an invoice.
type InvoiceCustomer struct {
	ID              CustomerID `json:"id,omitzero"`
	Name            string     `json:"name"`
	Email           string     `json:"email,omitempty"`
	Contact         string     `json:"contact,omitempty"`
	BillingAddress  *Address   `json:"billing_address,omitempty"`
	ShippingAddress *Address   `json:"shipping_address,omitempty"`
}

// Invoice is the Razorpay invoice entity.
type Invoice struct {
	ID              InvoiceID           `json:"id" decode:"required"`
	Entity          Entity              `json:"entity"`
	Type            InvoiceType         `json:"type"`
	InvoiceNumber   string              `json:"invoice_number,omitempty"`
	CustomerID      CustomerID          `json:"customer_id,omitzero"`
	CustomerDetails *InvoiceCustomer    `json:"customer_details,omitempty"`
	OrderID         OrderID             `json:"order_id,omitzero"`
	LineItems       []LineItem          `json:"line_items"`
	PaymentID       PaymentID           `json:"payment_id,omitzero"`
	Status          enums.InvoiceStatus `json:"status"`
	ExpireBy        UnixTime            `json:"expire_by,omitzero"`
	IssuedAt        UnixTime            `json:"issued_at,omitzero"`
	PaidAt          UnixTime            `json:"paid_at,omitzero"`
	CancelledAt     UnixTime            `json:"cancelled_at,omitzero"`
	ExpiredAt       UnixTime            `json:"expired_at,omitzero"`
	SMSStatus       NotificationStatus  `json:"sms_status,omitempty"`
	EmailStatus     NotificationStatus  `json:"email_status,omitempty"`
	PartialPayment  bool                `json:"partial_payment"`
	Amount          Amount              `json:"amount"`
	AmountPaid      Amount              `json:"amount_paid"`
	AmountDue       Amount              `json:"amount_due"`
	Currency        Currency            `json:"currency"`
	Description     string              `json:"description,omitempty"`
	Notes           Notes               `json:"notes"`
	ShortURL        string              `json:"short_url,omitempty"`
	Date            UnixTime            `json:"date,omitzero"`
	Terms           string              `json:"terms,omitempty"`
	Comment         string              `json:"comment,omitempty"`
	CreatedAt       UnixTime            `json:"created_at,omitzero"`
}

// AddressParams is an inline address on invoice create and update.
type AddressParams struct {
	Line1   string `json:"line1" validate:"required"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city" validate:"required"`
	Zipcode string `json:"zipcode" validate:"required"`
	State   string `json:"state" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// InvoiceCustomerParams creates or attaches a customer inline.
type InvoiceCustomerParams struct {
	Name            string         `json:"name" validate:"required"`
	Email           string         `json:"email,omitempty" validate:"omitempty,email"`
	Contact         string         `json:"contact,omitempty"`
	BillingAddress  *AddressParams `json:"billing_address,omitempty"`
	ShippingAddress *AddressParams `json:"shipping_address,omitempty"`
}

// LineItemParams bills either an existing item or an ad-hoc row.
type LineItemParams struct {
	ItemID      ItemID   `json:"item_id,omitzero"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Amount      Amount   `json:"amount,omitempty" validate:"gte=0"`
	Currency    Currency `json:"currency,omitempty" validate:"omitempty,len=3"`
	Quantity    int      `json:"quantity,omitempty" validate:"gte=0"`
}

// InvoiceParams is the body of POST /invoices and PATCH /invoices/{id}.
type InvoiceParams struct {
	Type           InvoiceType            `json:"type" validate:"required,eq=invoice"`
	Description    string                 `json:"description,omitempty"`
	Draft          *IntBool               `json:"draft,omitempty"`
	CustomerID     CustomerID             `json:"customer_id,omitzero"`
	Customer       *InvoiceCustomerParams `json:"customer,omitempty"`
	LineItems      []LineItemParams       `json:"line_items,omitempty" validate:"dive"`
	ExpireBy       UnixTime               `json:"expire_by,omitzero"`
	SMSNotify      *IntBool               `json:"sms_notify,omitempty"`
	EmailNotify    *IntBool               `json:"email_notify,omitempty"`
	PartialPayment *bool                  `json:"partial_payment,omitempty"`
	Currency       Currency               `json:"currency,omitempty" validate:"omitempty,len=3"`
	Notes          Notes                  `json:"notes,omitempty" validate:"max=15"`
}

// ListInvoicesParams filters GET /invoices.
type ListInvoicesParams struct {
	Filter
	Type       InvoiceType `json:"type,omitempty"`
	PaymentID  PaymentID   `json:"payment_id,omitzero"`
	Receipt    string      `json:"receipt,omitempty"`
	CustomerID CustomerID  `json:"customer_id,omitzero"`
}

// NotifyResult is returned by the notify endpoint.
type NotifyResult struct {
	Success bool `json:"success"`
}

// InvoiceService groups the /invoices endpoints.
type InvoiceService struct {
	c *Client
}

// Create drafts or issues an invoice.
func (s *InvoiceService) Create(ctx context.Context, params InvoiceParams) (*Invoice, error) {
	if params.Type == "" {
		params.Type = InvoiceTypeInvoice
	}
	return Post[Invoice](ctx, s.c, RequestDescriptor{
		Path:      "/invoices",
		Payload:   params,
		Operation: "invoices.create",
	})
}

// Update edits a draft invoice.
func (s *InvoiceService) Update(ctx context.Context, id InvoiceID, params InvoiceParams) (*Invoice, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if params.Type == "" {
		params.Type = InvoiceTypeInvoice
	}
	return Patch[Invoice](ctx, s.c, RequestDescriptor{
		Path:      "/invoices/" + id.String(),
		Payload:   params,
		Operation: "invoices.update",
	})
}

// Issue moves a draft invoice to issued and notifies the customer.
func (s *InvoiceService) Issue(ctx context.Context, id InvoiceID) (*Invoice, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Post[Invoice](ctx, s.c, RequestDescriptor{
		Path:      "/invoices/" + id.String() + "/issue",
		Operation: "invoices.issue",
	})
}

// Delete removes a draft invoice.
func (s *InvoiceService) Delete(ctx context.Context, id InvoiceID) error {
	if err := requireID(id); err != nil {
		return err
	}
	_, err := Delete[Deleted](ctx, s.c, RequestDescriptor{
		Path:      "/invoices/" + id.String(),
		Operation: "invoices.delete",
	})
	return err
}

// Cancel voids an issued invoice.
func (s *InvoiceService) Cancel(ctx context.Context, id InvoiceID) (*Invoice, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Post[Invoice](ctx, s.c, RequestDescriptor{
		Path:      "/invoices/" + id.String() + "/cancel",
		Operation: "invoices.cancel",
	})
}

// Fetch loads one invoice.
func (s *InvoiceService) Fetch(ctx context.Context, id InvoiceID) (*Invoice, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Invoice](ctx, s.c, RequestDescriptor{
		Path:      "/invoices/" + id.String(),
		Operation: "invoices.fetch",
	})
}

// List returns a page of invoices. params may be nil.
func (s *InvoiceService) List(ctx context.Context, params *ListInvoicesParams) (*Collection[Invoice], error) {
	return Get[Collection[Invoice]](ctx, s.c, RequestDescriptor{
		Path:      "/invoices",
		Payload:   params,
		Operation: "invoices.list",
	})
}

// Notify resends an issued invoice over SMS or email.
func (s *InvoiceService) Notify(ctx context.Context, id InvoiceID, medium NotifyMedium) (*NotifyResult, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if medium != NotifyMediumSMS && medium != NotifyMediumEmail {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "notify medium must be sms or email").
			WithDetails(map[string]string{"medium": string(medium)})
	}
	return Post[NotifyResult](ctx, s.c, RequestDescriptor{
		Path:      "/invoices/" + id.String() + "/notify_by/" + string(medium),
		Operation: "invoices.notify",
	})
}
