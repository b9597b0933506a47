package razorpay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
)

// EventType names a webhook event, e.g. "payment.captured".
type EventType string

const (
	EventPaymentAuthorized EventType = "payment.authorized"
	EventPaymentFailed     EventType = "payment.failed"
	EventPaymentCaptured   EventType = "payment.captured"

	EventPaymentDisputeCreated        EventType = "payment.dispute.created"
	EventPaymentDisputeWon            EventType = "payment.dispute.won"
	EventPaymentDisputeLost           EventType = "payment.dispute.lost"
	EventPaymentDisputeClosed         EventType = "payment.dispute.closed"
	EventPaymentDisputeUnderReview    EventType = "payment.dispute.under_review"
	EventPaymentDisputeActionRequired EventType = "payment.dispute.action_required"

	EventPaymentDowntimeStarted  EventType = "payment.downtime.started"
	EventPaymentDowntimeUpdated  EventType = "payment.downtime.updated"
	EventPaymentDowntimeResolved EventType = "payment.downtime.resolved"

	EventOrderPaid EventType = "order.paid"

	EventInvoicePaid          EventType = "invoice.paid"
	EventInvoicePartiallyPaid EventType = "invoice.partially_paid"
	EventInvoiceExpired       EventType = "invoice.expired"

	EventSubscriptionAuthenticated EventType = "subscription.authenticated"
	EventSubscriptionPaused        EventType = "subscription.paused"
	EventSubscriptionResumed       EventType = "subscription.resumed"
	EventSubscriptionActivated     EventType = "subscription.activated"
	EventSubscriptionPending       EventType = "subscription.pending"
	EventSubscriptionHalted        EventType = "subscription.halted"
	EventSubscriptionCharged       EventType = "subscription.charged"
	EventSubscriptionCancelled     EventType = "subscription.cancelled"
	EventSubscriptionCompleted     EventType = "subscription.completed"
	EventSubscriptionUpdated       EventType = "subscription.updated"

	EventSettlementProcessed EventType = "settlement.processed"

	EventVirtualAccountCredited EventType = "virtual_account.credited"
	EventVirtualAccountCreated  EventType = "virtual_account.created"
	EventVirtualAccountClosed   EventType = "virtual_account.closed"

	EventFundAccountValidationCompleted EventType = "fund_account.validation.completed"
	EventFundAccountValidationFailed    EventType = "fund_account.validation.failed"

	EventPayoutProcessed EventType = "payout.processed"
	EventPayoutReversed  EventType = "payout.reversed"
	EventPayoutInitiated EventType = "payout.initiated"
	EventPayoutUpdated   EventType = "payout.updated"
	EventPayoutRejected  EventType = "payout.rejected"
	EventPayoutPending   EventType = "payout.pending"
	EventPayoutQueued    EventType = "payout.queued"
	EventPayoutFailed    EventType = "payout.failed"

	EventPayoutDowntimeStarted  EventType = "payout.downtime.started"
	EventPayoutDowntimeResolved EventType = "payout.downtime.resolved"

	EventRefundSpeedChanged EventType = "refund.speed_changed"
	EventRefundProcessed    EventType = "refund.processed"
	EventRefundFailed       EventType = "refund.failed"
	EventRefundCreated      EventType = "refund.created"

	EventTransferProcessed EventType = "transfer.processed"
	EventTransferFailed    EventType = "transfer.failed"

	EventAccountUnderReview        EventType = "account.under_review"
	EventAccountNeedsClarification EventType = "account.needs_clarification"
	EventAccountActivated          EventType = "account.activated"
	EventAccountRejected           EventType = "account.rejected"
	EventAccountUpdated            EventType = "account.updated"
	EventAccountSuspended          EventType = "account.suspended"
	EventAccountFundsHold          EventType = "account.funds_hold"
	EventAccountFundsUnhold        EventType = "account.funds_unhold"
	EventAccountInstantlyActivated EventType = "account.instantly_activated"
	EventAccountPaymentsEnabled    EventType = "account.payments_enabled"

	EventPaymentLinkPaid          EventType = "payment_link.paid"
	EventPaymentLinkPartiallyPaid EventType = "payment_link.partially_paid"
	EventPaymentLinkExpired       EventType = "payment_link.expired"
	EventPaymentLinkCancelled     EventType = "payment_link.cancelled"

	EventProductRouteActivated                    EventType = "product.route.activated"
	EventProductRouteUnderReview                  EventType = "product.route.under_review"
	EventProductRouteNeedsClarification           EventType = "product.route.needs_clarification"
	EventProductRouteRejected                     EventType = "product.route.rejected"
	EventProductPaymentGatewayActivated           EventType = "product.payment_gateway.activated"
	EventProductPaymentGatewayUnderReview         EventType = "product.payment_gateway.under_review"
	EventProductPaymentGatewayNeedsClarification  EventType = "product.payment_gateway.needs_clarification"
	EventProductPaymentGatewayRejected            EventType = "product.payment_gateway.rejected"
	EventProductPaymentGatewayActivatedKYCPending EventType = "product.payment_gateway.activated_kyc_pending"

	EventAccountAppAuthorizationRevoked EventType = "account.app.authorization_revoked"

	EventPayoutLinkPending    EventType = "payout_link.pending"
	EventPayoutLinkIssued     EventType = "payout_link.issued"
	EventPayoutLinkProcessing EventType = "payout_link.processing"
	EventPayoutLinkProcessed  EventType = "payout_link.processed"
	EventPayoutLinkAttempted  EventType = "payout_link.attempted"
	EventPayoutLinkCancelled  EventType = "payout_link.cancelled"
	EventPayoutLinkRejected   EventType = "payout_link.rejected"
	EventPayoutLinkExpired    EventType = "payout_link.expired"

	EventTransactionCreated EventType = "transaction.created"
)

func (e EventType) String() string {
	return string(e)
}

// Resource returns the part of the event name before the first dot.
func (e EventType) Resource() string {
	s := string(e)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// PayloadKey names an entry of a webhook event's payload map.
type PayloadKey string

const (
	PayloadOrder                 PayloadKey = "order"
	PayloadPayment               PayloadKey = "payment"
	PayloadRefund                PayloadKey = "refund"
	PayloadDispute               PayloadKey = "dispute"
	PayloadInvoice               PayloadKey = "invoice"
	PayloadSubscription          PayloadKey = "subscription"
	PayloadSettlement            PayloadKey = "settlement"
	PayloadDowntime              PayloadKey = "payment.downtime"
	PayloadTransfer              PayloadKey = "transfer"
	PayloadVirtualAccount        PayloadKey = "virtual_account"
	PayloadPaymentLink           PayloadKey = "payment_link"
	PayloadFundAccountValidation PayloadKey = "fund_account.validation"
	PayloadPayout                PayloadKey = "payout"
	PayloadPayoutLink            PayloadKey = "payout_link"
	PayloadMerchantProduct       PayloadKey = "merchant_product"
	PayloadAccount               PayloadKey = "account"
	PayloadPayoutDowntime        PayloadKey = "payout.downtime"
	PayloadTransaction           PayloadKey = "transaction"
)

// WebhookPayload is one entry of an event payload. Entity keeps the raw
// JSON; entries with a known key are also decoded into their typed struct
// when the event is parsed. Data may arrive as [] when empty.
type WebhookPayload struct {
	Entity json.RawMessage `json:"entity"`
	Data   RawObject       `json:"data,omitempty"`

	typed any
}

// Decode unmarshals the raw entity into dst.
func (p WebhookPayload) Decode(dst any) error {
	if len(p.Entity) == 0 {
		return errors.New("webhook payload has no entity")
	}
	return json.Unmarshal(p.Entity, dst)
}

// Typed returns the decoded entity for known payload keys, or nil.
func (p WebhookPayload) Typed() any {
	return p.typed
}

// WebhookEvent is the body Razorpay posts to a webhook endpoint.
type WebhookEvent struct {
	Entity    Entity                        `json:"entity"`
	AccountID string                        `json:"account_id"`
	Event     EventType                     `json:"event"`
	Contains  []PayloadKey                  `json:"contains"`
	Payload   map[PayloadKey]WebhookPayload `json:"payload"`
	CreatedAt UnixTime                      `json:"created_at"`
}

var errEventNameMissing = errors.New("webhook event name is missing")

// UnmarshalJSON decodes the event and every payload entry whose key maps to
// a known entity type.
func (e *WebhookEvent) UnmarshalJSON(data []byte) error {
	type rawEvent WebhookEvent
	var raw rawEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Entity != "" && raw.Entity != EntityEvent {
		return fmt.Errorf("unexpected entity %q for webhook event", raw.Entity)
	}
	if raw.Event == "" {
		return errEventNameMissing
	}
	for key, payload := range raw.Payload {
		typed, err := decodePayloadEntity(key, payload.Entity)
		if err != nil {
			return fmt.Errorf("payload %s: %w", key, err)
		}
		payload.typed = typed
		raw.Payload[key] = payload
	}
	*e = WebhookEvent(raw)
	return nil
}

func decodePayloadEntity(key PayloadKey, raw json.RawMessage) (any, error) {
	var target any
	switch key {
	case PayloadOrder:
		target = new(Order)
	case PayloadPayment:
		target = new(Payment)
	case PayloadRefund:
		target = new(Refund)
	case PayloadDispute:
		target = new(Dispute)
	case PayloadInvoice:
		target = new(Invoice)
	case PayloadSubscription:
		target = new(Subscription)
	case PayloadSettlement:
		target = new(Settlement)
	case PayloadDowntime:
		target = new(Downtime)
	case PayloadAccount:
		target = new(Account)
	default:
		return nil, nil
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return nil, nil
	}
	if err := json.Unmarshal(trimmed, target); err != nil {
		return nil, err
	}
	return target, nil
}

func typedPayload[T any](e *WebhookEvent, key PayloadKey) (*T, bool) {
	if e == nil {
		return nil, false
	}
	payload, ok := e.Payload[key]
	if !ok {
		return nil, false
	}
	v, ok := payload.typed.(*T)
	return v, ok && v != nil
}

// Order returns the order carried by the event, if any.
func (e *WebhookEvent) Order() (*Order, bool) { return typedPayload[Order](e, PayloadOrder) }

// Payment returns the payment carried by the event, if any.
func (e *WebhookEvent) Payment() (*Payment, bool) {
	return typedPayload[Payment](e, PayloadPayment)
}

// Refund returns the refund carried by the event, if any.
func (e *WebhookEvent) Refund() (*Refund, bool) { return typedPayload[Refund](e, PayloadRefund) }

// Dispute returns the dispute carried by the event, if any.
func (e *WebhookEvent) Dispute() (*Dispute, bool) {
	return typedPayload[Dispute](e, PayloadDispute)
}

// Invoice returns the invoice carried by the event, if any.
func (e *WebhookEvent) Invoice() (*Invoice, bool) {
	return typedPayload[Invoice](e, PayloadInvoice)
}

// Subscription returns the subscription carried by the event, if any.
func (e *WebhookEvent) Subscription() (*Subscription, bool) {
	return typedPayload[Subscription](e, PayloadSubscription)
}

// Settlement returns the settlement carried by the event, if any.
func (e *WebhookEvent) Settlement() (*Settlement, bool) {
	return typedPayload[Settlement](e, PayloadSettlement)
}

// Downtime returns the payment downtime carried by the event, if any.
func (e *WebhookEvent) Downtime() (*Downtime, bool) {
	return typedPayload[Downtime](e, PayloadDowntime)
}

// Account returns the linked account carried by the event, if any.
func (e *WebhookEvent) Account() (*Account, bool) {
	return typedPayload[Account](e, PayloadAccount)
}

// ConstructEvent authenticates body against signature and only then parses
// it. A mismatch fails with WEBHOOK_AUTHENTICATION_FAILED before any parsing
// happens; malformed JSON fails with WEBHOOK_PARSE_FAILED.
func ConstructEvent(body []byte, signature, secret string) (*WebhookEvent, error) {
	if !VerifySignature(body, signature, secret) {
		return nil, pkgerrors.New(pkgerrors.CodeWebhookAuthentication, "webhook signature mismatch")
	}
	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeWebhookParse, err, "decode webhook event")
	}
	return &event, nil
}
