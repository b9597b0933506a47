package razorpay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
)

type idKind interface {
	prefix() string
	label() string
}

// ID is a Razorpay identifier validated against the prefix of its entity.
// Values can only be produced by the ParseXxxID functions or by decoding
// JSON, both of which reject a wrong prefix.
type ID[K idKind] struct {
	value string
}

// String returns the raw identifier.
func (id ID[K]) String() string {
	return id.value
}

// IsZero reports whether the id is unset.
func (id ID[K]) IsZero() bool {
	return id.value == ""
}

// Prefix returns the prefix every id of this kind starts with.
func (id ID[K]) Prefix() string {
	var k K
	return k.prefix()
}

// MarshalJSON implements json.Marshaler.
func (id ID[K]) MarshalJSON() ([]byte, error) {
	if id.value == "" {
		return jsonNull, nil
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID[K]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, jsonNull) {
		*id = ID[K]{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	if raw == "" {
		*id = ID[K]{}
		return nil
	}
	parsed, err := parseID[K](raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func parseID[K idKind](raw string) (ID[K], error) {
	var k K
	value := strings.TrimSpace(raw)
	if !strings.HasPrefix(value, k.prefix()) || len(value) == len(k.prefix()) {
		return ID[K]{}, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("invalid %s id %q: expected prefix %q", k.label(), raw, k.prefix())).
			WithDetails(map[string]string{
				"expected_prefix": k.prefix(),
				"value":           raw,
			})
	}
	return ID[K]{value: value}, nil
}

func requireID[K idKind](id ID[K]) error {
	if !id.IsZero() {
		return nil
	}
	var k K
	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s id is required", k.label())).
		WithDetails(map[string]string{"expected_prefix": k.prefix()})
}

type (
	cardKind                    struct{}
	itemKind                    struct{}
	planKind                    struct{}
	addonKind                   struct{}
	orderKind                   struct{}
	offerKind                   struct{}
	batchKind                   struct{}
	refundKind                  struct{}
	accountKind                 struct{}
	addressKind                 struct{}
	disputeKind                 struct{}
	invoiceKind                 struct{}
	paymentKind                 struct{}
	customerKind                struct{}
	downtimeKind                struct{}
	documentKind                struct{}
	transferKind                struct{}
	lineItemKind                struct{}
	adjustmentKind              struct{}
	settlementKind              struct{}
	subscriptionKind            struct{}
	instantSettlementKind       struct{}
	instantSettlementPayoutKind struct{}
)

func (cardKind) prefix() string { return "card_" }
func (cardKind) label() string  { return "card" }

func (itemKind) prefix() string { return "item_" }
func (itemKind) label() string  { return "item" }

func (planKind) prefix() string { return "plan_" }
func (planKind) label() string  { return "plan" }

func (addonKind) prefix() string { return "ao_" }
func (addonKind) label() string  { return "addon" }

func (orderKind) prefix() string { return "order_" }
func (orderKind) label() string  { return "order" }

func (offerKind) prefix() string { return "offer_" }
func (offerKind) label() string  { return "offer" }

func (batchKind) prefix() string { return "batch_" }
func (batchKind) label() string  { return "batch" }

func (refundKind) prefix() string { return "rfnd_" }
func (refundKind) label() string  { return "refund" }

func (accountKind) prefix() string { return "acc_" }
func (accountKind) label() string  { return "account" }

func (addressKind) prefix() string { return "addr_" }
func (addressKind) label() string  { return "address" }

func (disputeKind) prefix() string { return "disp_" }
func (disputeKind) label() string  { return "dispute" }

func (invoiceKind) prefix() string { return "inv_" }
func (invoiceKind) label() string  { return "invoice" }

func (paymentKind) prefix() string { return "pay_" }
func (paymentKind) label() string  { return "payment" }

func (customerKind) prefix() string { return "cust_" }
func (customerKind) label() string  { return "customer" }

func (downtimeKind) prefix() string { return "down_" }
func (downtimeKind) label() string  { return "downtime" }

func (documentKind) prefix() string { return "doc_" }
func (documentKind) label() string  { return "document" }

func (transferKind) prefix() string { return "trf_" }
func (transferKind) label() string  { return "transfer" }

func (lineItemKind) prefix() string { return "li_" }
func (lineItemKind) label() string  { return "line item" }

func (adjustmentKind) prefix() string { return "adj_" }
func (adjustmentKind) label() string  { return "adjustment" }

func (settlementKind) prefix() string { return "setl_" }
func (settlementKind) label() string  { return "settlement" }

func (subscriptionKind) prefix() string { return "sub_" }
func (subscriptionKind) label() string  { return "subscription" }

func (instantSettlementKind) prefix() string { return "setlod_" }
func (instantSettlementKind) label() string  { return "instant settlement" }

func (instantSettlementPayoutKind) prefix() string { return "setlodp_" }
func (instantSettlementPayoutKind) label() string  { return "instant settlement payout" }

type (
	CardID                    = ID[cardKind]
	ItemID                    = ID[itemKind]
	PlanID                    = ID[planKind]
	AddonID                   = ID[addonKind]
	OrderID                   = ID[orderKind]
	OfferID                   = ID[offerKind]
	BatchID                   = ID[batchKind]
	RefundID                  = ID[refundKind]
	AccountID                 = ID[accountKind]
	AddressID                 = ID[addressKind]
	DisputeID                 = ID[disputeKind]
	InvoiceID                 = ID[invoiceKind]
	PaymentID                 = ID[paymentKind]
	CustomerID                = ID[customerKind]
	DowntimeID                = ID[downtimeKind]
	DocumentID                = ID[documentKind]
	TransferID                = ID[transferKind]
	LineItemID                = ID[lineItemKind]
	AdjustmentID              = ID[adjustmentKind]
	SettlementID              = ID[settlementKind]
	SubscriptionID            = ID[subscriptionKind]
	InstantSettlementID       = ID[instantSettlementKind]
	InstantSettlementPayoutID = ID[instantSettlementPayoutKind]
)

// ParseCardID validates a card id (card_...).
func ParseCardID(raw string) (CardID, error) { return parseID[cardKind](raw) }

// ParseItemID validates an item id (item_...).
func ParseItemID(raw string) (ItemID, error) { return parseID[itemKind](raw) }

// ParsePlanID validates a plan id (plan_...).
func ParsePlanID(raw string) (PlanID, error) { return parseID[planKind](raw) }

// ParseAddonID validates an addon id (ao_...).
func ParseAddonID(raw string) (AddonID, error) { return parseID[addonKind](raw) }

// ParseOrderID validates an order id (order_...).
func ParseOrderID(raw string) (OrderID, error) { return parseID[orderKind](raw) }

// ParseOfferID validates an offer id (offer_...).
func ParseOfferID(raw string) (OfferID, error) { return parseID[offerKind](raw) }

// ParseBatchID validates a batch id (batch_...).
func ParseBatchID(raw string) (BatchID, error) { return parseID[batchKind](raw) }

// ParseRefundID validates a refund id (rfnd_...).
func ParseRefundID(raw string) (RefundID, error) { return parseID[refundKind](raw) }

// ParseAccountID validates an account id (acc_...).
func ParseAccountID(raw string) (AccountID, error) { return parseID[accountKind](raw) }

// ParseAddressID validates an address id (addr_...).
func ParseAddressID(raw string) (AddressID, error) { return parseID[addressKind](raw) }

// ParseDisputeID validates a dispute id (disp_...).
func ParseDisputeID(raw string) (DisputeID, error) { return parseID[disputeKind](raw) }

// ParseInvoiceID validates an invoice id (inv_...).
func ParseInvoiceID(raw string) (InvoiceID, error) { return parseID[invoiceKind](raw) }

// ParsePaymentID validates a payment id (pay_...).
func ParsePaymentID(raw string) (PaymentID, error) { return parseID[paymentKind](raw) }

// ParseCustomerID validates a customer id (cust_...).
func ParseCustomerID(raw string) (CustomerID, error) { return parseID[customerKind](raw) }

// ParseDowntimeID validates a downtime id (down_...).
func ParseDowntimeID(raw string) (DowntimeID, error) { return parseID[downtimeKind](raw) }

// ParseDocumentID validates a document id (doc_...).
func ParseDocumentID(raw string) (DocumentID, error) { return parseID[documentKind](raw) }

// ParseTransferID validates a transfer id (trf_...).
func ParseTransferID(raw string) (TransferID, error) { return parseID[transferKind](raw) }

// ParseLineItemID validates a line item id (li_...).
func ParseLineItemID(raw string) (LineItemID, error) { return parseID[lineItemKind](raw) }

// ParseAdjustmentID validates an adjustment id (adj_...).
func ParseAdjustmentID(raw string) (AdjustmentID, error) { return parseID[adjustmentKind](raw) }

// ParseSettlementID validates a settlement id (setl_...).
func ParseSettlementID(raw string) (SettlementID, error) { return parseID[settlementKind](raw) }

// ParseSubscriptionID validates a subscription id (sub_...).
func ParseSubscriptionID(raw string) (SubscriptionID, error) {
	return parseID[subscriptionKind](raw)
}

// ParseInstantSettlementID validates an instant settlement id (setlod_...).
func ParseInstantSettlementID(raw string) (InstantSettlementID, error) {
	return parseID[instantSettlementKind](raw)
}

// ParseInstantSettlementPayoutID validates an instant settlement payout id (setlodp_...).
func ParseInstantSettlementPayoutID(raw string) (InstantSettlementPayoutID, error) {
	return parseID[instantSettlementPayoutKind](raw)
}
