package razorpay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/razorpay-go-client/pkg/enums"
	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
)

const paymentCapturedBody = `{
  "entity": "event",
  "account_id": "acc_BFQ7uQEaa7j2z7",
  "event": "payment.captured",
  "contains": ["payment"],
  "payload": {
    "payment": {
      "entity": {
        "id": "pay_DESlfW9H8K9uqM",
        "entity": "payment",
        "amount": 100,
        "currency": "INR",
        "status": "captured",
        "order_id": "order_DESlLckIVRkHWj",
        "invoice_id": null,
        "international": false,
        "method": "netbanking",
        "amount_refunded": 0,
        "refund_status": null,
        "captured": true,
        "description": null,
        "card_id": null,
        "bank": "HDFC",
        "wallet": null,
        "vpa": null,
        "email": "gaurav.kumar@example.com",
        "contact": "+919876543210",
        "notes": [],
        "fee": 2,
        "tax": 0,
        "error_code": null,
        "error_description": null,
        "acquirer_data": {"bank_transaction_id": "0125836177"},
        "created_at": 1567674599
      }
    },
    "custom": {"entity": {"anything": [1, 2, 3]}}
  },
  "created_at": 1567674606
}`

func TestConstructEventVerifiesThenParses(t *testing.T) {
	body := []byte(paymentCapturedBody)
	sig := Sign(body, "whsec_test")

	event, err := ConstructEvent(body, sig, "whsec_test")
	require.NoError(t, err)
	assert.Equal(t, EventPaymentCaptured, event.Event)
	assert.Equal(t, "payment", event.Event.Resource())
	assert.Equal(t, "acc_BFQ7uQEaa7j2z7", event.AccountID)
	assert.Equal(t, []PayloadKey{PayloadPayment}, event.Contains)
	assert.Equal(t, int64(1567674606), event.CreatedAt.Unix())

	payment, ok := event.Payment()
	require.True(t, ok)
	assert.Equal(t, "pay_DESlfW9H8K9uqM", payment.ID.String())
	assert.Equal(t, enums.PaymentStatusCaptured, payment.Status)
	assert.Equal(t, "order_DESlLckIVRkHWj", payment.OrderID.String())
	assert.True(t, payment.InvoiceID.IsZero())
	assert.Empty(t, payment.Notes)

	acq, err := payment.Acquirer()
	require.NoError(t, err)
	assert.Equal(t, "0125836177", acq.BankTransactionID)

	_, ok = event.Order()
	assert.False(t, ok)

	custom := event.Payload["custom"]
	assert.Nil(t, custom.Typed())
	var raw map[string]any
	require.NoError(t, custom.Decode(&raw))
	assert.Len(t, raw["anything"], 3)
}

func TestConstructEventRejectsAlteredSignature(t *testing.T) {
	body := []byte(paymentCapturedBody)
	sig := []byte(Sign(body, "whsec_test"))
	if sig[0] == 'a' {
		sig[0] = 'b'
	} else {
		sig[0] = 'a'
	}

	event, err := ConstructEvent(body, string(sig), "whsec_test")
	require.Error(t, err)
	assert.Nil(t, event)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeWebhookAuthentication))
}

func TestConstructEventDoesNotParseUnverifiedBody(t *testing.T) {
	body := []byte(`{not json`)

	_, err := ConstructEvent(body, "deadbeef", "whsec_test")
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeWebhookAuthentication))
}

func TestConstructEventParseFailures(t *testing.T) {
	bodies := []string{
		`{not json`,
		`{"entity":"payment","event":"payment.captured"}`,
		`{"entity":"event","contains":[]}`,
		`{"entity":"event","event":"payment.captured","payload":{"payment":{"entity":{"id":"order_1"}}}}`,
	}
	for _, raw := range bodies {
		body := []byte(raw)
		_, err := ConstructEvent(body, Sign(body, "whsec_test"), "whsec_test")
		require.Error(t, err, raw)
		assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeWebhookParse), raw)
	}

	// An unset secret is refused even when the signature was computed with it.
	body := []byte(paymentCapturedBody)
	_, err := ConstructEvent(body, Sign(body, ""), "")
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeWebhookAuthentication))
	assert.False(t, VerifySignature(body, Sign(body, ""), ""))
}

func TestWebhookPayloadDataAcceptsEmptyArray(t *testing.T) {
	body := []byte(`{"entity":"event","account_id":"acc_1","event":"account.activated","contains":["account"],"payload":{"account":{"entity":{"id":"acc_1","status":"activated","notes":[]},"data":[]}},"created_at":1}`)

	event, err := ConstructEvent(body, Sign(body, "s"), "s")
	require.NoError(t, err)
	account, ok := event.Account()
	require.True(t, ok)
	assert.Equal(t, enums.AccountStatusActivated, account.Status)
	assert.True(t, event.Payload[PayloadAccount].Data.IsEmpty())
}
