package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
)

const (
	// SignatureHeader carries the webhook signature Razorpay sends.
	SignatureHeader = "X-Razorpay-Signature"
	// EventIDHeader carries the id Razorpay assigns to each event. Retried
	// deliveries repeat it.
	EventIDHeader = "X-Razorpay-Event-Id"
)

// Sign computes the lowercase hex HMAC-SHA256 of body keyed by secret.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether signature is the HMAC of body under secret.
// The comparison is constant time. An empty signature or secret never matches.
func VerifySignature(body []byte, signature, secret string) bool {
	signature = strings.TrimSpace(signature)
	if signature == "" || secret == "" {
		return false
	}
	expected := Sign(body, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyPaymentSignature checks the razorpay_signature returned by Checkout
// for an order payment. The signed message is "order_id|payment_id" keyed by
// the API key secret.
func VerifyPaymentSignature(orderID OrderID, paymentID PaymentID, signature, keySecret string) error {
	if err := requireID(orderID); err != nil {
		return err
	}
	if err := requireID(paymentID); err != nil {
		return err
	}
	message := orderID.String() + "|" + paymentID.String()
	if !VerifySignature([]byte(message), signature, keySecret) {
		return pkgerrors.New(pkgerrors.CodeWebhookAuthentication, "payment signature mismatch")
	}
	return nil
}

// VerifySubscriptionSignature checks the Checkout signature of a subscription
// authorisation payment. The signed message is "payment_id|subscription_id".
func VerifySubscriptionSignature(subscriptionID SubscriptionID, paymentID PaymentID, signature, keySecret string) error {
	if err := requireID(subscriptionID); err != nil {
		return err
	}
	if err := requireID(paymentID); err != nil {
		return err
	}
	message := paymentID.String() + "|" + subscriptionID.String()
	if !VerifySignature([]byte(message), signature, keySecret) {
		return pkgerrors.New(pkgerrors.CodeWebhookAuthentication, "subscription signature mismatch")
	}
	return nil
}
