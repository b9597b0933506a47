package enums

import "testing"

func TestParseCurrency(t *testing.T) {
	for _, raw := range []string{"INR", "USD", "EUR", "SGD"} {
		got, err := ParseCurrency(raw)
		if err != nil {
			t.Fatalf("parse %s: %v", raw, err)
		}
		if got.String() != raw || !got.IsValid() {
			t.Fatalf("unexpected currency %q", got)
		}
	}
	if _, err := ParseCurrency("inr"); err == nil {
		t.Fatalf("expected lowercase currency to be rejected")
	}
	if Currency("BTC").IsValid() {
		t.Fatalf("expected BTC to be invalid")
	}
}

func TestParseStatuses(t *testing.T) {
	if s, err := ParseInvoiceStatus("partially_paid"); err != nil || s != InvoiceStatusPartiallyPaid {
		t.Fatalf("unexpected invoice status %q err=%v", s, err)
	}
	if s, err := ParseDisputeStatus("under_review"); err != nil || s != DisputeStatusUnderReview {
		t.Fatalf("unexpected dispute status %q err=%v", s, err)
	}
	if s, err := ParseAccountStatus("needs_clarification"); err != nil || s != AccountStatusNeedsClarification {
		t.Fatalf("unexpected account status %q err=%v", s, err)
	}
	if _, err := ParseOrderStatus("shipped"); err == nil {
		t.Fatalf("expected unknown order status to fail")
	}
	if !PaymentMethodUPI.IsValid() || PaymentMethod("cash").IsValid() {
		t.Fatalf("payment method validity mismatch")
	}
}
