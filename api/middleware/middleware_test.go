package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angelmondragon/razorpay-go-client/pkg/logger"
	"github.com/angelmondragon/razorpay-go-client/pkg/razorpay"
)

func TestRequestIDEchoesOrGenerates(t *testing.T) {
	handler := RequestID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "req-123" {
		t.Fatalf("expected echoed request id, got %q", got)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := rec.Header().Get(RequestIDHeader); got == "" {
		t.Fatalf("expected generated request id")
	}
}

func TestLoggingRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "test", Output: &buf})
	handler := Logging(logg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/webhooks/razorpay", nil))

	out := buf.String()
	if !strings.Contains(out, `"status":202`) || !strings.Contains(out, `"path":"/webhooks/razorpay"`) {
		t.Fatalf("unexpected log output %s", out)
	}
}

func TestRecovererWritesInternalError(t *testing.T) {
	handler := Recoverer(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "INTERNAL_ERROR") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestRequestIDTagsRazorpayEventID(t *testing.T) {
	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "test", Output: &buf})
	handler := RequestID(logg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logg.Info(r.Context(), "handled")
	}))

	req := httptest.NewRequest(http.MethodPost, "/webhooks/razorpay", nil)
	req.Header.Set(razorpay.EventIDHeader, "evt_J2x9")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if !strings.Contains(out, `"event_id":"evt_J2x9"`) || !strings.Contains(out, `"request_id":`) {
		t.Fatalf("expected request and event ids in %s", out)
	}
}

func TestRecovererLogsDeliveryFields(t *testing.T) {
	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "test", Output: &buf})
	handler := Recoverer(logg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodPost, "/webhooks/razorpay", nil)
	req.Header.Set(razorpay.EventIDHeader, "evt_J2x9")
	req.Header.Set(razorpay.SignatureHeader, "abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	out := buf.String()
	for _, want := range []string{`"webhook.panic_recovered"`, `"event_id":"evt_J2x9"`, `"signed":true`, `"path":"/webhooks/razorpay"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
}
