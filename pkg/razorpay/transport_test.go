package razorpay

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/razorpay-go-client/pkg/enums"
	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
)

const (
	testKeyID     = "rzp_test_key"
	testKeySecret = "secret_value"
)

type capturedRequest struct {
	Method      string
	Path        string
	RawQuery    string
	Body        []byte
	User        string
	Pass        string
	HasAuth     bool
	ContentType string
	UserAgent   string
}

func newTestServer(t *testing.T, status int, body string) (*Client, *capturedRequest, *atomic.Int32) {
	t.Helper()
	captured := &capturedRequest{}
	calls := &atomic.Int32{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		raw, _ := io.ReadAll(r.Body)
		user, pass, ok := r.BasicAuth()
		*captured = capturedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			RawQuery:    r.URL.RawQuery,
			Body:        raw,
			User:        user,
			Pass:        pass,
			HasAuth:     ok,
			ContentType: r.Header.Get("Content-Type"),
			UserAgent:   r.Header.Get("User-Agent"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	c, err := New(Options{KeyID: testKeyID, KeySecret: testKeySecret, BaseURL: srv.URL})
	require.NoError(t, err)
	return c, captured, calls
}

func TestGetEncodesQueryWithBasicAuth(t *testing.T) {
	c, req, _ := newTestServer(t, http.StatusOK, `{"entity":"collection","count":0,"items":[]}`)

	out, err := Get[Collection[Order]](context.Background(), c, RequestDescriptor{
		Path:    "/orders",
		Payload: map[string]any{"count": 10},
	})
	require.NoError(t, err)
	assert.Equal(t, EntityCollection, out.Entity)

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/v1/orders", req.Path)
	assert.Equal(t, "count=10", req.RawQuery)
	assert.True(t, req.HasAuth)
	assert.Equal(t, testKeyID, req.User)
	assert.Equal(t, testKeySecret, req.Pass)
	assert.Empty(t, req.Body)
	assert.Contains(t, req.UserAgent, "razorpay-go-client@")
}

func TestPostDecodesSuccessPayload(t *testing.T) {
	c, req, _ := newTestServer(t, http.StatusOK, `{"id":"order_abc","amount":199,"currency":"INR","status":"created"}`)

	order, err := Post[Order](context.Background(), c, RequestDescriptor{
		Path:    "/orders",
		Payload: map[string]any{"amount": 199, "currency": "INR"},
	})
	require.NoError(t, err)
	assert.Equal(t, "order_abc", order.ID.String())
	assert.Equal(t, Amount(199), order.Amount)
	assert.Equal(t, CurrencyINR, order.Currency)
	assert.Equal(t, enums.OrderStatusCreated, order.Status)

	assert.Equal(t, "application/json", req.ContentType)
	assert.JSONEq(t, `{"amount":199,"currency":"INR"}`, string(req.Body))
}

func TestPostReturnsAPIErrorFromEnvelope(t *testing.T) {
	c, _, _ := newTestServer(t, http.StatusOK, `{"error":{"code":"BAD_REQUEST","description":"amount must be positive"}}`)

	_, err := Post[Order](context.Background(), c, RequestDescriptor{
		Path:    "/orders",
		Payload: map[string]any{"amount": 199, "currency": "INR"},
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeAPI))

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "BAD_REQUEST", apiErr.Code)
	assert.Equal(t, "amount must be positive", apiErr.Description)
}

func TestNon2xxIsTransportFailureCarryingAPIError(t *testing.T) {
	body := `{"error":{"code":"BAD_REQUEST_ERROR","description":"The id provided does not exist","source":"business","step":"payment_initiation","reason":"input_validation_failed","metadata":{},"field":"id"}}`
	c, _, _ := newTestServer(t, http.StatusBadRequest, body)

	_, err := Get[Order](context.Background(), c, RequestDescriptor{Path: "/orders/order_missing"})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeTransport))
	assert.Equal(t, http.StatusBadRequest, pkgerrors.TransportStatus(err))

	details, ok := pkgerrors.As(err).Details().(pkgerrors.TransportDetails)
	require.True(t, ok)
	assert.Equal(t, body, details.Body)
	require.NotNil(t, details.APIError)
	assert.Equal(t, "id", details.APIError.Field)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "BAD_REQUEST_ERROR", apiErr.Code)
}

func TestServerErrorWithoutEnvelope(t *testing.T) {
	c, _, _ := newTestServer(t, http.StatusBadGateway, `upstream down`)

	_, err := Get[Order](context.Background(), c, RequestDescriptor{Path: "/orders"})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeTransport))
	_, ok := AsAPIError(err)
	assert.False(t, ok)
	assert.True(t, pkgerrors.As(err).Retryable())
}

func TestUnexpectedShapeIsSerializationFailure(t *testing.T) {
	for _, body := range []string{`{"id":42}`, `{}`, ``, `{"unrelated":true}`} {
		c, _, _ := newTestServer(t, http.StatusOK, body)

		out, err := Get[Order](context.Background(), c, RequestDescriptor{Path: "/orders/order_abc"})
		require.Error(t, err, body)
		assert.Nil(t, out, body)
		assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeSerialization), body)
	}
}

func TestErrorShapedBodyWithNestedMetadataIsAPIError(t *testing.T) {
	c, _, _ := newTestServer(t, http.StatusOK, `{"error":{"code":"X","description":"d","metadata":{"a":{"b":1}}}}`)

	out, err := Get[Order](context.Background(), c, RequestDescriptor{Path: "/orders/order_abc"})
	require.Error(t, err)
	assert.Nil(t, out)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, `{"b":1}`, apiErr.Metadata["a"])
}

func TestConnectionFailureIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	c, err := New(Options{KeyID: testKeyID, KeySecret: testKeySecret, BaseURL: base})
	require.NoError(t, err)

	_, err = Get[Order](context.Background(), c, RequestDescriptor{Path: "/orders"})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeTransport))
	assert.Zero(t, pkgerrors.TransportStatus(err))
}

func TestNestedQueryFailsBeforeRequest(t *testing.T) {
	c, _, calls := newTestServer(t, http.StatusOK, `{}`)

	_, err := Get[Order](context.Background(), c, RequestDescriptor{
		Path:    "/orders",
		Payload: map[string]any{"filter": map[string]any{"from": 1}},
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeSerialization))
	assert.Zero(t, calls.Load())
}

func TestVersionOverride(t *testing.T) {
	c, req, _ := newTestServer(t, http.StatusOK, `{"id":"acc_123","email":"a@b.c"}`)

	acc, err := c.Accounts.Fetch(context.Background(), mustID(t, ParseAccountID, "acc_123"))
	require.NoError(t, err)
	assert.Equal(t, "acc_123", acc.ID.String())
	assert.Equal(t, "/v2/accounts/acc_123", req.Path)
	assert.Equal(t, DefaultVersion, c.Version())
}

func TestDeleteAcceptsEmptyBody(t *testing.T) {
	c, req, _ := newTestServer(t, http.StatusOK, ``)

	err := c.Items.Delete(context.Background(), mustID(t, ParseItemID, "item_1"))
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/v1/items/item_1", req.Path)
}

func TestDeleteAcceptsEmptyArray(t *testing.T) {
	c, _, _ := newTestServer(t, http.StatusOK, `[]`)

	err := c.Addons.Delete(context.Background(), mustID(t, ParseAddonID, "ao_1"))
	require.NoError(t, err)
}

func TestPostWithoutPayloadSendsNoBody(t *testing.T) {
	c, req, _ := newTestServer(t, http.StatusOK, `{"id":"inv_1","status":"issued","notes":[]}`)

	inv, err := c.Invoices.Issue(context.Background(), mustID(t, ParseInvoiceID, "inv_1"))
	require.NoError(t, err)
	assert.Empty(t, req.Body)
	assert.Empty(t, req.ContentType)
	assert.Equal(t, "/v1/invoices/inv_1/issue", req.Path)
	assert.NotNil(t, inv.Notes)
	assert.Empty(t, inv.Notes)
}

func TestNilTypedPayloadSendsEmptyQuery(t *testing.T) {
	c, req, _ := newTestServer(t, http.StatusOK, `{"entity":"collection","count":0,"items":[]}`)

	_, err := c.Orders.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, req.RawQuery)
}

func TestNilClient(t *testing.T) {
	_, err := Get[Order](context.Background(), nil, RequestDescriptor{Path: "/orders"})
	assert.ErrorIs(t, err, errNilClient)
}

func TestRequestBodyIsNotFlattened(t *testing.T) {
	c, req, _ := newTestServer(t, http.StatusOK, `{"id":"plan_1","period":"monthly","interval":1,"item":{"id":"item_1","name":"Gold","amount":500,"currency":"INR"}}`)

	_, err := c.Plans.Create(context.Background(), CreatePlanParams{
		Period: enums.PlanPeriodMonthly,
		Item:   CreateItemParams{Name: "Gold", Amount: 500, Currency: CurrencyINR},
	})
	require.NoError(t, err)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.EqualValues(t, 1, sent["interval"])
	item, ok := sent["item"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Gold", item["name"])
}

func mustID[K idKind](t *testing.T, parse func(string) (ID[K], error), raw string) ID[K] {
	t.Helper()
	id, err := parse(raw)
	require.NoError(t, err)
	return id
}
