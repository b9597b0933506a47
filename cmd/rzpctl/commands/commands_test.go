package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/razorpay-go-client/pkg/logger"
	"github.com/angelmondragon/razorpay-go-client/pkg/razorpay"
)

func mockFactory(t *testing.T) (ClientFactory, *httpmock.MockTransport) {
	t.Helper()
	mock := httpmock.NewMockTransport()
	return func(context.Context, *logger.Logger) (*razorpay.Client, error) {
		return razorpay.New(razorpay.Options{
			KeyID:      "rzp_test_cli",
			KeySecret:  "secret",
			HTTPClient: &http.Client{Transport: mock},
		})
	}, mock
}

func run(t *testing.T, factory ClientFactory, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(factory)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestOrdersCreateConvertsAmount(t *testing.T) {
	factory, mock := mockFactory(t)
	var sent map[string]any
	mock.RegisterResponder(http.MethodPost, "https://api.razorpay.com/v1/orders", func(req *http.Request) (*http.Response, error) {
		if err := json.NewDecoder(req.Body).Decode(&sent); err != nil {
			return nil, err
		}
		return httpmock.NewStringResponse(http.StatusOK, `{"id":"order_1","entity":"order","amount":49900,"currency":"INR","status":"created"}`), nil
	})

	out, err := run(t, factory, "", "orders", "create", "--amount", "499.00", "--note", "plan=gold")
	require.NoError(t, err)
	assert.EqualValues(t, 49900, sent["amount"])
	assert.Equal(t, "INR", sent["currency"])
	assert.Equal(t, map[string]any{"plan": "gold"}, sent["notes"])
	assert.True(t, strings.HasPrefix(sent["receipt"].(string), "rzpctl_"))
	assert.Contains(t, out, `"id": "order_1"`)
}

func TestOrdersCreateRejectsBadInputBeforeCalling(t *testing.T) {
	factory, mock := mockFactory(t)

	_, err := run(t, factory, "", "orders", "create", "--amount", "4.999")
	assert.Error(t, err)
	_, err = run(t, factory, "", "orders", "create", "--amount", "10", "--note", "novalue")
	assert.Error(t, err)
	_, err = run(t, factory, "", "orders", "fetch", "pay_1")
	assert.Error(t, err)
	assert.Zero(t, mock.GetTotalCallCount())
}

func TestOrdersListAllWalksPages(t *testing.T) {
	factory, mock := mockFactory(t)
	mock.RegisterResponderWithQuery(http.MethodGet, "https://api.razorpay.com/v1/orders", "authorized=1&count=1",
		httpmock.NewStringResponder(http.StatusOK, `{"entity":"collection","count":1,"items":[{"id":"order_1"}]}`))
	mock.RegisterResponderWithQuery(http.MethodGet, "https://api.razorpay.com/v1/orders", "authorized=1&count=1&skip=1",
		httpmock.NewStringResponder(http.StatusOK, `{"entity":"collection","count":0,"items":[]}`))

	out, err := run(t, factory, "", "orders", "list", "--all", "--count", "1", "--authorized")
	require.NoError(t, err)

	var orders []razorpay.Order
	require.NoError(t, json.Unmarshal([]byte(out), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "order_1", orders[0].ID.String())
}

func TestPaymentsCapture(t *testing.T) {
	factory, mock := mockFactory(t)
	mock.RegisterResponder(http.MethodPost, "https://api.razorpay.com/v1/payments/pay_1/capture",
		httpmock.NewStringResponder(http.StatusOK, `{"id":"pay_1","entity":"payment","amount":1000,"currency":"INR","status":"captured","captured":true}`))

	out, err := run(t, factory, "", "payments", "capture", "pay_1", "--amount", "10")
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "captured"`)
}

func TestPaymentsFetchSurfacesAPIError(t *testing.T) {
	factory, mock := mockFactory(t)
	mock.RegisterResponder(http.MethodGet, "https://api.razorpay.com/v1/payments/pay_missing",
		httpmock.NewStringResponder(http.StatusBadRequest, `{"error":{"code":"BAD_REQUEST_ERROR","description":"The id provided does not exist"}}`))

	_, err := run(t, factory, "", "payments", "fetch", "pay_missing")
	require.Error(t, err)
	apiErr, ok := razorpay.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "BAD_REQUEST_ERROR", apiErr.Code)
}

func TestWebhookSignAndVerify(t *testing.T) {
	body := `{"entity":"event","account_id":"acc_1","event":"refund.processed","contains":["refund"],"payload":{"refund":{"entity":{"id":"rfnd_1"}}},"created_at":1600000000}`

	sig, err := run(t, nil, body, "webhook", "sign", "--secret", "whsec")
	require.NoError(t, err)
	sig = strings.TrimSpace(sig)
	assert.Equal(t, razorpay.Sign([]byte(body), "whsec"), sig)

	out, err := run(t, nil, body, "webhook", "verify", "--secret", "whsec", "--signature", sig)
	require.NoError(t, err)
	assert.Contains(t, out, `"event": "refund.processed"`)

	_, err = run(t, nil, body, "webhook", "verify", "--secret", "other", "--signature", sig)
	assert.Error(t, err)
}
