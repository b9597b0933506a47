package razorpay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
)

func TestDecodeEnvelopeErrorVariant(t *testing.T) {
	bodies := []string{
		`{"error":{"code":"BAD_REQUEST_ERROR","description":"bad"}}`,
		`{"error":{"code":"BAD_REQUEST_ERROR","description":"bad","source":"NA","step":"NA","reason":"NA","metadata":[]}}`,
		`{"error":{"code":"GATEWAY_ERROR","description":"down","metadata":{"payment_id":"pay_1","order_id":"order_1"},"field":"amount"}}`,
		` {"error":{"code":"SERVER_ERROR"}} `,
		`{"error":{"description":"no code"}}`,
		`{"error":{}}`,
		`{"error":{"code":"X","description":"d","metadata":{"a":{"b":1}}}}`,
		`{"error":{"code":"X","metadata":"gateway"},"id":"order_1"}`,
	}
	for _, body := range bodies {
		out, err := decodeEnvelope[Order]([]byte(body))
		require.Error(t, err, body)
		assert.Nil(t, out)
		assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeAPI), body)
		_, ok := AsAPIError(err)
		assert.True(t, ok, body)
	}
}

func TestDecodeEnvelopeFlattensErrorMetadata(t *testing.T) {
	body := `{"error":{"code":"GATEWAY_ERROR","metadata":{"payment_id":"pay_1","attempt":2,"gateway":{"name":"hdfc"},"note":null}}}`
	_, err := decodeEnvelope[Order]([]byte(body))
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, Notes{
		"payment_id": "pay_1",
		"attempt":    "2",
		"gateway":    `{"name":"hdfc"}`,
		"note":       "",
	}, apiErr.Metadata)

	_, err = decodeEnvelope[Order]([]byte(`{"error":{"code":"X","metadata":[]}}`))
	apiErr, ok = AsAPIError(err)
	require.True(t, ok)
	assert.Empty(t, apiErr.Metadata)
}

func TestDecodeEnvelopeMalformedErrorObject(t *testing.T) {
	_, err := decodeEnvelope[Order]([]byte(`{"error":{"code":400,"description":"bad"}}`))
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeSerialization))
	_, ok := AsAPIError(err)
	assert.False(t, ok)
}

func TestDecodeEnvelopeRejectsUnrecognisedBodies(t *testing.T) {
	for _, body := range []string{``, `null`, `{}`, `""`, `{"unrelated":true}`, `{"error":"none"}`} {
		out, err := decodeEnvelope[Order]([]byte(body))
		require.Error(t, err, body)
		assert.Nil(t, out, body)
		assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeSerialization), body)
	}

	_, err := decodeEnvelope[Collection[Order]]([]byte(`{"entity":"collection","count":0}`))
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeSerialization))
	details, ok := pkgerrors.As(err).Details().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"items": "is required"}, details["fields"])

	_, err = decodeEnvelope[Plan]([]byte(`{"id":"plan_1","item":{"name":"Gold"}}`))
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeSerialization))
}

func TestDecodeEnvelopeEmptyBodyOnlyForDeleted(t *testing.T) {
	for _, body := range []string{``, `null`, `[]`, `{}`} {
		out, err := decodeEnvelope[Deleted]([]byte(body))
		require.NoError(t, err, body)
		assert.NotNil(t, out)
	}
	_, err := decodeEnvelope[Deleted]([]byte(`{"error":{"code":"BAD_REQUEST_ERROR"}}`))
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeAPI))
}

func TestDecodeEnvelopeSuccessVariant(t *testing.T) {
	out, err := decodeEnvelope[Order]([]byte(`{"id":"order_1","amount":100,"currency":"INR","notes":{"k":"v"},"created_at":1700000000}`))
	require.NoError(t, err)
	assert.Equal(t, "order_1", out.ID.String())
	assert.Equal(t, "v", out.Notes["k"])
	assert.Equal(t, int64(1700000000), out.CreatedAt.Unix())
}

func TestDecodeEnvelopeIgnoresNonObjectErrorField(t *testing.T) {
	type withError struct {
		Error string `json:"error"`
	}
	out, err := decodeEnvelope[withError]([]byte(`{"error":"none"}`))
	require.NoError(t, err)
	assert.Equal(t, "none", out.Error)
}

func TestDecodeEnvelopeMalformed(t *testing.T) {
	_, err := decodeEnvelope[Order]([]byte(`{"id":`))
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeSerialization))
}

func TestAPIErrorFormatting(t *testing.T) {
	apiErr := &APIError{
		Code:        "BAD_REQUEST_ERROR",
		Description: "Payment failed",
		Source:      "bank",
		Reason:      "payment_declined",
		Metadata:    Notes{"payment_id": "pay_1", "order_id": "order_1"},
	}
	assert.Equal(t,
		"Razorpay Error: BAD_REQUEST_ERROR: Payment failed source=bank reason=payment_declined metadata={order_id:order_1,payment_id:pay_1}",
		apiErr.Error())
}
