package razorpay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
)

func TestEncodeQuery(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    string
	}{
		{name: "nil", payload: nil, want: ""},
		{name: "number", payload: map[string]any{"count": 10}, want: "count=10"},
		{name: "string and bool", payload: map[string]any{"receipt": "r 1", "captured": true}, want: "captured=true&receipt=r+1"},
		{name: "large number keeps precision", payload: map[string]any{"amount": int64(9007199254740993)}, want: "amount=9007199254740993"},
		{name: "array repeats key", payload: map[string]any{"expand[]": []string{"card", "emi"}}, want: "expand%5B%5D=card&expand%5B%5D=emi"},
		{name: "null skipped", payload: map[string]any{"skip": nil, "count": 1}, want: "count=1"},
		{
			name: "struct params",
			payload: ListOrdersParams{
				Filter:     Filter{From: At(time.Unix(1700000000, 0)), Count: 5},
				Authorized: Flag(true),
				Expand:     []OrderExpand{OrderExpandPayments, OrderExpandPaymentsCard},
			},
			want: "authorized=1&count=5&expand%5B%5D=payments&expand%5B%5D=payments.card&from=1700000000",
		},
		{name: "typed nil pointer", payload: (*ListOrdersParams)(nil), want: ""},
		{name: "zero ids omitted", payload: ListSubscriptionsParams{}, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values, err := encodeQuery(tc.payload)
			require.NoError(t, err)
			assert.Equal(t, tc.want, values.Encode())
		})
	}
}

func TestEncodeQueryRejectsNestedValues(t *testing.T) {
	tests := []struct {
		name    string
		payload any
	}{
		{name: "nested object", payload: map[string]any{"notes": map[string]string{"a": "b"}}},
		{name: "array of objects", payload: map[string]any{"items": []map[string]any{{"id": 1}}}},
		{name: "nested array", payload: map[string]any{"matrix": [][]int{{1}}}},
		{name: "top-level array", payload: []int{1, 2}},
		{name: "top-level scalar", payload: "count=1"},
		{name: "unsupported type", payload: map[string]any{"ch": make(chan int)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := encodeQuery(tc.payload)
			require.Error(t, err)
			assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeSerialization))
		})
	}
}
