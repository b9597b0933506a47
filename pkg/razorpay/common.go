package razorpay

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/razorpay-go-client/pkg/enums"
	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
	"github.com/angelmondragon/razorpay-go-client/pkg/pagination"
	"github.com/angelmondragon/razorpay-go-client/pkg/types"
)

type (
	// Notes is the free-form key/value map most entities carry.
	Notes = types.Notes
	// UnixTime is a timestamp encoded as unix seconds.
	UnixTime = types.UnixTime
	// IntBool is a boolean encoded as 0 or 1.
	IntBool = types.IntBool
	// RawObject is an opaque JSON object that may arrive as an empty array.
	RawObject = types.RawObject
	// Currency is an ISO 4217 currency code.
	Currency = enums.Currency
)

const (
	CurrencyINR = enums.CurrencyINR
	CurrencyUSD = enums.CurrencyUSD
	CurrencyEUR = enums.CurrencyEUR
	CurrencySGD = enums.CurrencySGD
)

// Flag returns a 0/1 boolean for optional request fields.
func Flag(v bool) *IntBool {
	return types.Bool(v)
}

// At wraps t for timestamp request fields.
func At(t time.Time) UnixTime {
	return types.NewUnixTime(t)
}

// Collection is the list envelope returned by every list endpoint.
type Collection[T any] struct {
	Entity Entity `json:"entity"`
	Count  int    `json:"count"`
	Items  []T    `json:"items" decode:"required"`
}

// Filter holds the time window and offset pagination accepted by list endpoints.
type Filter struct {
	From  UnixTime `json:"from,omitzero"`
	To    UnixTime `json:"to,omitzero"`
	Count int      `json:"count,omitempty"`
	Skip  int      `json:"skip,omitempty"`
}

// Page returns the pagination window of the filter.
func (f Filter) Page() pagination.Params {
	return pagination.Params{Count: f.Count, Skip: f.Skip}
}

// WithPage returns a copy of the filter positioned at page.
func (f Filter) WithPage(page pagination.Params) Filter {
	f.Count = page.Count
	f.Skip = page.Skip
	return f
}

// ListAll drains a list endpoint page by page. The list func receives the
// filter for each page; limit <= 0 collects every item.
func ListAll[T any](ctx context.Context, filter Filter, limit int, list func(context.Context, Filter) (*Collection[T], error)) ([]T, error) {
	return pagination.Collect(ctx, filter.Page(), limit, func(ctx context.Context, page pagination.Params) ([]T, error) {
		coll, err := list(ctx, filter.WithPage(page))
		if err != nil {
			return nil, err
		}
		return coll.Items, nil
	})
}

// Amount is a value in the smallest currency unit (paise for INR).
type Amount int64

// AmountFromDecimal converts a major-unit value such as 199.50 INR into the
// minor-unit amount Razorpay expects. Values with more precision than the
// currency allows are rejected rather than rounded.
func AmountFromDecimal(value decimal.Decimal, currency Currency) (Amount, error) {
	exp := currency.MinorUnitExponent()
	scaled := value.Shift(exp)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("amount %s has more than %d decimal places", value.String(), exp))
	}
	if scaled.IsNegative() {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "amount must not be negative")
	}
	return Amount(scaled.IntPart()), nil
}

// Decimal converts the amount back to major units.
func (a Amount) Decimal(currency Currency) decimal.Decimal {
	return decimal.New(int64(a), -currency.MinorUnitExponent())
}

// Int64 returns the raw minor-unit value.
func (a Amount) Int64() int64 {
	return int64(a)
}

// Offer is a reference to a payment offer applied to an order or payment.
type Offer struct {
	ID OfferID `json:"id"`
}

// Deleted is the result of endpoints that return an empty body or an empty
// JSON array on success.
type Deleted struct{}

// UnmarshalJSON accepts any payload.
func (*Deleted) UnmarshalJSON([]byte) error {
	return nil
}

func (*Deleted) acceptsEmptyBody() {}
