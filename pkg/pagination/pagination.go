package pagination

import (
	"context"
	"errors"
)

const (
	// DefaultCount is the page size Razorpay applies when count is omitted.
	DefaultCount = 10
	// MaxCount caps how many entities a single list call can request.
	MaxCount = 100
)

// ErrStop can be returned by a visit func to end iteration early without error.
var ErrStop = errors.New("pagination: stop")

// Params holds Razorpay offset pagination inputs.
type Params struct {
	Count int
	Skip  int
}

// NormalizeCount enforces the default and maximum page sizes.
func NormalizeCount(count int) int {
	if count <= 0 {
		return DefaultCount
	}
	if count > MaxCount {
		return MaxCount
	}
	return count
}

// Normalize returns params with a bounded count and a non-negative skip.
func (p Params) Normalize() Params {
	out := Params{Count: NormalizeCount(p.Count), Skip: p.Skip}
	if out.Skip < 0 {
		out.Skip = 0
	}
	return out
}

// Next returns the params for the page after one that returned received items.
// The second result is false once a short page signals the end of the listing.
func (p Params) Next(received int) (Params, bool) {
	n := p.Normalize()
	if received < n.Count {
		return n, false
	}
	return Params{Count: n.Count, Skip: n.Skip + received}, true
}

// FetchFunc loads one page of items.
type FetchFunc[T any] func(ctx context.Context, page Params) ([]T, error)

// Walk fetches consecutive pages starting at start and calls visit for every
// item until a short page is returned, visit returns ErrStop, or ctx is done.
func Walk[T any](ctx context.Context, start Params, fetch FetchFunc[T], visit func(T) error) error {
	page := start.Normalize()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		items, err := fetch(ctx, page)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := visit(item); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
		}
		next, more := page.Next(len(items))
		if !more {
			return nil
		}
		page = next
	}
}

// Collect gathers up to limit items across pages. A limit <= 0 collects everything.
func Collect[T any](ctx context.Context, start Params, limit int, fetch FetchFunc[T]) ([]T, error) {
	var out []T
	err := Walk(ctx, start, fetch, func(item T) error {
		out = append(out, item)
		if limit > 0 && len(out) >= limit {
			return ErrStop
		}
		return nil
	})
	return out, err
}
