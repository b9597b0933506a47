package pagination

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCount(t *testing.T) {
	assert.Equal(t, DefaultCount, NormalizeCount(0))
	assert.Equal(t, DefaultCount, NormalizeCount(-4))
	assert.Equal(t, 25, NormalizeCount(25))
	assert.Equal(t, MaxCount, NormalizeCount(500))
}

func TestParamsNext(t *testing.T) {
	next, more := Params{Count: 2}.Next(2)
	require.True(t, more)
	assert.Equal(t, Params{Count: 2, Skip: 2}, next)

	_, more = Params{Count: 2, Skip: 2}.Next(1)
	assert.False(t, more)
}

func TestWalkStopsOnShortPage(t *testing.T) {
	data := []int{1, 2, 3, 4, 5}
	var pages []Params
	fetch := func(_ context.Context, p Params) ([]int, error) {
		pages = append(pages, p)
		end := p.Skip + p.Count
		if end > len(data) {
			end = len(data)
		}
		return data[p.Skip:end], nil
	}

	got, err := Collect(context.Background(), Params{Count: 2}, 0, fetch)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, []Params{{Count: 2}, {Count: 2, Skip: 2}, {Count: 2, Skip: 4}}, pages)
}

func TestCollectHonoursLimit(t *testing.T) {
	calls := 0
	fetch := func(_ context.Context, p Params) ([]int, error) {
		calls++
		return []int{p.Skip, p.Skip + 1, p.Skip + 2}, nil
	}

	got, err := Collect(context.Background(), Params{Count: 3}, 4, fetch)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, got)
	assert.Equal(t, 2, calls)
}

func TestWalkPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	err := Walk(context.Background(), Params{}, func(context.Context, Params) ([]int, error) {
		return nil, boom
	}, func(int) error { return nil })
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Walk(ctx, Params{}, func(context.Context, Params) ([]int, error) {
		t.Fatal("fetch should not run on cancelled context")
		return nil, nil
	}, func(int) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
