package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/angelmondragon/razorpay-go-client/pkg/config"
)

func TestRecordDeliverySetsTTLOnce(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	count, err := client.RecordDelivery(ctx, "evt_1", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected counter 1 got %d", count)
	}
	if len(mock.expireCalls) != 1 || mock.expireCalls[0].key != "rzp:delivery:evt_1" {
		t.Fatalf("expected expire for first increment, got %+v", mock.expireCalls)
	}

	count, err = client.RecordDelivery(ctx, "evt_1", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected counter 2 got %d", count)
	}
	if len(mock.expireCalls) != 1 {
		t.Fatalf("expire should not be set again")
	}
}

func TestIdempotencyAgainstMiniredis(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	client, err := New(ctx, config.RedisConfig{Address: srv.Addr()}, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	key := client.IdempotencyKey("razorpay_webhook", "evt_1")
	set, err := client.SetNX(ctx, key, "1", time.Minute)
	if err != nil || !set {
		t.Fatalf("first SetNX should win, set=%v err=%v", set, err)
	}
	set, err = client.SetNX(ctx, key, "1", time.Minute)
	if err != nil || set {
		t.Fatalf("second SetNX should lose, set=%v err=%v", set, err)
	}
	if ttl := srv.TTL(key); ttl != time.Minute {
		t.Fatalf("unexpected ttl %v", ttl)
	}

	srv.FastForward(2 * time.Minute)
	set, err = client.SetNX(ctx, key, "1", time.Minute)
	if err != nil || !set {
		t.Fatalf("expired key should be claimable again, set=%v err=%v", set, err)
	}

	if err := client.Del(ctx, key); err != nil {
		t.Fatalf("del: %v", err)
	}
	if srv.Exists(key) {
		t.Fatalf("key should be gone after Del")
	}
	if err := client.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestNewRejectsMissingEndpoint(t *testing.T) {
	if _, err := New(context.Background(), config.RedisConfig{}, nil); err == nil {
		t.Fatalf("expected error without url or address")
	}
	if _, err := New(context.Background(), config.RedisConfig{URL: "://bad"}, nil); err == nil {
		t.Fatalf("expected url parse error")
	}
}

func TestOptionsFromConfigFillsPoolSettings(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{
		URL:         "redis://:pw@localhost:6380/3",
		PoolSize:    7,
		DialTimeout: 2 * time.Second,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6380" || opts.DB != 3 || opts.Password != "pw" {
		t.Fatalf("unexpected parsed options %+v", opts)
	}
	if opts.PoolSize != 7 || opts.DialTimeout != 2*time.Second {
		t.Fatalf("pool settings not applied: %+v", opts)
	}
}

func TestUninitializedClient(t *testing.T) {
	client := &Client{}
	if _, err := client.SetNX(context.Background(), "k", "1", 0); err != errNotInitialized {
		t.Fatalf("expected not initialized, got %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close on empty client should be a no-op: %v", err)
	}
}

func TestKeyBuilders(t *testing.T) {
	client := &Client{}
	if got := client.IdempotencyKey("scope", "id"); got != "rzp:idempotency:scope:id" {
		t.Fatalf("unexpected idempotency key %s", got)
	}
	if got := client.IdempotencyKey("scope", ""); got != "rzp:idempotency:scope" {
		t.Fatalf("empty parts should be skipped, got %s", got)
	}
	if got := client.DeliveryKey("evt_1"); got != "rzp:delivery:evt_1" {
		t.Fatalf("unexpected delivery key %s", got)
	}
}

type mockCmdable struct {
	data        map[string]string
	incr        map[string]int64
	expireCalls []expireCall
}

type expireCall struct {
	key string
	ttl time.Duration
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{
		data: make(map[string]string),
		incr: make(map[string]int64),
	}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	if _, exists := m.data[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	m.data[key] = fmt.Sprint(value)
	return redis.NewBoolResult(true, nil)
}

func (m *mockCmdable) Incr(ctx context.Context, key string) *redis.IntCmd {
	m.incr[key]++
	return redis.NewIntResult(m.incr[key], nil)
}

func (m *mockCmdable) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	m.expireCalls = append(m.expireCalls, expireCall{key: key, ttl: expiration})
	return redis.NewBoolResult(true, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}
