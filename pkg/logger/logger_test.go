package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func decodeLast(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	if err := json.Unmarshal(lines[len(lines)-1], &entry); err != nil {
		t.Fatalf("decode log entry: %v; raw=%s", err, buf.String())
	}
	return entry
}

func TestLoggerErrorIncludesContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf})

	ctx := context.Background()
	ctx = log.WithRequestID(ctx, "req-123")
	ctx = log.WithOperation(ctx, "orders.create")

	log.Error(ctx, "boom", errors.New("boom"))

	entry := decodeLast(t, buf)
	if entry["request_id"] != "req-123" {
		t.Fatalf("expected request_id to be preserved; entry=%v", entry)
	}
	if entry["operation"] != "orders.create" {
		t.Fatalf("expected operation field; entry=%v", entry)
	}
	if entry["error"] != "boom" {
		t.Fatalf("expected error field; entry=%v", entry)
	}
	if entry["service"] != "test" {
		t.Fatalf("expected service name; entry=%v", entry)
	}
}

func TestLoggerWithFieldsDoesNotLeakIntoParent(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Output: buf})

	parent := log.WithEventID(context.Background(), "evt_1")
	_ = log.WithFields(parent, map[string]any{"status": 200})

	log.Info(parent, "parent")
	entry := decodeLast(t, buf)
	if _, ok := entry["status"]; ok {
		t.Fatalf("child field leaked into parent context: %v", entry)
	}
	if entry["event_id"] != "evt_1" {
		t.Fatalf("expected event_id; entry=%v", entry)
	}
}

func TestLoggerWarnStackToggle(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf, WarnStack: true})
	log.Warn(context.Background(), "warny")
	if !bytes.Contains(buf.Bytes(), []byte("\"stack\"")) {
		t.Fatalf("expected stack when warn stack enabled")
	}
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Output: buf})
	log.Debug(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug to be filtered at info level, got %s", buf.String())
	}
}

func TestParseLevelDefaults(t *testing.T) {
	if lvl := ParseLevel(""); lvl != zerolog.InfoLevel {
		t.Fatalf("expected default info level, got %v", lvl)
	}
	if lvl := ParseLevel("invalid"); lvl != zerolog.InfoLevel {
		t.Fatalf("invalid level should fallback to info, got %v", lvl)
	}
	if lvl := ParseLevel(" WARN "); lvl != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %v", lvl)
	}
}
