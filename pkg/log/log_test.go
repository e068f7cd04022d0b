package log

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}

func TestInitDoesNotPanicOnUnknownLevel(t *testing.T) {
	l := Init(ZapConfig{Level: "loud", Mode: ModeDevelopment, Encoding: EncodingConsole})
	l.Infof(WithRequestID(context.Background(), "x"), "hello %s", "world")
	l.Debug(context.Background(), "debug")
}
