package log

import (
	"context"
	"testing"
)

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	if got := TraceID(ctx); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}

	ctx = WithTraceID(ctx, "abc-123")
	if got := TraceID(ctx); got != "abc-123" {
		t.Errorf("expected abc-123, got %q", got)
	}

	if got := WithTraceID(ctx, ""); TraceID(got) != "abc-123" {
		t.Error("empty trace id should keep the parent value")
	}
}

func TestInit(t *testing.T) {
	l := Init(ZapConfig{Level: "not-a-level", Mode: ModeProduction, Encoding: EncodingJSON})
	if l == nil {
		t.Fatal("expected logger")
	}
	l.Infof(WithTraceID(context.Background(), "t1"), "hello %s", "world")

	NewNop().Error(context.Background(), "discarded")
}
