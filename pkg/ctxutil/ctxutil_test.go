package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestUserIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	tests := []struct {
		name   string
		ctx    context.Context
		want   uuid.UUID
		wantOK bool
	}{
		{"set", WithUserID(context.Background(), id), id, true},
		{"absent", context.Background(), uuid.Nil, false},
		{"nil uuid", WithUserID(context.Background(), uuid.Nil), uuid.Nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := UserIDFromCtx(tt.ctx)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("UserIDFromCtx = (%s, %v), want (%s, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRequestIDFromCtx(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("empty context: got %q", got)
	}
	if got := RequestIDFromCtx(WithRequestID(context.Background(), "req-1")); got != "req-1" {
		t.Fatalf("got %q, want req-1", got)
	}
}

func TestLogAttrs(t *testing.T) {
	t.Parallel()

	if attrs := LogAttrs(context.Background()); len(attrs) != 0 {
		t.Fatalf("empty context: got %v", attrs)
	}

	id := uuid.New()
	ctx := WithUserID(WithRequestID(context.Background(), "req-2"), id)
	attrs := LogAttrs(ctx)
	if len(attrs) != 2 {
		t.Fatalf("got %d attrs, want 2", len(attrs))
	}
	if attrs[0].Key != "request_id" || attrs[0].Value.String() != "req-2" {
		t.Errorf("attrs[0] = %v", attrs[0])
	}
	if attrs[1].Key != "user_id" || attrs[1].Value.String() != id.String() {
		t.Errorf("attrs[1] = %v", attrs[1])
	}
}
