package ctxutil

import (
	"context"
	"testing"
)

func TestActorFromContext(t *testing.T) {
	if got := ActorFromContext(context.Background()); got != "" {
		t.Errorf("expected empty actor, got %q", got)
	}

	ctx := WithActorID(context.Background(), "dock-3")
	if got := ActorFromContext(ctx); got != "dock-3" {
		t.Errorf("expected dock-3, got %q", got)
	}
}
