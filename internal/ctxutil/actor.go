// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// ActorKey is the context key for the operator issuing a command.
type ActorKey struct{}

// WithActorID returns a context carrying the operator ID. Batches record it
// and log lines include it.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, ActorKey{}, actorID)
}

// ActorFromContext returns the operator ID, or empty string if not set.
func ActorFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ActorKey{}).(string)
	return id
}
