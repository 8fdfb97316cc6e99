// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// Actor is the caller identity asserted for one request: who is acting and
// under which role. It is supplied per request and never stored as shared
// process state, so authorization decisions stay pure and testable.
type Actor struct {
	ID   string
	Role string
}

// ActorKey is the context key for the acting caller.
type ActorKey struct{}

// WithActor returns a context with the caller identity embedded.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, ActorKey{}, actor)
}

// ActorFromContext returns the caller identity from context, or a zero Actor
// if not set.
func ActorFromContext(ctx context.Context) Actor {
	if v := ctx.Value(ActorKey{}); v != nil {
		return v.(Actor)
	}
	return Actor{}
}
