// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// Actor identifies the authenticated caller for the duration of a session.
// Role is "STAFF" or "CLIENT"; NationalID is the login identity.
type Actor struct {
	Role       string
	NationalID string
}

// ActorKey is the context key for the session actor.
// Exported so it can be used consistently across packages.
type ActorKey struct{}

// WithActor returns a context with the session actor embedded.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, ActorKey{}, actor)
}

// ActorFromContext returns the session actor from context, or the zero Actor
// if no session is attached.
func ActorFromContext(ctx context.Context) Actor {
	if v := ctx.Value(ActorKey{}); v != nil {
		return v.(Actor)
	}
	return Actor{}
}
