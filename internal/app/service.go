// Package app implements the primary ports: the record services that
// orchestrate authorization, validation, referential prerequisites and
// storage writes.
package app

import (
	"context"

	"github.com/example/segura/internal/core/access"
	"github.com/example/segura/internal/ctxutil"
	"github.com/example/segura/internal/ports/primary"
)

// actorFrom resolves the session actor from the context. The zero actor is
// returned for unauthenticated callers; operations that require a session
// use requireActor instead.
func actorFrom(ctx context.Context) (access.Role, string) {
	actor := ctxutil.ActorFromContext(ctx)
	return access.Role(actor.Role), actor.NationalID
}

// requireActor resolves the session actor and rejects unauthenticated or
// unknown-role callers.
func requireActor(ctx context.Context) (access.Role, string, error) {
	role, nationalID := actorFrom(ctx)
	if !role.Valid() {
		return "", "", &primary.AuthorizationDeniedError{Reason: "login required"}
	}
	return role, nationalID, nil
}

// denied converts a failed guard into the caller-facing error.
func denied(result access.GuardResult) error {
	return &primary.AuthorizationDeniedError{Reason: result.Reason}
}

// authorizeWrite evaluates the write guard and converts a refusal into the
// caller-facing error. This runs before any repository call.
func authorizeWrite(ctx access.WriteContext) error {
	if result := access.CanWrite(ctx); !result.Allowed {
		return denied(result)
	}
	return nil
}
