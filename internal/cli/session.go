package cli

import (
	"context"

	"github.com/example/segura/internal/config"
	"github.com/example/segura/internal/ctxutil"
)

// sessionContext builds the request context for a CLI invocation. When a
// login session is stored the actor is attached; otherwise the context is
// anonymous and the services decide what an anonymous caller may do.
func sessionContext() context.Context {
	ctx := context.Background()
	session, err := config.LoadSession()
	if err != nil {
		return ctx
	}
	return ctxutil.WithActor(ctx, ctxutil.Actor{
		Role:       session.Role,
		NationalID: session.NationalID,
	})
}
