package middleware

import (
	"context"

	"github.com/christian-keitri/my-app/internal/application/ports"
)

type contextKey string

const sessionContextKey contextKey = "session"

// WithSession injects the verified session claims into the context.
func WithSession(ctx context.Context, claims *ports.SessionClaims) context.Context {
	return context.WithValue(ctx, sessionContextKey, claims)
}

// SessionFromContext returns the session claims from the context, or nil.
func SessionFromContext(ctx context.Context) *ports.SessionClaims {
	v := ctx.Value(sessionContextKey)
	if v == nil {
		return nil
	}
	c, _ := v.(*ports.SessionClaims)
	return c
}
