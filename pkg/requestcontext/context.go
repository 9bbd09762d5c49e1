// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Middleware sets these values; services read them without importing net/http.
//
//	principal, ok := requestcontext.Principal(ctx)
//	requestID := requestcontext.RequestID(ctx)
//	now := requestcontext.Now(ctx)
//
// Tests inject them directly:
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"

	id "festa/pkg/domain"
)

type (
	principalKey   struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

var (
	ContextKeyPrincipal   = principalKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// AuthenticatedUser is the caller as the bearer token describes it. Role is the raw
// role name; services parse it.
type AuthenticatedUser struct {
	UserID id.UserID
	Name   string
	Email  string
	Role   string
}

// Principal retrieves the authenticated caller.
func Principal(ctx context.Context) (AuthenticatedUser, bool) {
	p, ok := ctx.Value(ContextKeyPrincipal).(AuthenticatedUser)
	return p, ok
}

// WithPrincipal injects the authenticated caller.
func WithPrincipal(ctx context.Context, p AuthenticatedUser) context.Context {
	return context.WithValue(ctx, ContextKeyPrincipal, p)
}

// UserID returns the caller's id, or the nil id when unauthenticated.
func UserID(ctx context.Context) id.UserID {
	p, _ := Principal(ctx)
	return p.UserID
}

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() if not set (CLI, tests, background work).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context, so that every check within one
// request sees the same instant.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
