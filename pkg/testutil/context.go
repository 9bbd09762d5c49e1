package testutil

import (
	"context"
	"net/http"
	"time"

	id "festa/pkg/domain"
	"festa/pkg/requestcontext"
)

// WithPrincipal adds an authenticated caller to the request context.
// This simulates what the auth middleware would do for authenticated requests.
func WithPrincipal(req *http.Request, userID id.UserID, email, role string) *http.Request {
	ctx := requestcontext.WithPrincipal(req.Context(), requestcontext.AuthenticatedUser{
		UserID: userID,
		Email:  email,
		Role:   role,
	})
	return req.WithContext(ctx)
}

// WithTime pins the request-scoped clock.
func WithTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}

// WithContextValue adds an arbitrary key-value pair to the request context.
func WithContextValue(req *http.Request, key, value any) *http.Request {
	ctx := context.WithValue(req.Context(), key, value)
	return req.WithContext(ctx)
}
