package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festa/pkg/requestcontext"
)

type stubValidator struct {
	claims *JWTClaims
	err    error
}

func (v stubValidator) ValidateToken(string) (*JWTClaims, error) {
	return v.claims, v.err
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userID := uuid.New()

	serve := func(v JWTValidator, header string) (*httptest.ResponseRecorder, *requestcontext.AuthenticatedUser) {
		var seen *requestcontext.AuthenticatedUser
		h := RequireAuth(v, logger)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			if p, ok := requestcontext.Principal(r.Context()); ok {
				seen = &p
			}
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec, seen
	}

	t.Run("valid token sets the principal", func(t *testing.T) {
		v := stubValidator{claims: &JWTClaims{UserID: userID.String(), Email: "a@example.com", Role: "committee"}}
		rec, p := serve(v, "Bearer token")
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, p)
		assert.Equal(t, userID.String(), p.UserID.String())
		assert.Equal(t, "committee", p.Role)
	})

	t.Run("missing header", func(t *testing.T) {
		rec, p := serve(stubValidator{}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, p)
		assert.Contains(t, rec.Body.String(), `"error":"unauthorized"`)
	})

	t.Run("rejected token", func(t *testing.T) {
		rec, p := serve(stubValidator{err: errors.New("expired")}, "Bearer token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, p)
	})

	t.Run("subject is not a user id", func(t *testing.T) {
		rec, p := serve(stubValidator{claims: &JWTClaims{UserID: "nope"}}, "Bearer token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, p)
	})
}
