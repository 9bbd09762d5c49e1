package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"festa/internal/ratelimit/metrics"
	"festa/internal/ratelimit/models"
	"festa/pkg/platform/httputil"
	"festa/pkg/requestcontext"
)

type Store interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.Result, error)
}

type Middleware struct {
	store   Store
	limit   int
	window  time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Middleware)

func WithMetrics(m *metrics.Metrics) Option {
	return func(mw *Middleware) {
		mw.metrics = m
	}
}

// New limits each user to limit requests per window. A non-positive limit disables
// the middleware.
func New(store Store, limit int, window time.Duration, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{store: store, limit: limit, window: window, logger: logger}
	for _, opt := range opts {
		opt(m)
	}
	if limit <= 0 {
		logger.Info("rate limiting disabled")
	}
	return m
}

// PerUser must run after authentication. Requests without a principal pass through.
// Store failures are logged and the request is let through.
func (m *Middleware) PerUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		principal, ok := requestcontext.Principal(ctx)
		if m.limit <= 0 || !ok {
			next.ServeHTTP(w, r)
			return
		}

		userID := principal.UserID.String()
		result, err := m.store.Allow(ctx, models.UserKey(userID), m.limit, m.window)
		if err != nil {
			m.logger.ErrorContext(ctx, "failed to check user rate limit", "error", err, "user_id", userID)
			if m.metrics != nil {
				m.metrics.IncrementStoreErrors()
			}
			next.ServeHTTP(w, r)
			return
		}

		addRateLimitHeaders(w, result)
		if !result.Allowed {
			if m.metrics != nil {
				m.metrics.IncrementRejected()
			}
			writeExceeded(w, result)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func addRateLimitHeaders(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeExceeded(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, &models.ExceededResponse{
		Error:          "rate_limit_exceeded",
		Message:        "You have exceeded your request quota. Please try again later.",
		QuotaLimit:     result.Limit,
		QuotaRemaining: result.Remaining,
		QuotaReset:     result.ResetAt,
	})
}
