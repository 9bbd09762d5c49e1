package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"festa/internal/platform/metrics"
	"festa/pkg/platform/httputil"
	authmw "festa/pkg/platform/middleware/auth"
	request "festa/pkg/platform/middleware/request"
)

// Registrar mounts a group of authenticated endpoints.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Options configures NewRouter.
type Options struct {
	Logger    *slog.Logger
	Validator authmw.JWTValidator
	Metrics   *metrics.Metrics
	// Gatherer serves /metrics; nil uses the default registry.
	Gatherer prometheus.Gatherer
	Health   map[string]HealthCheck
	// RateLimit runs after authentication on every API route when set.
	RateLimit func(http.Handler) http.Handler
}

// NewRouter wires the public probes and every authenticated API group.
func NewRouter(opts Options, apis ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(request.ClientMetadata)
	r.Use(request.Time)
	r.Use(chimw.Recoverer)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Get("/healthz", healthz(opts.Logger, opts.Health))
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth(opts.Validator, opts.Logger))
		if opts.RateLimit != nil {
			r.Use(opts.RateLimit)
		}
		for _, api := range apis {
			api.Register(r)
		}
	})
	return r
}

func healthz(logger *slog.Logger, checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{}
		code := http.StatusOK
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				logger.WarnContext(r.Context(), "health check failed", "dependency", name, "error", err)
				status[name] = "down"
				code = http.StatusServiceUnavailable
				continue
			}
			status[name] = "up"
		}
		httputil.WriteJSON(w, code, status)
	}
}
