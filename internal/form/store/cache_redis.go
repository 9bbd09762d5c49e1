package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"festa/internal/form/dto"
	"festa/internal/form/models"
	id "festa/pkg/domain"
)

var cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "festa_form_cache_requests_total",
	Help: "Form cache lookups by result (hit, miss, error)",
}, []string{"result"})

const (
	formKeyPrefix   = "form:"
	DefaultCacheTTL = 5 * time.Minute
)

// FormBackend is the authoritative form storage behind the cache.
type FormBackend interface {
	CreateForm(ctx context.Context, form *models.Form) error
	UpdateForm(ctx context.Context, form *models.Form) error
	FindForm(ctx context.Context, formID id.FormID) (*models.Form, error)
	ListForms(ctx context.Context) ([]*models.Form, error)
}

// CachedFormStore is a read-through Redis cache in front of a FormBackend. Forms
// are cached as their JSON dto; updates delete the key rather than rewrite it.
// Redis failures degrade to the backend.
type CachedFormStore struct {
	backend FormBackend
	client  *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
}

type CacheOption func(*CachedFormStore)

func WithCacheTTL(ttl time.Duration) CacheOption {
	return func(c *CachedFormStore) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *CachedFormStore) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewCachedFormStore(backend FormBackend, client *redis.Client, opts ...CacheOption) *CachedFormStore {
	c := &CachedFormStore{
		backend: backend,
		client:  client,
		ttl:     DefaultCacheTTL,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *CachedFormStore) CreateForm(ctx context.Context, form *models.Form) error {
	return c.backend.CreateForm(ctx, form)
}

func (c *CachedFormStore) UpdateForm(ctx context.Context, form *models.Form) error {
	if err := c.backend.UpdateForm(ctx, form); err != nil {
		return err
	}
	c.invalidate(ctx, form.ID)
	return nil
}

func (c *CachedFormStore) ListForms(ctx context.Context) ([]*models.Form, error) {
	return c.backend.ListForms(ctx)
}

func (c *CachedFormStore) FindForm(ctx context.Context, formID id.FormID) (*models.Form, error) {
	key := formKeyPrefix + formID.String()

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		form, decodeErr := decodeCachedForm(raw)
		if decodeErr == nil {
			cacheRequests.WithLabelValues("hit").Inc()
			return form, nil
		}
		c.logger.WarnContext(ctx, "dropping undecodable cached form", "form_id", formID, "error", decodeErr)
		c.invalidate(ctx, formID)
	case errors.Is(err, redis.Nil):
		cacheRequests.WithLabelValues("miss").Inc()
	default:
		cacheRequests.WithLabelValues("error").Inc()
		c.logger.WarnContext(ctx, "form cache unavailable", "form_id", formID, "error", err)
	}

	form, err := c.backend.FindForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(dto.FromForm(form)); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.logger.WarnContext(ctx, "failed to cache form", "form_id", formID, "error", err)
		}
	}
	return form, nil
}

func (c *CachedFormStore) invalidate(ctx context.Context, formID id.FormID) {
	if err := c.client.Del(ctx, formKeyPrefix+formID.String()).Err(); err != nil {
		c.logger.WarnContext(ctx, "failed to invalidate cached form", "form_id", formID, "error", err)
	}
}

func decodeCachedForm(raw []byte) (*models.Form, error) {
	var doc dto.Form
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal cached form: %w", err)
	}
	return doc.ToModel()
}
