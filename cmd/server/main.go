package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/twmb/franz-go/pkg/kgo"
	"golang.org/x/sync/errgroup"

	fileStore "festa/internal/file/store"
	"festa/internal/form/events"
	formHandler "festa/internal/form/handler"
	formMetrics "festa/internal/form/metrics"
	"festa/internal/form/service"
	formStore "festa/internal/form/store"
	httpapi "festa/internal/http"
	jwttoken "festa/internal/jwt_token"
	"festa/internal/platform/config"
	"festa/internal/platform/db"
	"festa/internal/platform/httpserver"
	"festa/internal/platform/kafka"
	"festa/internal/platform/logger"
	"festa/internal/platform/metrics"
	"festa/internal/platform/redis"
	projectStore "festa/internal/project/store"
	ratelimitMetrics "festa/internal/ratelimit/metrics"
	ratelimit "festa/internal/ratelimit/middleware"
	ratelimitStore "festa/internal/ratelimit/store"
	"festa/pkg/platform/tx"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// backends holds whichever infrastructure the config enabled.
type backends struct {
	forms         service.FormStore
	registrations service.RegistrationFormStore
	answers       service.AnswerStore
	projects      service.ProjectStore
	files         service.FileStore
	txRunner      tx.Runner
	publisher     service.EventPublisher
	limiter       ratelimit.Store
	health        map[string]httpapi.HealthCheck
	closers       []func()
}

func (b *backends) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	b, err := buildBackends(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer b.close()

	svc := service.New(b.forms, b.registrations, b.answers, b.projects, b.files,
		service.WithLogger(log),
		service.WithMetrics(formMetrics.New()),
		service.WithPublisher(b.publisher),
		service.WithTxRunner(b.txRunner),
	)

	limiter := ratelimit.New(b.limiter, cfg.RateLimit.Requests, cfg.RateLimit.Window, log,
		ratelimit.WithMetrics(ratelimitMetrics.New()))

	jwtService := jwttoken.NewJWTService(cfg.Server.JWTSigningKey, cfg.Server.JWTIssuer, cfg.Server.JWTAudience)
	router := httpapi.NewRouter(httpapi.Options{
		Logger:    log,
		Validator: jwttoken.NewJWTServiceAdapter(jwtService),
		Metrics:   metrics.New(),
		Health:    b.health,
		RateLimit: limiter.PerUser,
	}, formHandler.New(svc, log))

	srv := httpserver.New(cfg.Server, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting festa", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func buildBackends(ctx context.Context, cfg config.Config, log *slog.Logger) (*backends, error) {
	b := &backends{
		limiter: ratelimitStore.NewInMemory(),
		health:  map[string]httpapi.HealthCheck{},
	}

	if cfg.Database.URL == "" {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		forms := formStore.NewInMemory()
		b.forms, b.registrations, b.answers = forms, forms, forms
		b.projects = projectStore.NewInMemory()
		b.files = fileStore.NewInMemory()
		b.txRunner = &tx.LockRunner{}
	} else {
		pool, err := db.Open(ctx, cfg.Database.URL, db.Options{
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		})
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() { _ = pool.Close() })
		if err := db.Migrate(ctx, pool); err != nil {
			b.close()
			return nil, err
		}
		forms := formStore.NewPostgres(pool)
		b.forms, b.registrations, b.answers = forms, forms, forms
		b.projects = projectStore.NewPostgres(pool)
		b.files = fileStore.NewPostgres(pool)
		b.txRunner = tx.NewPostgresRunner(pool)
		b.health["postgres"] = pingDB(pool)
	}

	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		b.close()
		return nil, err
	}
	if rdb != nil {
		b.closers = append(b.closers, func() { _ = rdb.Close() })
		b.forms = formStore.NewCachedFormStore(b.forms, rdb.Client,
			formStore.WithCacheTTL(cfg.FormCacheTTL),
			formStore.WithCacheLogger(log),
		)
		b.limiter = ratelimitStore.NewRedis(rdb.Client)
		b.health["redis"] = rdb.Health
	}

	if len(cfg.Kafka.Brokers) == 0 {
		log.Warn("KAFKA_BROKERS not set, answer events are only logged")
		b.publisher = events.LogPublisher{Logger: log}
		return b, nil
	}
	client, err := kafka.NewProducer(cfg.Kafka.Brokers, kgo.DefaultProduceTopic(cfg.Kafka.AnswerTopic))
	if err != nil {
		b.close()
		return nil, err
	}
	b.closers = append(b.closers, client.Close)
	if err := kafka.EnsureTopic(ctx, client, cfg.Kafka.AnswerTopic, cfg.Kafka.Partitions, -1, log); err != nil {
		b.close()
		return nil, err
	}
	b.publisher = events.NewKafkaPublisher(client, cfg.Kafka.AnswerTopic, log)
	b.health["kafka"] = client.Ping
	return b, nil
}

func pingDB(pool *sql.DB) httpapi.HealthCheck {
	return pool.PingContext
}
