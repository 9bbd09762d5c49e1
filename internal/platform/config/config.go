package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the whole server configuration. Empty URLs disable the component they
// name; the server then falls back to in-memory stores.
type Config struct {
	Server    Server
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	// FormCacheTTL bounds how long a form stays in the Redis read-through cache.
	FormCacheTTL time.Duration
}

// Server captures HTTP server level configuration. ReadTimeout covers the whole
// request body and so also bounds answer uploads.
type Server struct {
	Addr          string
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type KafkaConfig struct {
	Brokers     []string
	AnswerTopic string
	Partitions  int32
}

// RateLimitConfig caps authenticated requests per user. Requests <= 0 disables it.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// FromEnv builds the config from environment variables so main stays lean.
// Malformed numbers and durations are reported rather than silently defaulted.
func FromEnv() (Config, error) {
	e := &envReader{}
	cfg := Config{
		Server: Server{
			Addr: e.str("FESTA_ADDR", ":8080"),
			// Use a default for development - should be overridden in production
			JWTSigningKey: e.str("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
			JWTIssuer:     e.str("JWT_ISSUER", "festa"),
			JWTAudience:   e.str("JWT_AUDIENCE", "festa-api"),

			ReadHeaderTimeout: e.duration("HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
			ReadTimeout:       e.duration("HTTP_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:      e.duration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:       e.duration("HTTP_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout:   e.duration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    e.int("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    e.int("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: e.duration("DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     e.int("REDIS_POOL_SIZE", 10),
			MinIdleConns: e.int("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  e.duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  e.duration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: e.duration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:     splitList(os.Getenv("KAFKA_BROKERS")),
			AnswerTopic: e.str("KAFKA_ANSWER_TOPIC", "festa.form-answers"),
			Partitions:  int32(e.int("KAFKA_ANSWER_TOPIC_PARTITIONS", 3)),
		},
		Log: LogConfig{
			Level:  e.str("LOG_LEVEL", "info"),
			Format: e.str("LOG_FORMAT", "json"),
		},
		RateLimit: RateLimitConfig{
			Requests: e.int("RATE_LIMIT_REQUESTS", 120),
			Window:   e.duration("RATE_LIMIT_WINDOW", time.Minute),
		},
		FormCacheTTL: e.duration("FORM_CACHE_TTL", 5*time.Minute),
	}
	if e.err != nil {
		return Config{}, e.err
	}
	return cfg, nil
}

// envReader keeps the first parse error so FromEnv can read every variable in one
// pass.
type envReader struct {
	err error
}

func (e *envReader) str(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (e *envReader) int(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil && e.err == nil {
		e.err = fmt.Errorf("%s: %w", key, err)
	}
	return n
}

func (e *envReader) duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil && e.err == nil {
		e.err = fmt.Errorf("%s: %w", key, err)
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
