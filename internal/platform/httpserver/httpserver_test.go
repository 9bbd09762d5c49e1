package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"festa/internal/platform/config"
)

func TestNew(t *testing.T) {
	handler := http.NotFoundHandler()

	t.Run("configured timeouts", func(t *testing.T) {
		srv := New(config.Server{
			Addr:              ":9000",
			ReadHeaderTimeout: time.Second,
			ReadTimeout:       2 * time.Second,
			WriteTimeout:      3 * time.Second,
			IdleTimeout:       4 * time.Second,
		}, handler)

		assert.Equal(t, ":9000", srv.Addr)
		assert.Equal(t, time.Second, srv.ReadHeaderTimeout)
		assert.Equal(t, 2*time.Second, srv.ReadTimeout)
		assert.Equal(t, 3*time.Second, srv.WriteTimeout)
		assert.Equal(t, 4*time.Second, srv.IdleTimeout)
	})

	t.Run("zero timeouts fall back", func(t *testing.T) {
		srv := New(config.Server{Addr: ":9000", WriteTimeout: -time.Second}, handler)

		assert.Equal(t, defaultReadHeaderTimeout, srv.ReadHeaderTimeout)
		assert.Equal(t, defaultReadTimeout, srv.ReadTimeout)
		assert.Equal(t, defaultWriteTimeout, srv.WriteTimeout)
		assert.Equal(t, defaultIdleTimeout, srv.IdleTimeout)
	})
}
