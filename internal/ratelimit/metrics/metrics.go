package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Rejected    prometheus.Counter
	StoreErrors prometheus.Counter
}

func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "festa_ratelimit_rejected_total",
			Help: "Requests refused because the caller exceeded its rate limit",
		}),
		StoreErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "festa_ratelimit_store_errors_total",
			Help: "Rate limit checks that failed open because the store was unavailable",
		}),
	}
	reg.MustRegister(m.Rejected, m.StoreErrors)
	return m
}

func (m *Metrics) IncrementRejected() {
	m.Rejected.Inc()
}

func (m *Metrics) IncrementStoreErrors() {
	m.StoreErrors.Inc()
}
