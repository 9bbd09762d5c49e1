package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// Metrics provides observability for form answering.
// Tracks accepted and rejected answers by error kind and the answer path duration.
type Metrics struct {
	AnswersAccepted  *prometheus.CounterVec
	AnswersRejected  *prometheus.CounterVec
	FormsCreated     prometheus.Counter
	AnswerDuration   prometheus.Histogram
	EventPublishFail prometheus.Counter
}

// New registers the form metrics with the default registerer.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the form metrics with reg; tests pass a fresh registry.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		AnswersAccepted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "festa_form_answers_accepted_total",
			Help: "Answers that passed checking and were stored, by form kind",
		}, []string{"form_kind"}),
		AnswersRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "festa_form_answers_rejected_total",
			Help: "Answers rejected by the checker, by form kind and error kind",
		}, []string{"form_kind", "error_kind"}),
		FormsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "festa_forms_created_total",
			Help: "Total number of forms created",
		}),
		AnswerDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "festa_answer_form_duration_seconds",
			Help:    "Duration of answer submissions, including loading and storing",
			Buckets: durationBuckets,
		}),
		EventPublishFail: f.NewCounter(prometheus.CounterOpts{
			Name: "festa_answer_event_publish_failures_total",
			Help: "Answer events that could not be published after the answer was stored",
		}),
	}
}

// IncrementAccepted records a stored answer. formKind is "form" or "registration_form".
func (m *Metrics) IncrementAccepted(formKind string) {
	m.AnswersAccepted.WithLabelValues(formKind).Inc()
}

func (m *Metrics) IncrementRejected(formKind, errorKind string) {
	m.AnswersRejected.WithLabelValues(formKind, errorKind).Inc()
}

func (m *Metrics) IncrementFormsCreated() {
	m.FormsCreated.Inc()
}

func (m *Metrics) IncrementEventPublishFailures() {
	m.EventPublishFail.Inc()
}

// ObserveAnswer records the duration of an answer submission.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveAnswer(start time.Time) {
	m.AnswerDuration.Observe(time.Since(start).Seconds())
}
