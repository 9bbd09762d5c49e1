package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"festa/internal/form/answer"
	"festa/internal/form/events"
	"festa/internal/form/metrics"
	"festa/internal/form/models"
	projectModels "festa/internal/project/models"
	id "festa/pkg/domain"
	"festa/pkg/platform/tx"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

type FormStore interface {
	CreateForm(ctx context.Context, form *models.Form) error
	UpdateForm(ctx context.Context, form *models.Form) error
	FindForm(ctx context.Context, formID id.FormID) (*models.Form, error)
	ListForms(ctx context.Context) ([]*models.Form, error)
}

type RegistrationFormStore interface {
	CreateRegistrationForm(ctx context.Context, form *models.RegistrationForm) error
	FindRegistrationForm(ctx context.Context, formID id.RegistrationFormID) (*models.RegistrationForm, error)
}

type AnswerStore interface {
	FindFormAnswer(ctx context.Context, formID id.FormID, projectID id.ProjectID) (*answer.FormAnswer, error)
	SaveFormAnswer(ctx context.Context, a *answer.FormAnswer) error
	FindRegistrationFormAnswer(ctx context.Context, formID id.RegistrationFormID, pendingID id.PendingProjectID) (*answer.RegistrationFormAnswer, error)
	SaveRegistrationFormAnswer(ctx context.Context, a *answer.RegistrationFormAnswer) error
}

type ProjectStore interface {
	FindProject(ctx context.Context, projectID id.ProjectID) (*projectModels.Project, error)
	FindPendingProject(ctx context.Context, pendingID id.PendingProjectID) (*projectModels.PendingProject, error)
}

type FileStore interface {
	FindTypes(ctx context.Context, ids []id.FileSharingID) (map[id.FileSharingID]string, error)
	SumUsage(ctx context.Context, ownerID id.UserID) (uint64, error)
}

type EventPublisher interface {
	PublishAnswerSubmitted(ctx context.Context, e events.AnswerSubmitted) error
}

// Service orchestrates form authoring and answering.
type Service struct {
	forms             FormStore
	registrationForms RegistrationFormStore
	answers           AnswerStore
	projects          ProjectStore
	files             FileStore
	tx                tx.Runner
	publisher         EventPublisher
	logger            *slog.Logger
	metrics           *metrics.Metrics
	tracer            trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithPublisher(p EventPublisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithTxRunner makes answer read-modify-write cycles run in one transaction.
func WithTxRunner(r tx.Runner) Option {
	return func(s *Service) {
		s.tx = r
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service.
func New(
	forms FormStore,
	registrationForms RegistrationFormStore,
	answers AnswerStore,
	projects ProjectStore,
	files FileStore,
	opts ...Option,
) *Service {
	s := &Service{
		forms:             forms,
		registrationForms: registrationForms,
		answers:           answers,
		projects:          projects,
		files:             files,
		logger:            slog.Default(),
		tracer:            otel.Tracer("festa/internal/form/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tx == nil {
		s.tx = &tx.LockRunner{}
	}
	return s
}

func (s *Service) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "form."+name)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *Service) publish(ctx context.Context, e events.AnswerSubmitted) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishAnswerSubmitted(ctx, e); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish answer event",
			"type", e.Type,
			"form_id", e.FormID,
			"target_id", e.TargetID,
			"error", err,
		)
		if s.metrics != nil {
			s.metrics.IncrementEventPublishFailures()
		}
	}
}
