package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"festa/internal/form/answer"
	"festa/internal/form/events"
	"festa/internal/form/models"
	projectModels "festa/internal/project/models"
	userModels "festa/internal/user/models"
	id "festa/pkg/domain"
	dErrors "festa/pkg/domain-errors"
	"festa/pkg/platform/sentinel"
	"festa/pkg/requestcontext"
)

const (
	kindForm             = "form"
	kindRegistrationForm = "registration_form"
)

// AnswerForm checks ans against the form and stores it as the project's answer,
// replacing any previous one. The form, the project and the types of attached files
// are loaded concurrently.
//
// A rejected answer returns a CodeValidation error whose chain holds the
// *answer.Error describing the first violation.
func (s *Service) AnswerForm(
	ctx context.Context,
	user *userModels.User,
	formID id.FormID,
	projectID id.ProjectID,
	ans answer.Answer,
) (saved *answer.FormAnswer, err error) {
	start := time.Now()
	ctx, span := s.startSpan(ctx, "AnswerForm")
	span.SetAttributes(
		attribute.String("form_id", formID.String()),
		attribute.String("project_id", projectID.String()),
	)
	defer func() {
		s.observeAnswer(start)
		endSpan(span, err)
	}()

	if err := requirePermissions(user, userModels.AnswerForms); err != nil {
		return nil, err
	}

	var (
		form    *models.Form
		project *projectModels.Project
		types   map[id.FileSharingID]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := s.forms.FindForm(gctx, formID)
		if err != nil {
			return storeError(err, "form")
		}
		form = f
		return nil
	})
	g.Go(func() error {
		p, err := s.projects.FindProject(gctx, projectID)
		if err != nil {
			return storeError(err, "project")
		}
		project = p
		return nil
	})
	g.Go(func() error {
		t, err := s.fileTypes(gctx, ans)
		types = t
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !project.IsMember(user.ID) && !user.Can(userModels.UpdateAllFormAnswers) {
		return nil, dErrors.New(dErrors.CodeForbidden, "not a member of the project")
	}
	if !form.IsTargeting(project) {
		return nil, dErrors.New(dErrors.CodeForbidden, "form does not target the project")
	}
	now := requestcontext.Now(ctx)
	if !form.IsOpenAt(now) && !user.Can(userModels.UpdateAllFormAnswers) {
		return nil, dErrors.New(dErrors.CodeOutOfPeriod, "form is not accepting answers")
	}
	if ans, err = withFileTypes(ans, types); err != nil {
		return nil, err
	}
	if err := s.check(ctx, kindForm, form.Items, ans); err != nil {
		return nil, err
	}

	var replaced bool
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.answers.FindFormAnswer(ctx, formID, projectID)
		switch {
		case err == nil:
			existing.Replace(user.ID, ans, now)
			saved, replaced = existing, true
		case errors.Is(err, sentinel.ErrNotFound):
			saved = &answer.FormAnswer{
				ID:        id.FormAnswerID(uuid.New()),
				FormID:    formID,
				ProjectID: projectID,
				AuthorID:  user.ID,
				Items:     ans,
				CreatedAt: now,
				UpdatedAt: now,
			}
		default:
			return storeError(err, "form answer")
		}
		if err := s.answers.SaveFormAnswer(ctx, saved); err != nil {
			return storeError(err, "form answer")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "form answered",
		"form_id", formID,
		"project_id", projectID,
		"user_id", user.ID,
		"replaced", replaced,
		"request_id", requestcontext.RequestID(ctx),
	)
	if s.metrics != nil {
		s.metrics.IncrementAccepted(kindForm)
	}
	s.publish(ctx, events.AnswerSubmitted{
		Type:        events.EventFormAnswerSubmitted,
		AnswerID:    saved.ID,
		FormID:      formID.String(),
		TargetID:    projectID.String(),
		AuthorID:    user.ID,
		Replaced:    replaced,
		SubmittedAt: now,
	})
	return saved, nil
}

// GetFormAnswer returns a project's answer to members of the project and to users
// holding ReadAllFormAnswers.
func (s *Service) GetFormAnswer(ctx context.Context, user *userModels.User, formID id.FormID, projectID id.ProjectID) (*answer.FormAnswer, error) {
	if user == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if !user.Can(userModels.ReadAllFormAnswers) {
		project, err := s.projects.FindProject(ctx, projectID)
		if err != nil {
			return nil, storeError(err, "project")
		}
		if !project.IsMember(user.ID) {
			return nil, dErrors.New(dErrors.CodeForbidden, "not a member of the project")
		}
	}
	a, err := s.answers.FindFormAnswer(ctx, formID, projectID)
	if err != nil {
		return nil, storeError(err, "form answer")
	}
	return a, nil
}

// AnswerRegistrationForm checks ans against a registration form and stores it for the
// pending project. Only the pending project's owner answers, unless the user holds
// UpdateAllFormAnswers.
func (s *Service) AnswerRegistrationForm(
	ctx context.Context,
	user *userModels.User,
	formID id.RegistrationFormID,
	pendingID id.PendingProjectID,
	ans answer.Answer,
) (saved *answer.RegistrationFormAnswer, err error) {
	start := time.Now()
	ctx, span := s.startSpan(ctx, "AnswerRegistrationForm")
	span.SetAttributes(
		attribute.String("registration_form_id", formID.String()),
		attribute.String("pending_project_id", pendingID.String()),
	)
	defer func() {
		s.observeAnswer(start)
		endSpan(span, err)
	}()

	if err := requirePermissions(user, userModels.CreateProjects); err != nil {
		return nil, err
	}

	var (
		form    *models.RegistrationForm
		pending *projectModels.PendingProject
		types   map[id.FileSharingID]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := s.registrationForms.FindRegistrationForm(gctx, formID)
		if err != nil {
			return storeError(err, "registration form")
		}
		form = f
		return nil
	})
	g.Go(func() error {
		p, err := s.projects.FindPendingProject(gctx, pendingID)
		if err != nil {
			return storeError(err, "pending project")
		}
		pending = p
		return nil
	})
	g.Go(func() error {
		t, err := s.fileTypes(gctx, ans)
		types = t
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if pending.OwnerID != user.ID && !user.Can(userModels.UpdateAllFormAnswers) {
		return nil, dErrors.New(dErrors.CodeForbidden, "not the owner of the pending project")
	}
	if !form.IsTargeting(pending) {
		return nil, dErrors.New(dErrors.CodeForbidden, "registration form does not target the project")
	}
	if ans, err = withFileTypes(ans, types); err != nil {
		return nil, err
	}
	if err := s.check(ctx, kindRegistrationForm, form.Items, ans); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	var replaced bool
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.answers.FindRegistrationFormAnswer(ctx, formID, pendingID)
		switch {
		case err == nil:
			existing.Replace(user.ID, ans, now)
			saved, replaced = existing, true
		case errors.Is(err, sentinel.ErrNotFound):
			saved = &answer.RegistrationFormAnswer{
				ID:                 id.FormAnswerID(uuid.New()),
				RegistrationFormID: formID,
				PendingProjectID:   pendingID,
				AuthorID:           user.ID,
				Items:              ans,
				CreatedAt:          now,
				UpdatedAt:          now,
			}
		default:
			return storeError(err, "registration form answer")
		}
		if err := s.answers.SaveRegistrationFormAnswer(ctx, saved); err != nil {
			return storeError(err, "registration form answer")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "registration form answered",
		"registration_form_id", formID,
		"pending_project_id", pendingID,
		"user_id", user.ID,
		"replaced", replaced,
	)
	if s.metrics != nil {
		s.metrics.IncrementAccepted(kindRegistrationForm)
	}
	s.publish(ctx, events.AnswerSubmitted{
		Type:        events.EventRegistrationFormAnswerSubmitted,
		AnswerID:    saved.ID,
		FormID:      formID.String(),
		TargetID:    pendingID.String(),
		AuthorID:    user.ID,
		Replaced:    replaced,
		SubmittedAt: now,
	})
	return saved, nil
}

// check runs the answer engine and records rejections by error kind.
func (s *Service) check(ctx context.Context, formKind string, items models.FormItems, ans answer.Answer) error {
	err := answer.Check(items, ans)
	if err == nil {
		return nil
	}
	checkErr, ok := answer.AsError(err)
	if !ok {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check answer")
	}
	s.logger.InfoContext(ctx, "answer rejected",
		"form_kind", formKind,
		"error_kind", checkErr.Kind,
		"item_id", checkErr.ItemID,
	)
	if s.metrics != nil {
		s.metrics.IncrementRejected(formKind, string(checkErr.Kind))
	}
	return dErrors.Wrap(err, dErrors.CodeValidation, "answer rejected")
}

// fileTypes looks up the media type of every file the answer attaches.
func (s *Service) fileTypes(ctx context.Context, ans answer.Answer) (map[id.FileSharingID]string, error) {
	var ids []id.FileSharingID
	for _, item := range ans {
		if f, ok := item.Body.(answer.File); ok {
			ids = append(ids, f.SharingIDs()...)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	types, err := s.files.FindTypes(ctx, ids)
	if err != nil {
		return nil, storeError(err, "file sharings")
	}
	return types, nil
}

// withFileTypes replaces client-supplied file types with the stored ones and rejects
// unknown sharings.
func withFileTypes(ans answer.Answer, types map[id.FileSharingID]string) (answer.Answer, error) {
	out := make(answer.Answer, len(ans))
	for i, item := range ans {
		out[i] = item
		f, ok := item.Body.(answer.File)
		if !ok {
			continue
		}
		for _, sid := range f.SharingIDs() {
			if _, known := types[sid]; !known {
				return nil, dErrors.New(dErrors.CodeNotFound, "file sharing "+sid.String()+" not found")
			}
		}
		out[i].Body = f.WithTypes(types)
	}
	return out, nil
}

func (s *Service) observeAnswer(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveAnswer(start)
	}
}
