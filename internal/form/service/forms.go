package service

import (
	"context"

	"github.com/google/uuid"

	"festa/internal/form/models"
	projectModels "festa/internal/project/models"
	userModels "festa/internal/user/models"
	id "festa/pkg/domain"
	dErrors "festa/pkg/domain-errors"
	"festa/pkg/requestcontext"
)

// CreateForm validates content and stores it as a new form authored by user.
func (s *Service) CreateForm(ctx context.Context, user *userModels.User, content models.FormContent) (form *models.Form, err error) {
	ctx, span := s.startSpan(ctx, "CreateForm")
	defer func() { endSpan(span, err) }()

	if err := requirePermissions(user, userModels.CreateForms); err != nil {
		return nil, err
	}
	form, err = models.NewForm(id.FormID(uuid.New()), user.ID, content, requestcontext.Now(ctx))
	if err != nil {
		return nil, validation(err, "invalid form")
	}
	if err := s.forms.CreateForm(ctx, form); err != nil {
		return nil, storeError(err, "form")
	}

	s.logger.InfoContext(ctx, "form created",
		"form_id", form.ID,
		"user_id", user.ID,
		"items", form.Items.Len(),
	)
	if s.metrics != nil {
		s.metrics.IncrementFormsCreated()
	}
	return form, nil
}

// UpdateForm replaces a form's content. Once the answer period has started only
// roles holding UpdateFormsInPeriod may change it.
func (s *Service) UpdateForm(ctx context.Context, user *userModels.User, formID id.FormID, content models.FormContent) (form *models.Form, err error) {
	ctx, span := s.startSpan(ctx, "UpdateForm")
	defer func() { endSpan(span, err) }()

	if err := requirePermissions(user, userModels.CreateForms); err != nil {
		return nil, err
	}
	form, err = s.forms.FindForm(ctx, formID)
	if err != nil {
		return nil, storeError(err, "form")
	}
	now := requestcontext.Now(ctx)
	if form.HasStarted(now) {
		if err := requirePermissions(user, userModels.UpdateFormsInPeriod); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeOutOfPeriod, "form answer period has started")
		}
	}
	if err := form.Replace(content, now); err != nil {
		return nil, validation(err, "invalid form")
	}
	if err := s.forms.UpdateForm(ctx, form); err != nil {
		return nil, storeError(err, "form")
	}
	s.logger.InfoContext(ctx, "form updated", "form_id", form.ID, "user_id", user.ID)
	return form, nil
}

// GetForm returns a form to users who may read every form.
func (s *Service) GetForm(ctx context.Context, user *userModels.User, formID id.FormID) (*models.Form, error) {
	if err := requirePermissions(user, userModels.ReadAllForms); err != nil {
		return nil, err
	}
	form, err := s.forms.FindForm(ctx, formID)
	if err != nil {
		return nil, storeError(err, "form")
	}
	return form, nil
}

// ListFormsForProject returns the forms targeting a project, oldest first. Members
// of the project and users holding ReadAllForms may list them.
func (s *Service) ListFormsForProject(ctx context.Context, user *userModels.User, projectID id.ProjectID) (forms []*models.Form, err error) {
	ctx, span := s.startSpan(ctx, "ListFormsForProject")
	defer func() { endSpan(span, err) }()

	if user == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	project, err := s.projects.FindProject(ctx, projectID)
	if err != nil {
		return nil, storeError(err, "project")
	}
	if !project.IsMember(user.ID) && !user.Can(userModels.ReadAllForms) {
		return nil, dErrors.New(dErrors.CodeForbidden, "not a member of the project")
	}
	all, err := s.forms.ListForms(ctx)
	if err != nil {
		return nil, storeError(err, "forms")
	}
	forms = make([]*models.Form, 0, len(all))
	for _, f := range all {
		if f.IsTargeting(project) {
			forms = append(forms, f)
		}
	}
	return forms, nil
}

// RegistrationFormInput is the authored part of a registration form.
type RegistrationFormInput struct {
	Name        string
	Description string
	Items       models.FormItems
	Query       projectModels.Query
}

func (s *Service) CreateRegistrationForm(ctx context.Context, user *userModels.User, in RegistrationFormInput) (form *models.RegistrationForm, err error) {
	ctx, span := s.startSpan(ctx, "CreateRegistrationForm")
	defer func() { endSpan(span, err) }()

	if err := requirePermissions(user, userModels.CreateRegistrationForms); err != nil {
		return nil, err
	}
	form, err = models.NewRegistrationForm(
		id.RegistrationFormID(uuid.New()), user.ID,
		in.Name, in.Description, in.Items, in.Query,
		requestcontext.Now(ctx),
	)
	if err != nil {
		return nil, validation(err, "invalid registration form")
	}
	if err := s.registrationForms.CreateRegistrationForm(ctx, form); err != nil {
		return nil, storeError(err, "registration form")
	}
	s.logger.InfoContext(ctx, "registration form created", "registration_form_id", form.ID, "user_id", user.ID)
	return form, nil
}
