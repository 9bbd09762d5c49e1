package handler

import (
	"time"

	"festa/internal/form/answer"
	"festa/internal/form/dto"
	"festa/internal/form/models"
	"festa/internal/form/service"
	dErrors "festa/pkg/domain-errors"
)

// FormRequest is the body of POST /forms and PUT /forms/{formID}.
type FormRequest struct {
	dto.FormInput

	content models.FormContent
}

// Validate implements httputil.Validatable.
func (r *FormRequest) Validate() error {
	content, err := r.ToContent()
	if err != nil {
		return invalid(err)
	}
	r.content = content
	return nil
}

func (r *FormRequest) Content() models.FormContent {
	return r.content
}

// RegistrationFormRequest is the body of POST /registration-forms.
type RegistrationFormRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Items       []dto.FormItem `json:"items"`
	Query       dto.Query      `json:"query"`

	input service.RegistrationFormInput
}

func (r *RegistrationFormRequest) Validate() error {
	items, err := dto.ItemsToModel(r.Items)
	if err != nil {
		return invalid(err)
	}
	query, err := r.Query.ToModel()
	if err != nil {
		return invalid(err)
	}
	r.input = service.RegistrationFormInput{
		Name:        r.Name,
		Description: r.Description,
		Items:       items,
		Query:       query,
	}
	return nil
}

func (r *RegistrationFormRequest) Input() service.RegistrationFormInput {
	return r.input
}

// AnswerRequest is the body of the answer endpoints. File types sent by the client
// are ignored; the server looks them up.
type AnswerRequest struct {
	Items dto.Answer `json:"items"`

	parsed answer.Answer
}

func (r *AnswerRequest) Validate() error {
	if r.Items == nil {
		return dErrors.New(dErrors.CodeValidation, "items is required")
	}
	parsed, err := r.Items.ToModel()
	if err != nil {
		return invalid(err)
	}
	r.parsed = parsed
	return nil
}

func (r *AnswerRequest) Answer() answer.Answer {
	return r.parsed
}

// QuotaRequest is the body of POST /files/quota-check.
type QuotaRequest struct {
	Size uint64 `json:"size"`
}

func (r *QuotaRequest) Validate() error {
	if r.Size == 0 {
		return dErrors.New(dErrors.CodeValidation, "size must be positive")
	}
	return nil
}

func invalid(err error) error {
	return dErrors.Wrap(err, dErrors.CodeValidation, err.Error())
}

// FormAnswerResponse is a stored answer to a form.
type FormAnswerResponse struct {
	ID        string     `json:"id"`
	FormID    string     `json:"form_id"`
	ProjectID string     `json:"project_id"`
	AuthorID  string     `json:"author_id"`
	Items     dto.Answer `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func toFormAnswerResponse(a *answer.FormAnswer) FormAnswerResponse {
	return FormAnswerResponse{
		ID:        a.ID.String(),
		FormID:    a.FormID.String(),
		ProjectID: a.ProjectID.String(),
		AuthorID:  a.AuthorID.String(),
		Items:     dto.FromAnswer(a.Items),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type RegistrationFormAnswerResponse struct {
	ID                 string     `json:"id"`
	RegistrationFormID string     `json:"registration_form_id"`
	PendingProjectID   string     `json:"pending_project_id"`
	AuthorID           string     `json:"author_id"`
	Items              dto.Answer `json:"items"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func toRegistrationFormAnswerResponse(a *answer.RegistrationFormAnswer) RegistrationFormAnswerResponse {
	return RegistrationFormAnswerResponse{
		ID:                 a.ID.String(),
		RegistrationFormID: a.RegistrationFormID.String(),
		PendingProjectID:   a.PendingProjectID.String(),
		AuthorID:           a.AuthorID.String(),
		Items:              dto.FromAnswer(a.Items),
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

type FormListResponse struct {
	Forms []dto.Form `json:"forms"`
}

func toFormListResponse(forms []*models.Form) FormListResponse {
	out := FormListResponse{Forms: make([]dto.Form, len(forms))}
	for i, f := range forms {
		out.Forms[i] = dto.FromForm(f)
	}
	return out
}
