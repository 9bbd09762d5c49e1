package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"festa/internal/form/answer"
	"festa/internal/form/dto"
	"festa/internal/form/models"
	"festa/internal/form/service"
	userModels "festa/internal/user/models"
	id "festa/pkg/domain"
	dErrors "festa/pkg/domain-errors"
	"festa/pkg/platform/httputil"
	"festa/pkg/requestcontext"
)

// Service defines the form operations the HTTP layer exposes.
type Service interface {
	CreateForm(ctx context.Context, user *userModels.User, content models.FormContent) (*models.Form, error)
	UpdateForm(ctx context.Context, user *userModels.User, formID id.FormID, content models.FormContent) (*models.Form, error)
	GetForm(ctx context.Context, user *userModels.User, formID id.FormID) (*models.Form, error)
	ListFormsForProject(ctx context.Context, user *userModels.User, projectID id.ProjectID) ([]*models.Form, error)
	AnswerForm(ctx context.Context, user *userModels.User, formID id.FormID, projectID id.ProjectID, ans answer.Answer) (*answer.FormAnswer, error)
	GetFormAnswer(ctx context.Context, user *userModels.User, formID id.FormID, projectID id.ProjectID) (*answer.FormAnswer, error)
	CreateRegistrationForm(ctx context.Context, user *userModels.User, in service.RegistrationFormInput) (*models.RegistrationForm, error)
	AnswerRegistrationForm(ctx context.Context, user *userModels.User, formID id.RegistrationFormID, pendingID id.PendingProjectID, ans answer.Answer) (*answer.RegistrationFormAnswer, error)
	EnsureFileQuota(ctx context.Context, user *userModels.User, incoming uint64) error
}

// Handler wires form endpoints to the form service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts form endpoints on the router. Every route expects the auth
// middleware to have set the request principal.
func (h *Handler) Register(r chi.Router) {
	r.Post("/forms", h.HandleCreateForm)
	r.Get("/forms/{formID}", h.HandleGetForm)
	r.Put("/forms/{formID}", h.HandleUpdateForm)
	r.Get("/projects/{projectID}/forms", h.HandleListProjectForms)
	r.Put("/forms/{formID}/answers/{projectID}", h.HandleAnswerForm)
	r.Get("/forms/{formID}/answers/{projectID}", h.HandleGetFormAnswer)
	r.Post("/registration-forms", h.HandleCreateRegistrationForm)
	r.Put("/registration-forms/{formID}/answers/{pendingProjectID}", h.HandleAnswerRegistrationForm)
	r.Post("/files/quota-check", h.HandleQuotaCheck)
}

// currentUser turns the token principal into a domain user.
func currentUser(ctx context.Context) (*userModels.User, error) {
	p, ok := requestcontext.Principal(ctx)
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	role, err := userModels.ParseRole(p.Role)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "token carries an unknown role")
	}
	user, err := userModels.NewUser(p.UserID, p.Name, p.Email, role)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "token carries an invalid user")
	}
	return user, nil
}

// writeError sends rejected answers as {"error": <kind>, "item_id": ...} and every
// other error through the shared envelope.
func (h *Handler) writeError(w http.ResponseWriter, ctx context.Context, op string, err error) {
	if checkErr, ok := answer.AsError(err); ok {
		httputil.WriteJSON(w, http.StatusBadRequest, dto.FromCheckError(checkErr))
		return
	}
	level := slog.LevelWarn
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, op+" failed",
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}

func (h *Handler) HandleCreateForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := currentUser(ctx)
	if err != nil {
		h.writeError(w, ctx, "create form", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[FormRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	form, err := h.service.CreateForm(ctx, user, req.Content())
	if err != nil {
		h.writeError(w, ctx, "create form", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, dto.FromForm(form))
}

func (h *Handler) HandleGetForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := currentUser(ctx)
	if err != nil {
		h.writeError(w, ctx, "get form", err)
		return
	}
	formID, err := id.ParseFormID(chi.URLParam(r, "formID"))
	if err != nil {
		h.writeError(w, ctx, "get form", err)
		return
	}
	form, err := h.service.GetForm(ctx, user, formID)
	if err != nil {
		h.writeError(w, ctx, "get form", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, dto.FromForm(form))
}

func (h *Handler) HandleUpdateForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := currentUser(ctx)
	if err != nil {
		h.writeError(w, ctx, "update form", err)
		return
	}
	formID, err := id.ParseFormID(chi.URLParam(r, "formID"))
	if err != nil {
		h.writeError(w, ctx, "update form", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[FormRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	form, err := h.service.UpdateForm(ctx, user, formID, req.Content())
	if err != nil {
		h.writeError(w, ctx, "update form", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, dto.FromForm(form))
}

func (h *Handler) HandleListProjectForms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := currentUser(ctx)
	if err != nil {
		h.writeError(w, ctx, "list forms", err)
		return
	}
	projectID, err := id.ParseProjectID(chi.URLParam(r, "projectID"))
	if err != nil {
		h.writeError(w, ctx, "list forms", err)
		return
	}
	forms, err := h.service.ListFormsForProject(ctx, user, projectID)
	if err != nil {
		h.writeError(w, ctx, "list forms", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toFormListResponse(forms))
}

// HandleAnswerForm handles PUT /forms/{formID}/answers/{projectID}. The body replaces
// any previous answer of the project.
func (h *Handler) HandleAnswerForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := currentUser(ctx)
	if err != nil {
		h.writeError(w, ctx, "answer form", err)
		return
	}
	formID, err := id.ParseFormID(chi.URLParam(r, "formID"))
	if err != nil {
		h.writeError(w, ctx, "answer form", err)
		return
	}
	projectID, err := id.ParseProjectID(chi.URLParam(r, "projectID"))
	if err != nil {
		h.writeError(w, ctx, "answer form", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[AnswerRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	saved, err := h.service.AnswerForm(ctx, user, formID, projectID, req.Answer())
	if err != nil {
		h.writeError(w, ctx, "answer form", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toFormAnswerResponse(saved))
}

func (h *Handler) HandleGetFormAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := currentUser(ctx)
	if err != nil {
		h.writeError(w, ctx, "get form answer", err)
		return
	}
	formID, err := id.ParseFormID(chi.URLParam(r, "formID"))
	if err != nil {
		h.writeError(w, ctx, "get form answer", err)
		return
	}
	projectID, err := id.ParseProjectID(chi.URLParam(r, "projectID"))
	if err != nil {
		h.writeError(w, ctx, "get form answer", err)
		return
	}
	a, err := h.service.GetFormAnswer(ctx, user, formID, projectID)
	if err != nil {
		h.writeError(w, ctx, "get form answer", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toFormAnswerResponse(a))
}

func (h *Handler) HandleCreateRegistrationForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := currentUser(ctx)
	if err != nil {
		h.writeError(w, ctx, "create registration form", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[RegistrationFormRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	form, err := h.service.CreateRegistrationForm(ctx, user, req.Input())
	if err != nil {
		h.writeError(w, ctx, "create registration form", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, dto.FromRegistrationForm(form))
}

func (h *Handler) HandleAnswerRegistrationForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := currentUser(ctx)
	if err != nil {
		h.writeError(w, ctx, "answer registration form", err)
		return
	}
	formID, err := id.ParseRegistrationFormID(chi.URLParam(r, "formID"))
	if err != nil {
		h.writeError(w, ctx, "answer registration form", err)
		return
	}
	pendingID, err := id.ParsePendingProjectID(chi.URLParam(r, "pendingProjectID"))
	if err != nil {
		h.writeError(w, ctx, "answer registration form", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[AnswerRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	saved, err := h.service.AnswerRegistrationForm(ctx, user, formID, pendingID, req.Answer())
	if err != nil {
		h.writeError(w, ctx, "answer registration form", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toRegistrationFormAnswerResponse(saved))
}

// HandleQuotaCheck answers 204 when the caller may store size more bytes.
func (h *Handler) HandleQuotaCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := currentUser(ctx)
	if err != nil {
		h.writeError(w, ctx, "quota check", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[QuotaRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.service.EnsureFileQuota(ctx, user, req.Size); err != nil {
		h.writeError(w, ctx, "quota check", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
