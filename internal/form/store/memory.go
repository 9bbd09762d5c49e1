package store

import (
	"context"
	"sort"
	"sync"

	"festa/internal/form/answer"
	"festa/internal/form/models"
	id "festa/pkg/domain"
	"festa/pkg/platform/sentinel"
)

// InMemory keeps forms, registration forms and their answers in maps. Values are
// stored as given; callers must not mutate a form after handing it over.
type InMemory struct {
	mu                sync.RWMutex
	forms             map[id.FormID]*models.Form
	registrationForms map[id.RegistrationFormID]*models.RegistrationForm
	answers           map[formAnswerKey]*answer.FormAnswer
	regAnswers        map[regAnswerKey]*answer.RegistrationFormAnswer
}

type formAnswerKey struct {
	form    id.FormID
	project id.ProjectID
}

type regAnswerKey struct {
	form    id.RegistrationFormID
	pending id.PendingProjectID
}

func NewInMemory() *InMemory {
	return &InMemory{
		forms:             make(map[id.FormID]*models.Form),
		registrationForms: make(map[id.RegistrationFormID]*models.RegistrationForm),
		answers:           make(map[formAnswerKey]*answer.FormAnswer),
		regAnswers:        make(map[regAnswerKey]*answer.RegistrationFormAnswer),
	}
}

func (s *InMemory) CreateForm(_ context.Context, form *models.Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.forms[form.ID]; ok {
		return sentinel.ErrConflict
	}
	s.forms[form.ID] = form
	return nil
}

func (s *InMemory) UpdateForm(_ context.Context, form *models.Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.forms[form.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.forms[form.ID] = form
	return nil
}

func (s *InMemory) FindForm(_ context.Context, formID id.FormID) (*models.Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	form, ok := s.forms[formID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return form, nil
}

// ListForms returns every form ordered by creation time.
func (s *InMemory) ListForms(_ context.Context) ([]*models.Form, error) {
	s.mu.RLock()
	out := make([]*models.Form, 0, len(s.forms))
	for _, f := range s.forms {
		out = append(out, f)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *InMemory) CreateRegistrationForm(_ context.Context, form *models.RegistrationForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.registrationForms[form.ID]; ok {
		return sentinel.ErrConflict
	}
	s.registrationForms[form.ID] = form
	return nil
}

func (s *InMemory) FindRegistrationForm(_ context.Context, formID id.RegistrationFormID) (*models.RegistrationForm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	form, ok := s.registrationForms[formID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return form, nil
}

func (s *InMemory) FindFormAnswer(_ context.Context, formID id.FormID, projectID id.ProjectID) (*answer.FormAnswer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.answers[formAnswerKey{formID, projectID}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

// SaveFormAnswer inserts or replaces the answer for its (form, project) pair. An
// existing row keeps its ID and CreatedAt.
func (s *InMemory) SaveFormAnswer(_ context.Context, a *answer.FormAnswer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := formAnswerKey{a.FormID, a.ProjectID}
	cp := *a
	if prev, ok := s.answers[key]; ok {
		cp.ID = prev.ID
		cp.CreatedAt = prev.CreatedAt
	}
	s.answers[key] = &cp
	return nil
}

func (s *InMemory) FindRegistrationFormAnswer(_ context.Context, formID id.RegistrationFormID, pendingID id.PendingProjectID) (*answer.RegistrationFormAnswer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.regAnswers[regAnswerKey{formID, pendingID}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *InMemory) SaveRegistrationFormAnswer(_ context.Context, a *answer.RegistrationFormAnswer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := regAnswerKey{a.RegistrationFormID, a.PendingProjectID}
	cp := *a
	if prev, ok := s.regAnswers[key]; ok {
		cp.ID = prev.ID
		cp.CreatedAt = prev.CreatedAt
	}
	s.regAnswers[key] = &cp
	return nil
}
