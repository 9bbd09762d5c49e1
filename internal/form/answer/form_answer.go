package answer

import (
	"time"

	id "festa/pkg/domain"
)

// FormAnswer is a project's stored answer to a form.
//
// Invariants:
//   - there is at most one FormAnswer per (FormID, ProjectID)
//   - Items passed Check against the form's items when it was last written
type FormAnswer struct {
	ID        id.FormAnswerID
	FormID    id.FormID
	ProjectID id.ProjectID
	AuthorID  id.UserID
	Items     Answer
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Replace swaps in a whole new answer. Items are never merged.
func (a *FormAnswer) Replace(authorID id.UserID, items Answer, now time.Time) {
	a.AuthorID = authorID
	a.Items = items
	a.UpdatedAt = now
}

// RegistrationFormAnswer is a pending project's answer to a registration form.
type RegistrationFormAnswer struct {
	ID                 id.FormAnswerID
	RegistrationFormID id.RegistrationFormID
	PendingProjectID   id.PendingProjectID
	AuthorID           id.UserID
	Items              Answer
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (a *RegistrationFormAnswer) Replace(authorID id.UserID, items Answer, now time.Time) {
	a.AuthorID = authorID
	a.Items = items
	a.UpdatedAt = now
}
