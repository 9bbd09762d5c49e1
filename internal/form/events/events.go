// Package events publishes form answer submissions so that other services can react
// to them without polling the answer tables.
package events

import (
	"time"

	id "festa/pkg/domain"
)

// EventType names a submission event on the wire.
type EventType string

const (
	EventFormAnswerSubmitted             EventType = "form_answer.submitted"
	EventRegistrationFormAnswerSubmitted EventType = "registration_form_answer.submitted"
)

// AnswerSubmitted is emitted after an answer passed checking and was stored.
// TargetID is the project id for form answers and the pending project id for
// registration form answers.
type AnswerSubmitted struct {
	Type        EventType       `json:"type"`
	AnswerID    id.FormAnswerID `json:"answer_id"`
	FormID      string          `json:"form_id"`
	TargetID    string          `json:"target_id"`
	AuthorID    id.UserID       `json:"author_id"`
	Replaced    bool            `json:"replaced"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

// Key keeps every submission for one (form, target) pair on the same partition.
func (e AnswerSubmitted) Key() []byte {
	return []byte(e.FormID + "/" + e.TargetID)
}
