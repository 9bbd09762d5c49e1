package domain

import (
	"github.com/google/uuid"

	dErrors "festa/pkg/domain-errors"
)

// Typed identifiers. Each wraps a UUID so that a FormID can never be passed where a
// ProjectID is expected.
type (
	UserID             uuid.UUID
	ProjectID          uuid.UUID
	PendingProjectID   uuid.UUID
	FormID             uuid.UUID
	FormAnswerID       uuid.UUID
	FormItemID         uuid.UUID
	RegistrationFormID uuid.UUID
	FileSharingID      uuid.UUID
	CheckboxID         uuid.UUID
	RadioButtonID      uuid.UUID
	GridRadioRowID     uuid.UUID
	GridRadioColumnID  uuid.UUID
)

// maxIDInputLength guards uuid.Parse against oversized input at trust boundaries.
const maxIDInputLength = 64

func parseUUID(s, kind string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" cannot be empty")
	}
	if len(s) > maxIDInputLength {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" cannot be nil")
	}
	return u, nil
}

func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s, "user id")
	return UserID(u), err
}

func ParseProjectID(s string) (ProjectID, error) {
	u, err := parseUUID(s, "project id")
	return ProjectID(u), err
}

func ParsePendingProjectID(s string) (PendingProjectID, error) {
	u, err := parseUUID(s, "pending project id")
	return PendingProjectID(u), err
}

func ParseFormID(s string) (FormID, error) {
	u, err := parseUUID(s, "form id")
	return FormID(u), err
}

func ParseFormItemID(s string) (FormItemID, error) {
	u, err := parseUUID(s, "form item id")
	return FormItemID(u), err
}

func ParseRegistrationFormID(s string) (RegistrationFormID, error) {
	u, err := parseUUID(s, "registration form id")
	return RegistrationFormID(u), err
}

func ParseFileSharingID(s string) (FileSharingID, error) {
	u, err := parseUUID(s, "file sharing id")
	return FileSharingID(u), err
}

func ParseCheckboxID(s string) (CheckboxID, error) {
	u, err := parseUUID(s, "checkbox id")
	return CheckboxID(u), err
}

func ParseRadioButtonID(s string) (RadioButtonID, error) {
	u, err := parseUUID(s, "radio button id")
	return RadioButtonID(u), err
}

func ParseGridRadioRowID(s string) (GridRadioRowID, error) {
	u, err := parseUUID(s, "grid radio row id")
	return GridRadioRowID(u), err
}

func ParseGridRadioColumnID(s string) (GridRadioColumnID, error) {
	u, err := parseUUID(s, "grid radio column id")
	return GridRadioColumnID(u), err
}

func (id UserID) String() string             { return uuid.UUID(id).String() }
func (id ProjectID) String() string          { return uuid.UUID(id).String() }
func (id PendingProjectID) String() string   { return uuid.UUID(id).String() }
func (id FormID) String() string             { return uuid.UUID(id).String() }
func (id FormAnswerID) String() string       { return uuid.UUID(id).String() }
func (id FormItemID) String() string         { return uuid.UUID(id).String() }
func (id RegistrationFormID) String() string { return uuid.UUID(id).String() }
func (id FileSharingID) String() string      { return uuid.UUID(id).String() }
func (id CheckboxID) String() string         { return uuid.UUID(id).String() }
func (id RadioButtonID) String() string      { return uuid.UUID(id).String() }
func (id GridRadioRowID) String() string     { return uuid.UUID(id).String() }
func (id GridRadioColumnID) String() string  { return uuid.UUID(id).String() }

func (id UserID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id ProjectID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id FormID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

// MarshalText lets the ids travel as plain UUID strings in JSON and YAML.
func (id UserID) MarshalText() ([]byte, error)             { return uuid.UUID(id).MarshalText() }
func (id ProjectID) MarshalText() ([]byte, error)          { return uuid.UUID(id).MarshalText() }
func (id PendingProjectID) MarshalText() ([]byte, error)   { return uuid.UUID(id).MarshalText() }
func (id FormID) MarshalText() ([]byte, error)             { return uuid.UUID(id).MarshalText() }
func (id FormAnswerID) MarshalText() ([]byte, error)       { return uuid.UUID(id).MarshalText() }
func (id FormItemID) MarshalText() ([]byte, error)         { return uuid.UUID(id).MarshalText() }
func (id RegistrationFormID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id FileSharingID) MarshalText() ([]byte, error)      { return uuid.UUID(id).MarshalText() }
func (id CheckboxID) MarshalText() ([]byte, error)         { return uuid.UUID(id).MarshalText() }
func (id RadioButtonID) MarshalText() ([]byte, error)      { return uuid.UUID(id).MarshalText() }
func (id GridRadioRowID) MarshalText() ([]byte, error)     { return uuid.UUID(id).MarshalText() }
func (id GridRadioColumnID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }

func unmarshalID(b []byte, kind string) (uuid.UUID, error) {
	return parseUUID(string(b), kind)
}

func (id *UserID) UnmarshalText(b []byte) error {
	u, err := unmarshalID(b, "user id")
	*id = UserID(u)
	return err
}

func (id *ProjectID) UnmarshalText(b []byte) error {
	u, err := unmarshalID(b, "project id")
	*id = ProjectID(u)
	return err
}

func (id *PendingProjectID) UnmarshalText(b []byte) error {
	u, err := unmarshalID(b, "pending project id")
	*id = PendingProjectID(u)
	return err
}

func (id *FormID) UnmarshalText(b []byte) error {
	u, err := unmarshalID(b, "form id")
	*id = FormID(u)
	return err
}

func (id *FormAnswerID) UnmarshalText(b []byte) error {
	u, err := unmarshalID(b, "form answer id")
	*id = FormAnswerID(u)
	return err
}

func (id *FormItemID) UnmarshalText(b []byte) error {
	u, err := unmarshalID(b, "form item id")
	*id = FormItemID(u)
	return err
}

func (id *RegistrationFormID) UnmarshalText(b []byte) error {
	u, err := unmarshalID(b, "registration form id")
	*id = RegistrationFormID(u)
	return err
}

func (id *FileSharingID) UnmarshalText(b []byte) error {
	u, err := unmarshalID(b, "file sharing id")
	*id = FileSharingID(u)
	return err
}

func (id *CheckboxID) UnmarshalText(b []byte) error {
	u, err := unmarshalID(b, "checkbox id")
	*id = CheckboxID(u)
	return err
}

func (id *RadioButtonID) UnmarshalText(b []byte) error {
	u, err := unmarshalID(b, "radio button id")
	*id = RadioButtonID(u)
	return err
}

func (id *GridRadioRowID) UnmarshalText(b []byte) error {
	u, err := unmarshalID(b, "grid radio row id")
	*id = GridRadioRowID(u)
	return err
}

func (id *GridRadioColumnID) UnmarshalText(b []byte) error {
	u, err := unmarshalID(b, "grid radio column id")
	*id = GridRadioColumnID(u)
	return err
}
