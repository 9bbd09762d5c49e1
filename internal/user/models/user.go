package models

import (
	"festa/pkg/bound"
	id "festa/pkg/domain"
	dErrors "festa/pkg/domain-errors"
	"festa/pkg/email"
)

const MaxUserNameLen = 64

// User is the authenticated caller as services see it.
type User struct {
	ID    id.UserID
	Name  string
	Email string
	Role  Role
}

// NewUser validates the user record. The email address is normalised; an empty name
// is derived from the address.
func NewUser(userID id.UserID, name, address string, role Role) (*User, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user id required")
	}
	if !role.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "invalid role: "+string(role))
	}
	normalised, err := email.Normalize(address)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvariantViolation, "invalid email")
	}
	if name == "" {
		first, last := email.DeriveNameFromEmail(normalised)
		name = first + " " + last
	}
	if _, err := bound.NewNonEmptyString(name, MaxUserNameLen); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvariantViolation, "invalid user name")
	}
	return &User{ID: userID, Name: name, Email: normalised, Role: role}, nil
}

func (u *User) RequirePermissions(required Permissions) error {
	return u.Role.RequirePermissions(required)
}

func (u *User) Can(required Permissions) bool {
	return u.Role.Permissions().Contains(required)
}
