package service

import (
	"errors"

	userModels "festa/internal/user/models"
	dErrors "festa/pkg/domain-errors"
	"festa/pkg/platform/sentinel"
)

// storeError translates an infrastructure fact about what into a domain error.
func storeError(err error, what string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, what+" not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, what+" already exists")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to access "+what)
}

func requirePermissions(user *userModels.User, required userModels.Permissions) error {
	if user == nil {
		return dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if err := user.RequirePermissions(required); err != nil {
		return dErrors.Wrap(err, dErrors.CodeForbidden, "permission denied")
	}
	return nil
}

// validation reports constructor failures as validation errors for API responses.
// The cause stays in the chain so callers can still inspect it.
func validation(err error, msg string) error {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeInvariantViolation, dErrors.CodeInvalidInput, dErrors.CodeInternal:
		return dErrors.Wrap(err, dErrors.CodeValidation, msg)
	}
	return err
}
