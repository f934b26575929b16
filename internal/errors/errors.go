package errors

import (
	"errors"
	"fmt"
)

// NotFoundError reports a missing entity. Two NotFoundErrors match under
// errors.Is when they name the same entity.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	return ok && t.Entity == e.Entity
}

// AlreadyExistsError reports a uniqueness conflict, e.g. a second
// membership row for the same pair
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context == "" {
		return e.Entity + " already exists"
	}
	return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
}

func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	return ok && t.Entity == e.Entity
}

// ValidationError reports malformed input, optionally naming the field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// InvalidStateError is returned when a request is well formed but cannot be
// applied to the current state, e.g. an update carrying no fields.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

// AuthenticationError means the caller could not be identified
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// AuthorizationError means the caller is known but not allowed
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

var (
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrProjectNotFound       = &NotFoundError{Entity: "project"}
	ErrModuleNotFound        = &NotFoundError{Entity: "module"}
	ErrTaskNotFound          = &NotFoundError{Entity: "task"}
	ErrLeaderNotFound        = &NotFoundError{Entity: "leader"}
	ErrProjectMemberNotFound = &NotFoundError{Entity: "project member"}
	ErrTeamMemberNotFound    = &NotFoundError{Entity: "team member"}

	ErrUserExists          = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrProjectMemberExists = &AlreadyExistsError{Entity: "project member", Context: "in this project"}
	ErrTeamMemberExists    = &AlreadyExistsError{Entity: "team member", Context: "in this team"}

	ErrInvalidRole      = &ValidationError{Field: "role", Message: "invalid role"}
	ErrInvalidTimeRange = &ValidationError{Field: "end_date", Message: "end date must not be before start date"}

	ErrNoFieldsToUpdate = &InvalidStateError{Message: "no fields to update"}
	ErrNoChanges        = &InvalidStateError{Message: "no changes"}
	ErrSelfDelete       = &InvalidStateError{Message: "you cannot delete your own account"}
	ErrUserOwnsProjects = &InvalidStateError{Message: "user still owns projects"}

	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrAccountDeactivated = &AuthorizationError{Message: "account deactivated"}
	ErrForbidden          = &AuthorizationError{Message: "access denied"}
)

func is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// IsNotFound reports whether err wraps a NotFoundError
func IsNotFound(err error) bool { return is[*NotFoundError](err) }

// IsAlreadyExists reports whether err wraps an AlreadyExistsError
func IsAlreadyExists(err error) bool { return is[*AlreadyExistsError](err) }

// IsValidation reports whether err wraps a ValidationError
func IsValidation(err error) bool { return is[*ValidationError](err) }

// IsInvalidState reports whether err wraps an InvalidStateError
func IsInvalidState(err error) bool { return is[*InvalidStateError](err) }

// IsAuthentication reports whether err wraps an AuthenticationError
func IsAuthentication(err error) bool { return is[*AuthenticationError](err) }

// IsAuthorization reports whether err wraps an AuthorizationError
func IsAuthorization(err error) bool { return is[*AuthorizationError](err) }

// NewValidationError returns a ValidationError for field
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidStateError returns an InvalidStateError
func NewInvalidStateError(message string) error {
	return &InvalidStateError{Message: message}
}
