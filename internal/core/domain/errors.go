package domain

import "errors"

var (
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDuplicateID      = errors.New("employee id already exists")
	ErrDuplicateEmail   = errors.New("employee email already exists")

	ErrBulkIDsRequired   = errors.New("bulk ids must be a non-empty array")
	ErrBulkInvalidStatus = errors.New("bulk status is invalid")
	ErrBulkInvalidAction = errors.New("bulk action is invalid")

	ErrSimulatedFailure = errors.New("simulated failure")
)

// ValidationError carries one message per invalid field, keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
