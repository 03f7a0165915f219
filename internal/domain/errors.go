package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrRateLimited      = errors.New("rate limited")
	ErrStorageFailure   = errors.New("storage failure")
)

// ValidationError carries a stable code for localization plus a default
// English message suitable for showing to the end user.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError constructs a user-facing validation failure.
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}
