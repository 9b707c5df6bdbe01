package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnbalanced indicates that a journal entry's debits and credits do not match.
var ErrUnbalanced = errors.New("journal entry is unbalanced")

// ErrInvalidAccountType indicates that an account of the wrong type was targeted by an operation.
var ErrInvalidAccountType = errors.New("invalid account type for operation")

// ErrInsufficientStock indicates that a sale would drive a product's stock below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrMissingAccount indicates that a well-known account required by a posting
// rule is not present in the chart of accounts. This is a setup fault, not a
// per-request validation failure.
var ErrMissingAccount = errors.New("required account missing from chart of accounts")

// ErrPeriodInvalid indicates that a reporting period's end date precedes its start date.
var ErrPeriodInvalid = errors.New("invalid reporting period")

// ErrForbidden indicates that the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside the underlying error so
// repositories can report failures without handlers re-deriving the status.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError builds an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}
