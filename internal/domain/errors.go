package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common failures.
var (
	ErrNotFound         = errors.New("requested resource not found")
	ErrInvalidCrumb     = errors.New("invalid breadcrumb entry")
	ErrRelayRejected    = errors.New("form relay rejected the submission")
	ErrRelayUnavailable = errors.New("form relay unavailable")
)

// Kind represents the category of an Error and decides its HTTP status.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindUpstream
	KindInternal
)

// Error is a domain error with a typed Kind for HTTP mapping.
type Error struct {
	Kind    Kind
	Message string
	Op      string // Operation that failed (optional)
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code for this error kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewError creates a domain error with the given kind and message.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError creates a domain error wrapping an existing error.
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp sets the operation that failed.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// NotFound creates a not found error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, Err: ErrNotFound}
}
