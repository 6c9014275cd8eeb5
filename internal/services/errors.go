package services

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a service wraps exactly one of them.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrNotComputed   = fmt.Errorf("statutory computation not found: %w", ErrNotFound)
	ErrConflict      = errors.New("conflict")
	ErrForbidden     = errors.New("forbidden")
	ErrConfiguration = errors.New("configuration error")
	ErrInternal      = errors.New("internal error")
)

// Error carries the violated precondition of a failed operation
type Error struct {
	Kind    error
	Op      string
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func validationError(op, field, format string, args ...any) error {
	return &Error{Kind: ErrValidation, Op: op, Field: field, Message: fmt.Sprintf(format, args...)}
}

func notFoundError(op, format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Op: op, Message: fmt.Sprintf(format, args...)}
}

func notComputedError(op string, periodID uint) error {
	return &Error{Kind: ErrNotComputed, Op: op, Message: fmt.Sprintf("billing period %d has no statutory computation", periodID)}
}

func conflictError(op, format string, args ...any) error {
	return &Error{Kind: ErrConflict, Op: op, Message: fmt.Sprintf(format, args...)}
}

func forbiddenError(op, format string, args ...any) error {
	return &Error{Kind: ErrForbidden, Op: op, Message: fmt.Sprintf(format, args...)}
}

func configurationError(op, format string, args ...any) error {
	return &Error{Kind: ErrConfiguration, Op: op, Message: fmt.Sprintf(format, args...)}
}

func internalError(op string, err error) error {
	if err == nil {
		return nil
	}
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return err
	}
	return &Error{Kind: ErrInternal, Op: op, Message: err.Error(), Err: err}
}
