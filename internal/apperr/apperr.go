// Package apperr defines the error taxonomy shared by services and handlers.
// Every error returned to a client carries a machine-readable kind so the
// HTTP layer can map it to a status code without string matching, and so
// internal details (SQL errors, stack traces) never leak out.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for status mapping and client dispatch.
type Kind string

const (
	KindValidation     Kind = "validation"       // bad field value
	KindConflict       Kind = "conflict"         // duplicate unique key
	KindNotFound       Kind = "not_found"        // referenced id absent
	KindReferenceInUse Kind = "reference_in_use" // delete blocked by live reference
	KindRoleMismatch   Kind = "role_mismatch"    // party role incompatible with usage
	KindExternal       Kind = "external_service" // analyzer unavailable or malformed
)

// HTTPStatus returns the status code a handler should respond with.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindRoleMismatch:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindReferenceInUse:
		return http.StatusConflict
	case KindExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error is the canonical application error. Category is only set for
// external-service failures (init | call | malformed).
type Error struct {
	Kind     Kind              `json:"kind"`
	Detail   string            `json:"detail"`
	Fields   map[string]string `json:"fields,omitempty"`
	Category string            `json:"category,omitempty"`
	cause    error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.cause }

// Wrap attaches an internal cause that is logged but never serialized.
func (e *Error) Wrap(cause error) *Error {
	e.cause = cause
	return e
}

func Validation(detail string) *Error {
	return &Error{Kind: KindValidation, Detail: detail}
}

// ValidationFields reports per-field failures from request binding.
func ValidationFields(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Detail: "validation failed", Fields: fields}
}

func Conflict(detail string) *Error {
	return &Error{Kind: KindConflict, Detail: detail}
}

func NotFound(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

func ReferenceInUse(detail string) *Error {
	return &Error{Kind: KindReferenceInUse, Detail: detail}
}

func RoleMismatch(detail string) *Error {
	return &Error{Kind: KindRoleMismatch, Detail: detail}
}

// External builds an external-service error with its failure category.
func External(category, detail string) *Error {
	return &Error{Kind: KindExternal, Detail: detail, Category: category}
}

// As extracts an *Error from any error chain.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
