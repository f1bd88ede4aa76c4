package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for HTTP mapping at the handler edge.
type Kind int

const (
	Validation Kind = iota + 1 // missing/empty required input
	Conflict                   // uniqueness violation
	NotFound                   // referenced entity absent
	Upstream                   // malformed or failed store response
)

// Error carries a kind and a client-safe detail message. Anything the
// service layer does not wrap in an Error is treated as unexpected and
// surfaced as a generic 500.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func Wrap(kind Kind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

// Status returns the HTTP status code for err, or 500 for unclassified
// errors.
func Status(err error) int {
	var ae *Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Kind {
	case Validation, Conflict:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Detail returns the client-safe detail for err, falling back to the given
// message for unclassified errors so internals never leak to the caller.
func Detail(err error, fallback string) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Detail
	}
	return fallback
}
