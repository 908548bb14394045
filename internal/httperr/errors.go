// Package httperr defines the typed error taxonomy shared by handlers,
// middleware and repositories, plus the single translator that maps these
// errors onto HTTP responses. No other component writes error bodies to the
// transport layer directly.
package httperr

import "net/http"

// Kind classifies an error into one of the HTTP-mappable categories.
type Kind int

const (
	KindValidation Kind = iota // 400, bad or missing input fields
	KindConflict               // 400, duplicate unique key
	KindAuth                   // 401, generic credential/token failure
	KindNotFound               // 404, missing record or ownership mismatch
	KindInternal               // 500, everything else
)

// Error carries a client-safe message plus optional field-level details.
// Err holds the underlying cause and is only ever exposed outside
// production-like environments.
type Error struct {
	Kind    Kind
	Message string
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Validation builds a 400 error with optional field-level details.
func Validation(message string, details any) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

// Conflict builds a 400 error for unique-key violations.
func Conflict(details any) *Error {
	return &Error{Kind: KindConflict, Message: "Duplicate Error", Details: details}
}

// Auth builds a generic 401 error. The message is deliberately identical for
// unknown emails and wrong passwords so callers cannot enumerate accounts.
func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// NotFound builds a 404 error. It is used both for records that do not exist
// and for records owned by someone else; the two cases must stay
// indistinguishable.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal wraps an unexpected failure. The cause is kept for logs and for
// non-production responses only.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Something went wrong!", Err: err}
}
