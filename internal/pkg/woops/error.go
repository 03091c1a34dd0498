package woops

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
)

// InternalErrorMessage is the message given to errors produced by Normalize.
const InternalErrorMessage = "An internal server error occurred"

// Error represents an HTTP error response before it is written.
type Error struct {
	Status           int
	Message          string
	Data             any
	Headers          map[string]string
	IsDeveloperError bool
	Origin           error

	stack *sentry.Stacktrace
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the wrapped origin error, if any
func (e *Error) Unwrap() error {
	return e.Origin
}

// New creates a new Error. The stack trace is captured at the call site.
func New(status int, message string, data any, headers map[string]string) *Error {
	return &Error{
		Status:  status,
		Message: message,
		Data:    data,
		Headers: headers,
		stack:   sentry.NewStacktrace(),
	}
}

// IsWoopsError checks if err is, or wraps, an *Error
func IsWoopsError(err error) bool {
	var we *Error
	return errors.As(err, &we)
}

// Normalize converts any error into an *Error.
//
// An error that already is (or wraps) an *Error is returned as is, so
// normalizing twice yields the same pointer. Anything else becomes a 500 that
// carries err as both Data and Origin and keeps err's stack trace when one can
// be extracted. A nil error normalizes to nil; a nil pointer behind the error
// interface becomes a bare 500.
func Normalize(err error) *Error {
	if err == nil {
		return nil
	}
	if isNilValue(err) {
		return New(http.StatusInternalServerError, InternalErrorMessage, nil, nil)
	}

	var we *Error
	if errors.As(err, &we) {
		return we
	}

	e := New(http.StatusInternalServerError, InternalErrorMessage, err, nil)
	if st := sentry.ExtractStacktrace(err); st != nil {
		e.stack = st
	}
	e.Origin = err
	return e
}

// WithHeader sets a single response header and returns the same error
func (e *Error) WithHeader(name, value string) *Error {
	if e.Headers == nil {
		e.Headers = make(map[string]string)
	}
	e.Headers[name] = value
	return e
}

// WithHeaders merges headers into the error's response headers
func (e *Error) WithHeaders(headers map[string]string) *Error {
	for name, value := range headers {
		e.WithHeader(name, value)
	}
	return e
}

// HeadersAsObject returns a copy of the response headers.
// The result is never nil.
func (e *Error) HeadersAsObject() map[string]string {
	obj := make(map[string]string, len(e.Headers))
	for name, value := range e.Headers {
		obj[name] = value
	}
	return obj
}

// Stack returns the stack trace, innermost frame first
func (e *Error) Stack() string {
	return formatStack(e.stack)
}
