package woops

import (
	"net/http"
)

// Header names set by the catalog
const (
	HeaderWWWAuthenticate = "WWW-Authenticate"
	HeaderAllow           = "Allow"
)

func firstData(data []any) any {
	if len(data) > 0 {
		return data[0]
	}
	return nil
}

// 4xx Client Errors

// BadRequest creates a 400 error
func BadRequest(message string, data ...any) *Error {
	return New(http.StatusBadRequest, message, firstData(data), nil)
}

// Unauthorized creates a 401 error. The message defaults to "Unauthorized".
// When scheme is set, a WWW-Authenticate challenge is built from the scheme
// and attrs; attrs may be nil.
func Unauthorized(message string, scheme string, attrs AuthAttributes) *Error {
	if message == "" {
		message = "Unauthorized"
	}

	var headers map[string]string
	if value := wwwAuthenticate(scheme, attrs); value != "" {
		headers = map[string]string{HeaderWWWAuthenticate: value}
	}

	return New(http.StatusUnauthorized, message, nil, headers)
}

// PaymentRequired creates a 402 error
func PaymentRequired(message string, data ...any) *Error {
	return New(http.StatusPaymentRequired, message, firstData(data), nil)
}

// Forbidden creates a 403 error
func Forbidden(message string, data ...any) *Error {
	return New(http.StatusForbidden, message, firstData(data), nil)
}

// NotFound creates a 404 error
func NotFound(message string, data ...any) *Error {
	return New(http.StatusNotFound, message, firstData(data), nil)
}

// MethodNotAllowed creates a 405 error with an optional Allow header
func MethodNotAllowed(message string, data any, allow Allow) *Error {
	var headers map[string]string
	if allow != nil {
		if value := allow.allowHeader(); value != "" {
			headers = map[string]string{HeaderAllow: value}
		}
	}

	return New(http.StatusMethodNotAllowed, message, data, headers)
}

// NotAcceptable creates a 406 error
func NotAcceptable(message string, data ...any) *Error {
	return New(http.StatusNotAcceptable, message, firstData(data), nil)
}

// ProxyAuthRequired creates a 407 error
func ProxyAuthRequired(message string, data ...any) *Error {
	return New(http.StatusProxyAuthRequired, message, firstData(data), nil)
}

// ClientTimeout creates a 408 error
func ClientTimeout(message string, data ...any) *Error {
	return New(http.StatusRequestTimeout, message, firstData(data), nil)
}

// Conflict creates a 409 error
func Conflict(message string, data ...any) *Error {
	return New(http.StatusConflict, message, firstData(data), nil)
}

// ResourceGone creates a 410 error
func ResourceGone(message string, data ...any) *Error {
	return New(http.StatusGone, message, firstData(data), nil)
}

// LengthRequired creates a 411 error
func LengthRequired(message string, data ...any) *Error {
	return New(http.StatusLengthRequired, message, firstData(data), nil)
}

// PreconditionFailed creates a 412 error
func PreconditionFailed(message string, data ...any) *Error {
	return New(http.StatusPreconditionFailed, message, firstData(data), nil)
}

// EntityTooLarge creates a 413 error
func EntityTooLarge(message string, data ...any) *Error {
	return New(http.StatusRequestEntityTooLarge, message, firstData(data), nil)
}

// URITooLong creates a 414 error
func URITooLong(message string, data ...any) *Error {
	return New(http.StatusRequestURITooLong, message, firstData(data), nil)
}

// UnsupportedMediaType creates a 415 error
func UnsupportedMediaType(message string, data ...any) *Error {
	return New(http.StatusUnsupportedMediaType, message, firstData(data), nil)
}

// RangeNotSatisfiable creates a 416 error
func RangeNotSatisfiable(message string, data ...any) *Error {
	return New(http.StatusRequestedRangeNotSatisfiable, message, firstData(data), nil)
}

// ExpectationFailed creates a 417 error
func ExpectationFailed(message string, data ...any) *Error {
	return New(http.StatusExpectationFailed, message, firstData(data), nil)
}

// Teapot creates a 418 error
func Teapot(message string, data ...any) *Error {
	return New(http.StatusTeapot, message, firstData(data), nil)
}

// BadData creates a 422 error
func BadData(message string, data ...any) *Error {
	return New(http.StatusUnprocessableEntity, message, firstData(data), nil)
}

// Locked creates a 423 error
func Locked(message string, data ...any) *Error {
	return New(http.StatusLocked, message, firstData(data), nil)
}

// FailedDependency creates a 424 error
func FailedDependency(message string, data ...any) *Error {
	return New(http.StatusFailedDependency, message, firstData(data), nil)
}

// PreconditionRequired creates a 428 error
func PreconditionRequired(message string, data ...any) *Error {
	return New(http.StatusPreconditionRequired, message, firstData(data), nil)
}

// TooManyRequests creates a 429 error
func TooManyRequests(message string, data ...any) *Error {
	return New(http.StatusTooManyRequests, message, firstData(data), nil)
}

// Illegal creates a 451 error
func Illegal(message string, data ...any) *Error {
	return New(http.StatusUnavailableForLegalReasons, message, firstData(data), nil)
}

// 5xx Server Errors

// Internal creates a server error. The status defaults to 500 and is the
// only one in the catalog that callers can override.
func Internal(message string, data any, statusCode ...int) *Error {
	status := http.StatusInternalServerError
	if len(statusCode) > 0 && statusCode[0] != 0 {
		status = statusCode[0]
	}
	return New(status, message, data, nil)
}

// NotImplemented creates a 501 error
func NotImplemented(message string, data ...any) *Error {
	return New(http.StatusNotImplemented, message, firstData(data), nil)
}

// BadGateway creates a 502 error
func BadGateway(message string, data ...any) *Error {
	return New(http.StatusBadGateway, message, firstData(data), nil)
}

// ServerUnavailable creates a 503 error
func ServerUnavailable(message string, data ...any) *Error {
	return New(http.StatusServiceUnavailable, message, firstData(data), nil)
}

// GatewayTimeout creates a 504 error
func GatewayTimeout(message string, data ...any) *Error {
	return New(http.StatusGatewayTimeout, message, firstData(data), nil)
}

// BadImplementation creates a 500 error flagged as a developer error, for
// faults in the serving code rather than expected failures.
func BadImplementation(message string, data ...any) *Error {
	e := New(http.StatusInternalServerError, message, firstData(data), nil)
	e.IsDeveloperError = true
	return e
}
