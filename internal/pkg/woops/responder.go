package woops

import (
	"net/http"
)

// UnencodableDataMessage replaces the data of a payload the response could
// not encode.
const UnencodableDataMessage = "error data could not be encoded"

// Responder sends errors on a single response.
//
// A Responder is created per request and bound to that request's Response.
// Each catalog method builds the error with the matching package function
// and sends it. Send is terminal: nothing else should be written afterwards.
type Responder struct {
	res  Response
	opts Options
}

// NewResponder creates a Responder bound to res
func NewResponder(res Response, opts Options) *Responder {
	return &Responder{
		res:  res,
		opts: opts,
	}
}

// Send normalizes err and writes status, headers and payload to the response.
// A nil err is sent as a plain 500.
//
// When the payload cannot be encoded it is written again without data and
// origin, keeping status and headers. The returned error is the write error
// of that second attempt, if any.
func (r *Responder) Send(err error) error {
	e := Normalize(err)
	if e == nil {
		e = New(http.StatusInternalServerError, InternalErrorMessage, nil, nil)
	}

	r.res.Status(e.Status)
	for name, value := range e.HeadersAsObject() {
		r.res.Header(name, value)
	}
	payload := e.ToPayload(r.opts)
	if werr := r.res.JSON(payload); werr != nil {
		payload.Data = ErrorObject{Message: UnencodableDataMessage}
		payload.Origin = nil
		if werr = r.res.JSON(payload); werr != nil {
			return werr
		}
	}

	if r.opts.OnSend != nil {
		r.opts.OnSend(e)
	}
	return nil
}

// 4xx Client Errors

// BadRequest sends a 400 error
func (r *Responder) BadRequest(message string, data ...any) error {
	return r.Send(BadRequest(message, data...))
}

// Unauthorized sends a 401 error
func (r *Responder) Unauthorized(message string, scheme string, attrs AuthAttributes) error {
	return r.Send(Unauthorized(message, scheme, attrs))
}

// PaymentRequired sends a 402 error
func (r *Responder) PaymentRequired(message string, data ...any) error {
	return r.Send(PaymentRequired(message, data...))
}

// Forbidden sends a 403 error
func (r *Responder) Forbidden(message string, data ...any) error {
	return r.Send(Forbidden(message, data...))
}

// NotFound sends a 404 error
func (r *Responder) NotFound(message string, data ...any) error {
	return r.Send(NotFound(message, data...))
}

// MethodNotAllowed sends a 405 error
func (r *Responder) MethodNotAllowed(message string, data any, allow Allow) error {
	return r.Send(MethodNotAllowed(message, data, allow))
}

// NotAcceptable sends a 406 error
func (r *Responder) NotAcceptable(message string, data ...any) error {
	return r.Send(NotAcceptable(message, data...))
}

// ProxyAuthRequired sends a 407 error
func (r *Responder) ProxyAuthRequired(message string, data ...any) error {
	return r.Send(ProxyAuthRequired(message, data...))
}

// ClientTimeout sends a 408 error
func (r *Responder) ClientTimeout(message string, data ...any) error {
	return r.Send(ClientTimeout(message, data...))
}

// Conflict sends a 409 error
func (r *Responder) Conflict(message string, data ...any) error {
	return r.Send(Conflict(message, data...))
}

// ResourceGone sends a 410 error
func (r *Responder) ResourceGone(message string, data ...any) error {
	return r.Send(ResourceGone(message, data...))
}

// LengthRequired sends a 411 error
func (r *Responder) LengthRequired(message string, data ...any) error {
	return r.Send(LengthRequired(message, data...))
}

// PreconditionFailed sends a 412 error
func (r *Responder) PreconditionFailed(message string, data ...any) error {
	return r.Send(PreconditionFailed(message, data...))
}

// EntityTooLarge sends a 413 error
func (r *Responder) EntityTooLarge(message string, data ...any) error {
	return r.Send(EntityTooLarge(message, data...))
}

// URITooLong sends a 414 error
func (r *Responder) URITooLong(message string, data ...any) error {
	return r.Send(URITooLong(message, data...))
}

// UnsupportedMediaType sends a 415 error
func (r *Responder) UnsupportedMediaType(message string, data ...any) error {
	return r.Send(UnsupportedMediaType(message, data...))
}

// RangeNotSatisfiable sends a 416 error
func (r *Responder) RangeNotSatisfiable(message string, data ...any) error {
	return r.Send(RangeNotSatisfiable(message, data...))
}

// ExpectationFailed sends a 417 error
func (r *Responder) ExpectationFailed(message string, data ...any) error {
	return r.Send(ExpectationFailed(message, data...))
}

// Teapot sends a 418 error
func (r *Responder) Teapot(message string, data ...any) error {
	return r.Send(Teapot(message, data...))
}

// BadData sends a 422 error
func (r *Responder) BadData(message string, data ...any) error {
	return r.Send(BadData(message, data...))
}

// Locked sends a 423 error
func (r *Responder) Locked(message string, data ...any) error {
	return r.Send(Locked(message, data...))
}

// FailedDependency sends a 424 error
func (r *Responder) FailedDependency(message string, data ...any) error {
	return r.Send(FailedDependency(message, data...))
}

// PreconditionRequired sends a 428 error
func (r *Responder) PreconditionRequired(message string, data ...any) error {
	return r.Send(PreconditionRequired(message, data...))
}

// TooManyRequests sends a 429 error
func (r *Responder) TooManyRequests(message string, data ...any) error {
	return r.Send(TooManyRequests(message, data...))
}

// Illegal sends a 451 error
func (r *Responder) Illegal(message string, data ...any) error {
	return r.Send(Illegal(message, data...))
}

// 5xx Server Errors

// Internal sends a server error, 500 unless statusCode is given
func (r *Responder) Internal(message string, data any, statusCode ...int) error {
	return r.Send(Internal(message, data, statusCode...))
}

// NotImplemented sends a 501 error
func (r *Responder) NotImplemented(message string, data ...any) error {
	return r.Send(NotImplemented(message, data...))
}

// BadGateway sends a 502 error
func (r *Responder) BadGateway(message string, data ...any) error {
	return r.Send(BadGateway(message, data...))
}

// ServerUnavailable sends a 503 error
func (r *Responder) ServerUnavailable(message string, data ...any) error {
	return r.Send(ServerUnavailable(message, data...))
}

// GatewayTimeout sends a 504 error
func (r *Responder) GatewayTimeout(message string, data ...any) error {
	return r.Send(GatewayTimeout(message, data...))
}

// BadImplementation sends a 500 developer error
func (r *Responder) BadImplementation(message string, data ...any) error {
	return r.Send(BadImplementation(message, data...))
}
