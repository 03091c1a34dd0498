package woops

import (
	"errors"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedResponse is a Response that remembers what was written
type recordedResponse struct {
	status  int
	headers map[string]string
	body    any
	writes  int
	err     error
	// encode runs the body through the JSON encoder like a real response
	encode bool
}

func newRecordedResponse() *recordedResponse {
	return &recordedResponse{headers: make(map[string]string)}
}

func (r *recordedResponse) Status(code int)           { r.status = code }
func (r *recordedResponse) Header(name, value string) { r.headers[name] = value }
func (r *recordedResponse) JSON(body any) error {
	r.writes++
	if r.encode {
		if _, err := json.Marshal(body); err != nil {
			return err
		}
	}
	r.body = body
	return r.err
}

func (r *recordedResponse) payload(t *testing.T) Payload {
	t.Helper()
	p, ok := r.body.(Payload)
	require.True(t, ok, "body is %T", r.body)
	return p
}

func TestResponder_Send(t *testing.T) {
	t.Run("sends any error as internal server error", func(t *testing.T) {
		res := newRecordedResponse()
		w := NewResponder(res, Options{})

		require.NoError(t, w.Send(errors.New("Test error")))

		assert.Equal(t, http.StatusInternalServerError, res.status)
		p := res.payload(t)
		assert.Equal(t, http.StatusInternalServerError, p.StatusCode)
		assert.Equal(t, "Internal Server Error", p.Error)
		assert.Equal(t, InternalErrorMessage, p.ErrorMessage)
		assert.Equal(t, ErrorObject{Message: "Test error"}, p.Origin)
		assert.Equal(t, 1, res.writes)
	})

	t.Run("sends error with headers", func(t *testing.T) {
		res := newRecordedResponse()
		w := NewResponder(res, Options{})

		e := Normalize(errors.New("Test error")).WithHeader("Header", "Value")
		require.NoError(t, w.Send(e))

		assert.Equal(t, map[string]string{"Header": "Value"}, res.headers)
	})

	t.Run("sends no headers when there are none", func(t *testing.T) {
		res := newRecordedResponse()
		require.NoError(t, NewResponder(res, Options{}).Send(NotFound("gone")))

		assert.Empty(t, res.headers)
		assert.Equal(t, http.StatusNotFound, res.status)
	})

	t.Run("includes stack when configured", func(t *testing.T) {
		res := newRecordedResponse()
		require.NoError(t, NewResponder(res, Options{IncludeErrorStack: true}).Send(Conflict("dupe")))

		stack := res.payload(t).ErrorStack
		require.NotNil(t, stack)
		assert.Contains(t, *stack, "responder_test.go")
	})

	t.Run("nil error still writes a 500", func(t *testing.T) {
		res := newRecordedResponse()
		require.NoError(t, NewResponder(res, Options{}).Send(nil))

		assert.Equal(t, http.StatusInternalServerError, res.status)
		p := res.payload(t)
		assert.Equal(t, InternalErrorMessage, p.ErrorMessage)
		assert.Nil(t, p.Origin)
	})

	t.Run("unencodable data is replaced and the status kept", func(t *testing.T) {
		res := newRecordedResponse()
		res.encode = true

		var sent *Error
		w := NewResponder(res, Options{OnSend: func(e *Error) { sent = e }})

		e := Conflict("busy", make(chan int)).WithHeader("Retry-After", "5")
		require.NoError(t, w.Send(e))

		assert.Equal(t, http.StatusConflict, res.status)
		assert.Equal(t, "5", res.headers["Retry-After"])
		assert.Equal(t, 2, res.writes)

		p := res.payload(t)
		assert.Equal(t, http.StatusConflict, p.StatusCode)
		assert.Equal(t, "busy", p.ErrorMessage)
		assert.Equal(t, ErrorObject{Message: UnencodableDataMessage}, p.Data)
		assert.Nil(t, p.Origin)
		assert.Same(t, e, sent)
	})

	t.Run("encodable data is written once", func(t *testing.T) {
		res := newRecordedResponse()
		res.encode = true

		require.NoError(t, NewResponder(res, Options{}).Send(BadData("invalid", map[string]int{"age": -1})))

		assert.Equal(t, 1, res.writes)
		assert.Equal(t, map[string]int{"age": -1}, res.payload(t).Data)
	})

	t.Run("returns the write error and skips OnSend", func(t *testing.T) {
		res := newRecordedResponse()
		res.err = errors.New("connection reset")

		called := false
		w := NewResponder(res, Options{OnSend: func(*Error) { called = true }})

		err := w.Send(BadRequest("bad"))
		assert.EqualError(t, err, "connection reset")
		assert.False(t, called)
		assert.Equal(t, 2, res.writes)
	})

	t.Run("calls OnSend with the normalized error", func(t *testing.T) {
		var sent *Error
		w := NewResponder(newRecordedResponse(), Options{OnSend: func(e *Error) { sent = e }})

		plain := errors.New("boom")
		require.NoError(t, w.Send(plain))

		require.NotNil(t, sent)
		assert.Equal(t, plain, sent.Origin)
	})
}

func TestResponder_Catalog(t *testing.T) {
	tests := []struct {
		name   string
		send   func(w *Responder) error
		status int
	}{
		{"bad request", func(w *Responder) error { return w.BadRequest("m", "d") }, http.StatusBadRequest},
		{"payment required", func(w *Responder) error { return w.PaymentRequired("m", "d") }, http.StatusPaymentRequired},
		{"forbidden", func(w *Responder) error { return w.Forbidden("m", "d") }, http.StatusForbidden},
		{"not found", func(w *Responder) error { return w.NotFound("m", "d") }, http.StatusNotFound},
		{"not acceptable", func(w *Responder) error { return w.NotAcceptable("m", "d") }, http.StatusNotAcceptable},
		{"proxy auth required", func(w *Responder) error { return w.ProxyAuthRequired("m", "d") }, http.StatusProxyAuthRequired},
		{"client timeout", func(w *Responder) error { return w.ClientTimeout("m", "d") }, http.StatusRequestTimeout},
		{"conflict", func(w *Responder) error { return w.Conflict("m", "d") }, http.StatusConflict},
		{"resource gone", func(w *Responder) error { return w.ResourceGone("m", "d") }, http.StatusGone},
		{"length required", func(w *Responder) error { return w.LengthRequired("m", "d") }, http.StatusLengthRequired},
		{"precondition failed", func(w *Responder) error { return w.PreconditionFailed("m", "d") }, http.StatusPreconditionFailed},
		{"entity too large", func(w *Responder) error { return w.EntityTooLarge("m", "d") }, http.StatusRequestEntityTooLarge},
		{"uri too long", func(w *Responder) error { return w.URITooLong("m", "d") }, http.StatusRequestURITooLong},
		{"unsupported media type", func(w *Responder) error { return w.UnsupportedMediaType("m", "d") }, http.StatusUnsupportedMediaType},
		{"range not satisfiable", func(w *Responder) error { return w.RangeNotSatisfiable("m", "d") }, http.StatusRequestedRangeNotSatisfiable},
		{"expectation failed", func(w *Responder) error { return w.ExpectationFailed("m", "d") }, http.StatusExpectationFailed},
		{"teapot", func(w *Responder) error { return w.Teapot("m", "d") }, http.StatusTeapot},
		{"bad data", func(w *Responder) error { return w.BadData("m", "d") }, http.StatusUnprocessableEntity},
		{"locked", func(w *Responder) error { return w.Locked("m", "d") }, http.StatusLocked},
		{"failed dependency", func(w *Responder) error { return w.FailedDependency("m", "d") }, http.StatusFailedDependency},
		{"precondition required", func(w *Responder) error { return w.PreconditionRequired("m", "d") }, http.StatusPreconditionRequired},
		{"too many requests", func(w *Responder) error { return w.TooManyRequests("m", "d") }, http.StatusTooManyRequests},
		{"illegal", func(w *Responder) error { return w.Illegal("m", "d") }, http.StatusUnavailableForLegalReasons},
		{"internal", func(w *Responder) error { return w.Internal("m", "d") }, http.StatusInternalServerError},
		{"internal with status", func(w *Responder) error { return w.Internal("m", "d", http.StatusLoopDetected) }, http.StatusLoopDetected},
		{"not implemented", func(w *Responder) error { return w.NotImplemented("m", "d") }, http.StatusNotImplemented},
		{"bad gateway", func(w *Responder) error { return w.BadGateway("m", "d") }, http.StatusBadGateway},
		{"server unavailable", func(w *Responder) error { return w.ServerUnavailable("m", "d") }, http.StatusServiceUnavailable},
		{"gateway timeout", func(w *Responder) error { return w.GatewayTimeout("m", "d") }, http.StatusGatewayTimeout},
		{"bad implementation", func(w *Responder) error { return w.BadImplementation("m", "d") }, http.StatusInternalServerError},
		{"method not allowed", func(w *Responder) error { return w.MethodNotAllowed("m", "d", AllowList{"GET"}) }, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newRecordedResponse()
			require.NoError(t, tt.send(NewResponder(res, Options{})))

			assert.Equal(t, tt.status, res.status)
			p := res.payload(t)
			assert.Equal(t, tt.status, p.StatusCode)
			assert.Equal(t, "m", p.ErrorMessage)
			assert.Equal(t, "d", p.Data)
			assert.Equal(t, 1, res.writes)
		})
	}

	t.Run("unauthorized", func(t *testing.T) {
		res := newRecordedResponse()
		require.NoError(t, NewResponder(res, Options{}).Unauthorized("", "Basic", Params("realm", "X")))

		assert.Equal(t, http.StatusUnauthorized, res.status)
		assert.Equal(t, `Basic realm="X"`, res.headers[HeaderWWWAuthenticate])
		assert.Equal(t, "Unauthorized", res.payload(t).ErrorMessage)
	})

	t.Run("bad implementation is flagged", func(t *testing.T) {
		res := newRecordedResponse()
		require.NoError(t, NewResponder(res, Options{}).BadImplementation("m"))

		assert.True(t, res.payload(t).IsDeveloperError)
	})
}
