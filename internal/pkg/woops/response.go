package woops

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

// Response is the response channel an error is written to.
// It is owned by the request-handling framework, not by a Responder.
type Response interface {
	Status(code int)
	Header(name, value string)
	JSON(body any) error
}

// FiberResponse writes to a Fiber request context
type FiberResponse struct {
	c *fiber.Ctx
}

// NewFiberResponse creates a Response backed by c
func NewFiberResponse(c *fiber.Ctx) *FiberResponse {
	return &FiberResponse{c: c}
}

// Status sets the response status code
func (r *FiberResponse) Status(code int) {
	r.c.Status(code)
}

// Header sets a response header
func (r *FiberResponse) Header(name, value string) {
	r.c.Set(name, value)
}

// JSON writes body with the app's JSON encoder
func (r *FiberResponse) JSON(body any) error {
	return r.c.JSON(body)
}

// HTTPResponse writes to a net/http ResponseWriter. The status line is held
// back until JSON so that headers set after Status are still sent.
type HTTPResponse struct {
	w      http.ResponseWriter
	status int
}

// NewHTTPResponse creates a Response backed by w
func NewHTTPResponse(w http.ResponseWriter) *HTTPResponse {
	return &HTTPResponse{w: w, status: http.StatusOK}
}

// Status records the status code for the coming write
func (r *HTTPResponse) Status(code int) {
	r.status = code
}

// Header sets a response header
func (r *HTTPResponse) Header(name, value string) {
	r.w.Header().Set(name, value)
}

// JSON encodes body and writes the status line, headers and body
func (r *HTTPResponse) JSON(body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	r.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	r.w.WriteHeader(r.status)
	_, err = r.w.Write(data)
	return err
}
