package woops

import (
	"reflect"

	"github.com/goccy/go-json"
)

// Payload is the JSON body written for an Error.
//
// Field presence is part of the contract: data, isDeveloperError, errorStack
// and origin are left out unless they apply.
type Payload struct {
	StatusCode       int     `json:"statusCode"`
	Error            string  `json:"error"`
	ErrorMessage     string  `json:"errorMessage"`
	Data             any     `json:"data,omitempty"`
	IsDeveloperError bool    `json:"isDeveloperError,omitempty"`
	ErrorStack       *string `json:"errorStack,omitempty"`
	Origin           any     `json:"origin,omitempty"`
}

// ErrorObject is how plain error values appear inside a Payload.
type ErrorObject struct {
	Message string `json:"message"`
}

// ToPayload builds the wire representation of the error
func (e *Error) ToPayload(opts Options) Payload {
	payload := Payload{
		StatusCode:   e.Status,
		Error:        StatusText(e.Status),
		ErrorMessage: e.Message,
		Data:         encodable(e.Data),
	}
	if e.IsDeveloperError {
		payload.IsDeveloperError = true
	}
	if opts.IncludeErrorStack {
		stack := e.Stack()
		payload.ErrorStack = &stack
	}
	if e.Origin != nil {
		payload.Origin = encodable(e.Origin)
	}
	return payload
}

// encodable replaces error values that have no JSON form of their own with an
// ErrorObject. Most error types encode as an empty object otherwise.
// Nil pointers behind an error interface are dropped.
func encodable(v any) any {
	switch t := v.(type) {
	case json.Marshaler:
		return t
	case error:
		if isNilValue(t) {
			return nil
		}
		return ErrorObject{Message: t.Error()}
	default:
		return v
	}
}

func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
