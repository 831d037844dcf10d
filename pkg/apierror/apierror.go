// Package apierror defines the closed set of error kinds returned by the
// scriber SDK.
//
// Callers only ever need to distinguish two situations: the server could not
// be reached at all ([APIConnectionError]) or the server was reached and
// rejected the request ([APIError]). The remaining kinds are reserved for
// richer server responses and are not produced by the event submission path.
package apierror

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// Base carries the fields shared by every error kind.
type Base struct {
	// Message is the human-readable explanation of the failure.
	Message string
	// HTTPStatus is the response status code, if the server responded.
	HTTPStatus int
	// HTTPBody is the raw response body, if the server responded.
	HTTPBody string
	// JSONBody is HTTPBody decoded as JSON, when it decodes cleanly.
	JSONBody map[string]any
	// Err is the underlying cause, if any.
	Err error
}

func (e *Base) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "scriber: unknown error"
}

func (e *Base) Unwrap() error { return e.Err }

// APIError means the server was reached but responded with a non-success
// status code. The status code and body are available for inspection.
type APIError struct {
	Base
}

// APIConnectionError means the request never completed: DNS failure, TCP
// connection failure, TLS failure, timeout, or a malformed URL.
type APIConnectionError struct {
	Base
}

// AuthenticationError is reserved for credential rejections surfaced by the
// server. Not raised by the event submission path.
type AuthenticationError struct {
	Base
}

// InvalidRequestError reports a request that is invalid before it is sent.
// Param names the offending parameter.
type InvalidRequestError struct {
	Base
	Param string
}

// CardError is reserved for payment-specific server responses. Not raised by
// the event submission path.
type CardError struct {
	Base
	Param string
	Code  string
}

// NewAPIError builds an APIError from a server response, decoding the body
// as JSON when possible.
func NewAPIError(message string, status int, body []byte) *APIError {
	e := &APIError{Base: Base{Message: message, HTTPStatus: status}}
	if !utf8.Valid(body) {
		e.HTTPBody = "<could not decode body as utf-8>"
		return e
	}
	e.HTTPBody = string(body)
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err == nil {
		e.JSONBody = decoded
	}
	return e
}

// NewConnectionError builds an APIConnectionError whose message combines a
// static explanation with the underlying network diagnostic.
func NewConnectionError(explanation string, cause error) *APIConnectionError {
	detail := "unknown"
	if cause != nil {
		detail = cause.Error()
	}
	return &APIConnectionError{Base: Base{
		Message: fmt.Sprintf("%s\n\n(Network error: %s)", explanation, detail),
		Err:     cause,
	}}
}

// NewInvalidRequestError reports a client-side precondition violation on the
// named parameter.
func NewInvalidRequestError(message, param string) *InvalidRequestError {
	return &InvalidRequestError{Base: Base{Message: message}, Param: param}
}
