// Package errors provides the structured error type returned by every client in this module.
//
// An Error records which operation failed, what kind of failure it was
// (transport, local I/O, API status, encoding or decoding) and, for API
// failures, the HTTP status code and raw response body as typed fields so
// callers can branch on them without parsing strings.
//
// Usage:
//
//	_, err := client.Synthesize(ctx, voiceID, req)
//	if errors.IsStatus(err, http.StatusUnauthorized) {
//	    // rotate key
//	}
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// Kind classifies an Error.
type Kind int

const (
	// KindTransport is a network or HTTP client failure before a response was received.
	KindTransport Kind = iota + 1

	// KindIO is a local filesystem failure, e.g. opening a file for a multipart upload.
	KindIO

	// KindAPI is a non-2xx response from the API.
	KindAPI

	// KindEncode is a failure serializing a request body.
	KindEncode

	// KindDecode is a failure reading or deserializing a response body.
	KindDecode
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport error"
	case KindIO:
		return "io error"
	case KindAPI:
		return "api error"
	case KindEncode:
		return "encode error"
	case KindDecode:
		return "decode error"
	default:
		return "error"
	}
}

// maxBodyInMessage bounds how much of a raw body is rendered by Error().
const maxBodyInMessage = 256

// Detail is the vendor error payload found under the "detail" key of an error response.
type Detail struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Error is the error type returned by all clients.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Op names the operation that failed (e.g. "tts.Synthesize").
	Op string

	// StatusCode is the HTTP status code for KindAPI errors, zero otherwise.
	StatusCode int

	// Body is the raw response body for KindAPI errors.
	Body []byte

	// Detail is the parsed vendor error payload, if the body carried one.
	Detail *Detail

	// Cause is the underlying error, if any.
	Cause error
}

// New creates an Error of the given kind.
func New(kind Kind, op string, cause error) *Error {
	return &Error{
		Kind:  kind,
		Op:    op,
		Cause: cause,
	}
}

// Transport wraps a failure to send a request or receive a response.
func Transport(op string, cause error) *Error {
	return New(KindTransport, op, cause)
}

// IO wraps a local filesystem failure.
func IO(op string, cause error) *Error {
	return New(KindIO, op, cause)
}

// Encode wraps a request serialization failure.
func Encode(op string, cause error) *Error {
	return New(KindEncode, op, cause)
}

// Decode wraps a response deserialization failure.
func Decode(op string, cause error) *Error {
	return New(KindDecode, op, cause)
}

// API builds an error for a non-2xx response, parsing the vendor detail payload when present.
func API(op string, statusCode int, body []byte) *Error {
	e := New(KindAPI, op, nil)
	e.StatusCode = statusCode
	e.Body = body
	e.Detail = parseDetail(body)
	return e
}

// Error returns a human-readable representation of the error.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString("[" + e.Op + "] ")
	}
	b.WriteString(e.Kind.String())

	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d %s)", e.StatusCode, http.StatusText(e.StatusCode))
	}

	switch {
	case e.Detail != nil && e.Detail.Message != "":
		b.WriteString(": ")
		if e.Detail.Status != "" {
			b.WriteString(e.Detail.Status + ": ")
		}
		b.WriteString(e.Detail.Message)
	case len(e.Body) > 0:
		b.WriteString(": " + truncate(string(e.Body)))
	}

	if e.Cause != nil {
		b.WriteString(": " + e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause, enabling use with errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithStatusCode sets the status code and returns the same error for chaining.
func (e *Error) WithStatusCode(code int) *Error {
	e.StatusCode = code
	return e
}

// WithBody sets the raw body (re-parsing the detail payload) and returns the same error.
func (e *Error) WithBody(body []byte) *Error {
	e.Body = body
	e.Detail = parseDetail(body)
	return e
}

// As reports whether err is, or wraps, an *Error and returns it.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// StatusCode returns the HTTP status code carried by err, or 0.
func StatusCode(err error) int {
	if e, ok := As(err); ok {
		return e.StatusCode
	}
	return 0
}

// IsStatus reports whether err carries the given HTTP status code.
func IsStatus(err error, code int) bool {
	return code != 0 && StatusCode(err) == code
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}

// IsNotFound reports whether err is a 404 API error.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether err is a 401 API error.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// parseDetail understands the three shapes the API uses for "detail":
// an object with status/message, a bare string, and a list of validation errors.
func parseDetail(body []byte) *Detail {
	if len(body) == 0 {
		return nil
	}
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return nil
	}

	var d Detail
	if err := json.Unmarshal(envelope.Detail, &d); err == nil && (d.Message != "" || d.Status != "") {
		return &d
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil && s != "" {
		return &Detail{Message: s}
	}

	var list []struct {
		Type string `json:"type"`
		Msg  string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &list); err == nil && len(list) > 0 {
		msgs := make([]string, 0, len(list))
		for _, item := range list {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		if len(msgs) > 0 {
			return &Detail{Status: list[0].Type, Message: strings.Join(msgs, "; ")}
		}
	}
	return nil
}

func truncate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxBodyInMessage {
		return s
	}
	cut := maxBodyInMessage
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
