// Package errs defines the single error type shared by the form-submission
// pipeline. Every failure a caller can observe carries an explicit Kind, so
// call sites switch on the variant instead of probing nested optional fields.
package errs

import (
	"errors"
	"fmt"
)

// Kind discriminates where in the pipeline a failure originated.
type Kind int

const (
	// KindUnknown is the zero value; errors from outside the pipeline.
	KindUnknown Kind = iota

	// KindInput marks a caller mistake caught before any work was done,
	// such as an empty slug or a re-entrant submit.
	KindInput

	// KindValidation marks a field-level schema failure. Never reaches
	// the server.
	KindValidation

	// KindGate marks a submit attempt while the CAPTCHA gate is
	// unverified. Short-circuits before any network call.
	KindGate

	// KindTransport marks a request that never produced a response
	// (connectivity, CORS, request construction).
	KindTransport

	// KindServer marks a response that signaled failure, either through
	// the envelope's error field or a non-2xx status.
	KindServer

	// KindWidget marks a failure of the CAPTCHA challenge itself
	// (expiry or widget error).
	KindWidget
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindValidation:
		return "validation"
	case KindGate:
		return "gate"
	case KindTransport:
		return "transport"
	case KindServer:
		return "server"
	case KindWidget:
		return "widget"
	default:
		return "unknown"
	}
}

// Error is the normalized error value produced at pipeline boundaries.
type Error struct {
	Kind    Kind
	Message string // human-readable, safe to display inline
	Status  int    // HTTP status when Kind == KindServer, else 0
	Err     error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String() + " error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Input creates a caller-input error.
func Input(format string, v ...interface{}) *Error {
	return &Error{Kind: KindInput, Message: fmt.Sprintf(format, v...)}
}

// Validation creates a field-validation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Gate creates a CAPTCHA-gate error.
func Gate(message string) *Error {
	return &Error{Kind: KindGate, Message: message}
}

// Transport creates a transport-level error wrapping its cause.
func Transport(message string, err error) *Error {
	return &Error{Kind: KindTransport, Message: message, Err: err}
}

// Server creates a server-signaled error with the response status.
func Server(status int, message string) *Error {
	return &Error{Kind: KindServer, Status: status, Message: message}
}

// Widget creates a CAPTCHA-widget error.
func Widget(message string) *Error {
	return &Error{Kind: KindWidget, Message: message}
}

// KindOf reports the Kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
