// Package apierr classifies failures at the HTTP client boundary.
// Every operation returns one of four kinds so callers can test behavior
// without string-matching, while display layers only need Message.
package apierr

import (
	"errors"
	"fmt"
)

// Kind identifies the failure class of an API error.
type Kind int

const (
	// KindValidation is a local, pre-network rejection. The request never
	// left the process.
	KindValidation Kind = iota

	// KindNetwork is a transport-level failure: connection refused, DNS,
	// timeout. No HTTP status is available.
	KindNetwork

	// KindServer is a non-2xx response from the backend. Message carries
	// the server's "detail" field when present.
	KindServer

	// KindParse is a 2xx response whose body was not valid JSON. Rendered
	// to users the same way as KindServer.
	KindParse
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	case KindParse:
		return "parse"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error carries the failure kind plus everything needed to render or
// inspect it: the HTTP status (0 for non-HTTP failures), a user-facing
// message, and the underlying cause.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error { return e.Underlying }

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == k
	}
	return false
}

// MessageOf extracts the user-facing message from err. For non-API errors
// it falls back to err.Error().
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
