package apierr

import (
	"encoding/json"
	"fmt"
)

// ConnectivityMessage is shown for every transport-level failure. The
// backend's real error is kept on the error chain for logs.
const ConnectivityMessage = "Unable to connect to the server. Please try again later."

// detailBody matches FastAPI's error envelope: {"detail": "..."}.
type detailBody struct {
	Detail string `json:"detail"`
}

// DecodeDetail extracts the server's "detail" message from an error body.
// Returns "" when the body is not JSON or carries no detail.
func DecodeDetail(body []byte) string {
	var d detailBody
	if err := json.Unmarshal(body, &d); err != nil {
		return ""
	}
	return d.Detail
}

// NewServerError builds a KindServer error for a non-2xx response. The
// message is taken from the body's detail field when present, otherwise
// the per-operation fallback is used.
func NewServerError(operation string, statusCode int, body []byte, fallback string) *Error {
	msg := DecodeDetail(body)
	if msg == "" {
		msg = fallback
	}
	return &Error{
		Kind:       KindServer,
		StatusCode: statusCode,
		Message:    msg,
		Underlying: fmt.Errorf("%s: status %d", operation, statusCode),
	}
}

// NewNetworkError builds a KindNetwork error for a transport failure.
func NewNetworkError(operation string, err error) *Error {
	return &Error{
		Kind:       KindNetwork,
		Message:    ConnectivityMessage,
		Underlying: fmt.Errorf("%s: %w", operation, err),
	}
}

// NewParseError builds a KindParse error for a response body that was not
// valid JSON. Displayed as a server failure.
func NewParseError(operation string, statusCode int, err error, fallback string) *Error {
	return &Error{
		Kind:       KindParse,
		StatusCode: statusCode,
		Message:    fallback,
		Underlying: fmt.Errorf("%s: invalid response body: %w", operation, err),
	}
}

// NewValidationError builds a KindValidation error with a user-facing
// message. No request is made for these.
func NewValidationError(msg string) *Error {
	return &Error{
		Kind:       KindValidation,
		Message:    msg,
		Underlying: fmt.Errorf("validation: %s", msg),
	}
}
