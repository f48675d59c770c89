package client

import (
	"errors"

	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/client/internal/apierr"
)

// ErrEmptyBaseURL is returned by New when no backend URL is given.
var ErrEmptyBaseURL = errors.New("base URL cannot be empty")

// APIError is the classified error returned by every SDK operation.
// Callers inspect Kind (or use the predicates below) instead of matching
// message strings.
type APIError = apierr.Error

// ConnectivityMessage is the user-facing text for transport failures.
const ConnectivityMessage = apierr.ConnectivityMessage

// IsValidationError reports a local, pre-network rejection.
func IsValidationError(err error) bool { return apierr.IsKind(err, apierr.KindValidation) }

// IsNetworkError reports a transport-level failure.
func IsNetworkError(err error) bool { return apierr.IsKind(err, apierr.KindNetwork) }

// IsServerError reports a non-2xx backend response.
func IsServerError(err error) bool { return apierr.IsKind(err, apierr.KindServer) }

// IsParseError reports a response body that was not valid JSON.
func IsParseError(err error) bool { return apierr.IsKind(err, apierr.KindParse) }

// ErrorMessage extracts the user-facing message from an SDK error, so
// display layers never need to unwrap anything.
func ErrorMessage(err error) string { return apierr.MessageOf(err) }
