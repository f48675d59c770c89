// Package api issues the actual HTTP requests. One file per backend
// area; every function makes a single attempt, honors ctx, and returns
// classified errors from apierr.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/client/internal/apierr"
	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/client/internal/types"
)

// Register creates a new email/password account. The backend expects a
// form-encoded body, not JSON.
func Register(ctx context.Context, httpClient *http.Client, baseURL, email, password string) (*types.MessageResponse, error) {
	body, status, err := postForm(ctx, httpClient, baseURL+"/auth/email/register", "register", email, password)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, apierr.NewServerError("register", status, body, "Registration failed")
	}
	var out types.MessageResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, apierr.NewParseError("register", status, err, "Registration failed")
	}
	return &out, nil
}

// Login exchanges email/password for a login acknowledgment, optionally
// carrying an opaque token.
func Login(ctx context.Context, httpClient *http.Client, baseURL, email, password string) (*types.LoginResult, error) {
	body, status, err := postForm(ctx, httpClient, baseURL+"/auth/email/login", "login", email, password)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, apierr.NewServerError("login", status, body, "Login failed")
	}
	var out types.LoginResult
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, apierr.NewParseError("login", status, err, "Login failed")
	}
	return &out, nil
}

// postForm sends email/password as application/x-www-form-urlencoded and
// returns the raw response body and status. Transport failures come back
// as KindNetwork errors.
func postForm(ctx context.Context, httpClient *http.Client, endpoint, operation, email, password string) ([]byte, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if email == "" || password == "" {
		return nil, 0, apierr.NewValidationError("email and password are required")
	}

	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, 0, fmt.Errorf("%s: build request: %w", operation, err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, apierr.NewNetworkError(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, apierr.NewNetworkError(operation, err)
	}
	return body, resp.StatusCode, nil
}
