// Package client is the Go SDK for the CyberShield AI moderation
// backend. It wraps the backend's fixed HTTP endpoints (email and phone
// authentication, text analysis) behind a small synchronous API. Every
// operation makes exactly one attempt and returns classified errors;
// callers decide what, if anything, to do about failures.
package client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/client/internal/api"
)

const defaultHTTPTimeout = 30 * time.Second

// Client talks to one CyberShield backend. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client for the given base URL. Additional options can
// be provided via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultHTTPTimeout},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// --------------------------------------------------------------------
// Email authentication - delegated to internal/api
// --------------------------------------------------------------------

// Register creates a new email/password account. Registration never
// authenticates; callers log in afterwards.
func (c *Client) Register(ctx context.Context, email, password string) (*MessageResponse, error) {
	out, err := api.Register(ctx, c.http, c.baseURL, email, password)
	instrument("register", err)
	return out, err
}

// Login validates email/password against the backend and returns the
// acknowledgment, optionally carrying an opaque token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	out, err := api.Login(ctx, c.http, c.baseURL, email, password)
	instrument("login", err)
	return out, err
}

// --------------------------------------------------------------------
// Phone authentication - delegated to internal/api
// --------------------------------------------------------------------

// SendOTP asks the backend to text a one-time code to the phone number.
func (c *Client) SendOTP(ctx context.Context, phone string) (*MessageResponse, error) {
	out, err := api.SendOTP(ctx, c.http, c.baseURL, phone)
	instrument("send_otp", err)
	return out, err
}

// VerifyOTP completes a phone login with the provider ID token obtained
// after the user entered the code.
func (c *Client) VerifyOTP(ctx context.Context, phone, idToken string) (*MessageResponse, error) {
	out, err := api.VerifyOTP(ctx, c.http, c.baseURL, phone, idToken)
	instrument("verify_otp", err)
	return out, err
}

// --------------------------------------------------------------------
// Content analysis - delegated to internal/api
// --------------------------------------------------------------------

// Analyze submits text to the classifier and returns its verdict.
// A single attempt; the SDK never retries classification.
func (c *Client) Analyze(ctx context.Context, text string) (*AnalysisVerdict, error) {
	out, err := api.Analyze(ctx, c.http, c.baseURL, text)
	instrument("analyze", err)
	return out, err
}

// Health probes the backend's welcome endpoint once.
func (c *Client) Health(ctx context.Context) (*MessageResponse, error) {
	out, err := api.Health(ctx, c.http, c.baseURL)
	instrument("health", err)
	return out, err
}
