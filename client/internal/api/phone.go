package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/client/internal/apierr"
	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/client/internal/types"
)

// SendOTP asks the backend to dispatch a one-time code to the phone.
func SendOTP(ctx context.Context, httpClient *http.Client, baseURL, phone string) (*types.MessageResponse, error) {
	if phone == "" {
		return nil, apierr.NewValidationError("phone number is required")
	}
	req := types.SendOTPRequest{PhoneNumber: phone}
	return postJSONMessage(ctx, httpClient, baseURL+"/auth/phone/send-otp", "send-otp", req, "OTP request failed")
}

// VerifyOTP submits the provider ID token obtained after the user entered
// the code. A 2xx acknowledgment completes a phone login.
func VerifyOTP(ctx context.Context, httpClient *http.Client, baseURL, phone, idToken string) (*types.MessageResponse, error) {
	if phone == "" || idToken == "" {
		return nil, apierr.NewValidationError("phone number and id token are required")
	}
	req := types.VerifyOTPRequest{PhoneNumber: phone, IDToken: idToken}
	return postJSONMessage(ctx, httpClient, baseURL+"/auth/phone/verify-otp", "verify-otp", req, "OTP verification failed")
}

// postJSONMessage POSTs a JSON payload and decodes the backend's message
// envelope.
func postJSONMessage(ctx context.Context, httpClient *http.Client, endpoint, operation string, payload any, fallback string) (*types.MessageResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: marshal request: %w", operation, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", operation, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetworkError(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.NewNetworkError(operation, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apierr.NewServerError(operation, resp.StatusCode, respBody, fallback)
	}
	var out types.MessageResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, apierr.NewParseError(operation, resp.StatusCode, err, fallback)
	}
	return &out, nil
}
