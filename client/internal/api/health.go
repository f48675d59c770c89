package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/client/internal/apierr"
	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/client/internal/types"
)

// Health probes the backend's welcome endpoint.
func Health(ctx context.Context, httpClient *http.Client, baseURL string) (*types.MessageResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("health: build request: %w", err)
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetworkError("health", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.NewNetworkError("health", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apierr.NewServerError("health", resp.StatusCode, body, "Service unavailable")
	}
	var out types.MessageResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, apierr.NewParseError("health", resp.StatusCode, err, "Service unavailable")
	}
	return &out, nil
}
