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

// Analyze submits text to the classifier and returns its verdict.
func Analyze(ctx context.Context, httpClient *http.Client, baseURL, text string) (*types.AnalysisVerdict, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, apierr.NewValidationError("text must not be empty")
	}

	body, err := json.Marshal(types.AnalyzeRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("analyze: marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/analyze", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("analyze: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetworkError("analyze", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.NewNetworkError("analyze", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apierr.NewServerError("analyze", resp.StatusCode, respBody, "Analysis failed")
	}
	var verdict types.AnalysisVerdict
	if err := json.Unmarshal(respBody, &verdict); err != nil {
		return nil, apierr.NewParseError("analyze", resp.StatusCode, err, "Analysis failed")
	}
	return &verdict, nil
}
