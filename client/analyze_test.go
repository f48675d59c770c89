package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	client "github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/client"
)

func TestClient_Analyze_Safe(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/analyze" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text != "hello world" {
			t.Errorf("unexpected request body (err=%v, text=%q)", err, req.Text)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"is_hate_speech":false,"confidence":0.9,"categories":[]}`))
	}))
	defer hs.Close()

	c, err := client.New(hs.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	v, err := c.Analyze(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if v.IsHateSpeech || v.Confidence != 0.9 || len(v.Categories) != 0 {
		t.Fatalf("unexpected verdict %+v", v)
	}
}

func TestClient_Analyze_Flagged(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"is_hate_speech":true,"confidence":0.75,"categories":["harassment","threat"]}`))
	}))
	defer hs.Close()

	c, err := client.New(hs.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	v, err := c.Analyze(context.Background(), "some text")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if !v.IsHateSpeech || len(v.Categories) != 2 || v.Categories[0] != "harassment" {
		t.Fatalf("unexpected verdict %+v", v)
	}
}

func TestClient_Analyze_ServerError(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"detail":"model unavailable"}`))
	}))
	defer hs.Close()

	c, err := client.New(hs.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.Analyze(context.Background(), "x")
	if !client.IsServerError(err) {
		t.Fatalf("expected server error, got %v", err)
	}
	if msg := client.ErrorMessage(err); msg != "model unavailable" {
		t.Fatalf("message = %q, want server detail", msg)
	}
}

func TestClient_Analyze_EmptyText(t *testing.T) {
	t.Parallel()
	c, err := client.New("http://example.invalid")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Analyze(context.Background(), ""); !client.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
