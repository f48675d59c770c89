package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_EmptyBaseURL(t *testing.T) {
	if _, err := New(""); !errors.Is(err, ErrEmptyBaseURL) {
		t.Fatalf("expected ErrEmptyBaseURL, got %v", err)
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// a double slash would make the path "//analyze"
		if r.URL.Path != "/analyze" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"is_hate_speech":false,"confidence":1,"categories":[]}`))
	}))
	defer hs.Close()

	c, err := New(hs.URL + "/")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Analyze(context.Background(), "x"); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
}

func TestNew_BadOption(t *testing.T) {
	if _, err := New("http://example.com", WithHTTPTimeout(0)); err == nil {
		t.Fatalf("expected error from invalid option")
	}
}
