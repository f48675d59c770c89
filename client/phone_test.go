package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	client "github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/client"
)

func TestClient_SendOTP_Success(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/phone/send-otp" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req["phone_number"] != "+15551234567" {
			t.Errorf("unexpected body %v (err=%v)", req, err)
		}
		_, _ = w.Write([]byte(`{"message":"OTP sent"}`))
	}))
	defer hs.Close()

	c, err := client.New(hs.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res, err := c.SendOTP(context.Background(), "+15551234567")
	if err != nil {
		t.Fatalf("SendOTP returned error: %v", err)
	}
	if res.Message != "OTP sent" {
		t.Fatalf("unexpected message %q", res.Message)
	}
}

func TestClient_VerifyOTP_Success(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/phone/verify-otp" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req["id_token"] != "tok" {
			t.Errorf("unexpected body %v (err=%v)", req, err)
		}
		_, _ = w.Write([]byte(`{"message":"Phone verified"}`))
	}))
	defer hs.Close()

	c, err := client.New(hs.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.VerifyOTP(context.Background(), "+15551234567", "tok"); err != nil {
		t.Fatalf("VerifyOTP returned error: %v", err)
	}
}

func TestClient_VerifyOTP_Rejected(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"code expired"}`))
	}))
	defer hs.Close()

	c, err := client.New(hs.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.VerifyOTP(context.Background(), "+15551234567", "tok")
	if !client.IsServerError(err) {
		t.Fatalf("expected server error, got %v", err)
	}
	if msg := client.ErrorMessage(err); msg != "code expired" {
		t.Fatalf("message = %q", msg)
	}
}
