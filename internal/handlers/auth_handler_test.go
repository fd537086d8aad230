package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/strecanska/tickerwatch/internal/config"
	"github.com/strecanska/tickerwatch/internal/models"
	"github.com/strecanska/tickerwatch/internal/services"
)

func TestAuthenticate(t *testing.T) {
	authService := services.NewAuthService(config.AuthConfig{Code: "TUL123"})
	handler := NewAuthHandler(authService, []byte("test_secret"))

	recorder := httptest.NewRecorder()
	handler.Authenticate(recorder, httptest.NewRequest("POST", "/auth", strings.NewReader(`{"code":"TUL123"}`)))
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200 for the right code, got %d", recorder.Code)
	}

	var token models.TokenResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &token); err != nil {
		t.Fatalf("Failed to decode token response: %v", err)
	}
	if token.AccessToken == "" {
		t.Errorf("Expected a token in the response")
	}
	if token.TokenType != "bearer" {
		t.Errorf("Expected token type bearer, got %s", token.TokenType)
	}

	recorder = httptest.NewRecorder()
	handler.Authenticate(recorder, httptest.NewRequest("POST", "/auth", strings.NewReader(`{"code":"wrong"}`)))
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for a wrong code, got %d", recorder.Code)
	}

	recorder = httptest.NewRecorder()
	handler.Authenticate(recorder, httptest.NewRequest("POST", "/auth", strings.NewReader(`not json`)))
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a malformed body, got %d", recorder.Code)
	}
}
