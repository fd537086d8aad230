package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/strecanska/tickerwatch/internal/models"
	"github.com/strecanska/tickerwatch/internal/services"
)

// AuthHandler exchanges the configured access code for a JWT token
type AuthHandler struct {
	authService  services.AuthService
	jwtSecretKey []byte
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthService, jwtSecretKey []byte) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		jwtSecretKey: jwtSecretKey,
	}
}

// Authenticate validates the access code and returns a bearer token
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := h.authService.ValidateCode(req.Code); err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	tokenString, err := h.authService.GenerateToken(h.jwtSecretKey)
	if err != nil {
		http.Error(w, "Could not generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.TokenResponse{
		AccessToken: tokenString,
		TokenType:   "bearer",
	})
}
