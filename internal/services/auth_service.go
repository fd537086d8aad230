package services

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/strecanska/tickerwatch/internal/config"
	"github.com/strecanska/tickerwatch/internal/models"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	ValidateCode(code string) error
	GenerateToken(secretKey []byte) (string, error)
}

// authService implements the AuthService interface
type authService struct {
	cfg config.AuthConfig
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg config.AuthConfig) AuthService {
	return &authService{cfg: cfg}
}

var errInvalidCode = errors.New("invalid access code")

// ValidateCode checks the submitted access code against the configured one.
// A bcrypt hash is preferred; the plain code is a fallback for local runs.
func (s *authService) ValidateCode(code string) error {
	if s.cfg.CodeHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.CodeHash), []byte(code)); err != nil {
			return errInvalidCode
		}
		return nil
	}

	if s.cfg.Code == "" {
		return errInvalidCode
	}
	if subtle.ConstantTimeCompare([]byte(s.cfg.Code), []byte(code)) != 1 {
		return errInvalidCode
	}
	return nil
}

// GenerateToken creates a new JWT token for an authenticated client
func (s *authService) GenerateToken(secretKey []byte) (string, error) {
	expirationTime := time.Now().Add(60 * time.Minute)
	claims := &models.Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   "tickerwatch",
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
