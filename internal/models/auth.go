package models

import (
	"github.com/dgrijalva/jwt-go"
)

// Claims for JWT authentication
type Claims struct {
	jwt.StandardClaims
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AuthRequest struct {
	Code string `json:"code"`
}
