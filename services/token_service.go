package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"inventory/apperrors"
	"inventory/models"
)

// TokenService issues and verifies HS256 session tokens. Tokens are
// stateless: there is no refresh and no server-side revocation, callers
// re-authenticate after expiry.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), expiry: expiry}
}

// Issue signs a token asserting the credential's identity.
func (s *TokenService) Issue(cred models.Credential) (string, error) {
	now := time.Now()
	claims := &models.Claims{
		Username: cred.Username,
		IsAdmin:  cred.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses and checks the token. Malformed, expired and badly signed
// tokens all fail the same way.
func (s *TokenService) Verify(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}
