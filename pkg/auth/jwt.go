package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

var (
	ErrMissingToken = errors.New("authorization header required")
	ErrMalformed    = errors.New("invalid authorization header format")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims are issued by the user service; this service only validates them.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

var (
	secretMu sync.RWMutex
	secret   []byte
)

// SetSecret configures the HMAC key shared with the token issuer
func SetSecret(s string) {
	secretMu.Lock()
	defer secretMu.Unlock()
	secret = []byte(s)
}

func signingKey() []byte {
	secretMu.RLock()
	defer secretMu.RUnlock()
	return secret
}

// ValidateToken parses an HS256 token and returns its claims
func ValidateToken(tokenString string) (*Claims, error) {
	key := signingKey()
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: signing secret not configured", ErrInvalidToken)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrMalformed
	}
	return parts[1], nil
}
