package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signed(t *testing.T, key string, method jwt.SigningMethod, claims Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func TestValidateToken(t *testing.T) {
	SetSecret("test-secret")

	valid := Claims{
		UserID: 7,
		Role:   RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	claims, err := ValidateToken(signed(t, "test-secret", jwt.SigningMethodHS256, valid))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 7 || claims.Role != RoleAdmin {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := ValidateToken(signed(t, "other-secret", jwt.SigningMethodHS256, valid)); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong key: got %v", err)
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	if _, err := ValidateToken(signed(t, "test-secret", jwt.SigningMethodHS256, expired)); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired: got %v", err)
	}

	if _, err := ValidateToken(signed(t, "test-secret", jwt.SigningMethodHS384, valid)); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("alg HS384 accepted: %v", err)
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
		err    error
	}{
		{"", "", ErrMissingToken},
		{"Token abc", "", ErrMalformed},
		{"Bearer", "", ErrMalformed},
		{"Bearer abc", "abc", nil},
	}
	for _, tc := range cases {
		got, err := BearerToken(tc.header)
		if !errors.Is(err, tc.err) || got != tc.want {
			t.Errorf("BearerToken(%q) = %q, %v", tc.header, got, err)
		}
	}
}
