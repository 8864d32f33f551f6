package utils

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := &jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-only-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestParseUserIDFromJWT_Success(t *testing.T) {
	raw := signedToken(t, strconv.FormatInt(123, 10), time.Now().Add(time.Hour))

	userID, err := ParseUserIDFromJWT(raw)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if userID != 123 {
		t.Errorf("expected 123, got %d", userID)
	}
}

func TestParseUnverifiedToken_KeepsSignedStringAndExpiry(t *testing.T) {
	exp := time.Now().Add(-time.Minute)
	raw := signedToken(t, "7", exp)

	token, err := ParseUnverifiedToken(raw)

	if err != nil {
		t.Fatalf("expired tokens are still readable, got: %v", err)
	}
	if token.String() != raw {
		t.Error("expected signed string to be preserved")
	}
	if !token.Expired(time.Now()) {
		t.Error("expected token to be reported as expired")
	}
}

func TestParseUserIDFromJWT_Errors(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"non numeric subject", signedToken(t, "alice", time.Now().Add(time.Hour))},
		{"missing subject", signedToken(t, "", time.Now().Add(time.Hour))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseUserIDFromJWT(tt.token); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseUnverifiedToken_Empty(t *testing.T) {
	_, err := ParseUnverifiedToken("")
	if !errors.Is(err, ErrEmptyToken) {
		t.Errorf("expected ErrEmptyToken, got %v", err)
	}
}
