package utils

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-test-prep/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned when there is no token to parse.
var ErrEmptyToken = errors.New("empty token")

// ParseUnverifiedToken reads the claims of a compact JWS without checking
// its signature. The client does not hold the signing key; the server
// verifies every token it receives.
//
// Returns:
//
//	models.Token - registered claims plus the original signed string
//	error        - non-nil if the string is empty or not a well-formed JWT
//
// Example usage:
//
//	token, err := utils.ParseUnverifiedToken(raw)
//	userID, err := token.GetUserID()
func ParseUnverifiedToken(tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrEmptyToken
	}

	var token models.Token
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &token); err != nil {
		return models.Token{}, fmt.Errorf("error occurred parsing token: %w", err)
	}
	token.SignedString = tokenString

	return token, nil
}

// ParseUserIDFromJWT returns the "sub" claim of tokenString as int64.
func ParseUserIDFromJWT(tokenString string) (int64, error) {
	token, err := ParseUnverifiedToken(tokenString)
	if err != nil {
		return 0, err
	}

	return token.GetUserID()
}
