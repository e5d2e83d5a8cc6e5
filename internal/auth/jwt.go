// Package auth implements token-based authentication for the API.
package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

var (
	ErrNoSecret     = errors.New("JWT_SECRET is not set")
	ErrInvalidToken = errors.New("the authentication token is invalid")
	ErrExpiredToken = errors.New("the authentication token is expired")
)

// TokenLifetime is how long an issued access token stays valid.
const TokenLifetime = 24 * time.Hour

// IssueToken returns a signed access token for a profile.
func IssueToken(profileID uuid.UUID, lifetime time.Duration) (string, time.Time, error) {
	secret, err := secret()
	if err != nil {
		return "", time.Time{}, err
	}

	expiresAt := time.Now().Add(lifetime)
	claims := jwt.StandardClaims{
		Subject:   profileID.String(),
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// ParseToken verifies a token and returns the profile ID it was issued for.
func ParseToken(tokenString string) (uuid.UUID, error) {
	secret, err := secret()
	if err != nil {
		return uuid.Nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(_ *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return uuid.Nil, ErrExpiredToken
		}

		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return uuid.Nil, ErrInvalidToken
	}

	profileID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return profileID, nil
}

func secret() ([]byte, error) {
	s, ok := os.LookupEnv("JWT_SECRET")
	if !ok || s == "" {
		return nil, ErrNoSecret
	}

	return []byte(s), nil
}
