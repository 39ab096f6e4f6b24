package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIsExpired inspects a bearer token without verifying its signature and
// reports whether it has expired (with the given leeway subtracted from the
// expiry, so callers can refresh shortly before the hard deadline).
//
// Signature verification is the remote side's job; the sync client only needs
// to know when to ask its auth collaborator for a fresh token instead of
// burning a round trip on a guaranteed 401.
func TokenIsExpired(tokenString string, leeway time.Duration) (bool, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false, fmt.Errorf("parse bearer token: %w", err)
	}

	expiresAt, err := token.Claims.GetExpirationTime()
	if err != nil {
		return false, fmt.Errorf("read token expiry: %w", err)
	}
	if expiresAt == nil {
		// No exp claim: treat as non-expiring.
		return false, nil
	}

	return time.Now().Add(leeway).After(expiresAt.Time), nil
}

// ParseBearerToken extracts the token part from an "Authorization: Bearer x"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
