// Package jwtx issues and verifies the service's bearer tokens.
//
// Tokens are compact JWTs signed with HMAC-SHA256 using a single
// process-wide secret supplied at construction time. The secret is
// injected, never embedded, so it can be rotated operationally (rotation
// invalidates every outstanding token).
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens.
const DefaultAccessTokenTTL = 15 * time.Minute

// Claims are the access-token claims. Keep changes additive to preserve
// compatibility with tokens already in the wild.
type Claims struct {
	jwt.RegisteredClaims

	// Username of the authenticated user, informational.
	Username string `json:"username,omitempty"`
}

// NewAccessClaims builds minimally-correct claims for a user token.
func NewAccessClaims(subject, username, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: username,
	}
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
