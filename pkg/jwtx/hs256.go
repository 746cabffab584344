package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer signs claims into a compact token string.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a token and returns the claims if it is legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256Signer signs tokens with a shared HMAC secret.
type HS256Signer struct {
	secret []byte
}

func NewSignerHS256(secret []byte) *HS256Signer {
	return &HS256Signer{secret: secret}
}

func (s *HS256Signer) Sign(c Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// HS256Verifier validates HS256 tokens against the shared secret and,
// when configured, the expected issuer.
type HS256Verifier struct {
	secret []byte
	issuer string
}

func NewVerifierHS256(secret []byte, issuer string) *HS256Verifier {
	return &HS256Verifier{secret: secret, issuer: issuer}
}

func (v *HS256Verifier) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrAlgMismatch
		}
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidSig
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return Claims{}, ErrIssuer
	}

	return claims, nil
}

// mapParseError normalizes jwt library failures onto our sentinels, so
// callers can dispatch on errors.Is without importing the library.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, ErrAlgMismatch):
		return ErrAlgMismatch
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	default:
		return ErrInvalidSig
	}
}
