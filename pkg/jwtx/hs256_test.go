package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestSignAndVerifyRoundTrip(t *testing.T) {
	signer := NewSignerHS256(testSecret)
	verifier := NewVerifierHS256(testSecret, "flock")

	now := time.Now().UTC()
	claims := NewAccessClaims("user-123", "alice", "flock", 15*time.Minute, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "flock", got.Issuer)
}

func TestVerifyRejectsExpired(t *testing.T) {
	signer := NewSignerHS256(testSecret)
	verifier := NewVerifierHS256(testSecret, "flock")

	// Issued well in the past so the token is already dead.
	past := time.Now().UTC().Add(-time.Hour)
	token, err := signer.Sign(NewAccessClaims("user-123", "alice", "flock", time.Minute, past))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsNotYetValid(t *testing.T) {
	signer := NewSignerHS256(testSecret)
	verifier := NewVerifierHS256(testSecret, "flock")

	future := time.Now().UTC().Add(time.Hour)
	token, err := signer.Sign(NewAccessClaims("user-123", "alice", "flock", time.Minute, future))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrNotYetValid)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := NewSignerHS256(testSecret)
	verifier := NewVerifierHS256([]byte("another-secret-another-secret-xx"), "flock")

	token, err := signer.Sign(NewAccessClaims("user-123", "alice", "flock", time.Minute, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsTampering(t *testing.T) {
	signer := NewSignerHS256(testSecret)
	verifier := NewVerifierHS256(testSecret, "flock")

	token, err := signer.Sign(NewAccessClaims("user-123", "alice", "flock", time.Minute, time.Now().UTC()))
	require.NoError(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = verifier.Verify(tampered)
	require.Error(t, err)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	signer := NewSignerHS256(testSecret)
	verifier := NewVerifierHS256(testSecret, "flock")

	token, err := signer.Sign(NewAccessClaims("user-123", "alice", "someone-else", time.Minute, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	verifier := NewVerifierHS256(testSecret, "flock")

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := verifier.Verify(tok)
		require.ErrorIs(t, err, ErrMalformed, "token %q", tok)
	}
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	fresh := NewAccessClaims("u", "alice", "flock", time.Minute, now)
	require.NoError(t, fresh.ValidateExpiry())

	stale := NewAccessClaims("u", "alice", "flock", time.Minute, now.Add(-time.Hour))
	require.ErrorIs(t, stale.ValidateExpiry(), ErrExpired)
}
