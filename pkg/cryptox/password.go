// Package cryptox provides password hashing for stored credentials.
//
// Hashes are Argon2id in PHC string format, so the parameters and salt
// travel with the digest and can be tuned without invalidating existing
// records. There is deliberately no way back from digest to plaintext.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Params tune the Argon2id cost. Higher values slow down both legitimate
// hashing and offline guessing.
type Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams follows the OWASP minimum recommendation for Argon2id.
func DefaultParams() Params {
	return Params{
		Memory:      19 * 1024,
		Iterations:  2,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// Hasher derives and verifies Argon2id password digests. The optional
// pepper is appended to every password before hashing; it lives outside
// the database so a dump alone is not enough to mount a dictionary attack.
type Hasher struct {
	params Params
	pepper string
}

func NewHasher(params Params, pepper string) *Hasher {
	return &Hasher{params: params, pepper: pepper}
}

// Hash generates a fresh random salt and returns the PHC-encoded digest:
// $argon2id$v=19$m=...,t=...,p=...$<salt>$<hash>
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey(
		[]byte(password+h.pepper),
		salt,
		h.params.Iterations,
		h.params.Memory,
		h.params.Parallelism,
		h.params.KeyLength,
	)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory,
		h.params.Iterations,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify compares a plaintext password against a PHC-encoded digest using
// the parameters embedded in the digest, in constant time.
func (h *Hasher) Verify(password, encoded string) error {
	params, salt, want, err := decodeDigest(encoded)
	if err != nil {
		return err
	}

	got := argon2.IDKey(
		[]byte(password+h.pepper),
		salt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		uint32(len(want)), // #nosec G115 -- digest length is bounded by decode
	)

	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

func decodeDigest(encoded string) (Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", salt, hash]
	if len(parts) != 6 {
		return Params{}, nil, nil, errors.New("cryptox: malformed digest")
	}
	if parts[1] != "argon2id" {
		return Params{}, nil, nil, errors.New("cryptox: not an argon2id digest")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return Params{}, nil, nil, errors.New("cryptox: unsupported argon2 version")
	}

	var p Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &p.Parallelism); err != nil {
		return Params{}, nil, nil, fmt.Errorf("cryptox: bad digest parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, fmt.Errorf("cryptox: bad digest salt: %w", err)
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return Params{}, nil, nil, fmt.Errorf("cryptox: bad digest hash: %w", err)
	}

	return p, salt, hash, nil
}
