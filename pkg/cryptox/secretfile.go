package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"os"
	"path/filepath"
)

const secretLength = 32

// LoadOrGenerateSecret returns the secret stored at path, generating and
// persisting a fresh random one on first run. Used for both the password
// pepper and the token signing secret so neither ever appears in source
// or configuration repositories.
func LoadOrGenerateSecret(path string) (string, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", err
	}

	if data, err := os.ReadFile(path); err == nil {
		return string(data), nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	raw := make([]byte, secretLength)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	secret := base64.RawURLEncoding.EncodeToString(raw)

	if err := os.WriteFile(path, []byte(secret), 0600); err != nil {
		return "", err
	}
	return secret, nil
}
