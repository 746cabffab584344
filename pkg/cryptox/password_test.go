package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testHasher() *Hasher {
	// Cheap parameters so the suite stays fast; production uses
	// DefaultParams.
	params := Params{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
	return NewHasher(params, "test-pepper")
}

func TestHashProducesPHCFormat(t *testing.T) {
	h := testHasher()

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)

			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"),
				"hash should be in PHC format")

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6, "PHC hash should have 6 parts")
			require.Equal(t, "argon2id", parts[1])
			require.Contains(t, parts[3], "m=")
			require.Contains(t, parts[3], "t=")
			require.Contains(t, parts[3], "p=")
			require.NotEmpty(t, parts[4], "salt should not be empty")
			require.NotEmpty(t, parts[5], "hash should not be empty")
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	h := testHasher()

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	require.NotEqual(t, first, second, "each hash should use a fresh salt")
}

func TestVerify(t *testing.T) {
	h := testHasher()

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		require.NoError(t, h.Verify("correct horse battery staple", hash))
	})

	t.Run("wrong password", func(t *testing.T) {
		err := h.Verify("incorrect horse", hash)
		require.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("case sensitive", func(t *testing.T) {
		err := h.Verify("Correct horse battery staple", hash)
		require.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("malformed digest", func(t *testing.T) {
		require.Error(t, h.Verify("whatever", "not-a-digest"))
		require.Error(t, h.Verify("whatever", "$argon2id$v=19$broken"))
	})
}

func TestVerifyAcrossParamChanges(t *testing.T) {
	// Digests carry their own cost parameters, so verification must
	// still work after the configured defaults are raised.
	old := NewHasher(Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}, "test-pepper")
	hash, err := old.Hash("migrating-password")
	require.NoError(t, err)

	current := NewHasher(Params{Memory: 16 * 1024, Iterations: 2, Parallelism: 2, SaltLength: 16, KeyLength: 32}, "test-pepper")
	require.NoError(t, current.Verify("migrating-password", hash))
}

func TestVerifyDependsOnPepper(t *testing.T) {
	h := testHasher()
	hash, err := h.Hash("secret")
	require.NoError(t, err)

	other := NewHasher(h.params, "different-pepper")
	require.ErrorIs(t, other.Verify("secret", hash), ErrPasswordMismatch)
}
