package cryptox

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOrGenerateSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")

	first, err := LoadOrGenerateSecret(path)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// A second load must return the same secret, not regenerate it.
	second, err := LoadOrGenerateSecret(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestLoadOrGenerateSecretPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "secret")
	_, err := LoadOrGenerateSecret(path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadOrGenerateSecretDistinctFiles(t *testing.T) {
	dir := t.TempDir()

	a, err := LoadOrGenerateSecret(filepath.Join(dir, "a"))
	require.NoError(t, err)
	b, err := LoadOrGenerateSecret(filepath.Join(dir, "b"))
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}
