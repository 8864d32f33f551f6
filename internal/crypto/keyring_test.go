package crypto

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenKeyring_CreatesThenReopens(t *testing.T) {
	dir := t.TempDir()
	keys := fastKeyChain()

	first, err := OpenKeyring(dir, "device-secret", keys)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, KeyringFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	sealed, err := first.Encrypt([]byte("access-token"))
	require.NoError(t, err)

	second, err := OpenKeyring(dir, "device-secret", keys)
	require.NoError(t, err)

	plain, err := second.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "access-token", string(plain))
}

func TestOpenKeyring_WrongSecret(t *testing.T) {
	dir := t.TempDir()
	keys := fastKeyChain()

	_, err := OpenKeyring(dir, "right", keys)
	require.NoError(t, err)

	_, err = OpenKeyring(dir, "wrong", keys)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongDeviceSecret)
}

func TestOpenKeyring_NoSecret(t *testing.T) {
	_, err := OpenKeyring(t.TempDir(), "", fastKeyChain())
	assert.ErrorIs(t, err, ErrNoDeviceSecret)
}

func TestOpenKeyring_Corrupted(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "not json", body: []byte("{{{")},
		{name: "unknown version", body: mustJSON(t, keyringFile{Version: 7, Salt: []byte{1}, WrappedDEK: []byte{1}})},
		{name: "missing dek", body: mustJSON(t, keyringFile{Version: keyringVersion, Salt: []byte{1}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, KeyringFileName), tt.body, 0o600))

			_, err := OpenKeyring(dir, "secret", fastKeyChain())
			assert.True(t, errors.Is(err, ErrCorruptedKeyring), "got %v", err)
		})
	}
}

func TestOpenKeyring_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := OpenKeyring(dir, "secret", fastKeyChain())
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, KeyringFileName))
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
