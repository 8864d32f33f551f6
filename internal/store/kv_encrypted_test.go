package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-test-prep/internal/crypto"
)

func TestEncryptedKeyValueStore_ValuesAreSealed(t *testing.T) {
	ctx := context.Background()
	keyring, err := crypto.OpenKeyring(t.TempDir(), "device", crypto.NewKeyChain(crypto.WithArgonParams(1, 8*1024)))
	require.NoError(t, err)

	inner := NewMemoryKeyValueStore()
	kv := NewEncryptedKeyValueStore(inner, keyring)

	require.NoError(t, kv.Put(ctx, "access_token", "jwt-value"))

	raw, err := inner.Get(ctx, "access_token")
	require.NoError(t, err)
	assert.NotContains(t, raw, "jwt-value")

	got, err := kv.Get(ctx, "access_token")
	require.NoError(t, err)
	assert.Equal(t, "jwt-value", got)

	ok, err := kv.Contains(ctx, "access_token")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, kv.Clear(ctx))
	_, err = kv.Get(ctx, "access_token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestEncryptedKeyValueStore_TamperedValue(t *testing.T) {
	ctx := context.Background()
	keyring, err := crypto.OpenKeyring(t.TempDir(), "device", crypto.NewKeyChain(crypto.WithArgonParams(1, 8*1024)))
	require.NoError(t, err)

	inner := NewMemoryKeyValueStore()
	kv := NewEncryptedKeyValueStore(inner, keyring)
	require.NoError(t, inner.Put(ctx, "user_id", "plaintext"))

	_, err = kv.Get(ctx, "user_id")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}

func TestUnavailableKeyValueStore(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("keyring locked")
	kv := NewUnavailableKeyValueStore(cause)

	_, err := kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrSecureStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, kv.Put(ctx, "k", "v"), ErrSecureStoreUnavailable)
	assert.ErrorIs(t, kv.Remove(ctx, "k"), ErrSecureStoreUnavailable)
	assert.ErrorIs(t, kv.Clear(ctx), ErrSecureStoreUnavailable)
	_, err = kv.Contains(ctx, "k")
	assert.ErrorIs(t, err, ErrSecureStoreUnavailable)
}
