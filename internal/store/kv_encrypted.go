package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-test-prep/internal/crypto"
)

// encryptedKeyValueStore seals every value before handing it to the inner
// store. Keys stay in the clear.
type encryptedKeyValueStore struct {
	inner  KeyValueStore
	cipher crypto.ValueCipher
}

// NewEncryptedKeyValueStore wraps inner so that values are AES-GCM sealed
// with the keyring DEK.
func NewEncryptedKeyValueStore(inner KeyValueStore, cipher crypto.ValueCipher) KeyValueStore {
	return &encryptedKeyValueStore{inner: inner, cipher: cipher}
}

func (s *encryptedKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}

	plain, err := s.cipher.Decrypt(sealed)
	if err != nil {
		return "", fmt.Errorf("decrypt value of %q: %w", key, err)
	}
	return string(plain), nil
}

func (s *encryptedKeyValueStore) Put(ctx context.Context, key, value string) error {
	sealed, err := s.cipher.Encrypt([]byte(value))
	if err != nil {
		return fmt.Errorf("encrypt value of %q: %w", key, err)
	}
	return s.inner.Put(ctx, key, sealed)
}

func (s *encryptedKeyValueStore) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, key)
}

func (s *encryptedKeyValueStore) Contains(ctx context.Context, key string) (bool, error) {
	return s.inner.Contains(ctx, key)
}

func (s *encryptedKeyValueStore) Clear(ctx context.Context) error {
	return s.inner.Clear(ctx)
}

// unavailableKeyValueStore stands in for the secure namespace when the
// keyring cannot be unlocked.
type unavailableKeyValueStore struct {
	cause error
}

// NewUnavailableKeyValueStore returns a store failing every call with
// [ErrSecureStoreUnavailable] wrapping cause.
func NewUnavailableKeyValueStore(cause error) KeyValueStore {
	return unavailableKeyValueStore{cause: cause}
}

func (s unavailableKeyValueStore) err() error {
	if s.cause == nil {
		return ErrSecureStoreUnavailable
	}
	return fmt.Errorf("%w: %w", ErrSecureStoreUnavailable, s.cause)
}

func (s unavailableKeyValueStore) Get(context.Context, string) (string, error) { return "", s.err() }
func (s unavailableKeyValueStore) Put(context.Context, string, string) error   { return s.err() }
func (s unavailableKeyValueStore) Remove(context.Context, string) error        { return s.err() }
func (s unavailableKeyValueStore) Contains(context.Context, string) (bool, error) {
	return false, s.err()
}
func (s unavailableKeyValueStore) Clear(context.Context) error { return s.err() }
