// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. tests vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// Option tunes a [KeyChain] built by [NewKeyChain].
type Option func(*keyChain)

// WithArgonParams overrides the Argon2id time and memory (KiB) costs.
func WithArgonParams(time, memoryKiB uint32) Option {
	return func(k *keyChain) {
		k.argonTime = time
		k.argonMemory = memoryKiB
	}
}

// NewKeyChain constructs a [KeyChain] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChain(opts ...Option) KeyChain {
	k := &keyChain{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// GenerateSalt implements [KeyChain]. It reads 16 random bytes from the OS
// CSPRNG.
func (k *keyChain) GenerateSalt() ([]byte, error) {
	return randomBytes(16)
}

// GenerateDEK implements [KeyChain]. It reads 32 random bytes from the OS
// CSPRNG.
func (k *keyChain) GenerateDEK() ([]byte, error) {
	return randomBytes(32)
}

// DeriveKEK implements [KeyChain] using Argon2id with the parameters stored
// in the receiver.
func (k *keyChain) DeriveKEK(secret string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(secret),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// WrapDEK implements [KeyChain]. A random 12-byte nonce is prepended to the
// ciphertext: blob = nonce ‖ ciphertext.
func (k *keyChain) WrapDEK(DEK, KEK []byte) ([]byte, error) {
	return seal(DEK, KEK)
}

// UnwrapDEK implements [KeyChain].
func (k *keyChain) UnwrapDEK(wrapped, KEK []byte) ([]byte, error) {
	dek, err := open(wrapped, KEK)
	if err != nil {
		return nil, fmt.Errorf("unwrap dek: %w", err)
	}
	return dek, nil
}

// Seal implements [KeyChain]. The output is standard Base64 of
// nonce (12 bytes) ‖ ciphertext.
func (k *keyChain) Seal(plaintext, DEK []byte) (string, error) {
	blob, err := seal(plaintext, DEK)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [KeyChain].
func (k *keyChain) Open(sealedB64 string, DEK []byte) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(sealedB64)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	plaintext, err := open(blob, DEK)
	if err != nil {
		return nil, fmt.Errorf("decrypt data: %w", err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func seal(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, err := randomBytes(gcm.NonceSize())
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func open(blob, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	// An error here almost always means a wrong key.
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}
	return plaintext, nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
