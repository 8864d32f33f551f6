package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain holds the client-side key handling for the local secure store.
// It knows nothing about sqlite, sessions or the network.
//
// Key hierarchy:
//
//	Salt, DEK = GenerateSalt() + GenerateDEK()     (first launch)
//	KEK       = DeriveKEK(deviceSecret, salt)      (every launch)
//	Wrapped   = WrapDEK(DEK, KEK)                  (persisted in keyring.json)
type KeyChain interface {
	// GenerateSalt returns 16 random bytes. The salt is stored in the clear
	// next to the wrapped DEK.
	GenerateSalt() ([]byte, error)

	// GenerateDEK returns a random 256-bit data-encryption key.
	GenerateDEK() ([]byte, error)

	// DeriveKEK derives the key-encryption key from the device secret with
	// Argon2id. The KEK only ever lives in memory.
	DeriveKEK(secret string, salt []byte) []byte

	// WrapDEK seals DEK with KEK using AES-GCM: nonce || ciphertext.
	WrapDEK(DEK, KEK []byte) ([]byte, error)

	// UnwrapDEK reverses WrapDEK. An authentication failure means the KEK is
	// wrong, i.e. the device secret changed.
	UnwrapDEK(wrapped, KEK []byte) ([]byte, error)

	// Seal encrypts plaintext with DEK and returns base64(nonce || ciphertext).
	Seal(plaintext, DEK []byte) (string, error)

	// Open decrypts a value produced by Seal.
	Open(sealedB64 string, DEK []byte) ([]byte, error)
}

// ValueCipher encrypts individual values of the secure key-value namespace.
type ValueCipher interface {
	Encrypt(plaintext []byte) (string, error)
	Decrypt(sealed string) ([]byte, error)
}
