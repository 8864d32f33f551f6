package crypto

import "errors"

var (
	ErrCiphertextTooShort   = errors.New("ciphertext too short")
	ErrAuthenticationFailed = errors.New("message authentication failed")
	// ErrNoDeviceSecret is returned by OpenKeyring when no device secret is configured.
	ErrNoDeviceSecret = errors.New("device secret is not configured")
	// ErrWrongDeviceSecret means keyring.json exists but was wrapped with another secret.
	ErrWrongDeviceSecret = errors.New("device secret does not match keyring")
	ErrCorruptedKeyring  = errors.New("keyring file is corrupted")
)
