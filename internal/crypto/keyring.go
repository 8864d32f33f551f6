package crypto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// KeyringFileName is the file inside the data dir that holds the wrapped DEK.
const KeyringFileName = "keyring.json"

const keyringVersion = 1

type keyringFile struct {
	Version    int       `json:"version"`
	Salt       []byte    `json:"salt"`
	WrappedDEK []byte    `json:"wrapped_dek"`
	CreatedAt  time.Time `json:"created_at"`
}

// Keyring is an unlocked DEK bound to a [KeyChain]. It implements
// [ValueCipher].
type Keyring struct {
	keys KeyChain
	dek  []byte
}

// OpenKeyring unlocks the keyring stored in dataDir with secret, creating a
// fresh one on first launch.
func OpenKeyring(dataDir, secret string, keys KeyChain) (*Keyring, error) {
	if secret == "" {
		return nil, ErrNoDeviceSecret
	}

	path := filepath.Join(dataDir, KeyringFileName)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return createKeyring(path, secret, keys)
	}
	if err != nil {
		return nil, fmt.Errorf("read keyring: %w", err)
	}

	var kf keyringFile
	if err := json.Unmarshal(raw, &kf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedKeyring, err)
	}
	if kf.Version != keyringVersion || len(kf.Salt) == 0 || len(kf.WrappedDEK) == 0 {
		return nil, ErrCorruptedKeyring
	}

	kek := keys.DeriveKEK(secret, kf.Salt)
	dek, err := keys.UnwrapDEK(kf.WrappedDEK, kek)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongDeviceSecret, err)
	}

	return &Keyring{keys: keys, dek: dek}, nil
}

func createKeyring(path, secret string, keys KeyChain) (*Keyring, error) {
	salt, err := keys.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	dek, err := keys.GenerateDEK()
	if err != nil {
		return nil, fmt.Errorf("generate dek: %w", err)
	}

	wrapped, err := keys.WrapDEK(dek, keys.DeriveKEK(secret, salt))
	if err != nil {
		return nil, fmt.Errorf("wrap dek: %w", err)
	}

	raw, err := json.MarshalIndent(keyringFile{
		Version:    keyringVersion,
		Salt:       salt,
		WrappedDEK: wrapped,
		CreatedAt:  time.Now().UTC(),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal keyring: %w", err)
	}

	if err := writeFileAtomic(path, raw, 0o600); err != nil {
		return nil, fmt.Errorf("write keyring: %w", err)
	}

	return &Keyring{keys: keys, dek: dek}, nil
}

// Encrypt implements [ValueCipher].
func (k *Keyring) Encrypt(plaintext []byte) (string, error) {
	return k.keys.Seal(plaintext, k.dek)
}

// Decrypt implements [ValueCipher].
func (k *Keyring) Decrypt(sealed string) ([]byte, error) {
	return k.keys.Open(sealed, k.dek)
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".keyring-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
