package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"testing"
)

func fastKeyChain() KeyChain {
	return NewKeyChain(WithArgonParams(1, 8*1024))
}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChain()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 || len(s2) != 16 {
		t.Fatalf("salt length = %d/%d, want 16", len(s1), len(s2))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateDEK_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChain()

	d1, err := svc.GenerateDEK()
	if err != nil {
		t.Fatalf("GenerateDEK error: %v", err)
	}
	d2, err := svc.GenerateDEK()
	if err != nil {
		t.Fatalf("GenerateDEK error: %v", err)
	}

	if len(d1) != 32 || len(d2) != 32 {
		t.Fatalf("DEK length = %d/%d, want 32", len(d1), len(d2))
	}
	if bytes.Equal(d1, d2) {
		t.Fatalf("expected DEKs to differ, but they are equal")
	}
}

func TestDeriveKEK_DeterministicForSameInputs(t *testing.T) {
	svc := fastKeyChain()

	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := svc.DeriveKEK("correct horse battery staple", salt)
	k2 := svc.DeriveKEK("correct horse battery staple", salt)

	if len(k1) != 32 {
		t.Fatalf("KEK length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected KEKs to match for same secret+salt")
	}
}

func TestDeriveKEK_DifferentSaltProducesDifferentKEK(t *testing.T) {
	svc := fastKeyChain()

	k1 := svc.DeriveKEK("same secret", bytes.Repeat([]byte{0x01}, 16))
	k2 := svc.DeriveKEK("same secret", bytes.Repeat([]byte{0x02}, 16))

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different KEKs for different salts")
	}
}

func TestWrapDEK_GCMLayout(t *testing.T) {
	svc := NewKeyChain()

	dek := bytes.Repeat([]byte{0xDD}, 32)
	kek := bytes.Repeat([]byte{0x2A}, 32) // valid AES-256 key length

	blob, err := svc.WrapDEK(dek, kek)
	if err != nil {
		t.Fatalf("WrapDEK error: %v", err)
	}

	// Reconstruct AES-GCM and decrypt to verify the nonce ‖ ciphertext layout.
	block, err := aes.NewCipher(kek)
	if err != nil {
		t.Fatalf("aes.NewCipher error: %v", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		t.Fatalf("cipher.NewGCM error: %v", err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) <= nonceSize {
		t.Fatalf("blob too short: got %d, want > %d", len(blob), nonceSize)
	}

	plain, err := gcm.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
	if err != nil {
		t.Fatalf("gcm.Open error: %v", err)
	}
	if !bytes.Equal(plain, dek) {
		t.Fatalf("decrypted DEK mismatch")
	}
}

func TestWrapDEK_NonceRandomness(t *testing.T) {
	svc := NewKeyChain()

	dek := bytes.Repeat([]byte{0xDD}, 32)
	kek := bytes.Repeat([]byte{0x2A}, 32)

	blob1, err := svc.WrapDEK(dek, kek)
	if err != nil {
		t.Fatalf("WrapDEK error: %v", err)
	}
	blob2, err := svc.WrapDEK(dek, kek)
	if err != nil {
		t.Fatalf("WrapDEK error: %v", err)
	}

	if bytes.Equal(blob1[:12], blob2[:12]) {
		t.Fatalf("expected different nonces for two encryptions")
	}
}

func TestUnwrapDEK_WrongKEK(t *testing.T) {
	svc := NewKeyChain()

	blob, err := svc.WrapDEK(bytes.Repeat([]byte{0xDD}, 32), bytes.Repeat([]byte{0x2A}, 32))
	if err != nil {
		t.Fatalf("WrapDEK error: %v", err)
	}

	_, err = svc.UnwrapDEK(blob, bytes.Repeat([]byte{0x2B}, 32))
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("UnwrapDEK error = %v, want ErrAuthenticationFailed", err)
	}

	_, err = svc.UnwrapDEK(blob[:5], bytes.Repeat([]byte{0x2A}, 32))
	if !errors.Is(err, ErrCiphertextTooShort) {
		t.Fatalf("UnwrapDEK error = %v, want ErrCiphertextTooShort", err)
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	svc := NewKeyChain()
	dek, _ := svc.GenerateDEK()

	sealed, err := svc.Seal([]byte("eyJhbGciOi.token"), dek)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if _, err := base64.StdEncoding.DecodeString(sealed); err != nil {
		t.Fatalf("sealed value is not base64: %v", err)
	}

	plain, err := svc.Open(sealed, dek)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if string(plain) != "eyJhbGciOi.token" {
		t.Fatalf("Open = %q", plain)
	}
}

func TestOpen_Errors(t *testing.T) {
	svc := NewKeyChain()
	dek, _ := svc.GenerateDEK()

	if _, err := svc.Open("%%% not base64", dek); err == nil {
		t.Fatalf("expected base64 error")
	}

	sealed, _ := svc.Seal([]byte("v"), dek)
	other, _ := svc.GenerateDEK()
	if _, err := svc.Open(sealed, other); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("Open with wrong key = %v, want ErrAuthenticationFailed", err)
	}

	if _, err := svc.Seal([]byte("v"), []byte("short")); err == nil {
		t.Fatalf("expected invalid key size error")
	}
}
