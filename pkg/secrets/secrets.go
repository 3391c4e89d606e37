// Package secrets seals integration credentials at rest and generates random
// signing secrets.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	keySize = 32
	// hkdfInfo binds derived keys to their purpose so the same configured
	// secret can never produce the same key for another use.
	hkdfInfo = "atsconnect/integration-config/v1"
)

var (
	// ErrNotConfigured is returned when no encryption secret was provided.
	ErrNotConfigured = errors.New("encryption key not configured")
	// ErrCiphertextTooShort is returned when the sealed value cannot contain a nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)

// Sealer encrypts and decrypts small blobs such as provider configuration.
type Sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

// AESGCM seals values with AES-256-GCM. The output is nonce || ciphertext.
type AESGCM struct {
	aead cipher.AEAD
}

// NewAESGCM derives a 256-bit key from the configured secret using HKDF-SHA256
// and returns a Sealer using it.
func NewAESGCM(secret string) (*AESGCM, error) {
	if secret == "" {
		return nil, ErrNotConfigured
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("could not derive encryption key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("could not create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("could not create GCM: %w", err)
	}

	return &AESGCM{aead: aead}, nil
}

// Seal encrypts plaintext with a fresh random nonce.
func (a *AESGCM) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, a.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("could not generate nonce: %w", err)
	}

	return a.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a value produced by Seal.
func (a *AESGCM) Open(sealed []byte) ([]byte, error) {
	size := a.aead.NonceSize()
	if len(sealed) < size {
		return nil, ErrCiphertextTooShort
	}

	plaintext, err := a.aead.Open(nil, sealed[:size], sealed[size:], nil)
	if err != nil {
		return nil, fmt.Errorf("could not decrypt: %w", err)
	}

	return plaintext, nil
}

var _ Sealer = (*AESGCM)(nil)

// GenerateSecret returns n cryptographically random bytes, hex encoded.
func GenerateSecret(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("could not read random bytes: %w", err)
	}

	return hex.EncodeToString(b), nil
}
