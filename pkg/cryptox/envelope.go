package cryptox

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/keyward/principald/pkg/keyring"
)

var (
	// ErrKeyUnavailable reports that the owner's encryption key could not be
	// obtained from the key provider.
	ErrKeyUnavailable = errors.New("cryptox: key unavailable")

	// ErrDecryptionFailed reports a failed integrity check: wrong key,
	// truncated or tampered ciphertext.
	ErrDecryptionFailed = errors.New("cryptox: decryption failed")
)

// Envelope encrypts and decrypts secrets under a tenant-scoped key. Each call
// fetches the owner's key from the provider; key material is never retained
// between operations.
//
// The scheme is AES-256-GCM with the nonce prefixed to the ciphertext:
// [12-byte nonce][ciphertext][16-byte auth tag]. GCM gives both
// confidentiality and integrity, so a ciphertext moved between owners or
// modified at rest fails to decrypt.
type Envelope struct {
	keys keyring.Provider
}

// NewEnvelope wraps a key provider. The provider decides what "the owner's
// key" means (local derivation, remote key service).
func NewEnvelope(keys keyring.Provider) *Envelope {
	return &Envelope{keys: keys}
}

// Encrypt seals plaintext under ownerID's key.
func (e *Envelope) Encrypt(ctx context.Context, ownerID string, plaintext []byte) ([]byte, error) {
	gcm, err := e.aead(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("cryptox: generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a ciphertext produced by Encrypt for the same owner. The
// returned error never contains plaintext or key material.
func (e *Envelope) Decrypt(ctx context.Context, ownerID string, ciphertext []byte) ([]byte, error) {
	gcm, err := e.aead(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, ErrDecryptionFailed
	}

	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func (e *Envelope) aead(ctx context.Context, ownerID string) (cipher.AEAD, error) {
	key, err := e.keys.GetKey(ctx, ownerID)
	if err != nil {
		if errors.Is(err, keyring.ErrUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrKeyUnavailable, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: bad key size", ErrKeyUnavailable)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cryptox: create GCM: %w", err)
	}
	return gcm, nil
}
