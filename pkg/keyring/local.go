package keyring

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/hkdf"
)

// LocalProvider derives per-owner keys from a single master secret using
// HKDF-SHA256. Two owners never share a key, and the derivation is
// deterministic so the same owner always gets the same key back.
type LocalProvider struct {
	master []byte
}

// NewLocalProvider creates a provider from raw master key material.
// The material is hashed before use, so any non-empty secret works.
func NewLocalProvider(master []byte) (*LocalProvider, error) {
	if len(master) == 0 {
		return nil, fmt.Errorf("%w: empty master key", ErrKeyUnavailable)
	}
	sum := sha256.Sum256(master)
	return &LocalProvider{master: sum[:]}, nil
}

// NewLocalProviderFromFile reads the master key material from a file.
func NewLocalProviderFromFile(path string) (*LocalProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read master key file: %v", ErrKeyUnavailable, err)
	}
	return NewLocalProvider(data)
}

// GetKey derives the owner's AES-256 key. The owner identifier is bound into
// the HKDF info parameter, so keys for different owners are independent.
func (p *LocalProvider) GetKey(_ context.Context, ownerID string) ([]byte, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: empty owner id", ErrKeyUnavailable)
	}

	r := hkdf.New(sha256.New, p.master, nil, []byte("principald/owner-key/v1:"+ownerID))
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("%w: derive owner key", ErrKeyUnavailable)
	}
	return key, nil
}
