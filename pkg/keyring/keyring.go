// Package keyring supplies tenant-scoped encryption keys. The service never
// owns key material itself; it asks a Provider for the owner's key on every
// operation and forgets it afterwards.
package keyring

import (
	"context"
	"errors"
)

// KeySize is the length in bytes of every key a Provider hands out (AES-256).
const KeySize = 32

var (
	// ErrKeyUnavailable reports that the owner's key could not be obtained.
	ErrKeyUnavailable = errors.New("keyring: key unavailable")

	// ErrUnavailable reports a transport failure talking to the key service.
	// Callers may retry; ErrKeyUnavailable they should not.
	ErrUnavailable = errors.New("keyring: key service unavailable")
)

// Provider obtains the encryption key for one owner (tenant). Implementations
// must return exactly KeySize bytes and must not cache decrypted key material
// on behalf of the caller.
type Provider interface {
	GetKey(ctx context.Context, ownerID string) ([]byte, error)
}
