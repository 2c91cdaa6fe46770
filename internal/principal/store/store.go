package store

import (
	"context"
	"errors"

	"github.com/keyward/principald/internal/principal/domain"
)

var (
	// ErrNotFound covers both "record absent" and "record owned by another
	// tenant" so callers cannot distinguish the two.
	ErrNotFound = errors.New("store: not found")

	// ErrUnavailable reports a transient database failure worth retrying.
	ErrUnavailable = errors.New("store: unavailable")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this.
type Store interface {
	Principals() Principals

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing on nil and rolling
	// back on error. Preferred over Tx for multi-step operations.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store with Commit/Rollback added.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Principals is the owner-scoped access contract for principals and their
// nested token sets. Every operation takes the caller's owner id; touching a
// principal owned by a different tenant fails with ErrNotFound.
type Principals interface {
	// Create inserts a new principal with an empty token set.
	Create(ctx context.Context, p domain.Principal) error

	// Get returns a principal with its tokens (ciphertext only, no secrets).
	Get(ctx context.Context, ownerID string, kind domain.Kind, id string) (domain.Principal, error)

	// List returns all principals of one kind for the owner, tokens included.
	List(ctx context.Context, ownerID string, kind domain.Kind) ([]domain.Principal, error)

	// Delete removes a principal and cascades to its tokens. Returns true
	// only if a record was actually removed.
	Delete(ctx context.Context, ownerID string, kind domain.Kind, id string) (bool, error)

	// AddToken appends an auth token to the principal's token set. Fails
	// ErrNotFound if the principal is absent. The insert is a single atomic
	// statement; concurrent additions never overwrite each other.
	AddToken(ctx context.Context, ownerID string, kind domain.Kind, principalID string, t domain.AuthToken) error

	// RemoveToken deletes a token by id. Returns true on removal,
	// ErrNotFound if the principal or token is absent.
	RemoveToken(ctx context.Context, ownerID string, kind domain.Kind, principalID, tokenID string) (bool, error)

	// GetToken returns one token record (ciphertext, no plaintext secret).
	GetToken(ctx context.Context, ownerID string, kind domain.Kind, principalID, tokenID string) (domain.AuthToken, error)
}
