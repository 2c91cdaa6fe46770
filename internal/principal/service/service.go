// Package service implements the principal core: the token lifecycle and the
// login/verify state machine, generic over the account and agent kinds.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/keyward/principald/internal/principal/domain"
	"github.com/keyward/principald/internal/principal/store"
	"github.com/keyward/principald/pkg/cryptox"
	"github.com/keyward/principald/pkg/jwtx"
	"github.com/keyward/principald/pkg/keyring"
)

// PrincipalService orchestrates the store, the crypto envelope and the token
// signer into the public operation set. One instance exists per principal
// kind; both share every collaborator. The service is stateless, so instances
// are safe for concurrent use.
type PrincipalService struct {
	Kind     domain.Kind
	Store    store.Store
	Envelope *cryptox.Envelope
	Signer   *jwtx.Signer
	Verifier *jwtx.Verifier
	Issuer   string

	// SessionTTL and AccessTTL default to the jwtx package defaults when
	// zero. Both must be far shorter than domain.AuthTokenValidity.
	SessionTTL time.Duration
	AccessTTL  time.Duration
}

func (s *PrincipalService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return jwtx.DefaultSessionTokenTTL
}

func (s *PrincipalService) accessTTL() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return jwtx.DefaultAccessTokenTTL
}

const (
	retryAttempts  = 3
	retryBaseDelay = 50 * time.Millisecond
)

func isTransient(err error) bool {
	return errors.Is(err, store.ErrUnavailable) || errors.Is(err, keyring.ErrUnavailable)
}

// withRetry runs op, retrying transient collaborator failures with backoff.
// Anything still failing after the last attempt surfaces as ErrUnavailable.
func withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBaseDelay << (attempt - 1)):
			}
		}
		err = op()
		if err == nil || !isTransient(err) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// mapStoreErr translates store sentinels into service sentinels.
func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrUnavailable), errors.Is(err, keyring.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return err
	}
}
