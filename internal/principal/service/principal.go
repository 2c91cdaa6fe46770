package service

import (
	"context"
	"log/slog"

	"github.com/keyward/principald/internal/principal/domain"
	"github.com/keyward/principald/pkg/idx"
	"github.com/keyward/principald/pkg/slogx"
)

// Create inserts a new principal with an empty token set and returns it.
func (s *PrincipalService) Create(ctx context.Context, ownerID, label string) (domain.Principal, error) {
	p := domain.Principal{
		ID:      idx.New().String(),
		OwnerID: ownerID,
		Kind:    s.Kind,
		Label:   label,
		Tokens:  []domain.AuthToken{},
	}

	err := withRetry(ctx, func() error {
		return s.Store.Principals().Create(ctx, p)
	})
	if err != nil {
		return domain.Principal{}, mapStoreErr(err)
	}

	slogx.FromContext(ctx).Info("principal created",
		slog.String("kind", string(s.Kind)),
		slog.String("principal_id", p.ID),
	)
	return p, nil
}

// Get returns one principal with its token summaries. Secrets stay encrypted;
// retrieving a plaintext secret goes through GetAuthToken.
func (s *PrincipalService) Get(ctx context.Context, ownerID, id string) (domain.Principal, error) {
	var p domain.Principal
	err := withRetry(ctx, func() error {
		var err error
		p, err = s.Store.Principals().Get(ctx, ownerID, s.Kind, id)
		return err
	})
	if err != nil {
		return domain.Principal{}, mapStoreErr(err)
	}
	return p, nil
}

// GetAll lists every principal of this kind for the caller's owner.
func (s *PrincipalService) GetAll(ctx context.Context, ownerID string) ([]domain.Principal, error) {
	var out []domain.Principal
	err := withRetry(ctx, func() error {
		var err error
		out, err = s.Store.Principals().List(ctx, ownerID, s.Kind)
		return err
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return out, nil
}

// Delete removes a principal and all its tokens. Returns true only when a
// record was actually removed; an absent or foreign principal is ErrNotFound.
// Outstanding sessions for the principal die with it, because Verify
// re-checks existence.
func (s *PrincipalService) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	var deleted bool
	err := withRetry(ctx, func() error {
		var err error
		deleted, err = s.Store.Principals().Delete(ctx, ownerID, s.Kind, id)
		return err
	})
	if err != nil {
		return false, mapStoreErr(err)
	}
	if !deleted {
		return false, ErrNotFound
	}

	slogx.FromContext(ctx).Info("principal deleted",
		slog.String("kind", string(s.Kind)),
		slog.String("principal_id", id),
	)
	return true, nil
}
