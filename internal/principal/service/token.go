package service

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/keyward/principald/internal/principal/domain"
	"github.com/keyward/principald/pkg/cryptox"
	"github.com/keyward/principald/pkg/idx"
	"github.com/keyward/principald/pkg/slogx"
)

// GenerateAuthToken issues a new long-lived auth token for the principal.
// The secret is random (256 bits), encrypted under the owner's key and
// persisted before the plaintext is returned; a persistence failure discards
// the secret entirely, so no credential exists without its stored record.
func (s *PrincipalService) GenerateAuthToken(ctx context.Context, ownerID, principalID string) (domain.AuthToken, error) {
	secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.AuthToken{}, err
	}

	var ciphertext []byte
	err = withRetry(ctx, func() error {
		var err error
		ciphertext, err = s.Envelope.Encrypt(ctx, ownerID, []byte(secret))
		return err
	})
	if err != nil {
		return domain.AuthToken{}, mapStoreErr(err)
	}

	token := domain.AuthToken{
		TokenID:          idx.New().String(),
		PrincipalID:      principalID,
		Created:          time.Now().UnixMilli(),
		Expire:           domain.AuthTokenValidity.Milliseconds(),
		SecretCiphertext: ciphertext,
	}

	err = withRetry(ctx, func() error {
		return s.Store.Principals().AddToken(ctx, ownerID, s.Kind, principalID, token)
	})
	if err != nil {
		return domain.AuthToken{}, mapStoreErr(err)
	}

	slogx.FromContext(ctx).Info("auth token issued",
		slog.String("kind", string(s.Kind)),
		slog.String("principal_id", principalID),
		slog.String("token_id", token.TokenID),
	)

	token.Secret = secret
	return token, nil
}

// GetAuthToken returns one token record with its plaintext secret. The
// reversible at-rest encryption is deliberate: the contract re-displays the
// credential on individual retrieval, so a one-way hash cannot serve here.
func (s *PrincipalService) GetAuthToken(ctx context.Context, ownerID, principalID, tokenID string) (domain.AuthToken, error) {
	var token domain.AuthToken
	err := withRetry(ctx, func() error {
		var err error
		token, err = s.Store.Principals().GetToken(ctx, ownerID, s.Kind, principalID, tokenID)
		return err
	})
	if err != nil {
		return domain.AuthToken{}, mapStoreErr(err)
	}

	var plaintext []byte
	err = withRetry(ctx, func() error {
		var err error
		plaintext, err = s.Envelope.Decrypt(ctx, ownerID, token.SecretCiphertext)
		return err
	})
	if err != nil {
		return domain.AuthToken{}, mapStoreErr(err)
	}

	token.Secret = string(plaintext)
	return token, nil
}

// RemoveAuthToken revokes a token. Revocation is a real deletion, reported
// true exactly once; a second call for the same token is ErrNotFound.
func (s *PrincipalService) RemoveAuthToken(ctx context.Context, ownerID, principalID, tokenID string) (bool, error) {
	var removed bool
	err := withRetry(ctx, func() error {
		var err error
		removed, err = s.Store.Principals().RemoveToken(ctx, ownerID, s.Kind, principalID, tokenID)
		return err
	})
	if err != nil {
		return false, mapStoreErr(err)
	}

	slogx.FromContext(ctx).Info("auth token revoked",
		slog.String("kind", string(s.Kind)),
		slog.String("principal_id", principalID),
		slog.String("token_id", tokenID),
	)
	return removed, nil
}

// matchAuthToken compares the presented secret against every stored token of
// the principal. All candidates are examined with constant-time comparison;
// there is no early exit on mismatch. Returns the matching record for expiry
// validation.
func (s *PrincipalService) matchAuthToken(ctx context.Context, p domain.Principal, presented string) (domain.AuthToken, error) {
	presentedBytes := []byte(presented)

	var matched *domain.AuthToken
	for i := range p.Tokens {
		var plaintext []byte
		err := withRetry(ctx, func() error {
			var err error
			plaintext, err = s.Envelope.Decrypt(ctx, p.OwnerID, p.Tokens[i].SecretCiphertext)
			return err
		})
		if err != nil {
			return domain.AuthToken{}, mapStoreErr(err)
		}

		if subtle.ConstantTimeCompare(plaintext, presentedBytes) == 1 && matched == nil {
			matched = &p.Tokens[i]
		}
	}

	if matched == nil {
		return domain.AuthToken{}, ErrCredentialInvalid
	}
	if matched.Expired(time.Now()) {
		return domain.AuthToken{}, ErrCredentialExpired
	}
	return *matched, nil
}
