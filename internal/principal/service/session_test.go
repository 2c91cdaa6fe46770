package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/keyward/principald/internal/principal/domain"
	"github.com/keyward/principald/internal/principal/service"
	"github.com/keyward/principald/pkg/cryptox"
	"github.com/keyward/principald/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestLoginAndVerify(t *testing.T) {
	svc, _ := newTestService(t, domain.KindAccount)
	ctx := context.Background()

	p, err := svc.Create(ctx, testOwner, "login target")
	require.NoError(t, err)
	tok, err := svc.GenerateAuthToken(ctx, testOwner, p.ID)
	require.NoError(t, err)

	session, err := svc.Login(ctx, testOwner, p.ID, tok.Secret)
	require.NoError(t, err)
	require.NotEmpty(t, session.SessionToken)
	require.NotEmpty(t, session.AccessToken)
	require.NotEqual(t, session.SessionToken, session.AccessToken)

	identity, err := svc.Verify(ctx, session.SessionToken)
	require.NoError(t, err)
	require.Equal(t, p.ID, identity.PrincipalID)
	require.Equal(t, testOwner, identity.OwnerID)
	require.Equal(t, "login target", identity.Label)
}

func TestLoginRejectsUnknownSecret(t *testing.T) {
	svc, _ := newTestService(t, domain.KindAccount)
	ctx := context.Background()

	p, err := svc.Create(ctx, testOwner, "target")
	require.NoError(t, err)
	_, err = svc.GenerateAuthToken(ctx, testOwner, p.ID)
	require.NoError(t, err)

	never, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)

	_, err = svc.Login(ctx, testOwner, p.ID, never)
	require.ErrorIs(t, err, service.ErrCredentialInvalid)
}

func TestLoginRejectsRevokedSecret(t *testing.T) {
	svc, _ := newTestService(t, domain.KindAccount)
	ctx := context.Background()

	p, err := svc.Create(ctx, testOwner, "target")
	require.NoError(t, err)
	tok, err := svc.GenerateAuthToken(ctx, testOwner, p.ID)
	require.NoError(t, err)

	removed, err := svc.RemoveAuthToken(ctx, testOwner, p.ID, tok.TokenID)
	require.NoError(t, err)
	require.True(t, removed)

	_, err = svc.Login(ctx, testOwner, p.ID, tok.Secret)
	require.ErrorIs(t, err, service.ErrCredentialInvalid)
}

func TestLoginRejectsExpiredToken(t *testing.T) {
	svc, st := newTestService(t, domain.KindAccount)
	ctx := context.Background()

	p, err := svc.Create(ctx, testOwner, "stale")
	require.NoError(t, err)

	// Plant a token whose validity window closed long ago.
	secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	ciphertext, err := svc.Envelope.Encrypt(ctx, testOwner, []byte(secret))
	require.NoError(t, err)

	expired := domain.AuthToken{
		TokenID:          idx.New().String(),
		PrincipalID:      p.ID,
		Created:          time.Now().Add(-2 * domain.AuthTokenValidity).UnixMilli(),
		Expire:           domain.AuthTokenValidity.Milliseconds(),
		SecretCiphertext: ciphertext,
	}
	require.NoError(t, st.Principals().AddToken(ctx, testOwner, domain.KindAccount, p.ID, expired))

	_, err = svc.Login(ctx, testOwner, p.ID, secret)
	require.ErrorIs(t, err, service.ErrCredentialExpired)
}

func TestVerifyRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService(t, domain.KindAccount)
	ctx := context.Background()

	p, err := svc.Create(ctx, testOwner, "target")
	require.NoError(t, err)
	tok, err := svc.GenerateAuthToken(ctx, testOwner, p.ID)
	require.NoError(t, err)
	session, err := svc.Login(ctx, testOwner, p.ID, tok.Secret)
	require.NoError(t, err)

	// Access tokens are not session tokens, even though both verify
	// cryptographically.
	_, err = svc.Verify(ctx, session.AccessToken)
	require.ErrorIs(t, err, service.ErrSessionInvalid)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t, domain.KindAccount)

	_, err := svc.Verify(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, service.ErrSessionInvalid)
}

func TestVerifyRejectsKindMismatch(t *testing.T) {
	accounts, st := newTestService(t, domain.KindAccount)
	ctx := context.Background()

	p, err := accounts.Create(ctx, testOwner, "account principal")
	require.NoError(t, err)
	tok, err := accounts.GenerateAuthToken(ctx, testOwner, p.ID)
	require.NoError(t, err)
	session, err := accounts.Login(ctx, testOwner, p.ID, tok.Secret)
	require.NoError(t, err)

	agents := &service.PrincipalService{
		Kind:     domain.KindAgent,
		Store:    st,
		Envelope: accounts.Envelope,
		Signer:   accounts.Signer,
		Verifier: accounts.Verifier,
		Issuer:   accounts.Issuer,
	}

	_, err = agents.Verify(ctx, session.SessionToken)
	require.ErrorIs(t, err, service.ErrSessionInvalid)
}

func TestVerifyFailsAfterPrincipalDeleted(t *testing.T) {
	svc, _ := newTestService(t, domain.KindAccount)
	ctx := context.Background()

	p, err := svc.Create(ctx, testOwner, "ephemeral")
	require.NoError(t, err)
	tok, err := svc.GenerateAuthToken(ctx, testOwner, p.ID)
	require.NoError(t, err)
	session, err := svc.Login(ctx, testOwner, p.ID, tok.Secret)
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, testOwner, p.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = svc.Get(ctx, testOwner, p.ID)
	require.ErrorIs(t, err, service.ErrNotFound)

	// The signature is still valid but the subject is gone.
	_, err = svc.Verify(ctx, session.SessionToken)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestExpiredSessionToken(t *testing.T) {
	svc, _ := newTestService(t, domain.KindAccount)
	// The exp claim truncates to whole seconds, so a nanosecond TTL is
	// already in the past by the time Verify runs.
	svc.SessionTTL = time.Nanosecond
	ctx := context.Background()

	p, err := svc.Create(ctx, testOwner, "short lived")
	require.NoError(t, err)
	tok, err := svc.GenerateAuthToken(ctx, testOwner, p.ID)
	require.NoError(t, err)
	session, err := svc.Login(ctx, testOwner, p.ID, tok.Secret)
	require.NoError(t, err)

	_, err = svc.Verify(ctx, session.SessionToken)
	require.ErrorIs(t, err, service.ErrSessionInvalid)
}

func TestLoginUnknownPrincipal(t *testing.T) {
	svc, _ := newTestService(t, domain.KindAccount)

	// An absent principal is a 404-class failure, distinct from a bad
	// secret against an existing principal. Both are scoped to the
	// caller's own tenant, so this distinguishes nothing across tenants.
	_, err := svc.Login(context.Background(), testOwner, idx.New().String(), "whatever")
	require.ErrorIs(t, err, service.ErrNotFound)
}
