package jwtx_test

import (
	"testing"
	"time"

	"github.com/keyward/principald/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newSignerAndVerifier(t *testing.T, issuer string) (*jwtx.Signer, *jwtx.Verifier) {
	t.Helper()

	signer, err := jwtx.NewEphemeralSigner()
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)

	return signer, jwtx.NewVerifier(keys, issuer)
}

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	signer, verifier := newSignerAndVerifier(t, "principald-test")

	claims := jwtx.NewClaims(
		jwtx.TokenUseSession,
		"principal-1", "owner-1", "my first account", "account",
		jwtx.DefaultSessionTokenTTL,
		"principald-test",
		time.Now(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "principal-1", got.Subject)
	require.Equal(t, "owner-1", got.OwnerID)
	require.Equal(t, "my first account", got.Label)
	require.Equal(t, "account", got.Kind)
	require.Equal(t, jwtx.TokenUseSession, got.TokenUse)
	require.NotEmpty(t, got.ID, "jti should be set")
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	signer, verifier := newSignerAndVerifier(t, "principald-test")

	claims := jwtx.NewClaims(
		jwtx.TokenUseSession,
		"principal-1", "owner-1", "label", "account",
		time.Minute,
		"principald-test",
		time.Now().Add(-time.Hour),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyIssuerMismatch(t *testing.T) {
	t.Parallel()

	signer, verifier := newSignerAndVerifier(t, "expected-issuer")

	claims := jwtx.NewClaims(
		jwtx.TokenUseAccess,
		"principal-1", "owner-1", "label", "agent",
		time.Minute,
		"some-other-issuer",
		time.Now(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyForeignSignature(t *testing.T) {
	t.Parallel()

	// Token signed by a key the verifier does not trust.
	foreign, err := jwtx.NewEphemeralSigner()
	require.NoError(t, err)

	_, verifier := newSignerAndVerifier(t, "principald-test")

	claims := jwtx.NewClaims(
		jwtx.TokenUseSession,
		"principal-1", "owner-1", "label", "account",
		time.Minute,
		"principald-test",
		time.Now(),
	)
	token, err := foreign.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrMalformed)
}

func TestVerifyGarbage(t *testing.T) {
	t.Parallel()

	_, verifier := newSignerAndVerifier(t, "principald-test")

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := verifier.Verify(tok)
		require.Error(t, err, "token %q", tok)
	}
}

func TestKeySetReadiness(t *testing.T) {
	t.Parallel()

	keys := jwtx.NewKeySet()
	require.False(t, keys.IsReady())

	signer, err := jwtx.NewEphemeralSigner()
	require.NoError(t, err)
	keys.AddSigner(signer)
	require.True(t, keys.IsReady())

	_, err = keys.Get("missing")
	require.ErrorIs(t, err, jwtx.ErrUnknownKID)
}
