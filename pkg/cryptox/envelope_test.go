package cryptox_test

import (
	"context"
	"errors"
	"testing"

	"github.com/keyward/principald/pkg/cryptox"
	"github.com/keyward/principald/pkg/keyring"
	"github.com/stretchr/testify/require"
)

func newTestEnvelope(t *testing.T) *cryptox.Envelope {
	t.Helper()
	provider, err := keyring.NewLocalProvider([]byte("envelope test master key"))
	require.NoError(t, err)
	return cryptox.NewEnvelope(provider)
}

func TestEnvelopeRoundTrip(t *testing.T) {
	t.Parallel()

	env := newTestEnvelope(t)
	ctx := context.Background()
	plaintext := []byte("an auth token secret")

	ciphertext, err := env.Encrypt(ctx, "owner-a", plaintext)
	require.NoError(t, err)
	require.NotEqual(t, plaintext, ciphertext)

	decrypted, err := env.Decrypt(ctx, "owner-a", ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}

func TestEnvelopeNonceUniqueness(t *testing.T) {
	t.Parallel()

	env := newTestEnvelope(t)
	ctx := context.Background()

	a, err := env.Encrypt(ctx, "owner-a", []byte("same plaintext"))
	require.NoError(t, err)
	b, err := env.Encrypt(ctx, "owner-a", []byte("same plaintext"))
	require.NoError(t, err)

	require.NotEqual(t, a, b, "every encryption must use a fresh nonce")
}

func TestEnvelopeCrossOwnerDecryptFails(t *testing.T) {
	t.Parallel()

	env := newTestEnvelope(t)
	ctx := context.Background()

	ciphertext, err := env.Encrypt(ctx, "owner-a", []byte("secret"))
	require.NoError(t, err)

	_, err = env.Decrypt(ctx, "owner-b", ciphertext)
	require.ErrorIs(t, err, cryptox.ErrDecryptionFailed)
}

func TestEnvelopeTamperDetected(t *testing.T) {
	t.Parallel()

	env := newTestEnvelope(t)
	ctx := context.Background()

	ciphertext, err := env.Encrypt(ctx, "owner-a", []byte("secret"))
	require.NoError(t, err)

	ciphertext[len(ciphertext)-1] ^= 0x01
	_, err = env.Decrypt(ctx, "owner-a", ciphertext)
	require.ErrorIs(t, err, cryptox.ErrDecryptionFailed)

	_, err = env.Decrypt(ctx, "owner-a", []byte("short"))
	require.ErrorIs(t, err, cryptox.ErrDecryptionFailed)
}

type failingProvider struct{ err error }

func (p failingProvider) GetKey(context.Context, string) ([]byte, error) {
	return nil, p.err
}

func TestEnvelopeKeyFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	env := cryptox.NewEnvelope(failingProvider{err: errors.New("nope")})
	_, err := env.Encrypt(ctx, "owner-a", []byte("secret"))
	require.ErrorIs(t, err, cryptox.ErrKeyUnavailable)

	// Transport failures pass through untranslated so callers can retry.
	env = cryptox.NewEnvelope(failingProvider{err: keyring.ErrUnavailable})
	_, err = env.Encrypt(ctx, "owner-a", []byte("secret"))
	require.ErrorIs(t, err, keyring.ErrUnavailable)
}
