package jwtx

import (
	"crypto/ed25519"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/keyward/principald/pkg/cryptox"
	"github.com/keyward/principald/pkg/idx"
)

// Signer signs claims into compact JWTs using Ed25519. The signing key is
// process-wide: session and access tokens are bearer credentials for this
// service's trust domain, not tenant-scoped secrets.
type Signer struct {
	kid string
	key ed25519.PrivateKey
	pub ed25519.PublicKey
}

// NewSigner creates a signer from an Ed25519 private key in PEM (PKCS8) form.
func NewSigner(kid string, pemKey []byte) (*Signer, error) {
	key, err := cryptox.ParseEd25519Key(pemKey)
	if err != nil {
		return nil, err
	}
	return &Signer{
		kid: kid,
		key: key,
		pub: key.Public().(ed25519.PublicKey),
	}, nil
}

// NewEphemeralSigner generates a fresh keypair with a random kid. Outstanding
// tokens become invalid when the process restarts, which is acceptable for
// development and tests.
func NewEphemeralSigner() (*Signer, error) {
	pemKey, err := cryptox.GenerateEd25519Key()
	if err != nil {
		return nil, err
	}
	return NewSigner(idx.New().String(), pemKey)
}

// KID returns the key identifier placed in the token header.
func (s *Signer) KID() string { return s.kid }

// Public returns the verification key for this signer.
func (s *Signer) Public() ed25519.PublicKey { return s.pub }

// Sign turns claims into a signed compact JWT.
func (s *Signer) Sign(claims Claims) (string, error) {
	if s.key == nil {
		return "", errors.New("jwtx: nil signing key")
	}
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}
