package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default TTLs for the two token grades issued at login. The access token is
// deliberately much shorter than the session token; both are far shorter than
// the auth-token validity window they were minted from.
const (
	DefaultSessionTokenTTL = 8 * time.Hour
	DefaultAccessTokenTTL  = 15 * time.Minute
)

// Token use values embedded in the "use" claim. A session token cannot be
// replayed as an access token or vice versa.
const (
	TokenUseSession = "session"
	TokenUseAccess  = "access"
)

// Claims are the self-contained identity claims carried by session and access
// tokens. Everything needed to re-derive identity lives here; there is no
// server-side session table.
type Claims struct {
	jwt.RegisteredClaims

	// OwnerID is the tenant the principal belongs to.
	OwnerID string `json:"owner,omitempty"`

	// Label is the principal's display label at login time.
	Label string `json:"label,omitempty"`

	// Kind is the principal kind ("account" or "agent"), used for routing
	// checks only.
	Kind string `json:"kind,omitempty"`

	// TokenUse distinguishes session tokens from access tokens.
	TokenUse string `json:"use,omitempty"`
}

// NewClaims builds claims for one token grade. subject is the principal id.
func NewClaims(
	use, subject, ownerID, label, kind string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		OwnerID:  ownerID,
		Label:    label,
		Kind:     kind,
		TokenUse: use,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches the expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token has not expired (exp) and is not used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
