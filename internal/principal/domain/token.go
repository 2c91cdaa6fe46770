package domain

import "time"

// AuthTokenValidity is the fixed validity window of an auth token. The wire
// value is the window in milliseconds (1000*60*60*24*365), relative to the
// creation timestamp, not an absolute expiry.
const AuthTokenValidity = 365 * 24 * time.Hour

// AuthToken is a long-lived credential bound to one principal. The secret is
// stored encrypted at rest under the owner's key and is deliberately
// recoverable: the API contract returns the plaintext again on individual
// token retrieval, so a one-way hash cannot satisfy it.
type AuthToken struct {
	TokenID     string
	PrincipalID string

	// Created is the issuance timestamp in milliseconds since epoch.
	Created int64

	// Expire is the validity window in milliseconds. Absolute expiry is
	// Created + Expire.
	Expire int64

	// Secret is the plaintext credential. Populated only on issuance and on
	// individual retrieval; never persisted.
	Secret string

	// SecretCiphertext is the envelope-encrypted secret as stored.
	SecretCiphertext []byte
}

// ExpiresAt returns the absolute expiry time.
func (t AuthToken) ExpiresAt() time.Time {
	return time.UnixMilli(t.Created + t.Expire)
}

// Expired reports whether the token's validity window has passed at now.
func (t AuthToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt())
}
