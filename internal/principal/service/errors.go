package service

import "errors"

var (
	// ErrNotFound reports an absent principal or token. Records owned by
	// another tenant surface identically to prevent enumeration.
	ErrNotFound = errors.New("principal: not found")

	// ErrCredentialInvalid reports that a presented auth token matched no
	// stored token.
	ErrCredentialInvalid = errors.New("principal: invalid credentials")

	// ErrCredentialExpired reports a matching auth token past its validity
	// window.
	ErrCredentialExpired = errors.New("principal: credential expired")

	// ErrSessionInvalid covers every session token failure: bad signature,
	// malformed structure, expiry. Collapsed to one code so the caller gets
	// no oracle.
	ErrSessionInvalid = errors.New("principal: invalid session")

	// ErrUnavailable reports that the store or key collaborator stayed
	// unreachable after bounded retries.
	ErrUnavailable = errors.New("principal: collaborator unavailable")
)
