package domain

// Session is the pair of signed tokens returned by a successful login. Both
// are self-contained; no session state is persisted server-side.
type Session struct {
	// SessionToken proves a recent successful credential verification.
	SessionToken string `json:"sessionToken"`

	// AccessToken is the shorter-lived sibling intended for per-call
	// authorization.
	AccessToken string `json:"accessToken"`
}

// Identity is what a verified session token resolves to.
type Identity struct {
	PrincipalID string
	OwnerID     string
	Label       string
}
