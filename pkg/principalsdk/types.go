// Package principalsdk defines the wire types of the principal service API.
// Clients can import this package instead of redeclaring the shapes.
package principalsdk

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreatePrincipalRequest is the body of POST /v1/{kind}.
type CreatePrincipalRequest struct {
	Label string `json:"label"`
}

// CreatePrincipalResponse returns the id of a freshly created principal.
type CreatePrincipalResponse struct {
	ID string `json:"id"`
}

// AuthTokenSummary is a token record without its secret, as embedded in
// principal listings.
type AuthTokenSummary struct {
	TokenID string `json:"tokenId"`
	Created int64  `json:"created"`
	Expire  int64  `json:"expire"`
}

// PrincipalResponse is a principal with its token summaries.
type PrincipalResponse struct {
	ID    string             `json:"id"`
	Label string             `json:"label"`
	Token []AuthTokenSummary `json:"token"`
}

// AuthTokenResponse carries a full token record including the plaintext
// secret. Returned at issuance and on individual retrieval.
type AuthTokenResponse struct {
	TokenID   string `json:"tokenId"`
	Created   int64  `json:"created"`
	Expire    int64  `json:"expire"`
	AuthToken string `json:"authToken"`
}

// LoginRequest is the body of POST /v1/{kind}/login.
type LoginRequest struct {
	ID        string `json:"id"`
	AuthToken string `json:"authToken"`
}

// SessionResponse is the pair of signed tokens issued by a successful login.
type SessionResponse struct {
	SessionToken string `json:"sessionToken"`
	AccessToken  string `json:"accessToken"`
}

// VerifyRequest is the body of POST /v1/{kind}/verify.
type VerifyRequest struct {
	SessionToken string `json:"sessionToken"`
}

// IdentityResponse is the resolved identity of a verified session.
type IdentityResponse struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	OwnerID string `json:"ownerId"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database,omitempty"`
	Signer   string `json:"signer,omitempty"`
}

// HealthResponse is returned by the livez and readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
