package keyring

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultRequestTimeout = 5 * time.Second

// RemoteProvider fetches owner keys from an external key management service
// over HTTP. The expected endpoint is GET {base}/v1/keys/{ownerID} returning
// {"key": "<base64url>"}.
type RemoteProvider struct {
	baseURL string
	token   string
	client  *http.Client
}

// RemoteOption configures a RemoteProvider.
type RemoteOption func(*RemoteProvider)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) RemoteOption {
	return func(p *RemoteProvider) { p.client = c }
}

// WithBearerToken sets the bearer token sent on every key request.
func WithBearerToken(token string) RemoteOption {
	return func(p *RemoteProvider) { p.token = token }
}

// NewRemoteProvider creates a provider talking to the key service at baseURL.
func NewRemoteProvider(baseURL string, opts ...RemoteOption) (*RemoteProvider, error) {
	if _, err := url.Parse(baseURL); err != nil || baseURL == "" {
		return nil, fmt.Errorf("keyring: invalid key service url %q", baseURL)
	}

	p := &RemoteProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultRequestTimeout},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

type keyResponse struct {
	Key string `json:"key"`
}

// GetKey fetches the owner's key. Transport failures map to ErrUnavailable so
// callers can retry; a definitive negative answer maps to ErrKeyUnavailable.
func (p *RemoteProvider) GetKey(ctx context.Context, ownerID string) ([]byte, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: empty owner id", ErrKeyUnavailable)
	}

	endpoint := p.baseURL + "/v1/keys/" + url.PathEscape(ownerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: no key for owner", ErrKeyUnavailable)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: key service returned %d", ErrUnavailable, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: key service returned %d", ErrKeyUnavailable, resp.StatusCode)
	}

	var body keyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response", ErrKeyUnavailable)
	}

	key, err := base64.RawURLEncoding.DecodeString(body.Key)
	if err != nil || len(key) != KeySize {
		return nil, fmt.Errorf("%w: malformed key material", ErrKeyUnavailable)
	}
	return key, nil
}
