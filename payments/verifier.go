// Package payments talks to the external payment provider. The rest of the
// system only sees the Verifier contract: a one-way confirmation check
// consulted before any pending→paid transition.
package payments

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Verifier reports whether a payment confirmation token is genuine.
type Verifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

// ProviderClient verifies confirmation tokens against the provider's API.
type ProviderClient struct {
	client *resty.Client
}

func NewProviderClient(baseURL, apiKey string) *ProviderClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetTimeout(10 * time.Second)
	return &ProviderClient{client: c}
}

type confirmation struct {
	Status string `json:"status"`
}

// Verify asks the provider for the confirmation behind the token. An unknown
// token is a clean "not confirmed", not an error; transport failures are.
func (p *ProviderClient) Verify(ctx context.Context, token string) (bool, error) {
	var out confirmation
	resp, err := p.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/v1/confirmations/" + token)
	if err != nil {
		return false, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	return resp.IsSuccess() && out.Status == "succeeded", nil
}

// StaticVerifier confirms a fixed token set; used in tests and local runs.
type StaticVerifier map[string]bool

func (v StaticVerifier) Verify(_ context.Context, token string) (bool, error) {
	return v[token], nil
}
