package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// User is the normalized identity a provider returns after a successful
// code exchange. It is ephemeral and never persisted as-is.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	ProviderType string `json:"provider_type"`
}

// Provider maps a specific OAuth identity source (e.g. GitHub, Discord)
type Provider interface {
	GetID() string // "github", "google", "discord", "spotify", "facebook"

	// AuthorizationURL builds the provider consent URL. No network call.
	AuthorizationURL(state string) string

	// ExchangeCode trades an authorization code for a normalized identity.
	// Any upstream rejection (bad code, network error, malformed response)
	// surfaces as an error; the caller treats it as unauthorized.
	ExchangeCode(ctx context.Context, code string) (*User, error)
}

// fetchJSON GETs an endpoint with the provider's authenticated client and
// decodes the JSON body into out.
func fetchJSON(ctx context.Context, client *http.Client, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("profile request failed with status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
