package oauth

import (
	"fmt"

	"authbase/config"
)

// Manager holds the configured providers keyed by provider type.
type Manager struct {
	providers map[string]Provider
}

func NewManager(cfg config.OauthConfig) *Manager {
	gh := NewGithubProvider(cfg.Github)
	gl := NewGoogleProvider(cfg.Google)
	dc := NewDiscordProvider(cfg.Discord)
	sp := NewSpotifyProvider(cfg.Spotify)
	fb := NewFacebookProvider(cfg.Facebook)

	return &Manager{
		providers: map[string]Provider{
			gh.GetID(): gh,
			gl.GetID(): gl,
			dc.GetID(): dc,
			sp.GetID(): sp,
			fb.GetID(): fb,
		},
	}
}

// Get returns the provider for a type, or an error for unknown types.
func (m *Manager) Get(providerType string) (Provider, error) {
	p, ok := m.providers[providerType]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", providerType)
	}
	return p, nil
}

// Register replaces or adds a provider. Used by tests to stub exchanges.
func (m *Manager) Register(p Provider) {
	m.providers[p.GetID()] = p
}
