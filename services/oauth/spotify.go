package oauth

import (
	"context"
	"fmt"

	"authbase/config"
	"authbase/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

type SpotifyProvider struct {
	config *oauth2.Config
	apiURL string
}

func NewSpotifyProvider(cfg config.OauthProviderConfig) *SpotifyProvider {
	return &SpotifyProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoints.Spotify,
			Scopes:       []string{"user-library-read", "playlist-modify-private"},
		},
		apiURL: "https://api.spotify.com/v1",
	}
}

func (p *SpotifyProvider) GetID() string {
	return models.ProviderSpotify
}

func (p *SpotifyProvider) AuthorizationURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.SetAuthURLParam("show_dialog", "false"))
}

func (p *SpotifyProvider) ExchangeCode(ctx context.Context, code string) (*User, error) {
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("spotify code exchange failed: %w", err)
	}
	client := p.config.Client(ctx, tok)

	var profile struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		DisplayName string `json:"display_name"`
	}
	if err := fetchJSON(ctx, client, p.apiURL+"/me", &profile); err != nil {
		return nil, fmt.Errorf("spotify profile fetch failed: %w", err)
	}
	if profile.ID == "" || profile.Email == "" {
		return nil, fmt.Errorf("spotify profile missing required fields")
	}

	return &User{
		ID:           profile.ID,
		Email:        profile.Email,
		Name:         profile.DisplayName,
		ProviderType: models.ProviderSpotify,
	}, nil
}
