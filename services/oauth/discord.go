package oauth

import (
	"context"
	"fmt"

	"authbase/config"
	"authbase/models"

	"golang.org/x/oauth2"
)

type DiscordProvider struct {
	config *oauth2.Config
	apiURL string
}

func NewDiscordProvider(cfg config.OauthProviderConfig) *DiscordProvider {
	return &DiscordProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			// endpoints.Discord requires x/oauth2 >= v0.27.0, which needs Go 1.23;
			// these are the same values that constant holds upstream.
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://discord.com/oauth2/authorize",
				TokenURL: "https://discord.com/api/oauth2/token",
			},
			Scopes: []string{"identify", "email"},
		},
		apiURL: "https://discord.com/api",
	}
}

func (p *DiscordProvider) GetID() string {
	return models.ProviderDiscord
}

func (p *DiscordProvider) AuthorizationURL(state string) string {
	return p.config.AuthCodeURL(state)
}

func (p *DiscordProvider) ExchangeCode(ctx context.Context, code string) (*User, error) {
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("discord code exchange failed: %w", err)
	}
	client := p.config.Client(ctx, tok)

	var profile struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := fetchJSON(ctx, client, p.apiURL+"/users/@me", &profile); err != nil {
		return nil, fmt.Errorf("discord profile fetch failed: %w", err)
	}
	if profile.ID == "" || profile.Email == "" {
		return nil, fmt.Errorf("discord profile missing required fields")
	}

	return &User{
		ID:           profile.ID,
		Email:        profile.Email,
		Name:         profile.Username,
		ProviderType: models.ProviderDiscord,
	}, nil
}
