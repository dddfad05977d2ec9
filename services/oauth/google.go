package oauth

import (
	"context"
	"fmt"

	"authbase/config"
	"authbase/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

type GoogleProvider struct {
	config      *oauth2.Config
	userInfoURL string
}

func NewGoogleProvider(cfg config.OauthProviderConfig) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoints.Google,
			Scopes:       []string{"openid", "email", "profile"},
		},
		userInfoURL: "https://openidconnect.googleapis.com/v1/userinfo",
	}
}

func (p *GoogleProvider) GetID() string {
	return models.ProviderGoogle
}

func (p *GoogleProvider) AuthorizationURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.SetAuthURLParam("include_granted_scopes", "true"))
}

func (p *GoogleProvider) ExchangeCode(ctx context.Context, code string) (*User, error) {
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google code exchange failed: %w", err)
	}
	client := p.config.Client(ctx, tok)

	var profile struct {
		Sub   string `json:"sub"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := fetchJSON(ctx, client, p.userInfoURL, &profile); err != nil {
		return nil, fmt.Errorf("google profile fetch failed: %w", err)
	}
	if profile.Sub == "" || profile.Email == "" {
		return nil, fmt.Errorf("google profile missing required fields")
	}

	return &User{
		ID:           profile.Sub,
		Email:        profile.Email,
		Name:         profile.Name,
		ProviderType: models.ProviderGoogle,
	}, nil
}
