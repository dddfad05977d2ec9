package oauth

import (
	"context"
	"fmt"
	"strings"

	"authbase/config"
	"authbase/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

type FacebookProvider struct {
	config *oauth2.Config
	apiURL string
}

func NewFacebookProvider(cfg config.OauthProviderConfig) *FacebookProvider {
	return &FacebookProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoints.Facebook,
			Scopes:       []string{"email"},
		},
		apiURL: "https://graph.facebook.com",
	}
}

func (p *FacebookProvider) GetID() string {
	return models.ProviderFacebook
}

func (p *FacebookProvider) AuthorizationURL(state string) string {
	return p.config.AuthCodeURL(state)
}

func (p *FacebookProvider) ExchangeCode(ctx context.Context, code string) (*User, error) {
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("facebook code exchange failed: %w", err)
	}
	client := p.config.Client(ctx, tok)

	var profile struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := fetchJSON(ctx, client, p.apiURL+"/me?fields=id,email,first_name,last_name", &profile); err != nil {
		return nil, fmt.Errorf("facebook profile fetch failed: %w", err)
	}
	if profile.ID == "" || profile.Email == "" {
		return nil, fmt.Errorf("facebook profile missing required fields")
	}

	// Facebook has no single name field; join first and last name.
	name := strings.TrimSpace(profile.FirstName + " " + profile.LastName)

	return &User{
		ID:           profile.ID,
		Email:        profile.Email,
		Name:         name,
		ProviderType: models.ProviderFacebook,
	}, nil
}
