package oauth

import (
	"context"
	"fmt"
	"strconv"

	"authbase/config"
	"authbase/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

type GithubProvider struct {
	config *oauth2.Config
	apiURL string
}

func NewGithubProvider(cfg config.OauthProviderConfig) *GithubProvider {
	return &GithubProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoints.GitHub,
			Scopes:       []string{"read:user", "user:email"},
		},
		apiURL: "https://api.github.com",
	}
}

func (p *GithubProvider) GetID() string {
	return models.ProviderGithub
}

func (p *GithubProvider) AuthorizationURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.SetAuthURLParam("allow_signup", "true"))
}

func (p *GithubProvider) ExchangeCode(ctx context.Context, code string) (*User, error) {
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("github code exchange failed: %w", err)
	}
	client := p.config.Client(ctx, tok)

	var profile struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := fetchJSON(ctx, client, p.apiURL+"/user", &profile); err != nil {
		return nil, fmt.Errorf("github profile fetch failed: %w", err)
	}
	if profile.ID == 0 {
		return nil, fmt.Errorf("github profile missing id")
	}

	email := profile.Email
	if email == "" {
		// Users can hide the profile email; the emails endpoint still
		// returns the primary address for the user:email scope.
		var emails []struct {
			Email    string `json:"email"`
			Primary  bool   `json:"primary"`
			Verified bool   `json:"verified"`
		}
		if err := fetchJSON(ctx, client, p.apiURL+"/user/emails", &emails); err != nil {
			return nil, fmt.Errorf("github emails fetch failed: %w", err)
		}
		for _, e := range emails {
			if e.Primary {
				email = e.Email
				break
			}
		}
	}
	if email == "" {
		return nil, fmt.Errorf("github profile missing email")
	}

	name := profile.Name
	if name == "" {
		name = profile.Login
	}

	return &User{
		ID:           strconv.FormatInt(profile.ID, 10),
		Email:        email,
		Name:         name,
		ProviderType: models.ProviderGithub,
	}, nil
}
