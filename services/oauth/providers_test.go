package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"authbase/config"
	"authbase/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

var testProviderCfg = config.OauthProviderConfig{
	ClientID:     "client-id",
	ClientSecret: "client-secret",
	RedirectURL:  "http://localhost:3000/callback",
}

// fakeBackend serves a provider's token endpoint plus arbitrary profile
// routes.
func fakeBackend(t *testing.T, tokenStatus int, profiles map[string]interface{}) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if tokenStatus != http.StatusOK {
			w.WriteHeader(tokenStatus)
			json.NewEncoder(w).Encode(map[string]string{"error": "bad code"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "1234",
			"token_type":   "bearer",
		})
	})
	for path, payload := range profiles {
		body := payload
		mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(body)
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func pointEndpoint(cfg *oauth2.Config, srv *httptest.Server) {
	cfg.Endpoint = oauth2.Endpoint{
		AuthURL:  srv.URL + "/authorize",
		TokenURL: srv.URL + "/token",
	}
}

func TestGithubProvider_ExchangeCode(t *testing.T) {
	t.Parallel()
	srv := fakeBackend(t, http.StatusOK, map[string]interface{}{
		"/user": map[string]interface{}{
			"id":    999,
			"login": "ghuser",
			"name":  "A",
			"email": "a@x.com",
		},
	})

	p := NewGithubProvider(testProviderCfg)
	pointEndpoint(p.config, srv)
	p.apiURL = srv.URL

	user, err := p.ExchangeCode(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, "999", user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "A", user.Name)
	assert.Equal(t, models.ProviderGithub, user.ProviderType)
}

func TestGithubProvider_FallsBackToEmailsEndpoint(t *testing.T) {
	t.Parallel()
	srv := fakeBackend(t, http.StatusOK, map[string]interface{}{
		"/user": map[string]interface{}{
			"id":    999,
			"login": "ghuser",
		},
		"/user/emails": []map[string]interface{}{
			{"email": "secondary@x.com", "primary": false, "verified": true},
			{"email": "primary@x.com", "primary": true, "verified": true},
		},
	})

	p := NewGithubProvider(testProviderCfg)
	pointEndpoint(p.config, srv)
	p.apiURL = srv.URL

	user, err := p.ExchangeCode(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, "primary@x.com", user.Email)
	assert.Equal(t, "ghuser", user.Name) // falls back to login when name is empty
}

func TestGithubProvider_BadCodeFailsExchange(t *testing.T) {
	t.Parallel()
	srv := fakeBackend(t, http.StatusUnauthorized, nil)

	p := NewGithubProvider(testProviderCfg)
	pointEndpoint(p.config, srv)
	p.apiURL = srv.URL

	_, err := p.ExchangeCode(context.Background(), "bad-code")
	assert.Error(t, err)
}

func TestGithubProvider_AuthorizationURL(t *testing.T) {
	t.Parallel()
	p := NewGithubProvider(testProviderCfg)

	url := p.AuthorizationURL("some-state")
	assert.Contains(t, url, "client_id=client-id")
	assert.Contains(t, url, "state=some-state")
	assert.Contains(t, url, "allow_signup=true")
}

func TestGoogleProvider_ExchangeCode(t *testing.T) {
	t.Parallel()
	srv := fakeBackend(t, http.StatusOK, map[string]interface{}{
		"/userinfo": map[string]interface{}{
			"sub":   "google-sub-1",
			"email": "g@x.com",
			"name":  "G User",
		},
	})

	p := NewGoogleProvider(testProviderCfg)
	pointEndpoint(p.config, srv)
	p.userInfoURL = srv.URL + "/userinfo"

	user, err := p.ExchangeCode(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", user.ID)
	assert.Equal(t, "g@x.com", user.Email)
	assert.Equal(t, models.ProviderGoogle, user.ProviderType)
}

func TestDiscordProvider_ExchangeCode(t *testing.T) {
	t.Parallel()
	srv := fakeBackend(t, http.StatusOK, map[string]interface{}{
		"/users/@me": map[string]interface{}{
			"id":       "discord-1",
			"username": "duser",
			"email":    "d@x.com",
		},
	})

	p := NewDiscordProvider(testProviderCfg)
	pointEndpoint(p.config, srv)
	p.apiURL = srv.URL

	user, err := p.ExchangeCode(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, "discord-1", user.ID)
	assert.Equal(t, "duser", user.Name)
	assert.Equal(t, models.ProviderDiscord, user.ProviderType)
}

func TestSpotifyProvider_ExchangeCode(t *testing.T) {
	t.Parallel()
	srv := fakeBackend(t, http.StatusOK, map[string]interface{}{
		"/me": map[string]interface{}{
			"id":           "spotify-1",
			"email":        "s@x.com",
			"display_name": "S User",
		},
	})

	p := NewSpotifyProvider(testProviderCfg)
	pointEndpoint(p.config, srv)
	p.apiURL = srv.URL

	user, err := p.ExchangeCode(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, "spotify-1", user.ID)
	assert.Equal(t, models.ProviderSpotify, user.ProviderType)
}

func TestFacebookProvider_ConcatenatesName(t *testing.T) {
	t.Parallel()
	srv := fakeBackend(t, http.StatusOK, map[string]interface{}{
		"/me": map[string]interface{}{
			"id":         "fb-1",
			"email":      "f@x.com",
			"first_name": "First",
			"last_name":  "Last",
		},
	})

	p := NewFacebookProvider(testProviderCfg)
	pointEndpoint(p.config, srv)
	p.apiURL = srv.URL

	user, err := p.ExchangeCode(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, "First Last", user.Name)
	assert.Equal(t, models.ProviderFacebook, user.ProviderType)
}

func TestProvider_MissingProfileFields(t *testing.T) {
	t.Parallel()
	srv := fakeBackend(t, http.StatusOK, map[string]interface{}{
		"/users/@me": map[string]interface{}{
			"id": "discord-1",
			// no email
		},
	})

	p := NewDiscordProvider(testProviderCfg)
	pointEndpoint(p.config, srv)
	p.apiURL = srv.URL

	_, err := p.ExchangeCode(context.Background(), "123456")
	assert.Error(t, err)
}

func TestManager(t *testing.T) {
	t.Parallel()
	m := NewManager(config.OauthConfig{})

	for _, id := range []string{
		models.ProviderGithub,
		models.ProviderGoogle,
		models.ProviderDiscord,
		models.ProviderSpotify,
		models.ProviderFacebook,
	} {
		p, err := m.Get(id)
		require.NoError(t, err)
		assert.Equal(t, id, p.GetID())
	}

	_, err := m.Get("myspace")
	assert.Error(t, err)
}
