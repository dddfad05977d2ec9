package config

import (
	"os"
	"strconv"
)

// Config carries everything the app needs from the environment.
// It is built once in main and passed down explicitly; nothing
// below main reads os.Getenv.
type Config struct {
	Port       string
	ClientURL  string
	CORSOrigins string

	DB    DBConfig
	JWT   JWTConfig
	SMTP  SMTPConfig
	Oauth OauthConfig
	Admin AdminConfig
}

// AdminConfig seeds the bootstrap admin account when set.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

type DBConfig struct {
	Driver string // "postgres" or "sqlite"
	DSN    string // postgres DSN
	Path   string // sqlite file path
}

type JWTConfig struct {
	Secret                      string
	AccessExpirationMinutes     int
	RefreshExpirationDays       int
	ResetPasswordExpirationMins int
	VerifyEmailExpirationMins   int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// OauthProviderConfig holds one provider's client credentials.
type OauthProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type OauthConfig struct {
	Github   OauthProviderConfig
	Google   OauthProviderConfig
	Discord  OauthProviderConfig
	Spotify  OauthProviderConfig
	Facebook OauthProviderConfig
}

func Load() Config {
	return Config{
		Port:        getEnv("PORT", "3000"),
		ClientURL:   getEnv("CLIENT_URL", "http://localhost:3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),

		DB: DBConfig{
			Driver: getEnv("DB_DRIVER", "sqlite"),
			DSN:    os.Getenv("DB_DSN"),
			Path:   getEnv("DB_PATH", "authbase.db"),
		},

		JWT: JWTConfig{
			Secret:                      getEnv("JWT_SECRET", "super-secret-default-key-change-me"),
			AccessExpirationMinutes:     getEnvInt("JWT_ACCESS_EXPIRATION_MINUTES", 30),
			RefreshExpirationDays:       getEnvInt("JWT_REFRESH_EXPIRATION_DAYS", 30),
			ResetPasswordExpirationMins: getEnvInt("JWT_RESET_PASSWORD_EXPIRATION_MINUTES", 10),
			VerifyEmailExpirationMins:   getEnvInt("JWT_VERIFY_EMAIL_EXPIRATION_MINUTES", 10),
		},

		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			Sender:   os.Getenv("SMTP_SENDER"),
		},

		Oauth: OauthConfig{
			Github:   providerFromEnv("GITHUB"),
			Google:   providerFromEnv("GOOGLE"),
			Discord:  providerFromEnv("DISCORD"),
			Spotify:  providerFromEnv("SPOTIFY"),
			Facebook: providerFromEnv("FACEBOOK"),
		},

		Admin: AdminConfig{
			Email:    os.Getenv("ADMIN_EMAIL"),
			Password: os.Getenv("ADMIN_PASSWORD"),
			Name:     getEnv("ADMIN_NAME", "Admin"),
		},
	}
}

func providerFromEnv(prefix string) OauthProviderConfig {
	return OauthProviderConfig{
		ClientID:     os.Getenv(prefix + "_CLIENT_ID"),
		ClientSecret: os.Getenv(prefix + "_CLIENT_SECRET"),
		RedirectURL:  os.Getenv(prefix + "_REDIRECT_URL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
