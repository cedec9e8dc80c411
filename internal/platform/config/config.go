package config

import (
	"log"
	"strings"
	"time"

	"github.com/SscSPs/money_changer_pos/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Session cookie and in-memory session store
	SessionSecret      string
	SessionCookieName  string
	SessionIssuer      string
	SessionIdleTimeout time.Duration

	RateLimit          string
	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_COOKIE_NAME", "fxsid")
	v.SetDefault("SESSION_ISSUER", "fx-counter")
	v.SetDefault("SESSION_IDLE_TIMEOUT", "30m")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	SetDefaults(viper.GetViper())
	viper.AutomaticEnv()

	return FromViper(viper.GetViper())
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	cfg.SessionSecret = v.GetString("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		// Sessions are in memory only, so a per-process secret loses nothing on restart.
		secret, err := utils.GenerateSecureRandomString(32)
		if err != nil {
			return nil, err
		}
		cfg.SessionSecret = secret
		log.Println("Warning: SESSION_SECRET not set. Using a random per-process secret.")
	}

	cfg.SessionCookieName = v.GetString("SESSION_COOKIE_NAME")
	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = "fxsid"
		log.Printf("Warning: SESSION_COOKIE_NAME not set. Defaulting to %s.\n", cfg.SessionCookieName)
	}

	cfg.SessionIssuer = v.GetString("SESSION_ISSUER")
	if cfg.SessionIssuer == "" {
		cfg.SessionIssuer = "fx-counter"
	}

	idleStr := v.GetString("SESSION_IDLE_TIMEOUT")
	idle, err := time.ParseDuration(idleStr)
	if err != nil || idle <= 0 {
		idle = 30 * time.Minute
		if idleStr != "" {
			log.Printf("Warning: Invalid value for SESSION_IDLE_TIMEOUT ('%s'). Defaulting to %s.\n", idleStr, idle.String())
		}
	}
	cfg.SessionIdleTimeout = idle

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "120-M"
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = v.GetString("POSTHOG_ENDPOINT")

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
