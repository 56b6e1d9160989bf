package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // "development" or "production"
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`            // "sqlite" or "postgres"
	DSN             string `mapstructure:"dsn"`               // Connection string
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`    // Maximum idle connections (Postgres)
	MaxOpenConns    int    `mapstructure:"max_open_conns"`    // Maximum open connections (Postgres)
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // Connection max lifetime in minutes (Postgres)
}

// AuthConfig holds identity-provider configuration. Leaving the issuer URL
// empty or on a placeholder value selects local-dev mode (constant user id,
// no real authentication).
type AuthConfig struct {
	IssuerURL       string        `mapstructure:"issuer_url"`       // OIDC issuer, e.g. "https://accounts.example.com"
	ClientID        string        `mapstructure:"client_id"`        // OIDC client ID
	ClientSecret    string        `mapstructure:"client_secret"`    // OIDC client secret
	RedirectURL     string        `mapstructure:"redirect_url"`     // Callback URL registered with the provider
	JWTSecret       string        `mapstructure:"jwt_secret"`       // Secret for signing session tokens
	ProviderTimeout time.Duration `mapstructure:"provider_timeout"` // Cap on calls to the identity provider
}

// LogConfig holds logging configuration
type LogConfig struct {
	Format string `mapstructure:"format"` // "json" or "text"
	Level  string `mapstructure:"level"`  // "debug", "info", "warn", "error"
}

// LocalDevMode reports whether the identity provider is unconfigured, in
// which case every request resolves to the local-dev user. Placeholder
// values from a copied sample config count as unconfigured.
func (a AuthConfig) LocalDevMode() bool {
	url := strings.TrimSpace(a.IssuerURL)
	if url == "" || strings.TrimSpace(a.ClientID) == "" {
		return true
	}
	if strings.Contains(url, "your-") || strings.Contains(a.ClientID, "your-") {
		return true
	}
	return !strings.HasPrefix(url, "http")
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults for local development
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "development")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "./gymtrack.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60) // 60 minutes
	v.SetDefault("auth.issuer_url", "")
	v.SetDefault("auth.client_id", "")
	v.SetDefault("auth.client_secret", "")
	v.SetDefault("auth.redirect_url", "http://localhost:8080/api/auth/callback")
	v.SetDefault("auth.jwt_secret", "change-me-in-production")
	v.SetDefault("auth.provider_timeout", "10s")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.level", "info")

	// Read from config file if exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/gymtrack/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, using defaults
	}

	// Environment variables override
	v.SetEnvPrefix("GYMTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}
