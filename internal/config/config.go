// Package config loads server settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the API server needs at startup.
type Config struct {
	Port        string
	DBDriver    string
	DatabaseURL string
	// APIToken is the shared bearer secret. Empty disables the check.
	APIToken    string
	CORSOrigins []string

	GeminiAPIKey string
	GeminiModel  string

	GmailCredentialsFile string
	GmailTokenFile       string
}

// Defaults match a local Postgres for development.
const (
	DefaultPort        = "8080"
	DefaultDBDriver    = "postgres"
	DefaultDatabaseURL = "host=localhost user=postgres password=password dbname=placement port=5432 sslmode=disable"
	DefaultGeminiModel = "gemini-2.5-flash"
)

var ErrUnknownDriver = errors.New("unknown database driver")

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("⚠️  Could not read .env file: %v", err)
	}
	return FromViper(NewViper())
}

// NewViper returns a viper instance with the server defaults and
// environment lookup enabled.
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("DB_DRIVER", DefaultDBDriver)
	v.SetDefault("DATABASE_URL", DefaultDatabaseURL)
	v.SetDefault("GEMINI_MODEL", DefaultGeminiModel)
	v.SetDefault("GMAIL_CREDENTIALS_FILE", "credential.json")
	v.SetDefault("GMAIL_TOKEN_FILE", "token.json")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	return v
}

// FromViper extracts a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:                 v.GetString("PORT"),
		DBDriver:             strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:          v.GetString("DATABASE_URL"),
		APIToken:             v.GetString("API_TOKEN"),
		GeminiAPIKey:         v.GetString("GEMINI_API_KEY"),
		GeminiModel:          v.GetString("GEMINI_MODEL"),
		GmailCredentialsFile: v.GetString("GMAIL_CREDENTIALS_FILE"),
		GmailTokenFile:       v.GetString("GMAIL_TOKEN_FILE"),
	}
	for _, o := range strings.Split(v.GetString("CORS_ALLOW_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return ErrUnknownDriver
	}
	if c.Port == "" {
		c.Port = DefaultPort
	}
	return nil
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c *Config) AllowAllOrigins() bool {
	return len(c.CORSOrigins) == 0 || (len(c.CORSOrigins) == 1 && c.CORSOrigins[0] == "*")
}
