package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Token             string
	DatabaseURL       string
	GuildID           string
	AnnounceChannelID string
	NotifierRoleName  string
	MigrationsPath    string
	Locale            string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		Token:             os.Getenv("TOKEN"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		GuildID:           os.Getenv("GUILD_ID"),
		AnnounceChannelID: os.Getenv("ANNOUNCE_CHANNEL_ID"),
		NotifierRoleName:  os.Getenv("NOTIFIER_ROLE_NAME"),
		MigrationsPath:    os.Getenv("MIGRATIONS_PATH"),
		Locale:            os.Getenv("LOCALE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all the rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}

	if strings.TrimSpace(c.GuildID) == "" {
		return fmt.Errorf("config: GUILD_ID is required and cannot be empty")
	}
	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord guild ID (digits only)")
		}
	}

	// ANNOUNCE_CHANNEL_ID is optional; empty disables announcement publishing.
	for _, r := range c.AnnounceChannelID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: ANNOUNCE_CHANNEL_ID must be a Discord channel ID (digits only)")
		}
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful default for local runs when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/eventbot?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if c.NotifierRoleName == "" {
		c.NotifierRoleName = "Events Notifier"
	}
	if c.MigrationsPath == "" {
		c.MigrationsPath = "migrations"
	}
	if c.Locale == "" {
		c.Locale = "en"
	}

	return nil
}
