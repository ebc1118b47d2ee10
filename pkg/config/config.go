// Package config provides configuration management for finance-page.
// It loads configuration from environment variables and .env files.
package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config represents the application configuration.
type Config struct {
	Finance FinanceConfig `env:",prefix=FINANCE_"`
	Debug   bool          `env:"DEBUG,default=false"`
}

// FinanceConfig represents the finance tracker connection and display settings.
type FinanceConfig struct {
	BaseURL    string        `env:"BASE_URL"`
	Timeout    time.Duration `env:"TIMEOUT,default=30s"`
	Locale     string        `env:"LOCALE,default=pt-BR"`
	LocaleFile string        `env:"LOCALE_FILE"`
	TimeZone   string        `env:"TIMEZONE,default=Local"`
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	return loadFrom(envconfig.OsLookuper())
}

func loadFrom(lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(context.Background(), &cfg, lookuper); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}

// Location resolves the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	name := c.Finance.TimeZone
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid FINANCE_TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

// Validate validates the configuration.
// It checks if all required fields are set.
func (c *Config) Validate(required ...[]string) error {
	var missing []string

	for _, path := range required {
		if len(path) < 2 {
			continue
		}

		var value string
		switch path[0] {
		case "finance":
			switch path[1] {
			case "baseUrl":
				value = c.Finance.BaseURL
			case "timeout":
				if c.Finance.Timeout > 0 {
					value = c.Finance.Timeout.String()
				}
			case "locale":
				value = c.Finance.Locale
			case "localeFile":
				value = c.Finance.LocaleFile
			case "timeZone":
				value = c.Finance.TimeZone
			}
		}

		if value == "" {
			missing = append(missing, strings.Join(path, "."))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your .env file or environment variables", missing)
	}

	return nil
}
