package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the newsdesk client.
type Config struct {
	APIBaseURL          string
	DBPath              string
	LogLevel            string
	LogFormat           string
	RequestsPerSecond   float64
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5001/api"
	c.DBPath = "newsdesk.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.RequestsPerSecond = 0
	c.OnlineCheckInterval = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a config file (if given) and command-line flags.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, lookup); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFile(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("api base url must not be empty")
	}
	if cfg.RequestsPerSecond < 0 {
		return nil, fmt.Errorf("requests per second must not be negative")
	}
	return cfg, nil
}
