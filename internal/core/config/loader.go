package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Load reads configuration from a YAML file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if len(cfg.Chain.Endpoints) == 0 {
		return nil, fmt.Errorf("config: chain %q has no endpoints", cfg.Chain.Name)
	}

	// Set defaults if necessary
	if cfg.Chain.RequestTimeout == 0 {
		cfg.Chain.RequestTimeout = 10 * time.Second
	}
	if cfg.Pricing.BaseURL == "" {
		cfg.Pricing.BaseURL = "https://api.coingecko.com/api/v3"
	}
	if cfg.Pricing.Platform == "" {
		cfg.Pricing.Platform = "ethereum"
	}
	if cfg.Pricing.CacheTTL == 0 {
		cfg.Pricing.CacheTTL = 5 * time.Minute
	}

	return &cfg, nil
}
