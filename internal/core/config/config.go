package config

import (
	"time"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server     ServerConfig        `yaml:"server"`
	Chain      ChainConfig         `yaml:"chain"`
	Pricing    PricingConfig       `yaml:"pricing"`
	Redis      RedisConfig         `yaml:"redis"`
	Retry      RetryConfig         `yaml:"retry"`
	Logging    LoggingConfig       `yaml:"logging"`
	Exclusions map[string][]string `yaml:"exclusions"`
}

// ServerConfig holds the optional metrics/health HTTP server settings.
// Port 0 disables the server.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info
}

// ChainConfig holds settings for the chain being scanned. With more
// than one endpoint the scanner builds one worker per endpoint; with a
// single endpoint all scans share one connection.
type ChainConfig struct {
	Name           string           `yaml:"name"`
	Endpoints      []EndpointConfig `yaml:"endpoints"`
	RequestTimeout time.Duration    `yaml:"request_timeout"`
}

// EndpointConfig holds settings for one RPC endpoint.
type EndpointConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// PricingConfig holds settings for the USD price source.
type PricingConfig struct {
	BaseURL  string        `yaml:"base_url"`
	Platform string        `yaml:"platform"` // CoinGecko asset platform, e.g. "ethereum"
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// RedisConfig holds the optional price cache connection. An empty URL
// disables caching.
type RedisConfig struct {
	URL      string `yaml:"url"`
	Password string `yaml:"password"`
}

// RetryConfig controls the balance-query retry policy. MaxAttempts 0
// retries forever; a stuck endpoint then holds its worker until the
// process is interrupted.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	Delay       time.Duration `yaml:"delay"`
}
