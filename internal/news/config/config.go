package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the news module.
type Config struct {
	// CryptoPanic upstream
	CryptoPanicToken   string `env:"CRYPTOPANIC_TOKEN"`
	CryptoPanicBaseURL string `env:"CRYPTOPANIC_BASE_URL" envDefault:"https://cryptopanic.com/api/developer/v2"`

	// Default query parameters sent upstream
	DefaultKind       string `env:"NEWS_KIND" envDefault:"news"`
	DefaultFilter     string `env:"NEWS_FILTER" envDefault:"hot"`
	DefaultCurrencies string `env:"NEWS_CURRENCIES" envDefault:"BTC,ETH,SOL"`
	DefaultRegions    string `env:"NEWS_REGIONS" envDefault:"en"`

	// Cache behavior
	CacheTTL time.Duration `env:"NEWS_CACHE_TTL" envDefault:"12h"`
	CacheKey string        `env:"NEWS_CACHE_KEY" envDefault:"news:cryptopanic:batch"`

	Redis RedisConfig
}

// LoadConfig loads configuration from environment variables and applies
// defaults. A missing CRYPTOPANIC_TOKEN is not an error here: the service
// starts without it and the news endpoints report the condition per request.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load news configuration from environment: " + err.Error())
	}
	if err := env.Parse(&cfg.Redis); err != nil {
		return nil, errors.New("failed to load redis configuration from environment: " + err.Error())
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 12 * time.Hour
	}
	return cfg, nil
}
