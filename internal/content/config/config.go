package config

import (
	"errors"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the content module.
type Config struct {
	MongoDBURI   string `env:"MONGODB_URI,required"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"clubsite_db"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load content configuration from environment: " + err.Error())
	}
	if cfg.MongoDBURI == "" {
		return nil, errors.New("mongodb_uri is required")
	}
	if cfg.DatabaseName == "" {
		cfg.DatabaseName = "clubsite_db"
	}
	return cfg, nil
}
