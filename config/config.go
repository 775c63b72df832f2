package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

// CatalogConfig holds catalog storage configuration.
type CatalogConfig struct {
	File string `mapstructure:"file"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the environment with defaults suitable for
// local use. A .env file is honored when present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors)
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("catalog.file", "catalog.json")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.BindEnv("catalog.file", "CATALOG_FILE")
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.format", "LOG_FORMAT")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Catalog.File == "" {
		return nil, fmt.Errorf("catalog file path is required")
	}

	return &cfg, nil
}
