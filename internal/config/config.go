// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	APIBaseURL     string  `mapstructure:"API_BASE_URL"`
	HTTPTimeout    int     `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	TokenStore     string  `mapstructure:"TOKEN_STORE"`
	TokenPath      string  `mapstructure:"TOKEN_PATH"`
	RedisURL       string  `mapstructure:"REDIS_URL"`
	CacheEnabled   bool    `mapstructure:"CACHE_ENABLED"`
	TracingEnabled bool    `mapstructure:"TRACING_ENABLED"`
	TraceExporter  string  `mapstructure:"TRACE_EXPORTER"`
	OTLPEndpoint   string  `mapstructure:"OTLP_ENDPOINT"`
	SamplerRatio   float64 `mapstructure:"SAMPLER_RATIO"`
	LogLevel       string  `mapstructure:"LOG_LEVEL"`
	Env            string  `mapstructure:"APP_ENV"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.murmur")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; env vars and defaults cover everything.
	if err := viper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.SetDefault("API_BASE_URL", "http://localhost:5000/api")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 15)
	viper.SetDefault("TOKEN_STORE", "file")
	viper.SetDefault("TOKEN_PATH", "")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("CACHE_ENABLED", false)
	viper.SetDefault("TRACING_ENABLED", false)
	viper.SetDefault("TRACE_EXPORTER", "stdout")
	viper.SetDefault("OTLP_ENDPOINT", "localhost:4318")
	viper.SetDefault("SAMPLER_RATIO", 1.0)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", "development")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and well formed.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("API_BASE_URL is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL %q is not an absolute URL", c.APIBaseURL)
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("HTTP_TIMEOUT_SECONDS must be positive")
	}
	switch c.TokenStore {
	case "file", "redis":
	default:
		return fmt.Errorf("TOKEN_STORE must be \"file\" or \"redis\", got %q", c.TokenStore)
	}
	if c.TokenStore == "redis" && c.RedisURL == "" {
		return errors.New("REDIS_URL is required when TOKEN_STORE is \"redis\"")
	}
	if c.SamplerRatio < 0 || c.SamplerRatio > 1 {
		return errors.New("SAMPLER_RATIO must be between 0 and 1")
	}
	return nil
}
