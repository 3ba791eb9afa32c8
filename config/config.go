package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Search   SearchConfig
	Pricing  PricingConfig
	Flights  FlightsConfig
	Cache    CacheConfig
	Analysis AnalysisConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SearchConfig holds web-search API configuration
type SearchConfig struct {
	APIKey  string  `mapstructure:"api_key"`
	BaseURL string  `mapstructure:"base_url"`
	RPS     float64 `mapstructure:"rps"`
}

// PricingConfig holds pricing API configuration
type PricingConfig struct {
	APIKey  string  `mapstructure:"api_key"`
	BaseURL string  `mapstructure:"base_url"`
	RPS     float64 `mapstructure:"rps"`
}

// FlightsConfig holds flight-offers API configuration
type FlightsConfig struct {
	BaseURL      string  `mapstructure:"base_url"`
	TokenURL     string  `mapstructure:"token_url"`
	ClientID     string  `mapstructure:"client_id"`
	ClientSecret string  `mapstructure:"client_secret"`
	RPS          float64 `mapstructure:"rps"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// AnalysisConfig holds deal-analysis tuning
type AnalysisConfig struct {
	MaxConcurrentQueries int64 `mapstructure:"max_concurrent_queries"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/farescout/")

	v.SetEnvPrefix("FARESCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("search.api_key", "")
	v.SetDefault("search.base_url", "https://serpapi.com")
	v.SetDefault("search.rps", 5.0)

	v.SetDefault("pricing.api_key", "")
	v.SetDefault("pricing.base_url", "https://api.farescout.dev/pricing")
	v.SetDefault("pricing.rps", 5.0)

	v.SetDefault("flights.base_url", "https://test.api.amadeus.com")
	v.SetDefault("flights.token_url", "https://test.api.amadeus.com/v1/security/oauth2/token")
	v.SetDefault("flights.client_id", "")
	v.SetDefault("flights.client_secret", "")
	v.SetDefault("flights.rps", 2.0)

	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", "6h")

	v.SetDefault("analysis.max_concurrent_queries", 4)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Search.APIKey == "" {
		return fmt.Errorf("search API key is required (set FARESCOUT_SEARCH_API_KEY)")
	}

	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("redis URL is required when cache type is 'redis'")
	}

	if (config.Flights.ClientID == "") != (config.Flights.ClientSecret == "") {
		return fmt.Errorf("flight API credentials must be set together (FARESCOUT_FLIGHTS_CLIENT_ID / FARESCOUT_FLIGHTS_CLIENT_SECRET)")
	}

	return nil
}

// FlightsEnabled reports whether the flight collaborator is configured.
func (c *Config) FlightsEnabled() bool {
	return c.Flights.ClientID != "" && c.Flights.ClientSecret != ""
}
