package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	StorageDriver string
	DatabaseURL   string
	EnableDBCheck bool
	SeedFixtures  bool

	// Report cache. An empty RedisAddr keeps the cache in process.
	RedisAddr       string
	ReportCacheSize int
	ReportCacheTTL  time.Duration

	ForecastStrategy string
	ForecastHorizon  int
	TopProductsLimit int

	// RateLimit uses the limiter format, e.g. "100-M" for 100 requests a minute.
	RateLimit          string
	CORSAllowedOrigins []string
	PosthogAPIKey      string
	PosthogEndpoint    string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_DRIVER", StorageMemory)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("SEED_FIXTURES", true)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REPORT_CACHE_SIZE", 128)
	viper.SetDefault("REPORT_CACHE_TTL", "5m")
	viper.SetDefault("FORECAST_STRATEGY", "static")
	viper.SetDefault("FORECAST_HORIZON", 7)
	viper.SetDefault("TOP_PRODUCTS_LIMIT", 5)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		StorageDriver:    strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_DRIVER"))),
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		EnableDBCheck:    viper.GetBool("ENABLE_DB_CHECK"),
		SeedFixtures:     viper.GetBool("SEED_FIXTURES"),
		RedisAddr:        viper.GetString("REDIS_ADDR"),
		ReportCacheSize:  viper.GetInt("REPORT_CACHE_SIZE"),
		ForecastStrategy: viper.GetString("FORECAST_STRATEGY"),
		ForecastHorizon:  viper.GetInt("FORECAST_HORIZON"),
		TopProductsLimit: viper.GetInt("TOP_PRODUCTS_LIMIT"),
		RateLimit:        viper.GetString("RATE_LIMIT"),
		PosthogAPIKey:    viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:  viper.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_DRIVER is %s", StoragePostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER '%s'", cfg.StorageDriver)
	}

	ttlStr := viper.GetString("REPORT_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = 5 * time.Minute
		log.Printf("Warning: Invalid value for REPORT_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl.String())
	}
	cfg.ReportCacheTTL = ttl

	if cfg.TopProductsLimit <= 0 {
		cfg.TopProductsLimit = 5
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
