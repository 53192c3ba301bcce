package config

import (
	"os"
	"strconv"
	"strings"
)

const environmentProduction = "production"

// Config holds the application configuration
// Note: The chord engine is stateless - no database or auth secrets needed
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN           string // Sentry DSN for error tracking
	CloudWatchEnabled   bool   // Feature flag for CloudWatch metrics (production only)
	CloudWatchNamespace string // CloudWatch metric namespace

	// HTTP
	CORSAllowedOrigins []string

	// Chord service
	ChordCacheSize int // LRU entries; 0 disables memoization
}

func Load() *Config {
	return &Config{
		Environment:         getEnv("ENVIRONMENT", "development"),
		Port:                getEnv("PORT", "8080"),
		SentryDSN:           getEnv("SENTRY_DSN", ""),
		CloudWatchEnabled:   getEnv("CLOUDWATCH_ENABLED", "false") == "true",
		CloudWatchNamespace: getEnv("CLOUDWATCH_NAMESPACE", "Songbook/API"),
		CORSAllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ChordCacheSize:      getEnvInt("CHORD_CACHE_SIZE", 4096),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// IsProduction returns true when running in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == environmentProduction
}

// MetricsEnabled returns true if CloudWatch metrics should be published
func (c *Config) MetricsEnabled() bool {
	return c.IsProduction() && c.CloudWatchEnabled
}
