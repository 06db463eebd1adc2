package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	WhatsAppToken     string
	PhoneNumberID     string
	VerifyToken       string
	WhatsAppAppSecret string
	GraphAPIBase      string

	GeminiAPIKey  string
	GeminiModelID string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	DedupeTTL     time.Duration
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		WhatsAppToken:     getEnv("WHATSAPP_TOKEN", ""),
		PhoneNumberID:     getEnv("PHONE_NUMBER_ID", ""),
		VerifyToken:       getEnv("VERIFY_TOKEN", ""),
		WhatsAppAppSecret: getEnv("WHATSAPP_APP_SECRET", ""),
		GraphAPIBase:      getEnv("GRAPH_API_BASE", ""),

		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModelID: getEnv("GEMINI_MODEL_ID", "gemini-2.0-flash"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		DedupeTTL:     getEnvAsDuration("DEDUPE_TTL", 24*time.Hour),
	}
}

// Validate reports every missing required variable. The process must not
// start when it returns an error.
func (c *Config) Validate() error {
	var missing []string
	for _, req := range []struct {
		name  string
		value string
	}{
		{"WHATSAPP_TOKEN", c.WhatsAppToken},
		{"PHONE_NUMBER_ID", c.PhoneNumberID},
		{"VERIFY_TOKEN", c.VerifyToken},
		{"GEMINI_API_KEY", c.GeminiAPIKey},
		{"DATABASE_URL", c.DatabaseURL},
	} {
		if strings.TrimSpace(req.value) == "" {
			missing = append(missing, req.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
