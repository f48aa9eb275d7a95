package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// AI Provider
	AnthropicAPIKey string
	AnthropicModel  string

	// Server
	ServerPort string
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),

		ServerPort: getEnv("SERVER_PORT", "8080"),
	}

	if !config.ProviderReady() {
		log.Println("WARNING: ANTHROPIC_API_KEY not set, using deterministic mock data")
	}

	return config
}

// ProviderReady reports whether a usable model credential is configured
func (c *Config) ProviderReady() bool {
	return c.AnthropicAPIKey != "" && c.AnthropicAPIKey != "your_api_key_here"
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
