// Package config provides configuration for the orchestrator.
package config

import (
	"os"
	"strconv"
)

// Config holds the orchestrator configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Generation backend
	Mode         string // MOCK selects the canned-response client
	GeminiAPIKey string
	GeminiModel  string
	LLMRPS       float64
	LLMBurst     int

	// Autofill extraction heuristics
	ExtractMinContentLength int
	ExtractUserAgent        string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		HTTPPort:                getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:             getEnv("DATABASE_URL", "file:brandloom.db?cache=shared&mode=rwc"),
		Mode:                    getEnv("BRANDLOOM_MODE", ""),
		GeminiAPIKey:            getEnv("GEMINI_API_KEY", ""),
		GeminiModel:             getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		LLMRPS:                  getEnvFloat("LLM_RPS", 0),
		LLMBurst:                getEnvInt("LLM_BURST", 1),
		ExtractMinContentLength: getEnvInt("EXTRACT_MIN_CONTENT_LENGTH", 100),
		ExtractUserAgent:        getEnv("EXTRACT_USER_AGENT", ""),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
