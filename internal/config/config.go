// Package config provides configuration for the agent service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the agent service configuration.
type Config struct {
	// Server settings
	Host string
	Port int

	// Inbound bearer token. Empty means the deployment is misconfigured.
	APIBearerToken string

	// Database
	DatabaseDriver string
	DatabaseURL    string

	// Completion API settings
	LLMBaseURL        string
	LLMAPIKey         string
	LLMModel          string
	LLMTimeout        time.Duration
	LLMIncludeHistory bool

	// History
	HistoryLimit int

	// Logging
	LogLevel  string
	LogFormat string

	// Mode selects the completion client (MOCK for the canned client).
	Mode string
}

// Load loads configuration from a .env file (when present) and environment variables.
func Load() *Config {
	// A missing .env file is fine; the process environment still applies.
	_ = godotenv.Load()

	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	cfg := &Config{
		Host:              getEnv("HOST", "0.0.0.0"),
		Port:              getEnvInt("PORT", 8001),
		APIBearerToken:    os.Getenv("API_BEARER_TOKEN"),
		DatabaseDriver:    strings.ToLower(getEnv("DATABASE_DRIVER", "sqlite")),
		DatabaseURL:       getEnv("DATABASE_URL", getEnv("SUPABASE_DB_URL", "file:agent.db?cache=shared&mode=rwc")),
		LLMBaseURL:        getEnv("LLM_BASE_URL", "https://api.together.xyz/v1"),
		LLMAPIKey:         getEnv("TOGETHER_API_KEY", os.Getenv("LLM_API_KEY")),
		LLMModel:          getEnv("LLM_MODEL", "meta-llama/Llama-3.3-70B-Instruct-Turbo"),
		LLMTimeout:        time.Duration(getEnvInt("LLM_TIMEOUT_MS", 60000)) * time.Millisecond,
		LLMIncludeHistory: getEnvBool("LLM_INCLUDE_HISTORY", false),
		HistoryLimit:      getEnvInt("HISTORY_LIMIT", 10),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		Mode:              strings.ToUpper(os.Getenv("AGENT_MODE")),
	}
	return cfg
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

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
