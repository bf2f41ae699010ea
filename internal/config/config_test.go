package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"HOST", "PORT", "API_BEARER_TOKEN", "DATABASE_DRIVER", "DATABASE_URL", "SUPABASE_DB_URL",
		"LLM_BASE_URL", "TOGETHER_API_KEY", "LLM_API_KEY", "LLM_MODEL", "LLM_TIMEOUT_MS",
		"LLM_INCLUDE_HISTORY", "HISTORY_LIMIT", "LOG_LEVEL", "LOG_FORMAT", "AGENT_MODE",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8001, cfg.Port)
	assert.Empty(t, cfg.APIBearerToken)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "https://api.together.xyz/v1", cfg.LLMBaseURL)
	assert.Equal(t, "meta-llama/Llama-3.3-70B-Instruct-Turbo", cfg.LLMModel)
	assert.Equal(t, 60*time.Second, cfg.LLMTimeout)
	assert.False(t, cfg.LLMIncludeHistory)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("API_BEARER_TOKEN", "secret")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SUPABASE_DB_URL", "postgres://db.example/postgres")
	t.Setenv("TOGETHER_API_KEY", "tk")
	t.Setenv("LLM_TIMEOUT_MS", "1500")
	t.Setenv("LLM_INCLUDE_HISTORY", "true")
	t.Setenv("HISTORY_LIMIT", "not-a-number")
	t.Setenv("AGENT_MODE", "mock")

	cfg := FromEnv()
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "secret", cfg.APIBearerToken)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "postgres://db.example/postgres", cfg.DatabaseURL)
	assert.Equal(t, "tk", cfg.LLMAPIKey)
	assert.Equal(t, 1500*time.Millisecond, cfg.LLMTimeout)
	assert.True(t, cfg.LLMIncludeHistory)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, "MOCK", cfg.Mode)
}
