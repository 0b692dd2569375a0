package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		// Must set API_KEY or it fails validation
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "test-key", cfg.APIKey)
		assert.Equal(t, ConfigPathRecipes, cfg.RecipesPath)
		assert.Equal(t, time.Second, cfg.IncomeTickInterval)
		assert.Equal(t, 10*time.Second, cfg.EventRollInterval)
		assert.Equal(t, 5*time.Minute, cfg.ShowroomRestockEvery)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("RECIPES_PATH", "custom/recipes.json")
		t.Setenv("INCOME_TICK_INTERVAL", "250ms")
		t.Setenv("EVENT_ROLL_INTERVAL", "30s")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, "custom/recipes.json", cfg.RecipesPath)
		assert.Equal(t, 250*time.Millisecond, cfg.IncomeTickInterval)
		assert.Equal(t, 30*time.Second, cfg.EventRollInterval)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	})

	t.Run("returns error when API_KEY is missing", func(t *testing.T) {
		clearEnvVars(t)
		os.Unsetenv("API_KEY")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_KEY")
		assert.Contains(t, err.Error(), "must be set")
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("falls back to defaults for invalid durations", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("INCOME_TICK_INTERVAL", "not-a-duration")
		t.Setenv("SHOWROOM_RESTOCK_INTERVAL", "100") // no unit

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, time.Second, cfg.IncomeTickInterval)
		assert.Equal(t, 5*time.Minute, cfg.ShowroomRestockEvery)
	})
}

// TestGetEnvAsDuration tests the getEnvAsDuration helper function
func TestGetEnvAsDuration(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_DURATION_VAR")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		assert.Equal(t, 5*time.Minute, result)
	})

	t.Run("parses complex duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "1h30m45s")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		expected := 1*time.Hour + 30*time.Minute + 45*time.Second
		assert.Equal(t, expected, result)
	})

	t.Run("returns default for invalid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "not-a-duration")
		result := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
		assert.Equal(t, 5*time.Minute, result)
	})
}

// TestValidateEnv verifies required-variable checks
func TestValidateEnv(t *testing.T) {
	t.Run("passes with full environment", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
		t.Setenv("API_KEY", "test-key")

		assert.NoError(t, ValidateEnv())
	})

	t.Run("rejects missing schema version", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION")
	})

	t.Run("rejects schema version mismatch", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", "0.9")
		t.Setenv("API_KEY", "test-key")

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mismatch")
	})

	t.Run("warns on example API key", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
		t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		assert.Len(t, warnings, 1)
	})
}

// Helper function to clear environment variables
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR",
		"ENVIRONMENT", "ENV_SCHEMA_VERSION", "RECIPES_PATH",
		"INCOME_TICK_INTERVAL", "EVENT_ROLL_INTERVAL", "SHOWROOM_RESTOCK_INTERVAL",
		"TRUSTED_PROXIES",
	}

	for _, key := range envVars {
		os.Unsetenv(key)
	}
}
