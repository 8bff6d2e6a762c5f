package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"FINTRACK_LOG_LEVEL",
		"FINTRACK_LOG_FORMAT",
		"FINTRACK_AI_PROVIDER",
		"FINTRACK_AI_MODEL",
		"FINTRACK_AI_BASE_URL",
		"FINTRACK_AI_TIMEOUT_SECONDS",
		"FINTRACK_USER_ID",
		"OPENAI_API_KEY",
		"GEMINI_API_KEY",
		"DATABASE_URL",
	}
	for _, envVar := range envVars {
		require.NoError(t, os.Unsetenv(envVar))
	}
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "openai", config.AI.Provider)
	assert.Equal(t, "gpt-4o-mini", config.AI.Model)
	assert.Equal(t, 30, config.AI.TimeoutSeconds)
	assert.Equal(t, "local", config.User.ID)
	assert.Empty(t, config.AI.APIKey)
	assert.Empty(t, config.Database.URL)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	t.Setenv("FINTRACK_LOG_LEVEL", "debug")
	t.Setenv("FINTRACK_LOG_FORMAT", "json")
	t.Setenv("FINTRACK_AI_PROVIDER", "gemini")
	t.Setenv("FINTRACK_AI_MODEL", "gemini-2.0-flash")
	t.Setenv("FINTRACK_USER_ID", "alice")
	t.Setenv("GEMINI_API_KEY", "test-api-key")
	t.Setenv("DATABASE_URL", "postgres://localhost/fintrack")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "gemini", config.AI.Provider)
	assert.Equal(t, "gemini-2.0-flash", config.AI.Model)
	assert.Equal(t, "alice", config.User.ID)
	assert.Equal(t, "test-api-key", config.AI.APIKey)
	assert.Equal(t, "postgres://localhost/fintrack", config.Database.URL)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
  format: "json"
ai:
  provider: "gemini"
  model: "gemini-1.5-pro"
  timeout_seconds: 60
user:
  id: "bob"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0644))

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Chdir(originalDir))
	}()
	require.NoError(t, os.Chdir(tempDir))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "gemini", config.AI.Provider)
	assert.Equal(t, "gemini-1.5-pro", config.AI.Model)
	assert.Equal(t, 60, config.AI.TimeoutSeconds)
	assert.Equal(t, "bob", config.User.ID)
}

func TestInitializeConfig_EnvOverridesFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
ai:
  model: "gpt-4o"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0644))

	t.Setenv("FINTRACK_LOG_LEVEL", "error")
	t.Setenv("OPENAI_API_KEY", "env-api-key")

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Chdir(originalDir))
	}()
	require.NoError(t, os.Chdir(tempDir))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level, "env var wins over file")
	assert.Equal(t, "gpt-4o", config.AI.Model, "file value survives where no env var is set")
	assert.Equal(t, "env-api-key", config.AI.APIKey)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.Log.Level = "info"
		c.Log.Format = "text"
		c.AI.Provider = "openai"
		c.AI.TimeoutSeconds = 30
		return c
	}

	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "loud" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "xml" },
			expectError:  "invalid log format",
		},
		{
			name:         "unknown provider",
			modifyConfig: func(c *Config) { c.AI.Provider = "anthropic" },
			expectError:  "invalid AI provider",
		},
		{
			name:         "timeout too small",
			modifyConfig: func(c *Config) { c.AI.TimeoutSeconds = 0 },
			expectError:  "timeout_seconds",
		},
		{
			name:         "timeout too large",
			modifyConfig: func(c *Config) { c.AI.TimeoutSeconds = 301 },
			expectError:  "timeout_seconds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid()
			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}
