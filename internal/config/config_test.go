package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/voice-variants/internal/llm"
)

// clearEnv unsets every variable Load reads
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "VARIANTS_PROVIDER", "VARIANTS_MODEL", "VARIANTS_BASE_URL",
		"VARIANTS_COUNT", "VARIANTS_TIMEOUT", "OPENAI_API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, 3, cfg.VariantCount)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.APIKey)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
port: 9090
provider: gemini
model: gemini-2.5-pro
variant_count: 2
request_timeout: 10s
verbose: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 2, cfg.VariantCount)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.Verbose)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "variant_count: 2\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.VariantCount)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "openai", cfg.Provider)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "port: 9090\nvariant_count: 2\n")
	t.Setenv("PORT", "7070")
	t.Setenv("VARIANTS_COUNT", "3")
	t.Setenv("VARIANTS_TIMEOUT", "5s")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 3, cfg.VariantCount)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "sk-test", cfg.APIKey)
}

func TestLoad_CredentialFollowsProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("VARIANTS_PROVIDER", "gemini")
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "GEMINI_API_KEY", cfg.APIKeyEnv())
	assert.Equal(t, "gemini-key", cfg.APIKey)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "port: [not a number")

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "two variants", mutate: func(c *Config) { c.VariantCount = 2 }},
		{name: "four variants", mutate: func(c *Config) { c.VariantCount = 4 }, wantErr: "variant_count"},
		{name: "unknown provider", mutate: func(c *Config) { c.Provider = "anthropic" }, wantErr: "unknown provider"},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }, wantErr: "request_timeout"},
		{name: "bad port", mutate: func(c *Config) { c.Port = 0 }, wantErr: "port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLLMConfig(t *testing.T) {
	cfg := Default()
	llmConfig := cfg.LLMConfig()
	assert.Equal(t, llm.ProviderOpenAI, llmConfig.Provider)
	assert.Equal(t, "gpt-4o-mini", llmConfig.Model)

	cfg.Provider = "gemini"
	cfg.Model = "gemini-2.5-pro"
	cfg.BaseURL = "https://proxy.example.com"
	llmConfig = cfg.LLMConfig()
	assert.Equal(t, llm.ProviderGemini, llmConfig.Provider)
	assert.Equal(t, "gemini-2.5-pro", llmConfig.Model)
	assert.Equal(t, "https://proxy.example.com", llmConfig.BaseURL)
}
