// Package config provides configuration loading and validation for the variants service.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/voice-variants/internal/llm"
)

// Config represents the service configuration. It can be loaded from a YAML file;
// environment variables override file values. Credentials are only read from the environment.
type Config struct {
	Port           int           `yaml:"port"`            // HTTP listen port
	Provider       string        `yaml:"provider"`        // Generation provider: openai or gemini
	Model          string        `yaml:"model"`           // Model name; provider default when empty
	BaseURL        string        `yaml:"base_url"`        // Provider endpoint override
	VariantCount   int           `yaml:"variant_count"`   // Variants per result: 2 or 3
	RequestTimeout time.Duration `yaml:"request_timeout"` // Deadline for the outbound call
	Verbose        bool          `yaml:"verbose"`         // Debug logging

	// APIKey is the generation service credential. It may be empty at startup;
	// requests then fail with a configuration error.
	APIKey string `yaml:"-"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Port:           8080,
		Provider:       string(llm.ProviderOpenAI),
		VariantCount:   3,
		RequestTimeout: 30 * time.Second,
	}
}

// Load builds the configuration from defaults, an optional YAML file and the environment.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		// Resolve path relative to current directory if not absolute
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	cfg.applyEnv()
	return &cfg, nil
}

// applyEnv overrides fields from environment variables
func (c *Config) applyEnv() {
	c.Port = getEnvInt("PORT", c.Port)
	c.Provider = getEnvString("VARIANTS_PROVIDER", c.Provider)
	c.Model = getEnvString("VARIANTS_MODEL", c.Model)
	c.BaseURL = getEnvString("VARIANTS_BASE_URL", c.BaseURL)
	c.VariantCount = getEnvInt("VARIANTS_COUNT", c.VariantCount)
	c.RequestTimeout = getEnvDuration("VARIANTS_TIMEOUT", c.RequestTimeout)
	c.APIKey = os.Getenv(c.APIKeyEnv())
}

// APIKeyEnv returns the environment variable holding the credential for the configured provider
func (c *Config) APIKeyEnv() string {
	if llm.Provider(c.Provider) == llm.ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "OPENAI_API_KEY"
}

// Validate checks that the configuration has valid values.
// A missing credential is not an error here; it is reported per request.
func (c *Config) Validate() error {
	if !llm.Provider(c.Provider).Valid() {
		return fmt.Errorf("config error: unknown provider %q", c.Provider)
	}
	if c.VariantCount != 2 && c.VariantCount != 3 {
		return fmt.Errorf("config error: 'variant_count' must be 2 or 3, got %d", c.VariantCount)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("config error: 'request_timeout' must be positive")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535")
	}
	return nil
}

// LLMConfig returns the client configuration for the configured provider
func (c *Config) LLMConfig() *llm.Config {
	llmConfig := llm.ConfigFor(llm.Provider(c.Provider))
	if c.Model != "" {
		llmConfig = llmConfig.WithModel(c.Model)
	}
	if c.BaseURL != "" {
		llmConfig = llmConfig.WithBaseURL(c.BaseURL)
	}
	return llmConfig
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
