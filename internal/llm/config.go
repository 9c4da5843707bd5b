// Package llm provides the transport to the external text-generation service.
// It hides provider SDKs behind a single Client interface that returns raw JSON text.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderOpenAI is the OpenAI chat completions provider
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Generation defaults
const (
	// DefaultTemperature favors diverse variants over deterministic output
	DefaultTemperature float32 = 0.7
	// DefaultMaxTokens caps the size of a single reply
	DefaultMaxTokens = 1500
)

// Config holds the model configuration for a client
type Config struct {
	Provider    Provider
	Model       string
	Temperature float32
	MaxTokens   int
	// BaseURL overrides the provider endpoint (OpenAI-compatible proxies, tests)
	BaseURL string
}

// DefaultConfig returns the default configuration (OpenAI)
func DefaultConfig() *Config {
	return DefaultOpenAIConfig()
}

// DefaultOpenAIConfig returns the default OpenAI configuration
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider:    ProviderOpenAI,
		Model:       "gpt-4o-mini",
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-flash",
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// ConfigFor returns the default configuration for a provider.
// Unknown providers get the OpenAI defaults.
func ConfigFor(provider Provider) *Config {
	switch provider {
	case ProviderGemini:
		return DefaultGeminiConfig()
	default:
		return DefaultOpenAIConfig()
	}
}

// WithModel returns a copy of the Config using model
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	newConfig.Model = model
	return &newConfig
}

// WithBaseURL returns a copy of the Config using baseURL
func (c *Config) WithBaseURL(baseURL string) *Config {
	newConfig := *c
	newConfig.BaseURL = baseURL
	return &newConfig
}

// Valid reports whether provider is supported
func (p Provider) Valid() bool {
	return p == ProviderOpenAI || p == ProviderGemini
}
