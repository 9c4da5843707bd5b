package ratelimit

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// GeneratePath is the route whose requests each cost one outbound generation call
const GeneratePath = "/api/generate-variants"

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (a trailing "/" enables prefix matching)
	Method string        // HTTP method
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from environment variables.
//
//	RATE_LIMIT_ENABLED           on/off switch (default true)
//	RATE_LIMIT_DEFAULT_LIMIT     requests per window for cheap endpoints (default 600)
//	RATE_LIMIT_DEFAULT_WINDOW    (default 1m)
//	RATE_LIMIT_GENERATE_LIMIT    generation requests per window (default 30)
//	RATE_LIMIT_GENERATE_WINDOW   (default 1m)
//	RATE_LIMIT_GENERATE_BURST    (default 5)
//	RATE_LIMIT_CLEANUP_INTERVAL  idle bucket sweep interval (default 5m)
//	RATE_LIMIT_WHITELIST, RATE_LIMIT_BLACKLIST  comma-separated client IPs
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	generate := EndpointConfig{
		Path:   GeneratePath,
		Method: http.MethodPost,
		Limit:  getEnvInt("RATE_LIMIT_GENERATE_LIMIT", 30),
		Window: getEnvDuration("RATE_LIMIT_GENERATE_WINDOW", time.Minute),
		Burst:  getEnvInt("RATE_LIMIT_GENERATE_BURST", 5),
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		IdleTTL:         time.Hour,
		Whitelist:       parseIPList(getEnvString("RATE_LIMIT_WHITELIST", "")),
		Blacklist:       parseIPList(getEnvString("RATE_LIMIT_BLACKLIST", "")),
		EndpointConfigs: []EndpointConfig{generate},
	}
}

// DefaultEndpointConfigs returns the built-in endpoint limits
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: GeneratePath, Method: http.MethodPost, Limit: 30, Window: time.Minute, Burst: 5},
	}
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

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
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

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
