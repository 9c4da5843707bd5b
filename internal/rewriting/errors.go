package rewriting

import "fmt"

// InputError represents a missing or empty required request field
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// ConfigurationError represents a deployment problem such as a missing credential
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("server configuration error: %s", e.Message)
}

// ServiceError represents a non-success answer from the generation service.
// Body carries the upstream error body.
type ServiceError struct {
	StatusCode int
	Body       string
	Cause      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("generation service error (%d): %s", e.StatusCode, e.Body)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a reply that does not satisfy the variants contract.
// Raw carries the offending payload.
type ValidationError struct {
	Message string
	Raw     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid generation response: %s; raw payload: %s", e.Message, e.Raw)
}
