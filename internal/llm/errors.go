package llm

import (
	"errors"
	"fmt"
)

// ErrNoContent is returned when the service replied successfully but without any text
var ErrNoContent = errors.New("no content in response")

// StatusError is returned when the service answered with a non-success status.
// Body carries the upstream error body for diagnosis.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("generation service error (%d): %s", e.StatusCode, e.Body)
}
