package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/voice-variants/internal/rewriting"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		inputErr      *rewriting.InputError
		configErr     *rewriting.ConfigurationError
		serviceErr    *rewriting.ServiceError
		validationErr *rewriting.ValidationError
	)

	switch {
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.As(err, &configErr):
		return http.StatusInternalServerError
	case errors.As(err, &serviceErr):
		if serviceErr.StatusCode == http.StatusGatewayTimeout {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	case errors.As(err, &validationErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorBody renders err for the caller. Configuration details stay in the server log.
func errorBody(err error) ErrorResponse {
	var (
		inputErr  *rewriting.InputError
		configErr *rewriting.ConfigurationError
	)

	switch {
	case err == nil:
		return ErrorResponse{Error: "Internal server error"}
	case errors.As(err, &inputErr):
		return ErrorResponse{Error: inputErr.Error()}
	case errors.As(err, &configErr):
		return ErrorResponse{Error: "Server configuration error"}
	default:
		return ErrorResponse{Error: "Failed to generate variants", Details: err.Error()}
	}
}
