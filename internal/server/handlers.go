package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/voice-variants/internal/guidelines"
	"github.com/jonathan/voice-variants/internal/rewriting"
)

// maxRequestBytes caps the inbound JSON body
const maxRequestBytes = 64 << 10

// GenerateRequest represents the request body for /api/generate-variants
type GenerateRequest struct {
	OriginalText string `json:"originalText"`
	Intent       string `json:"intent,omitempty"`
	Audience     string `json:"audience,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

func (req GenerateRequest) promptContext() rewriting.PromptContext {
	return rewriting.PromptContext{
		OriginalText: req.OriginalText,
		Intent:       req.Intent,
		Audience:     req.Audience,
		Instructions: req.Instructions,
	}
}

// GuidelinesResponse represents the response for /api/guidelines
type GuidelinesResponse struct {
	Catalog   guidelines.Catalog `json:"catalog"`
	Intents   []string           `json:"intents"`
	Audiences []string           `json:"audiences"`
	Variants  int                `json:"variants"`
}

// handleGenerateVariants runs one generation for the request body
func (s *Server) handleGenerateVariants(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.generator.GenerateVariants(r.Context(), req.promptContext(), s.apiKey)
	if err != nil {
		status := HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			s.requestLogger(r).Error("error generating variants", zap.Int("status", status), zap.Error(err))
		}
		s.jsonResponse(w, status, errorBody(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGuidelines returns the loaded catalog and the accepted intent and audience keys
func (s *Server) handleGuidelines(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, GuidelinesResponse{
		Catalog:   s.store.Catalog(),
		Intents:   guidelines.Intents(),
		Audiences: guidelines.Audiences(),
		Variants:  s.generator.Count(),
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", "POST, OPTIONS")
	s.errorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.errorResponse(w, http.StatusNotFound, "Not found")
}
