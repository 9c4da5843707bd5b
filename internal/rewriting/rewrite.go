package rewriting

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/voice-variants/internal/guidelines"
	"github.com/jonathan/voice-variants/internal/llm"
)

// DefaultTimeout bounds a single call to the generation service
const DefaultTimeout = 30 * time.Second

// Options configures a Generator. Zero values use defaults.
type Options struct {
	// Count is the exact number of variants requested (2 or 3 in practice)
	Count int
	// Timeout is the deadline for the outbound call
	Timeout time.Duration
	// LLM selects provider, model and sampling settings
	LLM *llm.Config
	// NewClient builds the transport for each request
	NewClient llm.Factory
	Logger    *zap.Logger
}

// Generator runs compose → generate → validate for one request at a time.
// It holds no per-request state and is safe for concurrent use.
type Generator struct {
	store     *guidelines.Store
	count     int
	timeout   time.Duration
	llmConfig *llm.Config
	newClient llm.Factory
	logger    *zap.Logger
}

// NewGenerator creates a Generator over a loaded guideline store
func NewGenerator(store *guidelines.Store, opts Options) *Generator {
	g := &Generator{
		store:     store,
		count:     opts.Count,
		timeout:   opts.Timeout,
		llmConfig: opts.LLM,
		newClient: opts.NewClient,
		logger:    opts.Logger,
	}
	if g.count <= 0 {
		g.count = DefaultVariantCount
	}
	if g.timeout <= 0 {
		g.timeout = DefaultTimeout
	}
	if g.llmConfig == nil {
		g.llmConfig = llm.DefaultConfig()
	}
	if g.newClient == nil {
		g.newClient = llm.NewClient
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	return g
}

// Count returns the number of variants every successful result holds
func (g *Generator) Count() int {
	return g.count
}

// Prompt validates the context and returns the prompt that would be sent
func (g *Generator) Prompt(pc PromptContext) (string, error) {
	if err := pc.Validate(); err != nil {
		return "", err
	}
	return BuildPrompt(g.store, pc, g.count)
}

// GenerateVariants produces exactly Count() variants for the given context.
//
// Input is checked before the credential, and both before any outbound call.
// The service is called once; any failure is terminal for the request.
func (g *Generator) GenerateVariants(ctx context.Context, pc PromptContext, apiKey string) (*Result, error) {
	if err := pc.Validate(); err != nil {
		return nil, err
	}

	if apiKey == "" {
		g.logger.Error("server configuration error",
			zap.String("config_error", "missing_api_key"),
			zap.String("provider", string(g.llmConfig.Provider)))
		return nil, &ConfigurationError{Message: "generation service credential is not configured"}
	}

	prompt, err := BuildPrompt(g.store, pc, g.count)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	client, err := g.newClient(ctx, g.llmConfig, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	start := time.Now()
	raw, err := client.GenerateJSON(ctx, SystemPrompt(), prompt)
	if err != nil {
		return nil, g.classify(err)
	}

	g.logger.Debug("generation service replied",
		zap.String("model", client.Model()),
		zap.Duration("duration", time.Since(start)),
		zap.Int("bytes", len(raw)))

	result, err := ParseVariants(raw, g.count)
	if err != nil {
		g.logger.Warn("generation response rejected", zap.Error(err), zap.String("raw", raw))
		return nil, err
	}

	missing := MissingPlaceholders(pc.OriginalText, result.Variants)
	for _, i := range slices.Sorted(maps.Keys(missing)) {
		g.logger.Warn("variant dropped placeholders",
			zap.Int("variant", i+1),
			zap.Strings("placeholders", missing[i]))
	}

	return result, nil
}

// classify maps transport errors onto the error taxonomy
func (g *Generator) classify(err error) error {
	var statusErr *llm.StatusError
	switch {
	case errors.As(err, &statusErr):
		return &ServiceError{StatusCode: statusErr.StatusCode, Body: statusErr.Body, Cause: err}
	case errors.Is(err, llm.ErrNoContent):
		return &ValidationError{Message: err.Error(), Raw: ""}
	case errors.Is(err, context.DeadlineExceeded):
		return &ServiceError{
			StatusCode: http.StatusGatewayTimeout,
			Body:       fmt.Sprintf("no reply within %s", g.timeout),
			Cause:      err,
		}
	default:
		return &ServiceError{StatusCode: http.StatusBadGateway, Body: err.Error(), Cause: err}
	}
}
