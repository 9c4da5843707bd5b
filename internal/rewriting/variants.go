package rewriting

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/voice-variants/internal/schemas"
)

// Variant is one rewritten candidate returned by the generation service
type Variant struct {
	Text         string   `json:"text"`
	Rationale    string   `json:"rationale"`
	AppliedRules []string `json:"appliedRules"`
}

// Result is the output contract of a successful generation
type Result struct {
	Variants []Variant `json:"variants"`

	// raw is the validated reply, encoded as-is so fields beyond the
	// contract reach the caller unmodified
	raw json.RawMessage
}

// MarshalJSON returns the validated reply when there is one
func (r Result) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	type plain Result
	return json.Marshal(plain(r))
}

// ParseVariants decodes and validates a raw reply.
// The reply must hold exactly count variants, each with non-empty text, rationale
// and appliedRules. There is no partial acceptance.
func ParseVariants(raw string, count int) (*Result, error) {
	if err := schemas.Validate(schemas.Variants, []byte(raw)); err != nil {
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) {
			return nil, &ValidationError{Message: schemaErr.Summary(), Raw: raw}
		}
		return nil, err
	}

	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, &ValidationError{Message: err.Error(), Raw: raw}
	}

	if len(result.Variants) != count {
		return nil, &ValidationError{
			Message: fmt.Sprintf("expected %d variants, got %d", count, len(result.Variants)),
			Raw:     raw,
		}
	}

	result.raw = json.RawMessage(raw)
	return &result, nil
}
