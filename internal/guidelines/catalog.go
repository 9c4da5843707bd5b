// Package guidelines provides read-only views over the voice and tone guideline catalog.
// The catalog is embedded at compile time, validated against its JSON schema and loaded once at startup.
package guidelines

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jonathan/voice-variants/internal/schemas"
)

//go:embed catalog.json
var catalogJSON []byte

// GoodBad holds a positive and a negative example
type GoodBad struct {
	Good string `json:"good"`
	Bad  string `json:"bad"`
}

// BeforeAfter holds an example transformation
type BeforeAfter struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// VoicePrinciple is a global writing value applied to all output
type VoicePrinciple struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Examples    GoodBad `json:"examples"`
}

// TonePattern describes how to write for one audience segment
type TonePattern struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	UseFor      string      `json:"use_for"`
	Description string      `json:"description"`
	Style       string      `json:"style"`
	Example     BeforeAfter `json:"example"`
}

// Rule is a concrete, checkable writing constraint
type Rule struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Do          string  `json:"do"`
	Dont        string  `json:"dont"`
	Example     GoodBad `json:"example"`
}

// Catalog is the full guideline document
type Catalog struct {
	Version         string           `json:"version,omitempty"`
	Name            string           `json:"name,omitempty"`
	VoicePrinciples []VoicePrinciple `json:"voice_principles"`
	TonePatterns    []TonePattern    `json:"tone_patterns"`
	Rules           []Rule           `json:"rules"`
}

// ParseCatalog validates raw catalog JSON against the catalog schema and decodes it.
func ParseCatalog(data []byte) (*Catalog, error) {
	if err := schemas.Validate(schemas.Catalog, data); err != nil {
		return nil, fmt.Errorf("invalid guideline catalog: %w", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse guideline catalog: %w", err)
	}

	return &catalog, nil
}
