// Package rewriting turns a piece of UI text into style-guide compliant variants.
// It composes the instruction sent to the generation service and enforces the
// contract on what comes back.
package rewriting

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/voice-variants/internal/guidelines"
	"github.com/jonathan/voice-variants/internal/prompts"
)

const (
	// DefaultVariantCount is the number of variants requested unless configured otherwise
	DefaultVariantCount = 3
	// fallbackIntentLabel is shown in the prompt when no intent was given
	fallbackIntentLabel = "general UI text"
)

var (
	validate = validator.New()

	systemPrompt    = prompts.MustGet(prompts.GenerationFile, "system")
	variantsPrompt  = prompts.MustTemplate(prompts.GenerationFile, "variants")
	exampleOrdinals = []string{"first", "second", "third", "fourth", "fifth"}
)

// PromptContext is the per-request input to prompt composition
type PromptContext struct {
	OriginalText string `json:"originalText" validate:"required"`
	Intent       string `json:"intent,omitempty"`
	Audience     string `json:"audience,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// Validate checks required fields, returning an InputError on failure.
func (pc PromptContext) Validate() error {
	if err := validate.Struct(pc); err != nil {
		return &InputError{Field: "originalText", Message: "is required"}
	}
	return nil
}

// promptData is the data handed to the variants template
type promptData struct {
	Count           int
	OriginalText    string
	Intent          string
	Audience        string
	Instructions    string
	VoicePrinciples string
	ToneName        string
	Tone            string
	Rules           string
	OutputExample   string
}

// SystemPrompt returns the fixed role statement sent with every request.
func SystemPrompt() string {
	return systemPrompt
}

// BuildPrompt renders the instruction for the generation service.
// count is the exact number of variants the reply must contain.
// Empty intent and audience fall through to the unknown-key paths of the guideline lookups.
func BuildPrompt(store *guidelines.Store, pc PromptContext, count int) (string, error) {
	if count < 1 {
		return "", fmt.Errorf("variant count must be positive, got %d", count)
	}

	data := promptData{
		Count:           count,
		OriginalText:    pc.OriginalText,
		Intent:          pc.Intent,
		Audience:        pc.Audience,
		Instructions:    pc.Instructions,
		VoicePrinciples: guidelines.FormatVoicePrinciples(store.RelevantVoicePrinciples()),
		Rules:           guidelines.FormatRules(store.RelevantRules(pc.Intent)),
		OutputExample:   outputExample(count),
	}
	if data.Intent == "" {
		data.Intent = fallbackIntentLabel
	}
	if data.Audience == "" {
		data.Audience = guidelines.DefaultAudience
	}
	if tone, ok := store.TonePattern(pc.Audience); ok {
		data.ToneName = tone.Name
		data.Tone = guidelines.FormatTonePattern(tone)
	}

	return prompts.Render(variantsPrompt, data)
}

// outputExample renders the JSON skeleton shown to the model, with count entries.
func outputExample(count int) string {
	example := Result{Variants: make([]Variant, 0, count)}
	for i := 0; i < count; i++ {
		if i == 0 {
			example.Variants = append(example.Variants, Variant{
				Text:         "the generated text variant here",
				Rationale:    "explain why this variant follows the voice and tone guidelines",
				AppliedRules: []string{"rule-id-1", "rule-id-2", "rule-id-3"},
			})
			continue
		}
		ordinal := fmt.Sprintf("variant %d", i+1)
		if i < len(exampleOrdinals) {
			ordinal = exampleOrdinals[i] + " variant"
		}
		example.Variants = append(example.Variants, Variant{
			Text:         ordinal + " here",
			Rationale:    "rationale for " + ordinal,
			AppliedRules: []string{"rule-id-1", "rule-id-2"},
		})
	}

	out, err := json.MarshalIndent(example, "", "  ")
	if err != nil {
		// Result only holds strings
		panic(fmt.Sprintf("failed to render output example: %v", err))
	}
	return string(out)
}
