package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_VariantsValid(t *testing.T) {
	doc := `{"variants":[{"text":"Upgrade now","rationale":"Short CTA","appliedRules":["rule-short_ctas"]}]}`

	err := Validate(Variants, []byte(doc))
	assert.NoError(t, err)
}

func TestValidate_VariantsMissingField(t *testing.T) {
	doc := `{"variants":[{"text":"Upgrade now","appliedRules":["rule-short_ctas"]}]}`

	err := Validate(Variants, []byte(doc))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
	assert.Contains(t, validationErr.Summary(), "rationale")
}

func TestValidate_VariantsWrongType(t *testing.T) {
	doc := `{"variants":"not a list"}`

	err := Validate(Variants, []byte(doc))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidate_EmptyAppliedRules(t *testing.T) {
	doc := `{"variants":[{"text":"Upgrade now","rationale":"Short CTA","appliedRules":[]}]}`

	err := Validate(Variants, []byte(doc))
	require.Error(t, err)
}

func TestValidate_NotJSON(t *testing.T) {
	err := Validate(Variants, []byte("Here are your variants!"))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("missing.schema.json", []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "missing.schema.json")
}

func TestValidate_CatalogRejectsMissingRules(t *testing.T) {
	doc := `{"voice_principles":[],"tone_patterns":[]}`

	err := Validate(Catalog, []byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rules")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "variants.0", Message: "rationale is required"},
		{Field: "(root)", Message: "variants is required"},
	}}

	assert.Contains(t, err.Error(), "1. variants.0: rationale is required")
	assert.Contains(t, err.Error(), "2. (root): variants is required")
	assert.Equal(t, "variants.0: rationale is required; (root): variants is required", err.Summary())
}
