package rewriting

import (
	"regexp"
	"strings"
)

// placeholderPattern matches {{name}} and {name} tokens
var placeholderPattern = regexp.MustCompile(`\{\{[^{}]+\}\}|\{[^{}]+\}`)

// extractPlaceholders returns the distinct placeholder tokens in text, in order of appearance
func extractPlaceholders(text string) []string {
	matches := placeholderPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	var tokens []string
	seen := make(map[string]bool)
	for _, m := range matches {
		if !seen[m] {
			tokens = append(tokens, m)
			seen[m] = true
		}
	}
	return tokens
}

// MissingPlaceholders reports, per variant index, the placeholder tokens of the
// original text that the variant does not reproduce verbatim.
// Variants that keep every token are absent from the map.
func MissingPlaceholders(original string, variants []Variant) map[int][]string {
	tokens := extractPlaceholders(original)
	if len(tokens) == 0 {
		return map[int][]string{}
	}

	result := make(map[int][]string)
	for i, v := range variants {
		var missing []string
		for _, token := range tokens {
			if !strings.Contains(v.Text, token) {
				missing = append(missing, token)
			}
		}
		if len(missing) > 0 {
			result[i] = missing
		}
	}
	return result
}
