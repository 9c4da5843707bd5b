package guidelines

import (
	"fmt"
	"strings"
)

// FormatRules renders rules as a numbered block for prompt inclusion.
func FormatRules(rules []Rule) string {
	blocks := make([]string, 0, len(rules))
	for i, rule := range rules {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, rule.Description, rule.ID))
		sb.WriteString(fmt.Sprintf("   DO: %s\n", rule.Do))
		sb.WriteString(fmt.Sprintf("   DON'T: %s\n", rule.Dont))
		sb.WriteString(fmt.Sprintf("   ✓ Good: %q\n", rule.Example.Good))
		sb.WriteString(fmt.Sprintf("   ✗ Bad: %q\n", rule.Example.Bad))
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n")
}

// FormatVoicePrinciples renders principles as an unnumbered bullet block for prompt inclusion.
func FormatVoicePrinciples(principles []VoicePrinciple) string {
	blocks := make([]string, 0, len(principles))
	for _, p := range principles {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("- %s (%s): %s\n", p.Name, p.ID, p.Description))
		sb.WriteString(fmt.Sprintf("  ✓ Good: %q\n", p.Examples.Good))
		sb.WriteString(fmt.Sprintf("  ✗ Bad: %q\n", p.Examples.Bad))
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n")
}

// FormatTonePattern renders a tone pattern with its before/after example.
func FormatTonePattern(tone TonePattern) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Use for: %s\n", tone.UseFor))
	sb.WriteString(fmt.Sprintf("Description: %s\n", tone.Description))
	sb.WriteString(fmt.Sprintf("Style: %s\n", tone.Style))
	sb.WriteString("\nExample transformation:\n")
	sb.WriteString(fmt.Sprintf("Before: %q\n", tone.Example.Before))
	sb.WriteString(fmt.Sprintf("After: %q\n", tone.Example.After))
	return sb.String()
}
