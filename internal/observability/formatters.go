// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/voice-variants/internal/guidelines"
	"github.com/jonathan/voice-variants/internal/rewriting"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// innerWidth is the printable width inside a box
	innerWidth = boxWidth - 4
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Long lines are wrapped.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, wrapped := range wrap(line, innerWidth) {
			fmt.Fprintf(p.out, "│ %s │\n", pad(wrapped))
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-pads s with spaces to innerWidth runes
func pad(s string) string {
	if n := utf8.RuneCountInString(s); n < innerWidth {
		return s + strings.Repeat(" ", innerWidth-n)
	}
	return s
}

// wrap splits line on word boundaries so that no piece exceeds width runes.
// Leading indentation is repeated on continuation lines.
func wrap(line string, width int) []string {
	if utf8.RuneCountInString(line) <= width {
		return []string{line}
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
	var lines []string
	current := ""
	for _, word := range strings.Fields(line) {
		for utf8.RuneCountInString(indent+word) > width {
			// hard-split words longer than a full line
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			runes := []rune(word)
			cut := width - utf8.RuneCountInString(indent)
			lines = append(lines, indent+string(runes[:cut]))
			word = string(runes[cut:])
		}

		switch {
		case current == "":
			current = indent + word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = indent + word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// PrintRequest outputs the generation request as understood after defaults.
func (p *Printer) PrintRequest(pc rewriting.PromptContext) {
	intent := pc.Intent
	if intent == "" {
		intent = "(none)"
	}
	audience := pc.Audience
	if audience == "" {
		audience = guidelines.DefaultAudience
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Text:      %q\n", pc.OriginalText))
	sb.WriteString(fmt.Sprintf("Intent:    %s\n", intent))
	sb.WriteString(fmt.Sprintf("Audience:  %s\n", audience))
	if pc.Instructions != "" {
		sb.WriteString(fmt.Sprintf("Notes:     %s\n", pc.Instructions))
	}

	p.printBox("REQUEST", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGuidelines outputs the rules and tone pattern that will steer generation.
func (p *Printer) PrintGuidelines(store *guidelines.Store, pc rewriting.PromptContext) {
	if store == nil {
		return
	}

	var sb strings.Builder
	if tone, ok := store.TonePattern(pc.Audience); ok {
		sb.WriteString(fmt.Sprintf("Tone:  %s (%s)\n\n", tone.Name, tone.ID))
	}

	sb.WriteString("Voice:\n")
	for _, principle := range store.RelevantVoicePrinciples() {
		sb.WriteString(fmt.Sprintf("  • %s\n", principle.Name))
	}

	rules := store.RelevantRules(pc.Intent)
	if tags := store.IntentTags(pc.Intent); len(tags) > 0 {
		sb.WriteString(fmt.Sprintf("\nTags:  %s\n", strings.Join(tags, ", ")))
	}
	sb.WriteString(fmt.Sprintf("\nRules (%d):\n", len(rules)))
	for _, rule := range rules {
		sb.WriteString(fmt.Sprintf("  • %s\n", rule.ID))
	}

	p.printBox("GUIDELINES APPLIED", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVariants outputs each variant with its rationale and applied rules.
func (p *Printer) PrintVariants(result *rewriting.Result) {
	if result == nil || len(result.Variants) == 0 {
		return
	}

	var sb strings.Builder
	for i, variant := range result.Variants {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, variant.Text))
		sb.WriteString(fmt.Sprintf("    Why: %s\n", variant.Rationale))
		sb.WriteString(fmt.Sprintf("    [%s]\n", strings.Join(variant.AppliedRules, ", ")))
		if i < len(result.Variants)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("VARIANTS (%d)", len(result.Variants)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPlaceholderCheck outputs which variants lost placeholders from the original text.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPlaceholderCheck(missing map[int][]string) {
	if len(missing) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", pad("✅ ALL PLACEHOLDERS PRESERVED"))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	indexes := make([]int, 0, len(missing))
	for i := range missing {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	var sb strings.Builder
	for n, i := range indexes {
		sb.WriteString(fmt.Sprintf("⚠ Variant #%d\n", i+1))
		sb.WriteString(fmt.Sprintf("  missing %s\n", strings.Join(missing[i], ", ")))
		if n < len(indexes)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("DROPPED PLACEHOLDERS", strings.TrimSuffix(sb.String(), "\n"))
}
