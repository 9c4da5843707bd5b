package llm

import "strings"

// CleanJSONBlock strips a markdown fence and a leading language label from a
// reply so the rest can be validated as JSON. Unfenced text loses only a bare
// "json" label line.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	fenced := strings.HasPrefix(text, "```")
	if fenced {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	if label, rest, ok := strings.Cut(text, "\n"); ok && isLanguageLabel(label, fenced) {
		text = rest
	} else if fenced && len(text) >= 4 && strings.EqualFold(text[:4], "json") {
		text = text[4:]
	}

	return strings.TrimSpace(text)
}

// isLanguageLabel reports whether the first line names a language instead of
// starting the payload
func isLanguageLabel(line string, fenced bool) bool {
	line = strings.TrimSpace(line)
	if !fenced {
		return strings.EqualFold(line, "json")
	}
	return len(line) < 20 && !strings.ContainsAny(line, " {[\"")
}
