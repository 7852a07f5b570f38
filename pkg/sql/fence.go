package sql

import "strings"

const fenceMarker = "```"

// StripCodeFence removes a single wrapping markdown code fence from text,
// as model responses often arrive as:
//
//	```sql
//	SELECT ...
//	```
//
// The stripping is line-anchored: at most one leading marker line (with
// any language tag) and one trailing marker line are removed, and
// interior content is never altered. Text without fence markers passes
// through with only surrounding whitespace trimmed. This is a pure text
// transform, kept separate from the parser-based validator.
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, fenceMarker) {
		return trimmed
	}

	lines := strings.Split(trimmed, "\n")
	if strings.HasPrefix(strings.TrimSpace(lines[0]), fenceMarker) {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == fenceMarker {
		lines = lines[:len(lines)-1]
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
