package tui

import (
	"strings"
	"unicode/utf8"
)

// maxInputLen caps form fields.
const maxInputLen = 200

// editRune processes a keystroke for inline text editing. Backspace is
// rune-aware; non-printable keys leave the text unchanged.
func editRune(text string, key string) string {
	switch key {
	case "backspace":
		if len(text) > 0 {
			runes := []rune(text)
			return string(runes[:len(runes)-1])
		}
		return text
	default:
		if utf8.RuneCountInString(key) == 1 {
			if utf8.RuneCountInString(text) >= maxInputLen {
				return text
			}
			return text + key
		}
		return text
	}
}

// maskSecret renders a password field as bullets.
func maskSecret(s string) string {
	return strings.Repeat("•", utf8.RuneCountInString(s))
}

// splitCSV turns "a, b,c" into ["a","b","c"], skipping empties.
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
