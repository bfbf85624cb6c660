package utils

import "strings"

// IsQuoted checks if a string is a single double-quoted identifier.
//
// Examples:
//   - `"table"` -> true
//   - "table" -> false
//   - `"a"."b"` -> false (qualified name, not a single quoted identifier)
//   - "" -> false
func IsQuoted(s string) bool {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return false
	}

	// Inner quotes must come in escaped pairs
	inner := s[1 : len(s)-1]
	return !strings.Contains(strings.ReplaceAll(inner, `""`, ""), `"`)
}

// Unquote removes the surrounding double quotes from an identifier and collapses
// escaped quote pairs. Unquoted identifiers are returned unchanged.
//
// Examples:
//   - `"My Table"` -> "My Table"
//   - `"say ""hi"""` -> `say "hi"`
//   - "events" -> "events"
//   - "" -> ""
func Unquote(s string) string {
	if !IsQuoted(s) {
		return s
	}

	return strings.ReplaceAll(s[1:len(s)-1], `""`, `"`)
}
