package format

import (
	"strings"

	"github.com/pseudomuto/snowdiff/pkg/parser"
)

// spacedBeforeGroup are words that are followed by a space when a parenthesised
// group comes next. Any other word directly before a group is treated as a function
// or type name: current_timestamp(), OBJECT(...).
var spacedBeforeGroup = map[string]bool{
	"AND":        true,
	"AS":         true,
	"BY":         true,
	"CHECK":      true,
	"EXISTS":     true,
	"FROM":       true,
	"IN":         true,
	"JOIN":       true,
	"KEY":        true,
	"NOT":        true,
	"ON":         true,
	"OR":         true,
	"OVER":       true,
	"REFERENCES": true,
	"SELECT":     true,
	"TAG":        true,
	"UNIQUE":     true,
	"USING":      true,
	"VALUES":     true,
	"WHERE":      true,
	"WITH":       true,
}

// Tokens renders a run of statement tokens on a single line.
func Tokens(tokens []*parser.Token) string {
	w := &tokenWriter{}
	for _, tok := range tokens {
		w.token(tok)
	}

	return w.String()
}

func elementTokens(tokens []*parser.ElementToken) string {
	w := &tokenWriter{}
	for _, tok := range tokens {
		w.element(tok)
	}

	return w.String()
}

// tokenWriter joins token values with single spaces, except around dots and casts,
// inside parentheses, before commas and between a name and its argument list. In
// compact mode commas are not followed by a space either.
type tokenWriter struct {
	strings.Builder
	compact bool
	last    string
}

func (w *tokenWriter) write(s string) {
	if w.Len() > 0 && w.needsSpace(s) {
		w.WriteByte(' ')
	}

	w.WriteString(s)
	w.last = s
}

func (w *tokenWriter) needsSpace(next string) bool {
	switch {
	case next == "," || next == ")" || next == "." || next == "::":
		return false
	case w.last == "(" || w.last == "." || w.last == "::":
		return false
	case w.last == ",":
		return !w.compact
	case next == "(":
		return !isWord(w.last) || spacedBeforeGroup[strings.ToUpper(w.last)]
	default:
		return true
	}
}

func (w *tokenWriter) token(tok *parser.Token) {
	if tok.Group != nil {
		w.group(tok.Group)
		return
	}

	w.write(tok.Value)
}

func (w *tokenWriter) element(tok *parser.ElementToken) {
	if tok.Group != nil {
		w.group(tok.Group)
		return
	}

	w.write(tok.Value)
}

func (w *tokenWriter) group(g *parser.Group) {
	w.write("(")
	for _, tok := range g.Tokens {
		w.token(tok)
	}
	w.write(")")
}

func isWord(s string) bool {
	if s == "" {
		return false
	}

	c := s[0]
	return c == '_' || c == '"' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
