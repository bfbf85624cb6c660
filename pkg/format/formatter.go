package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/snowdiff/pkg/parser"
)

type (
	// FormatterOptions controls formatting behavior
	FormatterOptions struct {
		// IndentSize specifies the number of spaces for each indent level
		IndentSize int
		// UppercaseKeywords whether to uppercase SQL keywords
		UppercaseKeywords bool
		// AlignColumns whether to align column definitions in tables and views
		AlignColumns bool
	}

	// Formatter handles SQL statement formatting with configurable options
	Formatter struct {
		options FormatterOptions
	}
)

// Defaults are the standard formatting options.
var Defaults = FormatterOptions{
	IndentSize:        4,
	UppercaseKeywords: true,
	AlignColumns:      true,
}

// New creates a new Formatter with the specified options. A non-positive indent
// size falls back to the default.
func New(options FormatterOptions) *Formatter {
	if options.IndentSize <= 0 {
		options.IndentSize = Defaults.IndentSize
	}

	return &Formatter{options: options}
}

// Format writes each statement to w using the given options. Statements are
// terminated with a semicolon and separated by a blank line. Nil statements are
// skipped.
func Format(w io.Writer, options FormatterOptions, stmts ...*parser.Statement) error {
	return New(options).Format(w, stmts...)
}

// Format writes each statement to w. See the package level Format.
func (f *Formatter) Format(w io.Writer, stmts ...*parser.Statement) error {
	first := true
	for _, stmt := range stmts {
		if stmt == nil {
			continue
		}

		if !first {
			if _, err := io.WriteString(w, "\n\n"); err != nil {
				return errors.Wrap(err, "failed to write statement separator")
			}
		}
		first = false

		if _, err := io.WriteString(w, f.Statement(stmt)); err != nil {
			return errors.Wrap(err, "failed to write statement")
		}
	}

	return nil
}

// Statement formats a single statement, including its terminating semicolon.
func (f *Formatter) Statement(stmt *parser.Statement) string {
	if stmt == nil {
		return ""
	}

	switch stmt.Kind() {
	case parser.KindCreateTable:
		return f.createTable(stmt.Create) + ";"
	case parser.KindCreateView:
		return f.createView(stmt.Create) + ";"
	}

	if stmt.Create != nil {
		return strings.Join(append(f.createHeader(stmt.Create), Tokens(stmt.Create.Other)), " ") + ";"
	}

	return Tokens(stmt.Other.Tokens) + ";"
}

// keyword formats a keyword according to the formatter options
func (f *Formatter) keyword(kw string) string {
	if f.options.UppercaseKeywords {
		return strings.ToUpper(kw)
	}
	return strings.ToLower(kw)
}

// indent returns the specified number of indent levels as spaces
func (f *Formatter) indent(level int) string {
	return strings.Repeat(" ", level*f.options.IndentSize)
}

// ObjectName joins the parts of a name with dots, keeping quotes as written.
func ObjectName(name parser.ObjectName) string {
	return strings.Join(name.Parts, ".")
}

// createHeader returns CREATE [OR REPLACE] [modifiers...]
func (f *Formatter) createHeader(stmt *parser.CreateStmt) []string {
	parts := []string{f.keyword("CREATE")}
	if stmt.Or != nil {
		parts = append(parts, f.keyword("OR "+*stmt.Or))
	}

	for _, mod := range stmt.Modifiers {
		parts = append(parts, f.keyword(mod))
	}

	return parts
}
