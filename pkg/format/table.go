package format

import (
	"strings"

	"github.com/pseudomuto/snowdiff/pkg/parser"
)

// createTable formats a CREATE TABLE statement with one element per line
func (f *Formatter) createTable(stmt *parser.CreateStmt) string {
	table := stmt.Table

	header := append(f.createHeader(stmt), f.keyword("TABLE"))
	if table.IfNotExists {
		header = append(header, f.keyword("IF NOT EXISTS"))
	}
	header = append(header, ObjectName(table.Name))

	options := Tokens(table.Options)
	if len(table.Elements) == 0 {
		if options != "" {
			header = append(header, options)
		}
		return strings.Join(header, " ")
	}

	lines := []string{strings.Join(header, " ") + " ("}
	elementLines := f.formatTableElements(table.Elements)
	for i, line := range elementLines {
		if i < len(elementLines)-1 {
			line += ","
		}
		lines = append(lines, f.indent(1)+line)
	}

	closing := ")"
	if options != "" {
		closing += " " + options
	}
	lines = append(lines, closing)

	return strings.Join(lines, "\n")
}

// formatTableElements formats table elements with optional alignment
func (f *Formatter) formatTableElements(elements []*parser.TableElement) []string {
	var columns []*parser.Column
	for _, element := range elements {
		if element.Column != nil {
			columns = append(columns, element.Column)
		}
	}
	width := f.nameWidth(columns)

	lines := make([]string, 0, len(elements))
	for _, element := range elements {
		if element.Column != nil {
			lines = append(lines, f.formatColumn(element.Column, width))
		} else if element.Constraint != nil {
			lines = append(lines, f.formatConstraint(element.Constraint))
		}
	}

	return lines
}

// nameWidth is the widest column name when alignment is enabled, 0 otherwise
func (f *Formatter) nameWidth(columns []*parser.Column) int {
	if !f.options.AlignColumns {
		return 0
	}

	var width int
	for _, col := range columns {
		width = max(width, len(col.Name))
	}

	return width
}

// formatColumn formats a single column definition, padding the name to width
func (f *Formatter) formatColumn(col *parser.Column, width int) string {
	parts := []string{col.Name}
	if col.Type != nil {
		if pad := width - len(col.Name); pad > 0 {
			parts[0] += strings.Repeat(" ", pad)
		}
		parts = append(parts, DataType(col.Type))
	}

	if opts := elementTokens(col.Options); opts != "" {
		parts = append(parts, opts)
	}

	return strings.Join(parts, " ")
}

func (f *Formatter) formatConstraint(c *parser.TableConstraint) string {
	var parts []string
	if c.Name != nil {
		parts = append(parts, f.keyword("CONSTRAINT"), *c.Name)
	}

	parts = append(parts, f.keyword(strings.Join(c.Kind, " ")))
	if body := elementTokens(c.Body); body != "" {
		parts = append(parts, body)
	}

	return strings.Join(parts, " ")
}
