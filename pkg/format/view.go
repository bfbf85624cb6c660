package format

import (
	"strings"

	"github.com/pseudomuto/snowdiff/pkg/parser"
)

// createView formats a CREATE VIEW statement. The query starts on its own line.
func (f *Formatter) createView(stmt *parser.CreateStmt) string {
	view := stmt.View

	header := append(f.createHeader(stmt), f.keyword("VIEW"))
	if view.IfNotExists {
		header = append(header, f.keyword("IF NOT EXISTS"))
	}
	header = append(header, ObjectName(view.Name))

	var lines []string
	if len(view.Columns) == 0 {
		lines = append(lines, strings.Join(header, " "))
	} else {
		lines = append(lines, strings.Join(header, " ")+" (")

		width := f.nameWidth(view.Columns)
		for i, col := range view.Columns {
			line := f.indent(1) + f.formatColumn(col, width)
			if i < len(view.Columns)-1 {
				line += ","
			}
			lines = append(lines, line)
		}
		lines = append(lines, ")")
	}

	if len(view.Options) > 0 {
		w := &tokenWriter{}
		for _, opt := range view.Options {
			if opt.Group != nil {
				w.group(opt.Group)
				continue
			}
			w.write(opt.Value)
		}
		lines[len(lines)-1] += " " + w.String()
	}

	lines[len(lines)-1] += " " + f.keyword("AS")
	lines = append(lines, Tokens(view.Query))

	return strings.Join(lines, "\n")
}
