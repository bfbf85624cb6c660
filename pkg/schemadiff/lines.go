package schemadiff

import (
	"strings"

	"github.com/creachadair/mds/slice"
)

// splitLines splits s after each newline. Lines keep their terminator, so a final line
// without one differs from the same text followed by a newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// lineDiff renders the edit script from before to after, one prefixed line per input line,
// in edit order. Terminators are not printed; lines are joined with "\n".
func lineDiff(before, after string) string {
	lhs, rhs := splitLines(before), splitLines(after)

	var out []string
	emit := func(prefix string, lines []string) {
		for _, line := range lines {
			out = append(out, prefix+strings.TrimSuffix(line, "\n"))
		}
	}

	edits := slice.EditScript(lhs, rhs)
	if len(edits) == 0 {
		emit(" ", lhs)
	}

	for _, e := range edits {
		switch e.Op {
		case slice.OpEmit:
			emit(" ", e.X)
		case slice.OpDrop:
			emit("-", e.X)
		case slice.OpCopy:
			emit("+", e.Y)
		case slice.OpReplace:
			emit("-", e.X)
			emit("+", e.Y)
		}
	}

	return strings.Join(out, "\n")
}
