package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/pseudomuto/snowdiff/pkg/schemadiff"
	"gopkg.in/yaml.v3"
)

const (
	// FormatText is the human readable default
	FormatText Format = "text"
	// FormatJSON writes indented JSON
	FormatJSON Format = "json"
	// FormatYAML writes YAML
	FormatYAML Format = "yaml"
	// FormatUnified writes unified patches
	FormatUnified Format = "unified"

	// NoDifferences is written by FormatText when there is nothing to report.
	NoDifferences = "No differences found."
)

// ErrUnknownFormat is returned for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown report format")

// Format is the name of an output format.
type Format string

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatUnified}
}

// ParseFormat returns the Format named s, ignoring case. An empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}

	for _, f := range Formats() {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}

	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// Write writes items to w in the given format.
func Write(w io.Writer, format Format, items []schemadiff.Item) error {
	if items == nil {
		items = []schemadiff.Item{}
	}

	switch format {
	case FormatText:
		return writeText(w, items)
	case FormatJSON:
		return writeJSON(w, items)
	case FormatYAML:
		return writeYAML(w, items)
	case FormatUnified:
		return writeUnified(w, items)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// WriteResults writes the results of a batch comparison. Text and unified output prefix
// each comparison with a "== <name>" line; json and yaml output a list of
// {"name", "items"} values.
func WriteResults(w io.Writer, format Format, results []schemadiff.Result) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, results)
	case FormatYAML:
		return writeYAML(w, results)
	case FormatText, FormatUnified:
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	for i, result := range results {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return errors.Wrap(err, "failed to write report")
			}
		}

		if _, err := fmt.Fprintf(w, "== %s\n", result.Name); err != nil {
			return errors.Wrap(err, "failed to write report")
		}

		if err := Write(w, format, result.Items); err != nil {
			return err
		}
	}

	return nil
}

func writeText(w io.Writer, items []schemadiff.Item) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, NoDifferences)
		return errors.Wrap(err, "failed to write report")
	}

	for i, item := range items {
		sep := ""
		if i > 0 {
			sep = "\n"
		}

		if _, err := fmt.Fprintf(w, "%s>> %s\n%s\n", sep, item.Object, item.Diff); err != nil {
			return errors.Wrap(err, "failed to write report")
		}
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "failed to encode json report")
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode yaml report")
	}

	return errors.Wrap(enc.Close(), "failed to encode yaml report")
}

func writeUnified(w io.Writer, items []schemadiff.Item) error {
	for _, item := range items {
		diff := difflib.UnifiedDiff{
			A:        splitLines(item.Target),
			B:        splitLines(item.Source),
			FromFile: "target/" + string(item.Object),
			ToFile:   "source/" + string(item.Object),
			Context:  3,
		}

		if err := difflib.WriteUnifiedDiff(w, diff); err != nil {
			return errors.Wrapf(err, "failed to write patch for %s", item.Object)
		}
	}

	return nil
}

// splitLines is difflib.SplitLines, except that empty text has no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	return difflib.SplitLines(s)
}
