package schema

import (
	"strings"

	"github.com/pseudomuto/snowdiff/pkg/utils"
)

type (
	// ObjectID is the canonical name of a table or view: its name parts without quotes,
	// joined with dots, the first part normalized.
	ObjectID string

	// ColumnID identifies a column of a table or view together with its declared type.
	// Two columns with the same name but different types are different identities.
	ColumnID struct {
		Object ObjectID
		Name   string
		Type   string
	}

	// Normalizer maps the first component of an object name to its canonical form.
	// Names are lowercased before lookup; names without an alias are returned
	// lowercased. The zero value has no aliases.
	Normalizer struct {
		aliases map[string]string
	}
)

// String returns the canonical form <object>.<name>-<type>.
func (c ColumnID) String() string {
	return string(c.Object) + "." + c.Name + "-" + c.Type
}

// NewNormalizer creates a Normalizer from a raw name to canonical name mapping. Keys
// are matched case-insensitively; values are used as given.
//
//	n := schema.NewNormalizer(map[string]string{"PROD_DB": "analytics"})
//	n.Normalize("prod_db") // "analytics"
//	n.Normalize("Raw")     // "raw"
func NewNormalizer(aliases map[string]string) Normalizer {
	n := Normalizer{aliases: make(map[string]string, len(aliases))}
	for raw, canonical := range aliases {
		n.aliases[strings.ToLower(raw)] = canonical
	}

	return n
}

// Normalize returns the canonical form of name.
func (n Normalizer) Normalize(name string) string {
	name = strings.ToLower(name)
	if canonical, ok := n.aliases[name]; ok {
		return canonical
	}

	return name
}

// Object builds the ObjectID for a parsed, possibly quoted, multi-part name.
func (n Normalizer) Object(parts []string) ObjectID {
	if len(parts) == 0 {
		return ""
	}

	names := make([]string, len(parts))
	for i, part := range parts {
		names[i] = utils.Unquote(part)
	}
	names[0] = n.Normalize(names[0])

	return ObjectID(strings.Join(names, "."))
}
