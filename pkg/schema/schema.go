package schema

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/snowdiff/pkg/format"
	"github.com/pseudomuto/snowdiff/pkg/parser"
	"github.com/pseudomuto/snowdiff/pkg/utils"
)

// ErrFragmentMismatch is returned when the number of statements found by the parser differs
// from the number of statement fragments found by the splitter. It indicates a bug rather than
// bad input.
var ErrFragmentMismatch = errors.New("statement and fragment counts differ")

type (
	// Schema is the result of extracting one DDL input. It must not be modified after Extract
	// returns.
	Schema struct {
		// Fragments holds every piece of the preprocessed input between semicolons, blank ones
		// included.
		Fragments []parser.Fragment

		// Definitions pairs each parsed statement with its source fragment, in input order.
		Definitions []Definition

		// Objects holds the tables and views in the order they were defined.
		Objects *utils.OrderedSet[ObjectID]

		// Columns holds the columns of every table and view in definition order.
		Columns *utils.OrderedSet[ColumnID]

		ddl map[ObjectID]string
	}

	// Definition is a parsed statement and the text it was parsed from.
	Definition struct {
		Statement *parser.Statement
		Fragment  parser.Fragment

		// Object is set for CREATE TABLE and CREATE VIEW statements.
		Object ObjectID
	}

	// Option customizes Extract.
	Option func(*options)

	options struct {
		normalizer Normalizer
	}
)

// WithNormalizer sets the Normalizer used for the first component of object names.
func WithNormalizer(n Normalizer) Option {
	return func(o *options) {
		o.normalizer = n
	}
}

// Extract preprocesses and parses sql and collects the tables and views it defines.
//
// Statements are walked once, in order. Every CREATE TABLE and CREATE VIEW adds its object and
// one column identity per declared column (view columns without a type get an empty type).
// All other statements are kept in Definitions but contribute no identities. When an object is
// defined more than once the first definition is the one returned by DDL.
//
// A syntax error is returned as a wrapped *parser.ParseError.
//
// Example:
//
//	s, err := schema.Extract(`
//		CREATE OR REPLACE SCHEMA raw;
//		CREATE TABLE raw.public.events (id NUMBER(38, 0), payload VARIANT);
//	`)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	s.Objects.Values() // [raw.public.events]
//	s.Columns.Values() // [raw.public.events.id-NUMBER(38,0) raw.public.events.payload-VARIANT]
func Extract(sql string, opts ...Option) (*Schema, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	clean := parser.Preprocess(sql)

	parsed, err := parser.ParseString(clean)
	if err != nil {
		return nil, err
	}

	fragments, err := parser.Split(clean)
	if err != nil {
		return nil, err
	}

	statements := make([]parser.Fragment, 0, len(parsed.Statements))
	for _, frag := range fragments {
		if !frag.Blank {
			statements = append(statements, frag)
		}
	}

	if len(statements) != len(parsed.Statements) {
		return nil, errors.Wrapf(
			ErrFragmentMismatch,
			"parsed %d statements from %d fragments",
			len(parsed.Statements),
			len(statements),
		)
	}

	s := &Schema{
		Fragments:   fragments,
		Definitions: make([]Definition, len(parsed.Statements)),
		Objects:     utils.NewOrderedSet[ObjectID](),
		Columns:     utils.NewOrderedSet[ColumnID](),
		ddl:         make(map[ObjectID]string),
	}

	for i, stmt := range parsed.Statements {
		def := Definition{Statement: stmt, Fragment: statements[i]}

		switch stmt.Kind() {
		case parser.KindCreateTable:
			table := stmt.Create.Table
			def.Object = o.normalizer.Object(table.Name.Parts)

			var columns []*parser.Column
			for _, element := range table.Elements {
				if element.Column != nil {
					columns = append(columns, element.Column)
				}
			}
			s.define(def, columns)
		case parser.KindCreateView:
			view := stmt.Create.View
			def.Object = o.normalizer.Object(view.Name.Parts)
			s.define(def, view.Columns)
		}

		s.Definitions[i] = def
	}

	slog.Debug("Extracted schema",
		"statements", len(s.Definitions),
		"fragments", len(s.Fragments),
		"objects", s.Objects.Len(),
		"columns", s.Columns.Len(),
	)

	return s, nil
}

// DDL returns the statement text that defined id, without surrounding whitespace. The boolean
// is false when the schema does not define id.
func (s *Schema) DDL(id ObjectID) (string, bool) {
	ddl, ok := s.ddl[id]
	return ddl, ok
}

func (s *Schema) define(def Definition, columns []*parser.Column) {
	if s.Objects.Add(def.Object) {
		s.ddl[def.Object] = strings.TrimSpace(def.Fragment.Text)
	} else {
		slog.Debug("Object defined more than once, keeping first definition",
			"object", def.Object,
			"line", def.Fragment.Pos.Line,
		)
	}

	for _, col := range columns {
		s.Columns.Add(ColumnID{
			Object: def.Object,
			Name:   utils.Unquote(col.Name),
			Type:   format.DataType(col.Type),
		})
	}
}
