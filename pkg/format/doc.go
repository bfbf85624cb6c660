// Package format renders parsed Snowflake DDL back to text.
//
// Two kinds of output are produced. DataType returns the canonical rendering of a
// declared column type; it is what column identities are built from, so it does not
// depend on any option and never changes for equivalent input:
//
//	format.DataType(col.Type) // "NUMBER(38,0)", "VARCHAR(16)", "TIMESTAMP(3) WITH LOCAL TIME ZONE"
//
// A Formatter pretty prints whole statements with consistent indentation, keyword
// casing and, optionally, aligned column definitions:
//
//	parsed, _ := parser.ParseString("create table db.s.t (id number(38, 0), name varchar)")
//
//	var buf bytes.Buffer
//	err := format.Format(&buf, format.Defaults, parsed.Statements...)
//
// Output:
//
//	CREATE TABLE db.s.t (
//	    id   NUMBER(38,0),
//	    name VARCHAR
//	);
//
// Identifiers are written as they appear in the input, quotes included. Statements
// the parser keeps as raw tokens are written on a single line.
package format
