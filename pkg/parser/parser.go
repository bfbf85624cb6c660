package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// snowflakeLexer defines the lexer for Snowflake DDL
	snowflakeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `(?:--|//)[^\r\n]*`},
		{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "DollarString", Pattern: `\$\$(?s:.*?)\$\$`},
		{Name: "String", Pattern: `'(?:''|[^'\\]|\\.)*'`},
		{Name: "QuotedIdent", Pattern: `"(?:""|[^"])*"`},
		{Name: "Number", Pattern: `\d+(?:\.\d*)?(?:[eE][-+]?\d+)?`},
		{Name: "Positional", Pattern: `\$\d+`},
		{Name: "Stage", Pattern: `@[~%]?[a-zA-Z0-9_$.]*(?:/[^\s;,()'"]*)?`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_$]*`},
		{Name: "Operator", Pattern: `::|\|\||=>|->|!=|<>|<=|>=`},
		{Name: "Punct", Pattern: "[(),.;=+\\-*/%<>\\[\\]!{}:$@~^&|?#\\\\`]"},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	// elidedTokens are dropped by the parser and ignored when deciding whether a
	// fragment holds a statement
	elidedTokens = []string{"Comment", "MultilineComment", "Whitespace"}

	// parser is the participle parser instance for Snowflake DDL
	parser = participle.MustBuild[SQL](
		participle.Lexer(snowflakeLexer),
		participle.Elide(elidedTokens...),
		participle.CaseInsensitive("Ident"),
		participle.UseLookahead(2),
	)
)

type (
	// SQL is the complete parsed input: every statement in source order.
	// Empty statements (consecutive semicolons) produce no entry.
	SQL struct {
		Statements []*Statement `parser:"(';' | @@)*"`
	}

	// Statement is a closed variant over the statement kinds the tool knows about.
	// Exactly one of Create or Other is set.
	Statement struct {
		Pos lexer.Position

		Create *CreateStmt `parser:"@@"`
		Other  *OtherStmt  `parser:"| @@"`
	}

	// OtherStmt is any statement that does not start with CREATE. Its tokens are
	// kept so the statement still occupies its place in the input.
	OtherStmt struct {
		Tokens []*Token `parser:"(?! 'CREATE') @@+"`
	}

	// ParseError reports input that the grammar rejects.
	ParseError struct {
		Pos lexer.Position
		Msg string
	}
)

// StatementKind identifies which arm of a Statement is populated.
type StatementKind int

const (
	// KindOther covers every statement that is not a table or view definition
	KindOther StatementKind = iota
	// KindCreateTable is a CREATE TABLE statement
	KindCreateTable
	// KindCreateView is a CREATE VIEW statement
	KindCreateView
)

// String returns a human readable name for the kind.
func (k StatementKind) String() string {
	switch k {
	case KindCreateTable:
		return "CREATE TABLE"
	case KindCreateView:
		return "CREATE VIEW"
	default:
		return "OTHER"
	}
}

// Kind returns the kind of statement. CREATE statements for objects other than
// tables and views are reported as KindOther.
func (s *Statement) Kind() StatementKind {
	if s.Create == nil {
		return KindOther
	}

	switch {
	case s.Create.Table != nil:
		return KindCreateTable
	case s.Create.View != nil:
		return KindCreateView
	default:
		return KindOther
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// Parse parses Snowflake DDL statements from an io.Reader and returns the parsed SQL structure.
//
// Example usage:
//
//	file, err := os.Open("schema.sql")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	sqlResult, err := parser.Parse(file)
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
// Returns a *ParseError (wrapped) if the input contains invalid SQL.
func Parse(reader io.Reader) (*SQL, error) {
	sqlResult, err := parser.Parse("", reader)
	if err != nil {
		return nil, errors.Wrap(newParseError(err), "failed to parse SQL")
	}

	return sqlResult, nil
}

// ParseString parses Snowflake DDL statements from a string and returns the parsed SQL structure.
// The input is parsed as-is; callers that want the timestamp and CREATE OR REPLACE rewrites
// must run Preprocess first.
//
// Example usage:
//
//	sqlResult, err := parser.ParseString(`
//		CREATE OR REPLACE TABLE analytics.public.events (
//			id NUMBER(38, 0) NOT NULL,
//			payload VARIANT,
//			created_at TIMESTAMPNTZ
//		);
//		CREATE VIEW analytics.public.recent_events AS SELECT * FROM analytics.public.events;
//		GRANT SELECT ON analytics.public.events TO ROLE reporter;
//	`)
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
//	for _, stmt := range sqlResult.Statements {
//		fmt.Println(stmt.Kind())
//	}
func ParseString(sql string) (*SQL, error) {
	return Parse(strings.NewReader(sql))
}

func newParseError(err error) *ParseError {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &ParseError{Pos: perr.Position(), Msg: perr.Message()}
	}

	return &ParseError{Msg: err.Error()}
}
