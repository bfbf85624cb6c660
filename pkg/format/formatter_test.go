package format_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/pseudomuto/snowdiff/pkg/format"
	"github.com/pseudomuto/snowdiff/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		options  FormatterOptions
		expected []string
	}{
		{
			name:    "aligned columns",
			sql:     "create table db.s.t (id number(38, 0), name varchar)",
			options: Defaults,
			expected: []string{
				"CREATE TABLE db.s.t (",
				"    id   NUMBER(38,0),",
				"    name VARCHAR",
				");",
			},
		},
		{
			name:    "constraints and options",
			sql:     "CREATE OR REPLACE TRANSIENT TABLE IF NOT EXISTS raw.public.events (id NUMBER(38, 0) NOT NULL, payload VARIANT COMMENT 'raw json', CONSTRAINT pk PRIMARY KEY (id)) CLUSTER BY (id) COMMENT = 'events'",
			options: Defaults,
			expected: []string{
				"CREATE OR REPLACE TRANSIENT TABLE IF NOT EXISTS raw.public.events (",
				"    id      NUMBER(38,0) NOT NULL,",
				"    payload VARIANT COMMENT 'raw json',",
				"    CONSTRAINT pk PRIMARY KEY (id)",
				") CLUSTER BY (id) COMMENT = 'events';",
			},
		},
		{
			name: "lowercase keywords without alignment",
			sql:  "CREATE TABLE t (id INT, longer_name VARCHAR(10))",
			options: FormatterOptions{
				IndentSize:        2,
				UppercaseKeywords: false,
				AlignColumns:      false,
			},
			expected: []string{
				"create table t (",
				"  id INT,",
				"  longer_name VARCHAR(10)",
				");",
			},
		},
		{
			name:     "table without columns",
			sql:      "CREATE TABLE t CLONE other",
			options:  Defaults,
			expected: []string{"CREATE TABLE t CLONE other;"},
		},
		{
			name:    "view with columns and options",
			sql:     "create secure view a.b.v (id, kind varchar(16) comment 'k') comment = 'recent' as select id, kind from a.b.t where ts > dateadd(day, 1, current_timestamp())",
			options: Defaults,
			expected: []string{
				"CREATE SECURE VIEW a.b.v (",
				"    id,",
				"    kind VARCHAR(16) comment 'k'",
				") comment = 'recent' AS",
				"select id, kind from a.b.t where ts > dateadd(day, 1, current_timestamp());",
			},
		},
		{
			name:     "other statement",
			sql:      "USE DATABASE analytics",
			options:  Defaults,
			expected: []string{"USE DATABASE analytics;"},
		},
		{
			name:     "other create statement",
			sql:      "create or replace function f() returns int as $$ select 1; $$",
			options:  Defaults,
			expected: []string{"CREATE OR REPLACE function f() returns int as $$ select 1; $$;"},
		},
		{
			name:     "stages and positional columns",
			sql:      "copy into db.s.t from (select $1, $2 :: int from @db.s.stage/x.csv) file_format = (type = csv)",
			options:  Defaults,
			expected: []string{"copy into db.s.t from (select $1, $2::int from @db.s.stage/x.csv) file_format = (type = csv);"},
		},
		{
			name:    "view with casts",
			sql:     "CREATE VIEW a.v AS SELECT 1::INT AS x, ts::TIMESTAMP_NTZ(9) AS y FROM @~/data",
			options: Defaults,
			expected: []string{
				"CREATE VIEW a.v AS",
				"SELECT 1::INT AS x, ts::TIMESTAMP_NTZ(9) AS y FROM @~/data;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlResult, err := parser.ParseString(tt.sql)
			require.NoError(t, err)
			require.Len(t, sqlResult.Statements, 1)

			var buf bytes.Buffer
			require.NoError(t, Format(&buf, tt.options, sqlResult.Statements[0]))
			require.Equal(t, strings.Join(tt.expected, "\n"), buf.String())
		})
	}
}

func TestFormat_MultipleStatements(t *testing.T) {
	sqlResult, err := parser.ParseString("USE ROLE sysadmin; CREATE TABLE t (x INT);")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, Defaults, sqlResult.Statements[0], nil, sqlResult.Statements[1]))
	require.Equal(t, "USE ROLE sysadmin;\n\nCREATE TABLE t (\n    x INT\n);", buf.String())
}

func TestFormat_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Format(&buf, Defaults))
	require.Empty(t, buf.String())

	require.NoError(t, Format(&buf, Defaults, nil))
	require.Empty(t, buf.String())
}

func TestNew_DefaultIndent(t *testing.T) {
	sqlResult, err := parser.ParseString("CREATE TABLE t (x INT)")
	require.NoError(t, err)

	f := New(FormatterOptions{UppercaseKeywords: true})
	require.Equal(t, "CREATE TABLE t (\n    x INT\n);", f.Statement(sqlResult.Statements[0]))
	require.Empty(t, f.Statement(nil))
}

func TestTokens(t *testing.T) {
	sqlResult, err := parser.ParseString("SELECT a.b, count(*) FROM t WHERE x IN (1, 2) AND y = 'z'")
	require.NoError(t, err)
	require.Equal(t, "SELECT a.b, count(*) FROM t WHERE x IN (1, 2) AND y = 'z'", Tokens(sqlResult.Statements[0].Other.Tokens))
}

func TestObjectName(t *testing.T) {
	sqlResult, err := parser.ParseString(`CREATE TABLE "My DB".public."Events" (x INT)`)
	require.NoError(t, err)
	require.Equal(t, `"My DB".public."Events"`, ObjectName(sqlResult.Statements[0].Create.Table.Name))
}
