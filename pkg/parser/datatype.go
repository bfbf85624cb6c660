package parser

type (
	// DataType is a declared column type such as NUMBER(38, 0), VARCHAR,
	// DOUBLE PRECISION or TIMESTAMP(3) WITH TIME ZONE. Type names are not checked
	// against a list of known types; Snowflake accepts many aliases and the tool only
	// needs a stable rendering of what was written.
	DataType struct {
		Name      string       `parser:"@~(',' | '(' | ')' | ';' | 'AS' | 'COMMENT' | 'WITH' | 'NOT' | 'NULL' | 'DEFAULT' | 'COLLATE' | 'PRIMARY' | 'UNIQUE' | 'REFERENCES' | 'CONSTRAINT' | 'MASKING' | 'PROJECTION' | 'TAG')"`
		Qualifier *string      `parser:"@('PRECISION' | 'VARYING')?"`
		Params    []*TypeParam `parser:"('(' @@ (',' @@)* ')')?"`
		TimeZone  *TimeZone    `parser:"@@?"`
	}

	// TypeParam is a single parameter of a parametric type. Structured types such as
	// OBJECT(city VARCHAR) have multi-token parameters.
	TypeParam struct {
		Tokens []*ElementToken `parser:"@@+"`
	}

	// TimeZone is the WITH [LOCAL] TIME ZONE / WITHOUT TIME ZONE suffix of timestamp types.
	TimeZone struct {
		With  string `parser:"@('WITH' | 'WITHOUT')"`
		Local bool   `parser:"@'LOCAL'?"`
		Zone  string `parser:"'TIME' 'ZONE'"`
	}
)
