package parser

type (
	// CreateStmt represents any CREATE statement. Tables and views are parsed into
	// structured definitions; all other object kinds keep their raw tokens. A TABLE
	// or VIEW that does not match its definition is an error, never an Other.
	// Snowflake syntax:
	//   CREATE [OR REPLACE | OR ALTER] [SECURE] [{LOCAL|GLOBAL}] [TEMP|TEMPORARY|VOLATILE|TRANSIENT]
	//     [DYNAMIC|ICEBERG|HYBRID] [MATERIALIZED] [RECURSIVE] {TABLE ... | VIEW ... | <object> ...}
	CreateStmt struct {
		Create    string    `parser:"'CREATE'"`
		Or        *string   `parser:"('OR' @('REPLACE' | 'ALTER'))?"`
		Modifiers []string  `parser:"@('SECURE' | 'LOCAL' | 'GLOBAL' | 'TEMPORARY' | 'TEMP' | 'VOLATILE' | 'TRANSIENT' | 'DYNAMIC' | 'ICEBERG' | 'HYBRID' | 'MATERIALIZED' | 'RECURSIVE')*"`
		Table     *TableDef `parser:"( 'TABLE' @@"`
		View      *ViewDef  `parser:"| 'VIEW' @@"`
		Other     []*Token  `parser:"| (?! 'TABLE' | 'VIEW') @@+ )"`
	}

	// ObjectName is a dot separated, possibly quoted, object name such as
	// db.schema.table or "My DB".public."Events". An unquoted IF cannot start a name
	// so that a broken IF NOT EXISTS clause is reported.
	ObjectName struct {
		Parts []string `parser:"(?! 'IF') @(Ident | QuotedIdent) ('.' @(Ident | QuotedIdent))*"`
	}

	// TableDef is the part of a CREATE TABLE statement following the TABLE keyword.
	// Snowflake syntax:
	//   [IF NOT EXISTS] <name> [( <col_name> <col_type> [options], ... [, <out_of_line_constraint>] )]
	//   [CLUSTER BY (...)] [COMMENT = '...'] [COPY GRANTS] [AS <query> | CLONE <name> | LIKE <name>] ...
	TableDef struct {
		IfNotExists bool            `parser:"@('IF' 'NOT' 'EXISTS')?"`
		Name        ObjectName      `parser:"@@"`
		Elements    []*TableElement `parser:"('(' @@ (',' @@)* ')')?"`
		Options     []*Token        `parser:"@@*"`
	}

	// TableElement is one entry of a table's parenthesised definition list.
	TableElement struct {
		Constraint *TableConstraint `parser:"@@"`
		Column     *Column          `parser:"| @@"`
	}

	// TableConstraint is an out-of-line constraint.
	// Snowflake syntax:
	//   [CONSTRAINT <name>] {PRIMARY KEY | UNIQUE | FOREIGN KEY | CHECK} (...) [REFERENCES ...] [options]
	TableConstraint struct {
		Name *string         `parser:"('CONSTRAINT' @(Ident | QuotedIdent))?"`
		Kind []string        `parser:"@('PRIMARY' 'KEY' | 'FOREIGN' 'KEY' | 'UNIQUE' | 'CHECK')"`
		Body []*ElementToken `parser:"@@*"`
	}

	// Column is a column definition within CREATE TABLE or a CREATE VIEW column list.
	// The type is optional: views usually omit it, as do CREATE TABLE ... AS SELECT
	// column lists. Everything after the data type (defaults, nullability, inline
	// constraints, masking policies, comments) is kept as raw tokens.
	Column struct {
		Name    string          `parser:"@(Ident | QuotedIdent)"`
		Type    *DataType       `parser:"@@?"`
		Options []*ElementToken `parser:"@@*"`
	}

	// ViewDef is the part of a CREATE VIEW statement following the VIEW keyword.
	// Snowflake syntax:
	//   [IF NOT EXISTS] <name> [( <col_name> [<col_type>] [COMMENT '...'], ... )]
	//   [WITH ROW ACCESS POLICY ...] [WITH TAG (...)] [COPY GRANTS] [COMMENT = '...'] AS <query>
	ViewDef struct {
		IfNotExists bool          `parser:"@('IF' 'NOT' 'EXISTS')?"`
		Name        ObjectName    `parser:"@@"`
		Columns     []*Column     `parser:"('(' @@ (',' @@)* ')')?"`
		Options     []*ViewOption `parser:"@@*"`
		Query       []*Token      `parser:"'AS' @@+"`
	}

	// ViewOption is a token between a view's column list and its AS keyword.
	ViewOption struct {
		Group *Group `parser:"@@"`
		Value string `parser:"| @~('AS' | ';' | '(' | ')')"`
	}
)
