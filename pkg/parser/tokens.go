package parser

type (
	// Token is a single token or a balanced parenthesised group inside a statement.
	// Semicolons never appear in a Token, so a statement always ends at one.
	Token struct {
		Group *Group `parser:"@@"`
		Value string `parser:"| @~(';' | '(' | ')')"`
	}

	// ElementToken is like Token but also stops at commas, for use inside
	// comma-separated lists.
	ElementToken struct {
		Group *Group `parser:"@@"`
		Value string `parser:"| @~(',' | ';' | '(' | ')')"`
	}

	// Group is a parenthesised run of tokens, nested groups included.
	Group struct {
		Open   string   `parser:"@'('"`
		Tokens []*Token `parser:"@@*"`
		Close  string   `parser:"@')'"`
	}
)
