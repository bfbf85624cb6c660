package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Fragment is the source text between two statement terminators.
type Fragment struct {
	// Text is the fragment with its terminating semicolon removed
	Text string

	// Pos is the position of the first byte of the fragment
	Pos lexer.Position

	// Blank is true when the fragment holds nothing but whitespace and comments
	Blank bool
}

// Split breaks sql into fragments at every top-level semicolon, the same way the
// grammar separates statements. Semicolons inside strings, quoted identifiers,
// comments and $$ bodies do not split. Every fragment is returned, in order, including
// blank ones (e.g. between consecutive semicolons) and the text after the last
// semicolon, so joining the Text of all fragments with ";" reproduces the input.
//
// Non-blank fragments correspond one-to-one, in order, with the statements returned
// by ParseString for the same input.
//
// Example:
//
//	fragments, _ := parser.Split("CREATE TABLE t (x INT);\n-- done\n")
//	// fragments[0].Text == "CREATE TABLE t (x INT)", Blank == false
//	// fragments[1].Text == "\n-- done\n", Blank == true
func Split(sql string) ([]Fragment, error) {
	lex, err := snowflakeLexer.LexString("", sql)
	if err != nil {
		return nil, errors.Wrap(newParseError(err), "failed to tokenize SQL")
	}

	symbols := snowflakeLexer.Symbols()
	elided := make(map[lexer.TokenType]bool, len(elidedTokens))
	for _, name := range elidedTokens {
		elided[symbols[name]] = true
	}
	punct := symbols["Punct"]

	var (
		fragments []Fragment
		start     = lexer.Position{Line: 1, Column: 1}
		blank     = true
	)

	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, errors.Wrap(newParseError(err), "failed to tokenize SQL")
		}

		if tok.EOF() {
			break
		}

		if tok.Type == punct && tok.Value == ";" {
			fragments = append(fragments, Fragment{
				Text:  sql[start.Offset:tok.Pos.Offset],
				Pos:   start,
				Blank: blank,
			})

			start = tok.Pos
			start.Offset++
			start.Column++
			blank = true
			continue
		}

		if !elided[tok.Type] {
			blank = false
		}
	}

	fragments = append(fragments, Fragment{
		Text:  sql[start.Offset:],
		Pos:   start,
		Blank: blank,
	})

	return fragments, nil
}
