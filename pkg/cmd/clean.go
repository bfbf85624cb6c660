package cmd

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/snowdiff/pkg/parser"
	"github.com/pseudomuto/snowdiff/pkg/schema"
	"github.com/urfave/cli/v3"
)

// clean creates the command that prints a schema the way the differ sees it, with imports inlined
// and the preprocessor rewrites applied.
func clean() *cli.Command {
	return &cli.Command{
		Name:      "clean",
		Usage:     "Print the preprocessed SQL of a schema",
		ArgsUsage: "<path>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			sql, err := schema.Load(cmd.Args().First())
			if err != nil {
				return err
			}

			_, err = io.WriteString(cmd.Root().Writer, parser.Preprocess(sql))
			return errors.Wrap(err, "failed to write SQL")
		},
	}
}
