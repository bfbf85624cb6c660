package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/snowdiff/pkg/config"
	"github.com/pseudomuto/snowdiff/pkg/schema"
	"github.com/urfave/cli/v3"
)

// objects creates the command that lists the identities extracted from a schema. Every table and
// view is printed on its own line, followed by its column identities indented by two spaces:
//
//	analytics.public.events
//	  analytics.public.events.id-NUMBER(38,0)
//	  analytics.public.events.payload-VARIANT
func objects(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "objects",
		Usage:     "List the tables, views and columns defined by a schema",
		ArgsUsage: "<path>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			current, err := currentConfig(cmd, cfg)
			if err != nil {
				return err
			}

			sql, err := schema.Load(cmd.Args().First())
			if err != nil {
				return err
			}

			s, err := schema.Extract(sql, schema.WithNormalizer(current.Normalizer()))
			if err != nil {
				return err
			}

			return writeObjects(cmd.Root().Writer, s)
		},
	}
}

func writeObjects(w io.Writer, s *schema.Schema) error {
	columns := make(map[schema.ObjectID][]schema.ColumnID, s.Objects.Len())
	for _, c := range s.Columns.Values() {
		columns[c.Object] = append(columns[c.Object], c)
	}

	for _, id := range s.Objects.Values() {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return errors.Wrap(err, "failed to write objects")
		}

		for _, c := range columns[id] {
			if _, err := fmt.Fprintf(w, "  %s\n", c); err != nil {
				return errors.Wrap(err, "failed to write objects")
			}
		}
	}

	return nil
}
