package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/snowdiff/pkg/consts"
	"github.com/pseudomuto/snowdiff/pkg/format"
	"github.com/pseudomuto/snowdiff/pkg/parser"
	"github.com/urfave/cli/v3"
)

// fmtCmd creates a CLI command for formatting Snowflake DDL files, either a single file or every
// .sql file below a directory.
//
// Formatted SQL is written to stdout unless -w is given, in which case the files are rewritten in
// place. Import directives and other comments are not preserved, so -w is meant for plain DDL files.
//
// Examples:
//
//	# Format single file to stdout
//	snowdiff fmt schema.sql
//
//	# Format all SQL files in directory tree in-place
//	snowdiff fmt -w ddl/
func fmtCmd() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			return formatPath(cmd.Args().First(), cmd.Bool("write"), cmd.Root().Writer)
		},
	}
}

func formatPath(path string, writeBack bool, w io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return formatDirectory(path, writeBack, w)
	}

	return formatFile(path, writeBack, w)
}

// formatDirectory formats every .sql file below dir in lexical order.
func formatDirectory(dir string, writeBack bool, w io.Writer) error {
	var sqlFiles []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			sqlFiles = append(sqlFiles, path)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(sqlFiles) == 0 {
		return errors.Errorf("no SQL files found in directory: %s", dir)
	}

	for i, sqlFile := range sqlFiles {
		if i > 0 && !writeBack {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return errors.Wrap(err, "failed to write formatted content to output")
			}
		}

		if err := formatFile(sqlFile, writeBack, w); err != nil {
			return errors.Wrapf(err, "failed to format file: %s", sqlFile)
		}
	}

	return nil
}

func formatFile(path string, writeBack bool, w io.Writer) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file: %s", path)
	}

	sql, err := parser.ParseString(string(content))
	if err != nil {
		return errors.Wrapf(err, "failed to parse SQL in file: %s", path)
	}

	var buf strings.Builder
	if err := format.Format(&buf, format.Defaults, sql.Statements...); err != nil {
		return errors.Wrapf(err, "failed to format SQL in file: %s", path)
	}

	if buf.Len() > 0 {
		buf.WriteString("\n")
	}

	if writeBack {
		if err := os.WriteFile(path, []byte(buf.String()), consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}

		return nil
	}

	if _, err := fmt.Fprint(w, buf.String()); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}

	return nil
}
