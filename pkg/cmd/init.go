package cmd

import (
	"context"
	"fmt"

	"github.com/pseudomuto/snowdiff/pkg/project"
	"github.com/urfave/cli/v3"
)

// initCmd creates the command that sets up a snowdiff.yaml and ddl/source, ddl/target directories in
// the given directory (the working directory by default). Existing files are left untouched.
func initCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create a snowdiff.yaml and DDL directories",
		ArgsUsage: "[dir]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "default report format written to snowdiff.yaml (" + formatNames() + ")",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := "."
			if cmd.Args().Present() {
				dir = cmd.Args().First()
			}

			p := project.New(dir)
			if err := p.Initialize(project.InitOptions{Format: cmd.String("format")}); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.Root().Writer, "Initialized", p.ConfigPath())
			return err
		},
	}
}
