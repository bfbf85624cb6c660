package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pseudomuto/snowdiff/pkg/config"
	"github.com/pseudomuto/snowdiff/pkg/consts"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates the snowdiff CLI application and schedules it to run when the fx app starts. The fx
// app is shut down with exit code 1 when the command fails and 0 otherwise.
//
// Global Flags:
//   - --config, -c: config file, overriding the one found at startup (env SNOWDIFF_CONFIG)
//   - --verbose: enable debug logging on stderr
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "snowdiff",
		Usage: "Compare Snowflake DDL schemas",
		Description: `snowdiff parses two sets of Snowflake DDL statements and reports the tables
and views that are missing from the target or whose columns differ, along with a
line diff of their definitions.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the snowdiff config file",
				Sources: cli.EnvVars(consts.EnvPrefix + "CONFIG"),
				Value:   consts.DefaultConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := slog.LevelInfo
			if cmd.Bool("verbose") {
				level = slog.LevelDebug
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return ctx, nil
		},
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

// currentConfig returns the config named by an explicit --config flag, falling back to the one
// loaded at startup. The result is nil when neither exists.
func currentConfig(cmd *cli.Command, cfg *config.Config) (*config.Config, error) {
	if !cmd.IsSet("config") {
		return cfg, nil
	}

	return config.LoadConfigFile(cmd.String("config"))
}
