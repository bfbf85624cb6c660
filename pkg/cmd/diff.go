package cmd

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/snowdiff/pkg/config"
	"github.com/pseudomuto/snowdiff/pkg/consts"
	"github.com/pseudomuto/snowdiff/pkg/report"
	"github.com/pseudomuto/snowdiff/pkg/schema"
	"github.com/pseudomuto/snowdiff/pkg/schemadiff"
	"github.com/urfave/cli/v3"
)

// ErrDifferencesFound is returned by diff --fail-on-diff when the schemas differ.
var ErrDifferencesFound = errors.New("differences found")

// diff creates the command that compares a source schema against a target schema.
//
// Both sides may be a single .sql file or a directory whose .sql files are read in lexical order.
// Without --source and --target every comparison listed in the config file is run.
//
// Examples:
//
//	# Compare two files
//	snowdiff diff -s ddl/dev.sql -t ddl/prod.sql
//
//	# Compare two directories and print unified patches
//	snowdiff diff -s ddl/dev -t ddl/prod --format unified
//
//	# Run the configured comparisons, failing when anything differs
//	snowdiff diff --fail-on-diff
func diff(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "diff",
		Usage: "Report objects that are missing or changed in the target schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "the desired schema (file or directory)",
				Sources: cli.EnvVars(consts.EnvPrefix + "SOURCE"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "target",
				Aliases: []string{"t"},
				Usage:   "the schema to compare against (file or directory)",
				Sources: cli.EnvVars(consts.EnvPrefix + "TARGET"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format (" + formatNames() + ")",
				Sources: cli.EnvVars(consts.EnvPrefix + "FORMAT"),
			},
			&cli.BoolFlag{
				Name:  "fail-on-diff",
				Usage: "exit with an error when differences are found",
			},
			&cli.BoolFlag{
				Name:  "first-segment-owner",
				Usage: "attribute missing columns to the first segment of their name",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			current, err := currentConfig(cmd, cfg)
			if err != nil {
				return err
			}

			format, err := outputFormat(cmd, current)
			if err != nil {
				return err
			}

			opts := []schemadiff.Option{schemadiff.WithSchemaOptions(schema.WithNormalizer(current.Normalizer()))}
			if cmd.Bool("first-segment-owner") {
				opts = append(opts, schemadiff.WithFirstSegmentOwner())
			}

			source, target := cmd.String("source"), cmd.String("target")

			var found bool
			switch {
			case source == "" && target == "":
				found, err = diffConfigured(ctx, cmd, current, format, opts)
			case source == "" || target == "":
				return errors.New("both --source and --target are required")
			default:
				found, err = diffPaths(ctx, cmd, source, target, format, opts)
			}
			if err != nil {
				return err
			}

			if found && cmd.Bool("fail-on-diff") {
				return ErrDifferencesFound
			}

			return nil
		},
	}
}

func diffPaths(
	ctx context.Context,
	cmd *cli.Command,
	source, target string,
	format report.Format,
	opts []schemadiff.Option,
) (bool, error) {
	sourceSQL, err := schema.Load(source)
	if err != nil {
		return false, err
	}

	targetSQL, err := schema.Load(target)
	if err != nil {
		return false, err
	}

	items, err := schemadiff.Compare(ctx, sourceSQL, targetSQL, opts...)
	if err != nil {
		return false, err
	}

	return len(items) > 0, report.Write(cmd.Root().Writer, format, items)
}

func diffConfigured(
	ctx context.Context,
	cmd *cli.Command,
	cfg *config.Config,
	format report.Format,
	opts []schemadiff.Option,
) (bool, error) {
	if cfg == nil || len(cfg.Comparisons) == 0 {
		return false, errors.New("--source and --target are required when no comparisons are configured")
	}

	pairs := make([]schemadiff.Pair, len(cfg.Comparisons))
	for i, c := range cfg.Comparisons {
		source, err := schema.Load(cfg.Resolve(c.Source))
		if err != nil {
			return false, errors.Wrapf(err, "comparison %s", c.Name)
		}

		target, err := schema.Load(cfg.Resolve(c.Target))
		if err != nil {
			return false, errors.Wrapf(err, "comparison %s", c.Name)
		}

		pairs[i] = schemadiff.Pair{Name: c.Name, Source: source, Target: target}
	}

	results, err := schemadiff.CompareAll(ctx, pairs, opts...)
	if err != nil {
		return false, err
	}

	var found bool
	for _, r := range results {
		found = found || len(r.Items) > 0
	}

	return found, report.WriteResults(cmd.Root().Writer, format, results)
}

// outputFormat returns the --format flag when given, else the configured format.
func outputFormat(cmd *cli.Command, cfg *config.Config) (report.Format, error) {
	if name := cmd.String("format"); name != "" || cfg == nil || cfg.Format == "" {
		return report.ParseFormat(name)
	}

	return cfg.Format, nil
}

func formatNames() string {
	names := make([]string, 0, len(report.Formats()))
	for _, f := range report.Formats() {
		names = append(names, string(f))
	}

	return strings.Join(names, ", ")
}
