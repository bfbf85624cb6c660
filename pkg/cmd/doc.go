// Package cmd provides the CLI commands for the snowdiff tool.
//
// # Available Commands
//
//   - diff: compare a source schema with a target schema and report missing or changed objects
//   - objects: list the object and column identities extracted from a schema
//   - clean: print a schema after import resolution and preprocessing
//   - fmt: format Snowflake DDL files
//   - init: create a snowdiff.yaml and the ddl/source and ddl/target directories
//
// # Command Structure
//
// Each command is implemented as a function returning a *cli.Command, following the
// urfave/cli/v3 pattern. Commands are provided to the root command through the fx value
// group "commands" (see Module), and receive the *config.Config loaded at startup when they
// need it.
//
// # Global Options
//
//   - --config, -c: the config file (defaults to snowdiff.yaml, env SNOWDIFF_CONFIG)
//   - --verbose: log at debug level on stderr
//   - --help, -h: display command help
//   - --version, -v: display version information
//
// # Example Usage
//
//	snowdiff init                                       # create snowdiff.yaml and ddl/
//	snowdiff diff -s ddl/dev -t ddl/prod                # compare two directories
//	snowdiff diff -s dev.sql -t prod.sql --format json  # machine readable output
//	snowdiff -c ci/snowdiff.yaml diff --fail-on-diff    # run configured comparisons
//	snowdiff objects ddl/prod                           # list extracted identities
//	snowdiff fmt -w ddl/                                # format files in place
package cmd
