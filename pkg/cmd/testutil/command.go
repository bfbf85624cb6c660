package testutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes command as a subcommand of a test app and returns everything it wrote.
// The test app declares the global --config flag so commands can read it.
func RunCommand(t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()
	return RunCommandWithContext(context.Background(), t, command, args...)
}

// RunCommandWithContext executes a command with a custom context
func RunCommandWithContext(ctx context.Context, t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Writer: &buf,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}},
		},
		Commands: []*cli.Command{command},
	}

	// Prepend command name to args, keeping global flags in front of it
	fullArgs := []string{"test"}
	for len(args) > 1 && (args[0] == "--config" || args[0] == "-c") {
		fullArgs = append(fullArgs, args[0], args[1])
		args = args[2:]
	}
	fullArgs = append(fullArgs, command.Name)
	fullArgs = append(fullArgs, args...)

	err := app.Run(ctx, fullArgs)
	return buf.String(), err
}
