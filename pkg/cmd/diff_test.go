package cmd

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/snowdiff/pkg/cmd/testutil"
	"github.com/pseudomuto/snowdiff/pkg/report"
	"github.com/stretchr/testify/require"
)

const (
	sourceDDL = `CREATE OR REPLACE SCHEMA analytics.public;
CREATE TABLE analytics.public.events (id NUMBER(38, 0), payload VARIANT);
CREATE TABLE analytics.public.users (id NUMBER(38, 0));
`

	targetDDL = `CREATE TABLE analytics.public.events (id NUMBER(38, 0), payload VARIANT);
`

	usersDiff = ">> analytics.public.users\n+CREATE TABLE analytics.public.users (id NUMBER(38, 0))\n"
)

func TestDiffCommand_Paths(t *testing.T) {
	fixture := testutil.TestProject(t).
		WithFile("source.sql", sourceDDL).
		WithFile("target.sql", targetDDL)

	out, err := testutil.RunCommand(t, diff(nil), "-s", fixture.Path("source.sql"), "-t", fixture.Path("target.sql"))
	require.NoError(t, err)
	require.Equal(t, usersDiff, out)
}

func TestDiffCommand_NoDifferences(t *testing.T) {
	fixture := testutil.TestProject(t).WithFile("schema.sql", sourceDDL)
	path := fixture.Path("schema.sql")

	out, err := testutil.RunCommand(t, diff(nil), "--fail-on-diff", "-s", path, "-t", path)
	require.NoError(t, err)
	require.Equal(t, report.NoDifferences+"\n", out)
}

func TestDiffCommand_Directories(t *testing.T) {
	fixture := testutil.TestProject(t).WithFiles(map[string]string{
		"dev/01_events.sql":  "CREATE TABLE analytics.public.events (id NUMBER(38, 0), payload VARIANT);\n",
		"dev/02_users.sql":   "CREATE TABLE analytics.public.users (id NUMBER(38, 0));\n",
		"prod/01_events.sql": "CREATE TABLE analytics.public.events (id NUMBER(38, 0), payload VARIANT);\n",
	})

	out, err := testutil.RunCommand(t, diff(nil), "-s", fixture.Path("dev"), "-t", fixture.Path("prod"))
	require.NoError(t, err)
	require.Equal(t, usersDiff, out)
}

func TestDiffCommand_JSON(t *testing.T) {
	fixture := testutil.TestProject(t).
		WithFile("source.sql", sourceDDL).
		WithFile("target.sql", targetDDL)

	out, err := testutil.RunCommand(t, diff(nil),
		"--format", "json",
		"-s", fixture.Path("source.sql"),
		"-t", fixture.Path("target.sql"),
	)
	require.NoError(t, err)

	var items []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Equal(t, []map[string]string{{
		"object": "analytics.public.users",
		"diff":   "+CREATE TABLE analytics.public.users (id NUMBER(38, 0))",
	}}, items)
}

func TestDiffCommand_FailOnDiff(t *testing.T) {
	fixture := testutil.TestProject(t).
		WithFile("source.sql", sourceDDL).
		WithFile("target.sql", targetDDL)

	out, err := testutil.RunCommand(t, diff(nil),
		"--fail-on-diff",
		"-s", fixture.Path("source.sql"),
		"-t", fixture.Path("target.sql"),
	)
	require.True(t, errors.Is(err, ErrDifferencesFound))
	require.Equal(t, usersDiff, out)
}

func TestDiffCommand_Configured(t *testing.T) {
	fixture := testutil.TestProject(t).
		WithFiles(map[string]string{
			"ddl/source.sql": sourceDDL,
			"ddl/target.sql": targetDDL,
			"ddl/prod.sql":   "CREATE TABLE analytics_prod.public.events (id NUMBER(38, 0), payload VARIANT);\n",
		}).
		WithConfig(`
aliases:
  analytics_prod: analytics
comparisons:
  - name: dev
    source: ddl/source.sql
    target: ddl/target.sql
  - name: prod
    source: ddl/target.sql
    target: ddl/prod.sql
`)

	out, err := testutil.RunCommand(t, diff(fixture.Config))
	require.NoError(t, err)
	require.Equal(t, "== dev\n"+usersDiff+"\n== prod\n"+report.NoDifferences+"\n", out)
}

func TestDiffCommand_ConfigFlag(t *testing.T) {
	fixture := testutil.TestProject(t).
		WithFile("source.sql", sourceDDL).
		WithFile("target.sql", targetDDL).
		WithFile("snowdiff.yaml", `
format: json
comparisons:
  - name: core
    source: source.sql
    target: target.sql
`)

	// The config given on the command line replaces the one loaded at startup
	out, err := testutil.RunCommand(t, diff(nil), "--config", fixture.ConfigPath())
	require.NoError(t, err)

	var results []struct {
		Name  string              `json:"name"`
		Items []map[string]string `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	require.Equal(t, "core", results[0].Name)
	require.Len(t, results[0].Items, 1)
	require.Equal(t, "analytics.public.users", results[0].Items[0]["object"])
}

func TestDiffCommand_FirstSegmentOwner(t *testing.T) {
	fixture := testutil.TestProject(t).
		WithFile("source.sql", sourceDDL).
		WithFile("target.sql", targetDDL)

	_, err := testutil.RunCommand(t, diff(nil),
		"--first-segment-owner",
		"-s", fixture.Path("source.sql"),
		"-t", fixture.Path("target.sql"),
	)
	require.ErrorContains(t, err, "object analytics: source object has no DDL")
}

func TestDiffCommand_Errors(t *testing.T) {
	fixture := testutil.TestProject(t).
		WithFile("source.sql", sourceDDL).
		WithFile("broken.sql", "CREATE TABLE t (x INT;\n")

	tests := []struct {
		name string
		args []string
		err  string
	}{
		{
			name: "nothing to compare",
			err:  "--source and --target are required when no comparisons are configured",
		},
		{
			name: "source only",
			args: []string{"-s", fixture.Path("source.sql")},
			err:  "both --source and --target are required",
		},
		{
			name: "unknown format",
			args: []string{"--format", "html", "-s", fixture.Path("source.sql"), "-t", fixture.Path("source.sql")},
			err:  "unknown report format",
		},
		{
			name: "missing file",
			args: []string{"-s", fixture.Path("source.sql"), "-t", fixture.Path("missing.sql")},
			err:  "failed to read file",
		},
		{
			name: "parse error",
			args: []string{"-s", fixture.Path("source.sql"), "-t", fixture.Path("broken.sql")},
			err:  "failed to extract target schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testutil.RunCommand(t, diff(nil), tt.args...)
			require.ErrorContains(t, err, tt.err)
		})
	}
}
