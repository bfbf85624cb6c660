package schemadiff_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"github.com/pseudomuto/snowdiff/pkg/schema"
	. "github.com/pseudomuto/snowdiff/pkg/schemadiff"
	"github.com/stretchr/testify/require"
)

func extract(t *testing.T, sql string) *schema.Schema {
	t.Helper()

	s, err := schema.Extract(sql)
	require.NoError(t, err)
	return s
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		target   string
		expected []Item
	}{
		{
			name:   "object missing from target",
			source: "CREATE TABLE a.b.t (x INT);",
			target: "",
			expected: []Item{
				{
					Object: "a.b.t",
					Diff:   "+CREATE TABLE a.b.t (x INT)",
					Source: "CREATE TABLE a.b.t (x INT)",
				},
			},
		},
		{
			name:     "identical schemas",
			source:   "CREATE TABLE a.t (x INT);",
			target:   "CREATE TABLE a.t (x INT);",
			expected: []Item{},
		},
		{
			name:   "unsupported replace statements are ignored",
			source: "CREATE OR REPLACE SCHEMA foo;\nCREATE TABLE foo.t (x INT);",
			target: "",
			expected: []Item{
				{
					Object: "foo.t",
					Diff:   "+CREATE TABLE foo.t (x INT)",
					Source: "CREATE TABLE foo.t (x INT)",
				},
			},
		},
		{
			name:     "objects only in target are not reported",
			source:   "CREATE TABLE a.t (x INT);",
			target:   "CREATE TABLE a.t (x INT);\nCREATE TABLE a.extra (y INT);",
			expected: []Item{},
		},
		{
			name: "column inserted between existing lines",
			source: `CREATE TABLE a.t (
    x INT,
    y INT,
    z INT
);`,
			target: `CREATE TABLE a.t (
    x INT,
    z INT
);`,
			expected: []Item{
				{
					Object: "a.t",
					Diff: strings.Join([]string{
						" CREATE TABLE a.t (",
						"     x INT,",
						"+    y INT,",
						"     z INT",
						" )",
					}, "\n"),
					Source: "CREATE TABLE a.t (\n    x INT,\n    y INT,\n    z INT\n)",
					Target: "CREATE TABLE a.t (\n    x INT,\n    z INT\n)",
				},
			},
		},
		{
			name: "identical multi line schemas",
			source: `CREATE TABLE a.t (
    x INT
);
CREATE TABLE a.u (y INT);`,
			target: `CREATE TABLE a.t (
    x INT
);
CREATE TABLE a.u (y INT);`,
			expected: []Item{},
		},
		{
			name:   "column identity missing but ddl text identical",
			source: "CREATE TABLE a.t (x INT);\nCREATE TABLE a.t (x INT, y INT);",
			target: "CREATE TABLE a.t (x INT);",
			expected: []Item{
				{
					Object: "a.t",
					Diff:   " CREATE TABLE a.t (x INT)",
					Source: "CREATE TABLE a.t (x INT)",
					Target: "CREATE TABLE a.t (x INT)",
				},
			},
		},
		{
			name:   "sorted by object",
			source: "CREATE TABLE z.t (x INT);\nCREATE VIEW a.v AS SELECT 1;\nCREATE TABLE m.t (x INT);",
			target: "",
			expected: []Item{
				{Object: "a.v", Diff: "+CREATE VIEW a.v AS SELECT 1", Source: "CREATE VIEW a.v AS SELECT 1"},
				{Object: "m.t", Diff: "+CREATE TABLE m.t (x INT)", Source: "CREATE TABLE m.t (x INT)"},
				{Object: "z.t", Diff: "+CREATE TABLE z.t (x INT)", Source: "CREATE TABLE z.t (x INT)"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Diff(extract(t, tt.source), extract(t, tt.target))
			require.NoError(t, err)

			if diff := cmp.Diff(tt.expected, items, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiff_ColumnAdded(t *testing.T) {
	source := extract(t, "CREATE TABLE a.t (x INT, y VARCHAR(10));")
	target := extract(t, "CREATE TABLE a.t (x INT);")

	missing := schema.ColumnID{Object: "a.t", Name: "y", Type: "VARCHAR(10)"}
	require.Equal(t, "a.t.y-VARCHAR(10)", missing.String())
	require.True(t, source.Columns.Contains(missing))
	require.False(t, target.Columns.Contains(missing))

	items, err := Diff(source, target)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, schema.ObjectID("a.t"), items[0].Object)
	require.ElementsMatch(t, []string{
		"-CREATE TABLE a.t (x INT)",
		"+CREATE TABLE a.t (x INT, y VARCHAR(10))",
	}, strings.Split(items[0].Diff, "\n"))
}

func TestDiff_ViewColumnType(t *testing.T) {
	source := extract(t, "CREATE VIEW a.v (x INT) AS SELECT x FROM a.t;")
	target := extract(t, "CREATE VIEW a.v (x) AS SELECT x FROM a.t;")

	items, err := Diff(source, target)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, schema.ObjectID("a.v"), items[0].Object)
	require.Contains(t, items[0].Diff, "+CREATE VIEW a.v (x INT) AS SELECT x FROM a.t")
	require.Contains(t, items[0].Diff, "-CREATE VIEW a.v (x) AS SELECT x FROM a.t")

	// the reverse direction differs too
	items, err = Diff(target, source)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestDiff_FirstSegmentOwner(t *testing.T) {
	t.Run("single part names", func(t *testing.T) {
		source := extract(t, "CREATE TABLE t (x INT, y INT);")
		target := extract(t, "CREATE TABLE t (x INT);")

		items, err := Diff(source, target, WithFirstSegmentOwner())
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, schema.ObjectID("t"), items[0].Object)
	})

	t.Run("qualified names are attributed to the database", func(t *testing.T) {
		source := extract(t, "CREATE TABLE a.t (x INT, y VARCHAR(10));")
		target := extract(t, "CREATE TABLE a.t (x INT);")

		require.Equal(t, []schema.ObjectID{"a"}, MissingObjects(source, target, WithFirstSegmentOwner()))
		require.Equal(t, []schema.ObjectID{"a.t"}, MissingObjects(source, target))

		_, err := Diff(source, target, WithFirstSegmentOwner())
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrMissingSourceDDL))
		require.Contains(t, err.Error(), "object a")
	})
}

func TestMissingObjects(t *testing.T) {
	fixtures := []struct {
		source string
		target string
	}{
		{
			source: "CREATE TABLE a.t (x INT); CREATE TABLE a.u (y INT); CREATE VIEW a.v (x) AS SELECT 1;",
			target: "CREATE TABLE a.t (x INT); CREATE VIEW a.v (x INT) AS SELECT 1;",
		},
		{
			source: "CREATE TABLE a.t (x INT, y NUMBER(38, 0)); CREATE TABLE b.t (x INT);",
			target: "CREATE TABLE a.t (x INT, y NUMBER(38, 2)); CREATE TABLE b.t (x INT);",
		},
		{
			source: "",
			target: "CREATE TABLE a.t (x INT);",
		},
	}

	for _, f := range fixtures {
		source, target := extract(t, f.source), extract(t, f.target)
		got := MissingObjects(source, target)

		// o is reported iff it is missing from target or owns a column missing from target
		want := map[schema.ObjectID]bool{}
		for _, o := range source.Objects.Values() {
			if !target.Objects.Contains(o) {
				want[o] = true
			}
		}
		for _, c := range source.Columns.Values() {
			if !target.Columns.Contains(c) {
				want[c.Object] = true
			}
		}

		require.Len(t, got, len(want))
		for _, o := range got {
			require.True(t, want[o], o)
		}
		require.IsNonDecreasing(t, got)
	}
}

func TestDiff_Deterministic(t *testing.T) {
	sourceSQL := `CREATE TABLE db.s.b (x INT, y INT);
CREATE TABLE db.s.a (x INT);
CREATE VIEW db.s.v (x VARCHAR) AS SELECT x FROM db.s.a;`
	targetSQL := `CREATE TABLE db.s.b (x INT);
CREATE VIEW db.s.v (x) AS SELECT x FROM db.s.a;`

	first, err := Diff(extract(t, sourceSQL), extract(t, targetSQL))
	require.NoError(t, err)
	require.Len(t, first, 3)

	for range 5 {
		again, err := Diff(extract(t, sourceSQL), extract(t, targetSQL))
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(first, again))
	}
}
