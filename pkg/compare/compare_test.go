package compare_test

import (
	"strings"
	"testing"

	. "github.com/pseudomuto/snowdiff/pkg/compare"
	"github.com/pseudomuto/snowdiff/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestMissing(t *testing.T) {
	tests := []struct {
		name     string
		source   []string
		target   []string
		expected []string
	}{
		{
			name:     "nothing missing",
			source:   []string{"a", "b"},
			target:   []string{"b", "a"},
			expected: nil,
		},
		{
			name:     "empty target",
			source:   []string{"a", "b"},
			target:   nil,
			expected: []string{"a", "b"},
		},
		{
			name:     "keeps source order",
			source:   []string{"d", "a", "c", "b"},
			target:   []string{"a", "c"},
			expected: []string{"d", "b"},
		},
		{
			name:     "empty source",
			source:   nil,
			target:   []string{"a"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Missing(tt.source, utils.NewOrderedSet(tt.target...))
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestMissingBy(t *testing.T) {
	source := []string{"t.a", "t.b", "u.a"}
	target := utils.NewOrderedSet("t.a")

	owners := MissingBy(source, target, func(s string) string {
		return strings.SplitN(s, ".", 2)[0]
	})

	require.Equal(t, []string{"t", "u"}, owners)
}

func TestSortedUnion(t *testing.T) {
	tests := []struct {
		name     string
		sets     [][]string
		expected []string
	}{
		{
			name:     "no input",
			sets:     nil,
			expected: nil,
		},
		{
			name:     "single set is sorted",
			sets:     [][]string{{"c", "a", "b"}},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "duplicates across sets",
			sets:     [][]string{{"b", "a"}, {"a", "c", "b"}},
			expected: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, SortedUnion(tt.sets...))
		})
	}
}
