package parser

import "regexp"

var (
	// timestampAliases rename the underscore spellings of the timestamp types to the
	// forms used in column identities.
	timestampAliases = []struct {
		pattern     *regexp.Regexp
		replacement string
	}{
		{regexp.MustCompile(`(?i)TIMESTAMP_NTZ`), "TIMESTAMPNTZ"},
		{regexp.MustCompile(`(?i)TIMESTAMP_LTZ`), "TIMESTAMPLTZ"},
		{regexp.MustCompile(`(?i)TIMESTAMP_TZ`), "TIMESTAMPTZ"},
	}

	// unsupportedReplace matches CREATE OR REPLACE statements for object kinds that
	// are never compared, up to and including the first semicolon.
	unsupportedReplace = regexp.MustCompile(`(?is)create\s+or\s+replace\s+(schema|database|task|procedure)\b.*?;`)
)

// Preprocess rewrites raw DDL so that it can be handled by ParseString. It
//
//  1. renames TIMESTAMP_NTZ, TIMESTAMP_LTZ and TIMESTAMP_TZ to TIMESTAMPNTZ,
//     TIMESTAMPLTZ and TIMESTAMPTZ
//  2. removes every CREATE OR REPLACE {SCHEMA|DATABASE|TASK|PROCEDURE} statement,
//     including its terminating semicolon
//
// All rewrites are case-insensitive. Preprocess never fails and running it on its own
// output changes nothing.
//
// Example:
//
//	parser.Preprocess("CREATE OR REPLACE SCHEMA raw;\nCREATE TABLE raw.t (ts TIMESTAMP_NTZ);")
//	// "\nCREATE TABLE raw.t (ts TIMESTAMPNTZ);"
func Preprocess(sql string) string {
	for _, alias := range timestampAliases {
		sql = alias.pattern.ReplaceAllLiteralString(sql, alias.replacement)
	}

	return unsupportedReplace.ReplaceAllLiteralString(sql, "")
}
