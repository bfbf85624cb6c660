// Package utils provides common utility functions used throughout the snowdiff codebase.
//
// # Identifier Utilities (identifier.go)
//
// Snowflake identifiers may be wrapped in double quotes, in which case a literal
// quote is written as two quotes. The helpers here strip that quoting so that
// canonical object and column identities never depend on how a name was quoted:
//
//	utils.Unquote(`"My Table"`)      // My Table
//	utils.Unquote(`"say ""hi"""`)    // say "hi"
//	utils.Unquote("events")          // events
//
// # Ordered Sets (orderedset.go)
//
// OrderedSet is an insertion-ordered set. Duplicates are ignored and the first
// seen position is kept, which makes iteration deterministic for a given input:
//
//	set := utils.NewOrderedSet[string]()
//	set.Add("b")
//	set.Add("a")
//	set.Add("b")
//	set.Values() // [b a]
package utils
