// Package compare provides generic set comparison helpers used by the schema differ.
//
// The differ works in terms of set difference: identities present on one side and
// absent on the other. These helpers keep that logic small and type-safe while
// preserving deterministic output.
//
// # Usage Examples
//
// Find values of a source slice that a target set does not contain:
//
//	missing := compare.Missing(source.Objects.Values(), target.Objects)
//
// Project values onto a key before testing membership:
//
//	owners := compare.MissingBy(source.Columns.Values(), target.Columns, func(c ColumnID) ObjectID {
//	    return c.Object
//	})
//
// Merge several result slices into a sorted, duplicate-free slice:
//
//	ids := compare.SortedUnion(missingObjects, owners)
package compare
