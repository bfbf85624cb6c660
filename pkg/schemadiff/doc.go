// Package schemadiff reports the tables and views of a source schema that are missing
// from, or differ in, a target schema.
//
// An object is reported when the target does not define it, or when one of its column
// identities (name and canonical type) is absent from the target. Results are sorted
// by object identity and carry a line diff from the target DDL to the source DDL:
//
//	source, _ := schema.Extract(sourceSQL)
//	target, _ := schema.Extract(targetSQL)
//
//	items, err := schemadiff.Diff(source, target)
//	if err != nil {
//		return err
//	}
//
//	for _, item := range items {
//		fmt.Printf(">> %s\n%s\n", item.Object, item.Diff)
//	}
//
// Compare and CompareAll accept raw DDL text and run extraction concurrently:
//
//	results, err := schemadiff.CompareAll(ctx, []schemadiff.Pair{
//		{Name: "core", Source: coreSrc, Target: coreTgt},
//		{Name: "marts", Source: martsSrc, Target: martsTgt},
//	})
//
// Nothing is reported for objects that exist only in the target.
package schemadiff
