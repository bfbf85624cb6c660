// Package report writes schemadiff results for people and machines.
//
// Four formats are supported:
//
//   - text: a ">> <object>" header followed by the line diff, one block per object
//   - json: an indented array of {"object", "diff"} values
//   - yaml: a list of the same values
//   - unified: a unified patch per object, from target/<object> to source/<object>
//
// Usage:
//
//	f, err := report.ParseFormat("unified")
//	if err != nil {
//		return err
//	}
//
//	err = report.Write(os.Stdout, f, items)
package report
