// Package schema turns Snowflake DDL text into the identities used for comparison.
//
// Extract runs the preprocessor, parses the result and walks the statements once,
// collecting:
//
//   - object identities (ObjectID) for every CREATE TABLE and CREATE VIEW, such as
//     analytics.public.events
//   - column identities (ColumnID) for each declared column, combining the owning
//     object, the column name and the canonical type text, such as
//     analytics.public.events.id-NUMBER(38,0)
//   - the source text of each object's defining statement, available through DDL
//
// Identities are kept in insertion ordered sets. The first component of every object
// name is lowercased and passed through a Normalizer, which can alias database names
// that differ between environments:
//
//	n := schema.NewNormalizer(map[string]string{"analytics_prod": "analytics"})
//	s, err := schema.Extract(sql, schema.WithNormalizer(n))
//
// Input usually comes from files. Load reads a single file or every .sql file below a
// directory, following "-- snowdiff:import <path>" directives:
//
//	sql, err := schema.Load("ddl/")
//	if err != nil {
//		return err
//	}
//
//	s, err := schema.Extract(sql)
package schema
