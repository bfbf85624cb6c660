// Package project creates the standard snowdiff repository layout.
//
// A project keeps the DDL of both sides of a comparison next to its configuration:
//
//	project-root/
//	├── snowdiff.yaml       # formats, aliases and comparisons
//	└── ddl/
//	    ├── source/         # desired state, every .sql file is read
//	    │   └── main.sql
//	    └── target/         # state to compare against
//	        └── main.sql
//
// Initialize is idempotent and only creates what is missing, so it can be run in an existing
// repository to add the configuration file.
package project
