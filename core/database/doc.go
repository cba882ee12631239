// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) that
// configures either a single-file sqlite database (the default) or a MySQL
// connection based on the application's configuration.
//
// # Connect
//
// The generic Connect function establishes a connection to the database.
// Unique-constraint violations are translated to gorm.ErrDuplicatedKey so
// callers can map them to a conflict outcome without driver-specific checks.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, used by the
// migrate command to report the effective table layout after migration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "students")
package database
