// Package database handles database connections and schema inspection.
//
// It wraps GORM to open either a MySQL server or a SQLite file from the application's
// configuration. The database backs the staging area where pending menu changes live.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table on both dialects. The integrity feature
// uses it to verify that the staging table matches the expected layout.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database unavailable, staging in memory", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "staging_entries")
package database
