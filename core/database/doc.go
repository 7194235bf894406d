// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// MySQL or SQLite connections from the application's configuration. The locale
// manager only stores small editor preferences, so SQLite is the default.
//
// # Connect
//
// Connect selects the dialector from Config.Driver, applies pool settings and pings
// the database. Open accepts any dialector, which lets tests run against go-sqlmock.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table on both dialects. The integrity feature
// uses it to verify the preferences table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Preferences disabled", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "preferences")
package database
