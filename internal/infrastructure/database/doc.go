// Package database provides SQLite connectivity for the heat-flow store.
//
// This package manages:
//   - The single-file database connection, with WAL mode for concurrent reads
//   - Schema creation via embedded migrations (see the migrations package)
//   - Connection lifecycle and health checks
//
// All queries use parameterised statements and the database file is
// created with 0600 permissions. The connection pool is capped at one
// connection: SQLite permits many readers but only one writer, and a
// single connection keeps per-operation transaction scopes simple.
//
// Usage:
//
//	db, err := database.Open(ctx, cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    return err
//	}
package database
