package store

import (
	"database/sql"
	"time"
)

// timeFormat is the storage format for all timestamp columns.
//
// The fractional part is fixed width (nine digits) and the zone is
// always Z, so lexicographic comparison of stored TEXT values matches
// chronological order and exact-equality lookups are reliable.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

// Store is the query engine over the heat-flow schema.
//
// It is safe for concurrent use from multiple goroutines; SQLite
// serializes writers underneath. Each public method is its own
// transaction scope — sequences of calls are not atomic as a unit.
type Store struct {
	db *sql.DB
}

// New creates a Store over an open database. The schema must already
// exist (see the database package's migration runner).
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ready guards operations invoked before a database is attached.
func (s *Store) ready() error {
	if s == nil || s.db == nil {
		return ErrNotInitialized
	}
	return nil
}

// formatTime normalizes a timestamp for storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

// parseTime reads a stored timestamp. The second-granularity fallback
// covers rows created by the schema's strftime defaults.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05Z", s)
		if err != nil {
			return time.Time{}
		}
	}
	return t
}

// nullStr converts an optional string to sql.NullString, with ""
// meaning unset.
func nullStr(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
