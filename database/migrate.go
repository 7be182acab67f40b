package database

import (
	"database/sql"
	_ "embed"
	"strings"
)

//go:embed schema.sql
var schema string

// Migrate replays the embedded schema file statement by statement, in
// textual order. The statements are IF NOT EXISTS guarded; there is no
// version tracking.
func Migrate(db *sql.DB) error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
