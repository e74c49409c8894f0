package db

import (
	"context"
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:embed schema_sqlite.sql schema_mysql.sql
var schemaFS embed.FS

// ApplySchema creates the tasks table if it does not exist yet. It runs at
// startup before the listener is opened.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	name := fmt.Sprintf("schema_%s.sql", db.DriverName())
	schemaSQL, err := schemaFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read schema %s: %w", name, err)
	}

	if _, err := db.ExecContext(ctx, string(schemaSQL)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	return nil
}
