package campus

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed data/sql/migrations/*.sql
var migrationsFS embed.FS

// GetMigrationsFS returns the embedded migration files for this package.
func GetMigrationsFS() embed.FS {
	return migrationsFS
}

// RunMigrations applies every embedded *.up.sql file in lexical order.
// Statements are separated by "---bun:split" markers. The files are written
// in the dialect subset shared by sqlite and Postgres, so the same schema
// applies to both backends.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	entries, err := fs.Glob(migrationsFS, "data/sql/migrations/*.up.sql")
	if err != nil {
		return fmt.Errorf("campus: list migrations: %w", err)
	}
	sort.Strings(entries)

	for _, path := range entries {
		raw, err := fs.ReadFile(migrationsFS, path)
		if err != nil {
			return fmt.Errorf("campus: read migration %s: %w", path, err)
		}
		for _, chunk := range strings.Split(string(raw), "---bun:split") {
			statement := strings.TrimSpace(chunk)
			if statement == "" {
				continue
			}
			if _, err := db.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("campus: apply migration %s: %w", path, err)
			}
		}
	}
	return nil
}
