package campus_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	campus "github.com/alqalam/campus-cms"
	"github.com/alqalam/campus-cms/pkg/testsupport"
)

// The schema files run unmodified on both sqlite and Postgres, so they must
// stay inside the shared dialect subset. Postgres rejects jsonb-cast
// defaults on TEXT columns outright.
func TestMigrationFilesAvoidDialectCasts(t *testing.T) {
	entries, err := fs.Glob(campus.GetMigrationsFS(), "data/sql/migrations/*.sql")
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("no embedded migration files found")
	}
	for _, path := range entries {
		raw, err := fs.ReadFile(campus.GetMigrationsFS(), path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if strings.Contains(strings.ToLower(string(raw)), "::jsonb") {
			t.Fatalf("%s carries a jsonb cast; the columns are TEXT on both backends", path)
		}
	}
}

func TestRunMigrationsAppliesCleanly(t *testing.T) {
	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	defer sqlDB.Close()

	if err := campus.RunMigrations(context.Background(), sqlDB); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	// Column defaults must let a minimal insert through; every list-like
	// column carries an explicit default instead of relying on NULL.
	if _, err := sqlDB.Exec(
		`INSERT INTO page_sections (id, page_key, section_key) VALUES (?, ?, ?)`,
		"00000000-0000-0000-0000-000000000001", "home", "stats",
	); err != nil {
		t.Fatalf("minimal insert should satisfy column defaults: %v", err)
	}
}
