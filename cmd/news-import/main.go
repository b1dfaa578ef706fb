// Command news-import loads markdown documents with bilingual frontmatter and
// upserts them as news articles.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	campus "github.com/alqalam/campus-cms"
	"github.com/alqalam/campus-cms/internal/logging"
	"github.com/alqalam/campus-cms/internal/logging/gologger"
	"github.com/alqalam/campus-cms/internal/markdown"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("news-import: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()

	dir := flag.String("dir", "", "directory of markdown documents (defaults to CAMPUS_NEWS_DIR)")
	driver := flag.String("driver", os.Getenv("CAMPUS_DB_DRIVER"), "database driver: sqlite3 or postgres")
	dsn := flag.String("dsn", os.Getenv("CAMPUS_DB_DSN"), "database DSN")
	flag.Parse()

	source := *dir
	if source == "" {
		source = os.Getenv("CAMPUS_NEWS_DIR")
	}
	if source == "" {
		return fmt.Errorf("no content directory: pass -dir or set CAMPUS_NEWS_DIR")
	}

	cfg := campus.DefaultConfig()
	cfg.Database = campus.DatabaseConfig{Driver: *driver, DSN: *dsn}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Database.Driver == "" {
		return fmt.Errorf("a database is required: memory mode would discard the import")
	}

	provider, err := gologger.NewProvider(gologger.Config{Level: "info", Format: "console"})
	if err != nil {
		return err
	}

	ctx := context.Background()

	sqlDB, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer sqlDB.Close()

	if err := campus.RunMigrations(ctx, sqlDB); err != nil {
		return err
	}

	var bunDB *bun.DB
	if cfg.Database.Driver == "postgres" {
		bunDB = bun.NewDB(sqlDB, pgdialect.New())
	} else {
		bunDB = bun.NewDB(sqlDB, sqlitedialect.New())
		bunDB.SetMaxOpenConns(1)
	}

	module, err := campus.New(cfg,
		campus.WithBunDB(bunDB),
		campus.WithLoggerProvider(provider),
	)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(source)
	if err != nil {
		return err
	}

	importer := markdown.NewImporter(module.Catalog(),
		markdown.WithLogger(logging.ImporterLogger(provider)),
	)
	result, err := importer.ImportDir(ctx, os.DirFS(abs), ".")
	if err != nil {
		return err
	}

	fmt.Printf("imported %d, skipped %d\n", result.Imported, result.Skipped)
	for _, importErr := range result.Errors {
		fmt.Fprintf(os.Stderr, "  %v\n", importErr)
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("%d document(s) failed", len(result.Errors))
	}
	return nil
}
