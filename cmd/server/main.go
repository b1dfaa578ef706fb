// Command server runs the campus content API: the admin surface under /admin
// and the localized public endpoints at the root.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	campus "github.com/alqalam/campus-cms"
	"github.com/alqalam/campus-cms/internal/logging/gologger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func run() error {
	// Missing .env just means the environment carries the settings.
	_ = godotenv.Load()

	cfg := configFromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return err
	}

	opts := []campus.Option{campus.WithLoggerProvider(provider)}

	if cfg.Database.Driver != "" {
		bunDB, err := openDatabase(cfg.Database)
		if err != nil {
			return err
		}
		defer bunDB.Close()

		if err := campus.RunMigrations(context.Background(), bunDB.DB); err != nil {
			return err
		}

		cacheService, err := repocache.NewCacheService(repocache.DefaultConfig())
		if err != nil {
			return err
		}
		opts = append(opts,
			campus.WithBunDB(bunDB),
			campus.WithCache(cacheService, repocache.NewDefaultKeySerializer()),
		)
	}

	module, err := campus.New(cfg, opts...)
	if err != nil {
		return err
	}

	server, err := module.HTTPServer("campus-cms")
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Listen(cfg.HTTP.Addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func openDatabase(dbCfg campus.DatabaseConfig) (*bun.DB, error) {
	sqlDB, err := sql.Open(dbCfg.Driver, dbCfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dbCfg.Driver, err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping %s database: %w", dbCfg.Driver, err)
	}
	switch dbCfg.Driver {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		db := bun.NewDB(sqlDB, sqlitedialect.New())
		db.SetMaxOpenConns(1)
		return db, nil
	}
}

func configFromEnv() campus.Config {
	cfg := campus.DefaultConfig()

	setString(&cfg.Environment, "CAMPUS_ENV")
	setString(&cfg.PublicBaseURL, "CAMPUS_PUBLIC_BASE_URL")
	setString(&cfg.Database.Driver, "CAMPUS_DB_DRIVER")
	setString(&cfg.Database.DSN, "CAMPUS_DB_DSN")
	setString(&cfg.HTTP.Addr, "CAMPUS_HTTP_ADDR")
	setString(&cfg.HTTP.JWTSecret, "CAMPUS_JWT_SECRET")
	setString(&cfg.Logging.Level, "CAMPUS_LOG_LEVEL")
	setString(&cfg.Logging.Format, "CAMPUS_LOG_FORMAT")
	setString(&cfg.NewsDir, "CAMPUS_NEWS_DIR")

	if raw := os.Getenv("CAMPUS_LOG_ADD_SOURCE"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			cfg.Logging.AddSource = parsed
		}
	}
	return cfg
}

func setString(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}
