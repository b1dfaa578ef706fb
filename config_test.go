package campus_test

import (
	"errors"
	"testing"

	campus "github.com/alqalam/campus-cms"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := campus.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestConfigRejectsUnknownDriver(t *testing.T) {
	cfg := campus.DefaultConfig()
	cfg.Database.Driver = "oracle"
	if err := cfg.Validate(); !errors.Is(err, campus.ErrDatabaseDriverUnknown) {
		t.Fatalf("expected ErrDatabaseDriverUnknown, got %v", err)
	}
}

func TestConfigRequiresDSNWithDriver(t *testing.T) {
	cfg := campus.DefaultConfig()
	cfg.Database.Driver = "sqlite3"
	cfg.Database.DSN = ""
	if err := cfg.Validate(); !errors.Is(err, campus.ErrDatabaseDSNRequired) {
		t.Fatalf("expected ErrDatabaseDSNRequired, got %v", err)
	}
}

func TestConfigRejectsBadLogging(t *testing.T) {
	cfg := campus.DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, campus.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg = campus.DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, campus.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestConfigAllowsMemoryMode(t *testing.T) {
	cfg := campus.DefaultConfig()
	cfg.Database = campus.DatabaseConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("memory mode should validate, got %v", err)
	}
}
