package campus

import (
	"errors"
	"time"
)

var (
	ErrDatabaseDriverUnknown = errors.New("campus config: database driver must be sqlite3 or postgres")
	ErrDatabaseDSNRequired   = errors.New("campus config: database dsn is required")
	ErrLoggingLevelInvalid   = errors.New("campus config: logging level is invalid")
	ErrLoggingFormatInvalid  = errors.New("campus config: logging format is invalid")
)

// DatabaseConfig selects the storage backend. An empty driver runs the
// module on in-memory repositories, which is how tests and demos operate.
type DatabaseConfig struct {
	Driver string
	DSN    string
}

// HTTPConfig carries the settings forwarded to the HTTP layer.
type HTTPConfig struct {
	Addr         string
	JWTSecret    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LoggingConfig configures the go-logger provider.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// Config is the root module configuration.
type Config struct {
	Environment   string
	PublicBaseURL string
	Database      DatabaseConfig
	HTTP          HTTPConfig
	Logging       LoggingConfig
	// NewsDir is the markdown content directory consumed by the news
	// importer. Empty disables imports.
	NewsDir string
}

// DefaultConfig returns a configuration suitable for local development.
func DefaultConfig() Config {
	return Config{
		Environment:   "development",
		PublicBaseURL: "http://localhost:3000",
		HTTP: HTTPConfig{
			Addr:         ":3000",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

var (
	validLevels  = map[string]struct{}{"": {}, "trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {}}
	validFormats = map[string]struct{}{"": {}, "console": {}, "json": {}}
)

// Validate rejects configurations the module cannot run with.
func (c Config) Validate() error {
	switch c.Database.Driver {
	case "", "sqlite3", "postgres":
	default:
		return ErrDatabaseDriverUnknown
	}
	if c.Database.Driver != "" && c.Database.DSN == "" {
		return ErrDatabaseDSNRequired
	}
	if _, ok := validLevels[c.Logging.Level]; !ok {
		return ErrLoggingLevelInvalid
	}
	if _, ok := validFormats[c.Logging.Format]; !ok {
		return ErrLoggingFormatInvalid
	}
	return nil
}
