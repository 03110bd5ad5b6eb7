package advisor

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Options controls Core initialization.
type Options struct {
	// AI is the provider configuration. A zero value disables the AI
	// path and every request is served from the mock generator.
	AI AIConfig
	// AuditDBPath, when set, enables the SQLite inference audit log.
	AuditDBPath string
	Logger      *slog.Logger
}

// Core provides the recommendation service and its supporting state.
// It holds no per-request mutable state; one Core serves all requests.
type Core struct {
	ai     AIConfig
	db     *sql.DB
	logger *slog.Logger
}

// OpenWithOptions initializes a Core. The audit database is optional;
// without it the service runs purely in memory.
func OpenWithOptions(opts Options) (*Core, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var db *sql.DB
	if opts.AuditDBPath != "" {
		cleanPath := filepath.Clean(opts.AuditDBPath)
		if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
			return nil, fmt.Errorf("create audit db dir: %w", err)
		}
		var err error
		db, err = sql.Open("sqlite", cleanPath)
		if err != nil {
			return nil, fmt.Errorf("open audit db: %w", err)
		}
		// SQLite performs best with a single writer.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
			logger.Warn("pragma busy_timeout failed", "err", err)
		}
		if err := initAuditSchema(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init audit schema: %w", err)
		}
	}

	return &Core{
		ai:     opts.AI,
		db:     db,
		logger: logger,
	}, nil
}

// Close releases database resources.
func (c *Core) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// AIEnabled reports whether the AI path is configured.
func (c *Core) AIEnabled() bool {
	return c.ai.Enabled()
}

// Logger returns the Core's logger.
func (c *Core) Logger() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}
