// Package repository persists incident records behind a small interface so
// the pipeline never touches SQL directly. The backend is selected by DSN:
// a postgres:// URL opens PostgreSQL via pgx, anything else is a local
// SQLite file.
package repository

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/enviro-data/incident-etl/internal/common"
	"github.com/enviro-data/incident-etl/internal/repository/migrations"
)

// DB wraps the SQL connection plus the migration state shared by the
// repositories built on it.
type DB struct {
	db  *sql.DB
	log *slog.Logger
}

// Open connects to the configured database, verifies the connection and runs
// any pending migrations. The caller owns the returned handle and must Close
// it.
func Open(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		db  *sql.DB
		err error
	)
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		db, err = sql.Open("pgx", cfg.DSN)
	case cfg.DSN != "":
		return nil, common.NewAppError("CONFIG_ERROR",
			fmt.Sprintf("unsupported DSN scheme in %q", cfg.DSN), common.ErrInvalidInput)
	default:
		if mkErr := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); mkErr != nil {
			return nil, fmt.Errorf("creating database directory: %w", mkErr)
		}
		db, err = sql.Open("sqlite", cfg.Path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)")
	}
	if err != nil {
		return nil, common.WrapError(err, "opening database")
	}

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, common.WrapError(err, "pinging database")
	}

	d := &DB{db: db, log: logger}
	if err := d.migrate(ctx, migrations.FS); err != nil {
		db.Close()
		return nil, common.WrapError(err, "running migrations")
	}
	return d, nil
}

// Close closes the underlying connection pool.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping verifies the connection is still alive.
func (d *DB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// migrate applies all embedded *.up.sql files newer than the recorded schema
// version, in filename order.
func (d *DB) migrate(ctx context.Context, fsys embed.FS) error {
	_, err := d.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := d.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := d.db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := d.db.ExecContext(ctx,
			"INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
		d.log.Info("applied migration", "file", name, "version", version)
	}

	return nil
}
