package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"rift-scout/internal/config"
	"rift-scout/internal/constants"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// The CLI is the only writer, so the pool holds one connection and each
// invocation stays short. busy_timeout tracks the per-call deadline.
var pragmas = []struct {
	name  string
	value string
}{
	{"journal_mode", "WAL"},
	{"synchronous", "NORMAL"},
	{"busy_timeout", fmt.Sprint(constants.DatabaseTimeout.Milliseconds())},
}

// New opens the history database at cfg.DBPath, creating its directory when
// needed, and brings the schema up to date. Every step runs under
// constants.DatabaseTimeout so a locked file fails the command instead of
// hanging it.
func New(cfg *config.ClientConfig, logger zerolog.Logger) (*sql.DB, error) {
	logger = logger.With().Str("path", cfg.DBPath).Logger()

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	db.SetMaxOpenConns(constants.DBMaxOpenConns)
	db.SetMaxIdleConns(constants.DBMaxIdleConns)
	db.SetConnMaxLifetime(constants.DBConnMaxLifetime)
	db.SetConnMaxIdleTime(constants.DBMaxIdleTime)

	if err := prepare(db, logger); err != nil {
		db.Close()
		logger.Error().Err(err).Msg("history database unavailable")
		return nil, err
	}
	return db, nil
}

func prepare(db *sql.DB, logger zerolog.Logger) error {
	for _, p := range pragmas {
		if err := withTimeout(func(ctx context.Context) error {
			_, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA %s = %s", p.name, p.value))
			return err
		}); err != nil {
			return fmt.Errorf("failed to set PRAGMA %s: %w", p.name, err)
		}
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	var version int64
	err := withTimeout(func(ctx context.Context) error {
		if err := goose.UpContext(ctx, db, "migrations"); err != nil {
			return err
		}
		v, err := goose.GetDBVersionContext(ctx, db)
		version = v
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to migrate history database: %w", err)
	}

	logger.Debug().Int64("schema_version", version).Msg("history database ready")
	return nil
}

func withTimeout(fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), constants.DatabaseTimeout)
	defer cancel()
	return fn(ctx)
}
