package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

// Migrate applies the goose SQL migrations at the root of fsys and returns
// the paths of the migrations it applied. A directory without migrations is
// not an error.
func Migrate(ctx context.Context, conn *sql.DB, fsys fs.FS) ([]string, error) {
	provider, err := goose.NewProvider(goose.DialectSQLite3, conn, fsys)
	if errors.Is(err, goose.ErrNoMigrations) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading migrations: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("applying migrations: %w", err)
	}

	applied := make([]string, 0, len(results))
	for _, r := range results {
		slog.Debug("Applied migration", "source", r.Source.Path, "duration", r.Duration)
		applied = append(applied, r.Source.Path)
	}
	return applied, nil
}
