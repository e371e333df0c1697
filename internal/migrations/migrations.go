package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

const migrationsDir = "sql"

//go:embed sql/*.sql
var migrationsFS embed.FS

func Apply(ctx context.Context, db *sql.DB) error {
	if err := createHistoryTable(ctx, db); err != nil {
		return err
	}

	entries, err := fs.ReadDir(migrationsFS, migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		files = append(files, entry.Name())
	}

	sort.Strings(files)

	for _, filename := range files {
		applied, err := isMigrationApplied(ctx, db, filename)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		content, err := fs.ReadFile(migrationsFS, migrationsDir+"/"+filename)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", filename, err)
		}

		for stmt := range strings.SplitSeq(string(content), ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to execute migration %s: %w", filename, err)
			}
		}

		if err := markMigrationApplied(ctx, db, filename); err != nil {
			return err
		}
	}

	return nil
}

func createHistoryTable(ctx context.Context, db *sql.DB) error {
	const query = `CREATE TABLE IF NOT EXISTS schema_migrations (
		filename TEXT PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}
	return nil
}

func isMigrationApplied(ctx context.Context, db *sql.DB, filename string) (bool, error) {
	const query = `SELECT COUNT(*) FROM schema_migrations WHERE filename = ?`
	var count int
	if err := db.QueryRowContext(ctx, query, filename).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check migration %s: %w", filename, err)
	}
	return count > 0, nil
}

func markMigrationApplied(ctx context.Context, db *sql.DB, filename string) error {
	const query = `INSERT INTO schema_migrations (filename) VALUES (?)`
	if _, err := db.ExecContext(ctx, query, filename); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", filename, err)
	}
	return nil
}
