package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"classroom-player/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.up.sql
var migrationFiles embed.FS

const (
	migrationTableExistsQuery = `SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`
	createMigrationTable      = `CREATE TABLE schema_migrations (version VARCHAR2(255) PRIMARY KEY, applied_at TIMESTAMP DEFAULT SYSTIMESTAMP NOT NULL)`
	migrationAppliedQuery     = `SELECT COUNT(*) FROM schema_migrations WHERE version = :1`
	recordMigration           = `INSERT INTO schema_migrations (version) VALUES (:1)`
)

// RunMigrations applies every embedded *.up.sql file that has not been
// applied yet, in file name order. It returns the versions it applied.
func RunMigrations(ctx context.Context, db *sqlx.DB) ([]string, error) {
	return runMigrations(ctx, db, migrationFiles)
}

func runMigrations(ctx context.Context, db *sqlx.DB, files fs.FS) ([]string, error) {
	if err := ensureMigrationTable(ctx, db); err != nil {
		return nil, err
	}

	names, err := fs.Glob(files, "migrations/*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("could not list migrations: %w", err)
	}
	sort.Strings(names)

	var applied []string
	for _, name := range names {
		version := strings.TrimSuffix(strings.TrimPrefix(name, "migrations/"), ".up.sql")

		var count int
		if err := db.GetContext(ctx, &count, migrationAppliedQuery, version); err != nil {
			return applied, fmt.Errorf("could not check migration %s: %w", version, err)
		}
		if count > 0 {
			continue
		}

		content, err := fs.ReadFile(files, name)
		if err != nil {
			return applied, fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		if err := applyMigration(ctx, db, version, string(content)); err != nil {
			return applied, err
		}
		logger.Get().Info("Executed migration", zap.String("version", version))
		applied = append(applied, version)
	}

	logger.Get().Info("Migrations completed successfully", zap.Int("applied", len(applied)))
	return applied, nil
}

func ensureMigrationTable(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, migrationTableExistsQuery); err != nil {
		return fmt.Errorf("could not inspect migration table: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := db.ExecContext(ctx, createMigrationTable); err != nil {
		return fmt.Errorf("could not create migration table: %w", err)
	}
	return nil
}

// applyMigration runs the statements of one file. Oracle DDL commits
// implicitly, so a failed file may be partially applied.
func applyMigration(ctx context.Context, db *sqlx.DB, version, content string) error {
	for _, stmt := range splitStatements(content) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not execute migration %s: %w", version, err)
		}
	}
	if _, err := db.ExecContext(ctx, recordMigration, version); err != nil {
		return fmt.Errorf("could not record migration %s: %w", version, err)
	}
	return nil
}

// splitStatements splits a file on ';'. The go-ora driver executes a single
// statement per call and rejects a trailing semicolon.
func splitStatements(content string) []string {
	var stmts []string
	for _, part := range strings.Split(content, ";") {
		var lines []string
		for _, line := range strings.Split(part, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "--") {
				continue
			}
			lines = append(lines, line)
		}
		if stmt := strings.TrimSpace(strings.Join(lines, "\n")); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
