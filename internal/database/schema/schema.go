package schema

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

// The four application tables. Timestamps are stored as RFC3339 text on both
// backends so repositories scan and format them identically.
var postgresTables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		email TEXT PRIMARY KEY,
		name TEXT,
		picture TEXT,
		role TEXT,
		last_login TEXT,
		login_count INTEGER DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS reports (
		id BIGSERIAL PRIMARY KEY,
		user_email TEXT,
		role TEXT,
		content TEXT,
		created_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS saved_jobs (
		id BIGSERIAL PRIMARY KEY,
		user_email TEXT,
		title TEXT,
		company TEXT,
		location TEXT,
		url TEXT,
		created_at TEXT,
		UNIQUE (user_email, url)
	)`,
	`CREATE TABLE IF NOT EXISTS job_cache (
		search_key TEXT PRIMARY KEY,
		json_data TEXT,
		updated_at TEXT
	)`,
}

var sqliteTables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		email TEXT PRIMARY KEY,
		name TEXT,
		picture TEXT,
		role TEXT,
		last_login TEXT,
		login_count INTEGER DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_email TEXT,
		role TEXT,
		content TEXT,
		created_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS saved_jobs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_email TEXT,
		title TEXT,
		company TEXT,
		location TEXT,
		url TEXT,
		created_at TEXT,
		UNIQUE (user_email, url)
	)`,
	`CREATE TABLE IF NOT EXISTS job_cache (
		search_key TEXT PRIMARY KEY,
		json_data TEXT,
		updated_at TEXT
	)`,
}

var dropStatements = []string{
	`DROP TABLE IF EXISTS reports`,
	`DROP TABLE IF EXISTS saved_jobs`,
	`DROP TABLE IF EXISTS job_cache`,
	`DROP TABLE IF EXISTS users`,
}

func tablesFor(d database.Dialect) ([]string, error) {
	switch d {
	case database.DialectPostgres:
		return postgresTables, nil
	case database.DialectSQLite:
		return sqliteTables, nil
	default:
		return nil, fmt.Errorf("unknown dialect %q", d)
	}
}

// EnsureTables creates any missing application tables. Run once at startup.
func EnsureTables(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	stmts, err := tablesFor(db.Dialect())
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Reset drops and recreates all tables with no data migration. Every cache
// entry returns to ABSENT, so each subsequent search goes to the external API
// once before re-populating.
func Reset(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, stmt := range dropStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	stmts, err := tablesFor(db.Dialect())
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
