package journal

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the latest schema version supported by the migrator.
const SchemaVersion = 1

// Migrate ensures the journal schema exists and is upgraded to SchemaVersion.
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migrate: db is nil")
	}

	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY);`)
	if err != nil {
		return fmt.Errorf("migrate: create schema_migrations: %w", err)
	}

	var current int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current)
	if err != nil {
		return fmt.Errorf("migrate: read current version: %w", err)
	}

	if current >= SchemaVersion {
		return nil
	}

	transaction, err := db.Begin()
	if err != nil {
		return fmt.Errorf("migrate: begin transaction: %w", err)
	}
	defer func() {
		_ = transaction.Rollback()
	}()

	_, err = transaction.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			subject TEXT NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			duration_seconds INTEGER NOT NULL,
			emotion TEXT NULL,
			synced INTEGER NOT NULL DEFAULT 0
		);
	`)
	if err != nil {
		return fmt.Errorf("migrate: create sessions table: %w", err)
	}

	_, err = transaction.Exec(`CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);`)
	if err != nil {
		return fmt.Errorf("migrate: create idx_sessions_ended_at: %w", err)
	}

	_, err = transaction.Exec(`CREATE INDEX IF NOT EXISTS idx_sessions_synced ON sessions(synced, ended_at);`)
	if err != nil {
		return fmt.Errorf("migrate: create idx_sessions_synced: %w", err)
	}

	_, err = transaction.Exec(`INSERT INTO schema_migrations(version) VALUES (?);`, SchemaVersion)
	if err != nil {
		return fmt.Errorf("migrate: record schema version: %w", err)
	}

	if err := transaction.Commit(); err != nil {
		return fmt.Errorf("migrate: commit transaction: %w", err)
	}

	return nil
}
