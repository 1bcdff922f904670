// Package postgres implements the repository ports on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"healthchat/internal/domain"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Ensure interfaces are met.
var _ domain.MeasurementRepository = (*DB)(nil)
var _ domain.ConversationRepository = (*DB)(nil)

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	// seq is the insertion counter; ordering by it preserves insertion
	// order even for back-dated measurements.
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS measurements (seq BIGSERIAL PRIMARY KEY, record_id TEXT UNIQUE NOT NULL, user_key TEXT NOT NULL, metric TEXT NOT NULL, value TEXT NOT NULL, unit TEXT NOT NULL, ts TIMESTAMPTZ NOT NULL, notes TEXT NOT NULL DEFAULT '');",
		"CREATE INDEX IF NOT EXISTS idx_measurements_user_key ON measurements(user_key);",
		"CREATE TABLE IF NOT EXISTS conversation_turns (seq BIGSERIAL PRIMARY KEY, session_key TEXT NOT NULL, role TEXT NOT NULL CHECK(role IN ('user','assistant')), text TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_conversation_turns_session_key ON conversation_turns(session_key);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
