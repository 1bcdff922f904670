package postgres

import (
	"context"
	"database/sql"
	"time"

	"healthchat/internal/domain"
)

// AppendExchange inserts the user turn and the assistant reply in one
// transaction so readers never observe a half-appended pair.
func (d *DB) AppendExchange(ctx context.Context, sessionKey, userText, assistantText string) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	const insert = "INSERT INTO conversation_turns(session_key, role, text, created_at) VALUES($1, $2, $3, $4);"
	if _, err := tx.ExecContext(ctx, insert, sessionKey, domain.RoleUser, userText, now); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, insert, sessionKey, domain.RoleAssistant, assistantText, now); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Recent returns the last limit turns, oldest first.
func (d *DB) Recent(ctx context.Context, sessionKey string, limit int) ([]domain.ConversationTurn, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT role, text, created_at FROM (SELECT seq, role, text, created_at FROM conversation_turns WHERE session_key=$1 ORDER BY seq DESC LIMIT $2) t ORDER BY seq;",
		sessionKey, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTurns(rows)
}

// History returns the full turn sequence, oldest first.
func (d *DB) History(ctx context.Context, sessionKey string) ([]domain.ConversationTurn, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT role, text, created_at FROM conversation_turns WHERE session_key=$1 ORDER BY seq;", sessionKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTurns(rows)
}

func scanTurns(rows *sql.Rows) ([]domain.ConversationTurn, error) {
	out := []domain.ConversationTurn{}
	for rows.Next() {
		var t domain.ConversationTurn
		if err := rows.Scan(&t.Role, &t.Text, &t.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
