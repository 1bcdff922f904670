// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sync"
	"time"

	"healthchat/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu           sync.Mutex
	measurements map[string][]domain.MeasurementRecord
	turns        map[string][]domain.ConversationTurn
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		measurements: make(map[string][]domain.MeasurementRecord),
		turns:        make(map[string][]domain.ConversationTurn),
	}
}

// Ensure interfaces are met.
var _ domain.MeasurementRepository = (*DB)(nil)
var _ domain.ConversationRepository = (*DB)(nil)

// --- MeasurementRepository ---

// Append appends a measurement to the user's sequence. Existing records are
// never reordered; back-dated timestamps stay where they were inserted.
func (db *DB) Append(ctx context.Context, userKey string, rec domain.MeasurementRecord) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.measurements[userKey] = append(db.measurements[userKey], rec)
	return nil
}

// ListAll returns the user's full history in insertion order. Unknown users
// yield an empty slice.
func (db *DB) ListAll(ctx context.Context, userKey string) ([]domain.MeasurementRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	src := db.measurements[userKey]
	// copy so callers can't mutate the store
	result := make([]domain.MeasurementRecord, len(src))
	copy(result, src)
	return result, nil
}

// --- ConversationRepository ---

// AppendExchange appends the user turn and the assistant reply as one unit.
// Both turns land inside a single critical section, so a reader never sees
// the user turn without its reply.
func (db *DB) AppendExchange(ctx context.Context, sessionKey, userText, assistantText string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	now := time.Now().UTC()
	db.turns[sessionKey] = append(db.turns[sessionKey],
		domain.ConversationTurn{Role: domain.RoleUser, Text: userText, Timestamp: now},
		domain.ConversationTurn{Role: domain.RoleAssistant, Text: assistantText, Timestamp: now},
	)
	return nil
}

// Recent returns the last limit turns, oldest first.
func (db *DB) Recent(ctx context.Context, sessionKey string, limit int) ([]domain.ConversationTurn, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	src := db.turns[sessionKey]
	if limit > 0 && len(src) > limit {
		src = src[len(src)-limit:]
	}
	result := make([]domain.ConversationTurn, len(src))
	copy(result, src)
	return result, nil
}

// History returns the full turn sequence, oldest first.
func (db *DB) History(ctx context.Context, sessionKey string) ([]domain.ConversationTurn, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	src := db.turns[sessionKey]
	result := make([]domain.ConversationTurn, len(src))
	copy(result, src)
	return result, nil
}
