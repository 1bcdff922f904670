package domain

import (
	"context"
	"time"
)

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is one message in a conversation. Turns are only ever
// appended in user/assistant pairs.
type ConversationTurn struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationRepository is the port for conversation persistence.
type ConversationRepository interface {
	// AppendExchange appends the user turn immediately followed by the
	// assistant turn, both timestamped at call time. The pair is atomic: a
	// concurrent reader never sees the user turn without its reply.
	AppendExchange(ctx context.Context, sessionKey, userText, assistantText string) error
	// Recent returns the last limit turns, oldest first. An unknown
	// session yields an empty sequence.
	Recent(ctx context.Context, sessionKey string, limit int) ([]ConversationTurn, error)
	// History returns the full turn sequence, oldest first.
	History(ctx context.Context, sessionKey string) ([]ConversationTurn, error)
}
