package app

import (
	"context"

	"healthchat/internal/domain"
)

// recentHistoryLimit caps the history slice returned alongside a chat reply.
const recentHistoryLimit = 10

// ChatService runs one chat exchange: classify the message against the
// user's measurements, compose a reply, and store the pair.
type ChatService struct {
	measurements  domain.MeasurementRepository
	conversations domain.ConversationRepository
	composer      *Composer
}

// NewChatService creates a ChatService backed by the given repositories and
// composer.
func NewChatService(m domain.MeasurementRepository, c domain.ConversationRepository, composer *Composer) *ChatService {
	return &ChatService{measurements: m, conversations: c, composer: composer}
}

// Send handles one inbound message and returns the reply plus the most
// recent turns (at most 10, including the exchange just stored).
func (s *ChatService) Send(ctx context.Context, userKey, sessionKey, text string) (string, []domain.ConversationTurn, error) {
	records, err := s.measurements.ListAll(ctx, userKey)
	if err != nil {
		return "", nil, err
	}

	reply := s.composer.Reply(MatchIntent(text, records))

	if err := s.conversations.AppendExchange(ctx, sessionKey, text, reply); err != nil {
		return "", nil, err
	}

	history, err := s.conversations.Recent(ctx, sessionKey, recentHistoryLimit)
	if err != nil {
		return "", nil, err
	}
	return reply, history, nil
}

// History returns the full conversation for a session, oldest first.
func (s *ChatService) History(ctx context.Context, sessionKey string) ([]domain.ConversationTurn, error) {
	return s.conversations.History(ctx, sessionKey)
}
