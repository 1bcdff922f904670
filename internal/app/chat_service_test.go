package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"healthchat/internal/app"
	"healthchat/internal/domain"
)

type mockConversationRepo struct {
	appendFn  func(ctx context.Context, sessionKey, userText, assistantText string) error
	recentFn  func(ctx context.Context, sessionKey string, limit int) ([]domain.ConversationTurn, error)
	historyFn func(ctx context.Context, sessionKey string) ([]domain.ConversationTurn, error)
}

func (m *mockConversationRepo) AppendExchange(ctx context.Context, sessionKey, userText, assistantText string) error {
	if m.appendFn != nil {
		return m.appendFn(ctx, sessionKey, userText, assistantText)
	}
	return nil
}

func (m *mockConversationRepo) Recent(ctx context.Context, sessionKey string, limit int) ([]domain.ConversationTurn, error) {
	if m.recentFn != nil {
		return m.recentFn(ctx, sessionKey, limit)
	}
	return nil, nil
}

func (m *mockConversationRepo) History(ctx context.Context, sessionKey string) ([]domain.ConversationTurn, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, sessionKey)
	}
	return nil, nil
}

func testComposer() *app.Composer {
	return app.NewComposerWithPick(func(int) int { return 0 })
}

func TestSend_StoresExchange(t *testing.T) {
	var gotUser, gotAssistant string
	conv := &mockConversationRepo{
		appendFn: func(_ context.Context, sessionKey, userText, assistantText string) error {
			if sessionKey != "s1" {
				t.Errorf("sessionKey = %q; want %q", sessionKey, "s1")
			}
			gotUser, gotAssistant = userText, assistantText
			return nil
		},
	}
	svc := app.NewChatService(fixedRepo(nil), conv, testComposer())

	reply, _, err := svc.Send(context.Background(), "u1", "s1", "help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUser != "help" {
		t.Errorf("stored user text = %q; want %q", gotUser, "help")
	}
	if gotAssistant != reply {
		t.Errorf("stored assistant text %q differs from reply %q", gotAssistant, reply)
	}
}

func TestSend_UsesMeasurementsForIntent(t *testing.T) {
	records := []domain.MeasurementRecord{
		{Type: domain.MetricWeight, Value: 70.0, Unit: "kg", Timestamp: time.Now()},
		{Type: domain.MetricWeight, Value: 68.0, Unit: "kg", Timestamp: time.Now()},
	}
	svc := app.NewChatService(fixedRepo(records), &mockConversationRepo{}, testComposer())

	reply, _, err := svc.Send(context.Background(), "u1", "s1", "what's my weight?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "68 kg") {
		t.Errorf("reply %q does not use latest measurement", reply)
	}
}

func TestSend_RecentCappedAtTen(t *testing.T) {
	conv := &mockConversationRepo{
		recentFn: func(_ context.Context, _ string, limit int) ([]domain.ConversationTurn, error) {
			if limit != 10 {
				t.Errorf("limit = %d; want 10", limit)
			}
			turns := make([]domain.ConversationTurn, limit)
			return turns, nil
		},
	}
	svc := app.NewChatService(fixedRepo(nil), conv, testComposer())

	_, history, err := svc.Send(context.Background(), "u1", "s1", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) > 10 {
		t.Errorf("history length = %d; want <= 10", len(history))
	}
}

func TestSend_MeasurementRepoError(t *testing.T) {
	repo := &mockMeasurementRepo{
		listFn: func(_ context.Context, _ string) ([]domain.MeasurementRecord, error) {
			return nil, errors.New("db down")
		},
	}
	svc := app.NewChatService(repo, &mockConversationRepo{}, testComposer())
	if _, _, err := svc.Send(context.Background(), "u1", "s1", "hello"); err == nil {
		t.Fatal("expected error")
	}
}

func TestSend_ConversationRepoError(t *testing.T) {
	conv := &mockConversationRepo{
		appendFn: func(_ context.Context, _, _, _ string) error {
			return errors.New("db down")
		},
	}
	svc := app.NewChatService(fixedRepo(nil), conv, testComposer())
	if _, _, err := svc.Send(context.Background(), "u1", "s1", "hello"); err == nil {
		t.Fatal("expected error")
	}
}

func TestHistory(t *testing.T) {
	conv := &mockConversationRepo{
		historyFn: func(_ context.Context, sessionKey string) ([]domain.ConversationTurn, error) {
			if sessionKey != "s9" {
				t.Errorf("sessionKey = %q; want %q", sessionKey, "s9")
			}
			return []domain.ConversationTurn{{Role: domain.RoleUser, Text: "hi"}}, nil
		},
	}
	svc := app.NewChatService(fixedRepo(nil), conv, testComposer())
	turns, err := svc.History(context.Background(), "s9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}
}
