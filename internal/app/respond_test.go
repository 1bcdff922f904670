package app_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"healthchat/internal/app"
	"healthchat/internal/domain"
)

func TestReply_GreetingDrawsFromFixedSet(t *testing.T) {
	for i := range app.Greetings {
		c := app.NewComposerWithPick(func(n int) int {
			if n != len(app.Greetings) {
				t.Fatalf("pick called with n=%d, want %d", n, len(app.Greetings))
			}
			return i
		})
		got := c.Reply(app.Intent{Kind: app.IntentGreeting})
		if got != app.Greetings[i] {
			t.Errorf("pick=%d: got %q, want %q", i, got, app.Greetings[i])
		}
	}
}

func TestReply_GreetingMembership(t *testing.T) {
	c := app.NewComposer()
	got := c.Reply(app.Intent{Kind: app.IntentGreeting})
	for _, g := range app.Greetings {
		if got == g {
			return
		}
	}
	t.Errorf("greeting %q not in fixed set", got)
}

func TestReply_MetricQueryUsesLastInserted(t *testing.T) {
	// The second record is back-dated: insertion order wins over timestamp
	// order on the query path.
	c := app.NewComposerWithPick(func(int) int { return 0 })
	got := c.Reply(app.Intent{
		Kind:   app.IntentMetricQuery,
		Metric: domain.MetricWeight,
		Records: []domain.MeasurementRecord{
			{Type: domain.MetricWeight, Value: 70.0, Unit: "kg", Timestamp: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)},
			{Type: domain.MetricWeight, Value: 68.0, Unit: "kg", Timestamp: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		},
	})
	if !strings.Contains(got, "Your latest weight is 68 kg.") {
		t.Errorf("unexpected reply: %q", got)
	}
}

func TestReply_MetricQueryNoData(t *testing.T) {
	c := app.NewComposerWithPick(func(int) int { return 0 })
	for _, metric := range domain.MetricTypes {
		t.Run(string(metric), func(t *testing.T) {
			got := c.Reply(app.Intent{Kind: app.IntentMetricQuery, Metric: metric})
			if !strings.Contains(got, metric.Human()) {
				t.Errorf("no-data prompt %q does not mention %q", got, metric.Human())
			}
			if !strings.Contains(got, "haven't logged") {
				t.Errorf("expected no-data prompt, got %q", got)
			}
		})
	}
}

func TestReply_MetricQueryGenericAdvice(t *testing.T) {
	c := app.NewComposerWithPick(func(int) int { return 0 })
	got := c.Reply(app.Intent{
		Kind:   app.IntentMetricQuery,
		Metric: domain.MetricSteps,
		Records: []domain.MeasurementRecord{
			{Type: domain.MetricSteps, Value: 9500.0, Unit: "steps"},
		},
	})
	if !strings.Contains(got, "Your latest steps is 9500 steps.") {
		t.Errorf("unexpected reply: %q", got)
	}
}

func TestReply_Summary(t *testing.T) {
	c := app.NewComposerWithPick(func(int) int { return 0 })
	got := c.Reply(app.Intent{
		Kind: app.IntentSummary,
		Records: []domain.MeasurementRecord{
			{Type: domain.MetricWeight, Value: 70.0, Unit: "kg"},
			{Type: domain.MetricBloodPressure, Value: "120/80", Unit: "mmHg"},
			{Type: domain.MetricWeight, Value: 68.0, Unit: "kg"},
		},
	})

	lines := strings.Split(got, "\n")
	// header + one line per distinct type + closing
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), got)
	}
	if lines[1] != "WEIGHT: 68 kg (2 records)" {
		t.Errorf("unexpected weight line: %q", lines[1])
	}
	if lines[2] != "BLOOD PRESSURE: 120/80 mmHg (1 records)" {
		t.Errorf("unexpected blood pressure line: %q", lines[2])
	}
}

func TestReply_SummaryGroupOrderIsFirstOccurrence(t *testing.T) {
	c := app.NewComposerWithPick(func(int) int { return 0 })
	got := c.Reply(app.Intent{
		Kind: app.IntentSummary,
		Records: []domain.MeasurementRecord{
			{Type: domain.MetricSteps, Value: 9000.0, Unit: "steps"},
			{Type: domain.MetricWeight, Value: 70.0, Unit: "kg"},
			{Type: domain.MetricSteps, Value: 11000.0, Unit: "steps"},
		},
	})
	if strings.Index(got, "STEPS") > strings.Index(got, "WEIGHT") {
		t.Errorf("expected STEPS before WEIGHT: %q", got)
	}
}

func TestReply_SummaryEmpty(t *testing.T) {
	c := app.NewComposerWithPick(func(int) int { return 0 })
	got := c.Reply(app.Intent{Kind: app.IntentSummary})
	if !strings.Contains(got, "haven't logged any health data") {
		t.Errorf("unexpected empty summary: %q", got)
	}
}

func TestReply_UnknownEchoesInput(t *testing.T) {
	c := app.NewComposerWithPick(func(int) int { return 0 })
	const text = "sing me a song"
	got := c.Reply(app.Intent{Kind: app.IntentUnknown, Text: text})
	if !strings.Contains(got, fmt.Sprintf("%q", text)) {
		t.Errorf("reply %q does not echo input", got)
	}
}

func TestReply_Help(t *testing.T) {
	c := app.NewComposerWithPick(func(int) int { return 0 })
	got := c.Reply(app.Intent{Kind: app.IntentHelp})
	if !strings.Contains(got, "summary") || !strings.Contains(got, "\n") {
		t.Errorf("expected multi-line capability text, got %q", got)
	}
}
