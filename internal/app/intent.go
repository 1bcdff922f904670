// Package app holds the application services and business logic.
package app

import (
	"strings"

	"healthchat/internal/domain"
)

// IntentKind classifies the purpose of a chat message.
type IntentKind int

// The kinds an intent can take, in matching priority order.
const (
	IntentGreeting IntentKind = iota
	IntentMetricQuery
	IntentSummary
	IntentHelp
	IntentUnknown
)

// Intent is the result of classifying one chat message. Records carries the
// measurements the matcher selected for the intent: the filtered subsequence
// for a metric query, the full list for a summary, nil otherwise. Text holds
// the original message for IntentUnknown so the reply can echo it.
type Intent struct {
	Kind    IntentKind
	Metric  domain.MetricType
	Records []domain.MeasurementRecord
	Text    string
}

var greetingWords = []string{"hello", "hi", "hey"}

// MatchIntent classifies text against the user's current measurements.
//
// Predicates are tested in fixed priority order and the first match wins:
// greeting, metric query, summary, help, then the unknown fallback. The
// ordering is a deliberate tie-break — a message containing both "hello" and
// "weight" is a greeting, never a metric query. Matching is pure; it never
// touches the stores.
func MatchIntent(text string, records []domain.MeasurementRecord) Intent {
	lower := strings.ToLower(text)

	for _, w := range greetingWords {
		if strings.Contains(lower, w) {
			return Intent{Kind: IntentGreeting}
		}
	}

	for _, t := range domain.MetricTypes {
		if strings.Contains(lower, t.Human()) {
			return Intent{Kind: IntentMetricQuery, Metric: t, Records: filterByType(records, t)}
		}
	}

	if strings.Contains(lower, "summary") || strings.Contains(lower, "overview") {
		return Intent{Kind: IntentSummary, Records: records}
	}

	if strings.Contains(lower, "help") || strings.Contains(lower, "what can you do") {
		return Intent{Kind: IntentHelp}
	}

	return Intent{Kind: IntentUnknown, Text: text}
}

func filterByType(records []domain.MeasurementRecord, t domain.MetricType) []domain.MeasurementRecord {
	var out []domain.MeasurementRecord
	for _, r := range records {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}
