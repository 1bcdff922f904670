package app

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"healthchat/internal/domain"
)

// Greetings is the fixed set the greeting reply is drawn from.
var Greetings = []string{
	"Hello! How can I help you with your health today?",
	"Hi there! Ask me about any of your health metrics.",
	"Hey! I'm here to help you keep track of your health.",
}

// metricAdvice maps a metric type to the canned advice appended after its
// latest reading. Types without an entry fall back to genericAdvice, so
// adding a metric is a data change here, not new branching.
var metricAdvice = map[domain.MetricType]string{
	domain.MetricWeight:        "Keep weighing in regularly to spot trends early.",
	domain.MetricBloodPressure: "A normal reading is around 120/80. Talk to your doctor if it stays elevated.",
	domain.MetricHeartRate:     "A typical resting heart rate is 60-100 bpm.",
	domain.MetricBloodSugar:    "Normal fasting blood sugar is usually 70-100 mg/dL.",
}

const (
	genericAdvice = "Keep logging it consistently to build a useful history."

	summaryHeader      = "Here's your health summary:"
	summaryClosing     = "Keep up the great work tracking your health!"
	summaryNoData      = "You haven't logged any health data yet. Record a measurement and I can summarize it for you."
	helpText           = "I can help you track your health. Try:\n- \"What's my weight?\" or ask about any metric you've logged\n- \"Give me a summary\" for an overview of everything\n- Log measurements and I'll answer questions about them"
	unknownReplyFormat = "I'm not sure how to help with %q. Try asking about a metric like \"what's my weight?\" or say \"summary\" for an overview."
	metricNoDataFormat = "You haven't logged any %s data yet. Would you like to log it?"
	metricLatestFormat = "Your latest %s is %s %s. %s"
	summaryLineFormat  = "%s: %s %s (%d records)"
)

// Composer renders an intent into reply text. The random pick used for
// greetings is injectable so tests can assert set membership instead of
// chasing exact output.
type Composer struct {
	pick func(n int) int
}

// NewComposer creates a Composer with an unseeded uniform greeting picker.
func NewComposer() *Composer {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Composer{pick: r.Intn}
}

// NewComposerWithPick creates a Composer using the given picker, which must
// return a value in [0, n).
func NewComposerWithPick(pick func(n int) int) *Composer {
	return &Composer{pick: pick}
}

// Reply renders the intent. It performs no I/O and no randomness outside the
// greeting branch.
func (c *Composer) Reply(in Intent) string {
	switch in.Kind {
	case IntentGreeting:
		return Greetings[c.pick(len(Greetings))]
	case IntentMetricQuery:
		return c.metricReply(in.Metric, in.Records)
	case IntentSummary:
		return c.summaryReply(in.Records)
	case IntentHelp:
		return helpText
	default:
		return fmt.Sprintf(unknownReplyFormat, in.Text)
	}
}

// metricReply answers with the last record in insertion order. This is
// intentionally not the most recent by timestamp; back-dated entries keep
// the two orders distinct and the query path follows insertion order.
func (c *Composer) metricReply(t domain.MetricType, records []domain.MeasurementRecord) string {
	if len(records) == 0 {
		return fmt.Sprintf(metricNoDataFormat, t.Human())
	}
	latest := records[len(records)-1]
	advice, ok := metricAdvice[t]
	if !ok {
		advice = genericAdvice
	}
	return fmt.Sprintf(metricLatestFormat, t.Human(), domain.FormatValue(latest.Value), latest.Unit, advice)
}

// summaryReply renders one line per metric type in first-occurrence order,
// each showing the type's last-inserted value and record count.
func (c *Composer) summaryReply(records []domain.MeasurementRecord) string {
	if len(records) == 0 {
		return summaryNoData
	}

	var order []domain.MetricType
	groups := make(map[domain.MetricType][]domain.MeasurementRecord)
	for _, r := range records {
		if _, seen := groups[r.Type]; !seen {
			order = append(order, r.Type)
		}
		groups[r.Type] = append(groups[r.Type], r)
	}

	lines := []string{summaryHeader}
	for _, t := range order {
		g := groups[t]
		last := g[len(g)-1]
		lines = append(lines, fmt.Sprintf(summaryLineFormat,
			strings.ToUpper(t.Human()), domain.FormatValue(last.Value), last.Unit, len(g)))
	}
	lines = append(lines, summaryClosing)
	return strings.Join(lines, "\n")
}
