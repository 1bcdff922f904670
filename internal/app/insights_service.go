package app

import (
	"context"
	"math"
	"sort"

	"healthchat/internal/domain"
)

// Trend directions.
const (
	DirectionIncrease = "increase"
	DirectionDecrease = "decrease"
	DirectionStable   = "stable"
)

// Recommendation texts, appended in evaluation order.
const (
	recommendMoreMetrics   = "You're tracking fewer than 3 metrics. Adding more gives a fuller picture of your health."
	recommendMoreOften     = "You have fewer than 7 records. Logging more frequently makes your trends more reliable."
	recommendEncouragement = "Great job tracking your health. Keep it up!"
)

// TrendSummary compares the first and last numeric values of one metric's
// time-ordered records.
type TrendSummary struct {
	Delta        float64 `json:"delta"`
	PercentDelta float64 `json:"percentDelta"`
	Direction    string  `json:"direction"`
	SampleCount  int     `json:"sampleCount"`
}

// InsightsReport is the derived per-user insight structure.
type InsightsReport struct {
	TotalRecords    int                                `json:"totalRecords"`
	MetricsTracked  []string                           `json:"metricsTracked"`
	Trends          map[domain.MetricType]TrendSummary `json:"trends"`
	Recommendations []string                           `json:"recommendations"`
}

// InsightsService derives trend and recommendation data from a user's
// measurements. It is stateless: it reads a snapshot and never mutates it.
type InsightsService struct {
	repo domain.MeasurementRepository
}

// NewInsightsService creates an InsightsService backed by the given repository.
func NewInsightsService(repo domain.MeasurementRepository) *InsightsService {
	return &InsightsService{repo: repo}
}

// Compute builds the insight report for a user. A user with zero records
// yields a nil report and no error; the transport renders the fixed no-data
// message in that case.
func (s *InsightsService) Compute(ctx context.Context, userKey string) (*InsightsReport, error) {
	records, err := s.repo.ListAll(ctx, userKey)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	var tracked []string
	groups := make(map[domain.MetricType][]domain.MeasurementRecord)
	for _, r := range records {
		if _, seen := groups[r.Type]; !seen {
			tracked = append(tracked, string(r.Type))
		}
		groups[r.Type] = append(groups[r.Type], r)
	}

	trends := make(map[domain.MetricType]TrendSummary)
	for t, g := range groups {
		if trend, ok := computeTrend(g); ok {
			trends[t] = trend
		}
	}

	report := &InsightsReport{
		TotalRecords:   len(records),
		MetricsTracked: tracked,
		Trends:         trends,
	}
	if len(tracked) < 3 {
		report.Recommendations = append(report.Recommendations, recommendMoreMetrics)
	}
	if len(records) < 7 {
		report.Recommendations = append(report.Recommendations, recommendMoreOften)
	}
	report.Recommendations = append(report.Recommendations, recommendEncouragement)
	return report, nil
}

// computeTrend compares the first and last records after sorting by
// timestamp ascending. Groups with fewer than 2 members, or whose endpoint
// values do not parse as a single number ("120/80" readings), emit no trend.
// When the first value is 0, percent change is undefined; the policy here is
// to report PercentDelta as 0 rather than divide.
func computeTrend(group []domain.MeasurementRecord) (TrendSummary, bool) {
	if len(group) < 2 {
		return TrendSummary{}, false
	}

	sorted := make([]domain.MeasurementRecord, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	first, ok := domain.NumericValue(sorted[0].Value)
	if !ok {
		return TrendSummary{}, false
	}
	last, ok := domain.NumericValue(sorted[len(sorted)-1].Value)
	if !ok {
		return TrendSummary{}, false
	}

	delta := last - first
	var percent float64
	if first != 0 {
		percent = math.Round(delta/first*1000) / 10
	}

	direction := DirectionStable
	switch {
	case delta > 0:
		direction = DirectionIncrease
	case delta < 0:
		direction = DirectionDecrease
	}

	return TrendSummary{
		Delta:        delta,
		PercentDelta: percent,
		Direction:    direction,
		SampleCount:  len(group),
	}, true
}
