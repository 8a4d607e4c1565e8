package service

import (
	"context"

	"github.com/lumen-app/lumen/backend/internal/models"
)

// AnalyticsService exposes the aggregation and statistics operations
type AnalyticsService interface {
	// Aggregate buckets raw points into the three fixed windows
	Aggregate(ctx context.Context, req models.AggregateRequest) (models.AggregatedData, error)

	// CompletionRates computes percentage completion per bucket from two
	// date lists
	CompletionRates(ctx context.Context, req models.CompletionRatesRequest) (models.AggregatedData, error)

	// Trend classifies a series as trending up, down, or stable
	Trend(ctx context.Context, req models.TrendRequest) (models.TrendAnalysis, error)

	// Correlate computes the Pearson correlation of two date-aligned series
	Correlate(ctx context.Context, req models.CorrelationRequest) (models.CorrelationResult, error)

	// MovingAverage smooths a series with a centered window
	MovingAverage(ctx context.Context, req models.MovingAverageRequest) ([]models.TimeSeriesPoint, error)

	// Summarize computes descriptive statistics over a numeric sample
	Summarize(ctx context.Context, req models.SummaryRequest) (models.StatisticalSummary, error)
}

// InsightService exposes the streak analyzer and the insight rule engine
type InsightService interface {
	// Streaks runs the streak analyzer over completion records
	Streaks(ctx context.Context, req models.StreaksRequest) (models.StreakResult, error)

	// Predictive evaluates the insight rules and truncates to the
	// requested limit
	Predictive(ctx context.Context, req models.InsightsRequest) ([]models.PredictiveInsight, error)

	// Dashboard computes the aggregate, trend, streak, and insight views
	// in one round trip
	Dashboard(ctx context.Context, req models.DashboardRequest) (models.DashboardResponse, error)
}
