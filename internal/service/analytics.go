package service

import (
	"context"
	"time"

	"github.com/lumen-app/lumen/backend/internal/analytics"
	"github.com/lumen-app/lumen/backend/internal/logger"
	"github.com/lumen-app/lumen/backend/internal/models"
)

// analyticsService implements AnalyticsService on top of the pure
// analytics engine. The engine never reads the wall clock itself; this
// layer anchors it once per request through the now field so tests can
// pin time.
type analyticsService struct {
	weekStart time.Weekday
	now       func() time.Time
}

// NewAnalyticsService creates an AnalyticsService with the configured
// first day of the week
func NewAnalyticsService(weekStart time.Weekday) AnalyticsService {
	return &analyticsService{
		weekStart: weekStart,
		now:       time.Now,
	}
}

func (s *analyticsService) Aggregate(ctx context.Context, req models.AggregateRequest) (models.AggregatedData, error) {
	points, err := parsePoints(req.Points)
	if err != nil {
		return models.AggregatedData{}, err
	}

	data, err := analytics.Aggregate(points, req.Aggregation, s.now(), s.weekStart)
	if err != nil {
		return models.AggregatedData{}, err
	}

	logger.Ctx(ctx).Debug("aggregated series",
		logger.Int("points", len(points)),
		logger.String("aggregation", string(req.Aggregation)))
	return data, nil
}

func (s *analyticsService) CompletionRates(ctx context.Context, req models.CompletionRatesRequest) (models.AggregatedData, error) {
	completed, err := parseDates(req.CompletedDates)
	if err != nil {
		return models.AggregatedData{}, err
	}
	total, err := parseDates(req.TotalDates)
	if err != nil {
		return models.AggregatedData{}, err
	}

	data := analytics.CompletionRates(completed, total, s.now(), s.weekStart)

	logger.Ctx(ctx).Debug("computed completion rates",
		logger.Int("completed", len(completed)),
		logger.Int("total", len(total)))
	return data, nil
}

func (s *analyticsService) Trend(ctx context.Context, req models.TrendRequest) (models.TrendAnalysis, error) {
	points, err := parsePoints(req.Points)
	if err != nil {
		return models.TrendAnalysis{}, err
	}

	period := req.Period
	if period == "" {
		period = models.TrendPeriodRecent
	}

	trend, err := analytics.Trend(points, period)
	if err != nil {
		return models.TrendAnalysis{}, err
	}

	logger.Ctx(ctx).Debug("analyzed trend",
		logger.Int("points", len(points)),
		logger.String("direction", string(trend.Direction)))
	return trend, nil
}

func (s *analyticsService) Correlate(ctx context.Context, req models.CorrelationRequest) (models.CorrelationResult, error) {
	seriesA, err := parsePoints(req.SeriesA)
	if err != nil {
		return models.CorrelationResult{}, err
	}
	seriesB, err := parsePoints(req.SeriesB)
	if err != nil {
		return models.CorrelationResult{}, err
	}

	result, err := analytics.Correlate(seriesA, seriesB)
	if err != nil {
		return models.CorrelationResult{}, err
	}

	logger.Ctx(ctx).Debug("computed correlation",
		logger.Int("sample_size", result.SampleSize),
		logger.Float64("coefficient", result.Correlation))
	return result, nil
}

func (s *analyticsService) MovingAverage(ctx context.Context, req models.MovingAverageRequest) ([]models.TimeSeriesPoint, error) {
	points, err := parsePoints(req.Points)
	if err != nil {
		return nil, err
	}
	return analytics.MovingAverage(points, req.WindowSize)
}

func (s *analyticsService) Summarize(ctx context.Context, req models.SummaryRequest) (models.StatisticalSummary, error) {
	return analytics.Summarize(req.Values)
}
