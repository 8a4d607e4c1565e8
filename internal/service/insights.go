package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lumen-app/lumen/backend/internal/analytics"
	"github.com/lumen-app/lumen/backend/internal/logger"
	"github.com/lumen-app/lumen/backend/internal/models"
)

// insightService implements InsightService on top of the streak analyzer
// and the insight rule engine
type insightService struct {
	weekStart time.Weekday
	cfg       analytics.Config
	now       func() time.Time
}

// NewInsightService creates an InsightService with the given rule
// thresholds
func NewInsightService(weekStart time.Weekday, cfg analytics.Config) InsightService {
	return &insightService{
		weekStart: weekStart,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *insightService) Streaks(ctx context.Context, req models.StreaksRequest) (models.StreakResult, error) {
	records, err := parseRecords(req.Records)
	if err != nil {
		return models.StreakResult{}, err
	}

	result := analytics.Streaks(records)

	logger.Ctx(ctx).Debug("analyzed streaks",
		logger.Int("records", len(records)),
		logger.Int("current_streak", result.CurrentStreak))
	return result, nil
}

func (s *insightService) Predictive(ctx context.Context, req models.InsightsRequest) ([]models.PredictiveInsight, error) {
	records, err := parseRecords(req.Records)
	if err != nil {
		return nil, err
	}

	insights := analytics.Insights(records, req.Habits, s.cfg)
	if req.Limit > 0 && len(insights) > req.Limit {
		insights = insights[:req.Limit]
	}

	logger.Ctx(ctx).Debug("generated insights",
		logger.Int("records", len(records)),
		logger.Int("habits", len(req.Habits)),
		logger.Int("insights", len(insights)))
	return insights, nil
}

func (s *insightService) Dashboard(ctx context.Context, req models.DashboardRequest) (models.DashboardResponse, error) {
	points, err := parsePoints(req.Points)
	if err != nil {
		return models.DashboardResponse{}, err
	}
	records, err := parseRecords(req.Records)
	if err != nil {
		return models.DashboardResponse{}, err
	}

	now := s.now()
	var resp models.DashboardResponse

	// The four views are independent, so compute them concurrently
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := analytics.Aggregate(points, models.AggregationSum, now, s.weekStart)
		if err != nil {
			return err
		}
		resp.Aggregates = data
		return nil
	})
	g.Go(func() error {
		trend, err := analytics.Trend(points, models.TrendPeriodRecent)
		if err != nil {
			return err
		}
		resp.Trend = trend
		return nil
	})
	g.Go(func() error {
		resp.Streaks = analytics.Streaks(records)
		return nil
	})
	g.Go(func() error {
		resp.Insights = analytics.Insights(records, req.Habits, s.cfg)
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.DashboardResponse{}, err
	}

	resp.ComputedAt = now.UTC()
	logger.Ctx(ctx).Debug("computed dashboard",
		logger.Int("points", len(points)),
		logger.Int("records", len(records)))
	return resp, nil
}
