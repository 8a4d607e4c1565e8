package analytics

import (
	"fmt"
	"time"

	"github.com/lumen-app/lumen/backend/internal/models"
)

// Fixed lookback windows anchored at the caller-supplied reference time.
// Each window has its own resolution; they deliberately cover different
// historical depths.
const (
	dailyWindowDays     = 30
	weeklyWindowWeeks   = 12
	monthlyWindowMonths = 6
)

// Aggregate folds points into per-bucket values across the three fixed
// lookback windows. Buckets with no matching points still appear with
// value 0, so the sequences are never sparse. Points may arrive in any
// order and may share dates.
func Aggregate(points []models.TimeSeriesPoint, agg models.AggregationType, now time.Time, weekStart time.Weekday) (models.AggregatedData, error) {
	if err := checkFinite(points); err != nil {
		return models.AggregatedData{}, err
	}
	switch agg {
	case models.AggregationSum, models.AggregationAverage, models.AggregationCount:
	default:
		return models.AggregatedData{}, fmt.Errorf("unknown aggregation type %q", agg)
	}

	return models.AggregatedData{
		Daily:   aggregateWindow(points, agg, models.GranularityDay, dailyWindowStart(now), now, weekStart),
		Weekly:  aggregateWindow(points, agg, models.GranularityWeek, weeklyWindowStart(now, weekStart), now, weekStart),
		Monthly: aggregateWindow(points, agg, models.GranularityMonth, monthlyWindowStart(now), now, weekStart),
	}, nil
}

// CompletionRates computes the per-bucket completion percentage across the
// same three windows: 100 × completed/total, 0 when the bucket has no
// total records. The two date lists are filtered independently.
func CompletionRates(completed, total []time.Time, now time.Time, weekStart time.Weekday) models.AggregatedData {
	return models.AggregatedData{
		Daily:   completionWindow(completed, total, models.GranularityDay, dailyWindowStart(now), now, weekStart),
		Weekly:  completionWindow(completed, total, models.GranularityWeek, weeklyWindowStart(now, weekStart), now, weekStart),
		Monthly: completionWindow(completed, total, models.GranularityMonth, monthlyWindowStart(now), now, weekStart),
	}
}

func dailyWindowStart(now time.Time) time.Time {
	return startOfDay(now).AddDate(0, 0, -(dailyWindowDays - 1))
}

func weeklyWindowStart(now time.Time, weekStart time.Weekday) time.Time {
	return startOfWeek(now, weekStart).AddDate(0, 0, -7*(weeklyWindowWeeks-1))
}

func monthlyWindowStart(now time.Time) time.Time {
	return startOfMonth(now).AddDate(0, -(monthlyWindowMonths - 1), 0)
}

func aggregateWindow(points []models.TimeSeriesPoint, agg models.AggregationType, g models.Granularity, windowStart, end time.Time, weekStart time.Weekday) []models.TimeSeriesPoint {
	starts := Buckets(windowStart, end, g, weekStart)
	out := make([]models.TimeSeriesPoint, 0, len(starts))
	for _, bs := range starts {
		iv := Interval{Start: bs, End: nextBucket(bs, g)}

		var sum float64
		count := 0
		for _, p := range points {
			if iv.Contains(p.Date) {
				sum += p.Value
				count++
			}
		}

		var value float64
		switch agg {
		case models.AggregationSum:
			value = sum
		case models.AggregationCount:
			value = float64(count)
		case models.AggregationAverage:
			if count > 0 {
				value = sum / float64(count)
			}
		}

		out = append(out, models.TimeSeriesPoint{Date: bs, Value: value, Label: Label(bs, g)})
	}
	return out
}

func completionWindow(completed, total []time.Time, g models.Granularity, windowStart, end time.Time, weekStart time.Weekday) []models.TimeSeriesPoint {
	starts := Buckets(windowStart, end, g, weekStart)
	out := make([]models.TimeSeriesPoint, 0, len(starts))
	for _, bs := range starts {
		iv := Interval{Start: bs, End: nextBucket(bs, g)}

		completedCount := countInInterval(completed, iv)
		totalCount := countInInterval(total, iv)

		var rate float64
		if totalCount > 0 {
			rate = 100 * float64(completedCount) / float64(totalCount)
		}

		out = append(out, models.TimeSeriesPoint{Date: bs, Value: rate, Label: Label(bs, g)})
	}
	return out
}

func countInInterval(dates []time.Time, iv Interval) int {
	n := 0
	for _, d := range dates {
		if iv.Contains(d) {
			n++
		}
	}
	return n
}
