package analytics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/lumen-app/lumen/backend/internal/models"
)

// Classification thresholds for the percent change between the recent and
// previous windows.
const (
	trendStableBand    = 5.0  // |change| below this is stable
	trendHighThreshold = 20.0 // |change| above this is high significance
	recentWindowSize   = 7
)

// Trend compares a recent window of the series against a prior window and
// classifies the direction and magnitude of the change.
//
// In recent mode with at least 14 points, the mean of the last 7 points is
// compared against the mean of the preceding 7. Shorter series and
// longterm mode use a quartile split: the mean of the last quarter against
// the mean of the first. Fewer than 2 points is not an error; it yields a
// stable, low-significance result.
func Trend(series []models.TimeSeriesPoint, period models.TrendPeriod) (models.TrendAnalysis, error) {
	if err := checkFinite(series); err != nil {
		return models.TrendAnalysis{}, err
	}
	if len(series) < 2 {
		return models.TrendAnalysis{
			Direction:    models.TrendStable,
			Percentage:   0,
			Significance: models.SignificanceLow,
			Summary:      "Not enough data to determine a trend yet",
		}, nil
	}

	sorted := sortedByDate(series)
	values := make([]float64, len(sorted))
	for i, p := range sorted {
		values[i] = p.Value
	}

	n := len(values)
	var recentMean, previousMean float64
	if period == models.TrendPeriodRecent && n >= 2*recentWindowSize {
		recentMean = stat.Mean(values[n-recentWindowSize:], nil)
		previousMean = stat.Mean(values[n-2*recentWindowSize:n-recentWindowSize], nil)
	} else {
		q := n / 4
		if q < 1 {
			q = 1
		}
		recentMean = stat.Mean(values[n-q:], nil)
		previousMean = stat.Mean(values[:q], nil)
	}

	// Flooring to 0 on a zero previous mean is deliberate: it avoids a
	// division by zero at the cost of not being a true percentage.
	var change float64
	if previousMean != 0 {
		change = (recentMean - previousMean) / previousMean * 100
	}

	direction := models.TrendStable
	switch {
	case math.Abs(change) < trendStableBand:
		direction = models.TrendStable
	case change > 0:
		direction = models.TrendUp
	default:
		direction = models.TrendDown
	}

	significance := models.SignificanceMedium
	if math.Abs(change) > trendHighThreshold {
		significance = models.SignificanceHigh
	}

	percentage := math.Abs(change)
	return models.TrendAnalysis{
		Direction:    direction,
		Percentage:   percentage,
		Significance: significance,
		Summary:      trendSummary(direction, percentage, significance),
	}, nil
}

// trendSummary derives the summary text deterministically from the
// classification; no randomness, fully reproducible.
func trendSummary(direction models.TrendDirection, percentage float64, significance models.Significance) string {
	switch direction {
	case models.TrendUp:
		if significance == models.SignificanceHigh {
			return fmt.Sprintf("Activity is up sharply, %.1f%% above the previous period", percentage)
		}
		return fmt.Sprintf("Activity is up %.1f%% compared with the previous period", percentage)
	case models.TrendDown:
		if significance == models.SignificanceHigh {
			return fmt.Sprintf("Activity is down sharply, %.1f%% below the previous period", percentage)
		}
		return fmt.Sprintf("Activity is down %.1f%% compared with the previous period", percentage)
	default:
		return "Activity has remained stable across the period"
	}
}
