package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-app/lumen/backend/internal/models"
)

var aggNow = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func findByDate(t *testing.T, series []models.TimeSeriesPoint, d time.Time) models.TimeSeriesPoint {
	t.Helper()
	for _, p := range series {
		if p.Date.Equal(d) {
			return p
		}
	}
	t.Fatalf("no bucket starting at %s", d.Format("2006-01-02"))
	return models.TimeSeriesPoint{}
}

func TestAggregateSumScenario(t *testing.T) {
	points := []models.TimeSeriesPoint{
		{Date: date(2024, 1, 1), Value: 10},
		{Date: date(2024, 1, 1), Value: 5},
		{Date: date(2024, 1, 2), Value: 3},
	}

	got, err := Aggregate(points, models.AggregationSum, aggNow, DefaultWeekStart)
	require.NoError(t, err)

	assert.Equal(t, 15.0, findByDate(t, got.Daily, date(2024, 1, 1)).Value)
	assert.Equal(t, 3.0, findByDate(t, got.Daily, date(2024, 1, 2)).Value)
}

func TestAggregateWindowShapes(t *testing.T) {
	got, err := Aggregate(nil, models.AggregationCount, aggNow, DefaultWeekStart)
	require.NoError(t, err)

	// Fixed windows: 30 day buckets, 12 week buckets, 6 month buckets,
	// all zero-valued and never sparse.
	require.Len(t, got.Daily, 30)
	require.Len(t, got.Weekly, 12)
	require.Len(t, got.Monthly, 6)
	for _, series := range [][]models.TimeSeriesPoint{got.Daily, got.Weekly, got.Monthly} {
		for _, p := range series {
			assert.Zero(t, p.Value)
			assert.NotEmpty(t, p.Label)
		}
	}

	assert.Equal(t, date(2023, 12, 17), got.Daily[0].Date)
	assert.Equal(t, date(2024, 1, 15), got.Daily[29].Date)
	assert.Equal(t, date(2023, 8, 1), got.Monthly[0].Date)
	assert.Equal(t, date(2024, 1, 1), got.Monthly[5].Date)
}

func TestAggregateAverageAndCount(t *testing.T) {
	points := []models.TimeSeriesPoint{
		{Date: date(2024, 1, 10), Value: 4},
		{Date: date(2024, 1, 10), Value: 8},
	}

	avg, err := Aggregate(points, models.AggregationAverage, aggNow, DefaultWeekStart)
	require.NoError(t, err)
	assert.Equal(t, 6.0, findByDate(t, avg.Daily, date(2024, 1, 10)).Value)
	// Empty buckets average to 0, not NaN
	assert.Equal(t, 0.0, findByDate(t, avg.Daily, date(2024, 1, 11)).Value)

	cnt, err := Aggregate(points, models.AggregationCount, aggNow, DefaultWeekStart)
	require.NoError(t, err)
	assert.Equal(t, 2.0, findByDate(t, cnt.Daily, date(2024, 1, 10)).Value)
}

func TestAggregateBoundaryPointCountedOnce(t *testing.T) {
	// Exactly midnight on a week boundary: must land in the week it
	// starts, and in no other.
	points := []models.TimeSeriesPoint{{Date: date(2024, 1, 14), Value: 1}} // Sunday

	got, err := Aggregate(points, models.AggregationCount, aggNow, time.Sunday)
	require.NoError(t, err)

	total := 0.0
	for _, p := range got.Weekly {
		total += p.Value
	}
	assert.Equal(t, 1.0, total)
	assert.Equal(t, 1.0, findByDate(t, got.Weekly, date(2024, 1, 14)).Value)
}

func TestAggregateRejectsNonFiniteValues(t *testing.T) {
	points := []models.TimeSeriesPoint{{Date: date(2024, 1, 10), Value: math.NaN()}}

	_, err := Aggregate(points, models.AggregationSum, aggNow, DefaultWeekStart)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonFinite)

	points[0].Value = math.Inf(1)
	_, err = Aggregate(points, models.AggregationSum, aggNow, DefaultWeekStart)
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestAggregateRejectsUnknownAggregationType(t *testing.T) {
	_, err := Aggregate(nil, models.AggregationType("median"), aggNow, DefaultWeekStart)
	assert.Error(t, err)
}

func TestCompletionRates(t *testing.T) {
	completed := []time.Time{date(2024, 1, 10)}
	total := []time.Time{date(2024, 1, 10), date(2024, 1, 10)}

	got := CompletionRates(completed, total, aggNow, DefaultWeekStart)

	assert.Equal(t, 50.0, findByDate(t, got.Daily, date(2024, 1, 10)).Value)
	// Buckets with no total records rate at 0 rather than dividing by zero
	assert.Equal(t, 0.0, findByDate(t, got.Daily, date(2024, 1, 11)).Value)
	require.Len(t, got.Daily, 30)
	require.Len(t, got.Weekly, 12)
	require.Len(t, got.Monthly, 6)
}
