package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-app/lumen/backend/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBucketsDayCoversEveryCalendarDay(t *testing.T) {
	starts := Buckets(date(2024, 1, 1), date(2024, 1, 30), models.GranularityDay, DefaultWeekStart)
	require.Len(t, starts, 30)
	assert.Equal(t, date(2024, 1, 1), starts[0])
	assert.Equal(t, date(2024, 1, 30), starts[29])
}

func TestBucketsWeekRespectsConfiguredWeekStart(t *testing.T) {
	// 2024-01-10 is a Wednesday
	wed := date(2024, 1, 10)

	assert.Equal(t, date(2024, 1, 7), startOfWeek(wed, time.Sunday))
	assert.Equal(t, date(2024, 1, 8), startOfWeek(wed, time.Monday))

	// A date already on the boundary stays put
	assert.Equal(t, date(2024, 1, 8), startOfWeek(date(2024, 1, 8), time.Monday))
}

func TestBucketsMonthSpansCalendarMonths(t *testing.T) {
	starts := Buckets(date(2024, 1, 15), date(2024, 4, 2), models.GranularityMonth, DefaultWeekStart)
	require.Len(t, starts, 4)
	assert.Equal(t, date(2024, 1, 1), starts[0])
	assert.Equal(t, date(2024, 4, 1), starts[3])
}

func TestBucketsEmptyWhenEndBeforeStart(t *testing.T) {
	assert.Nil(t, Buckets(date(2024, 2, 1), date(2024, 1, 1), models.GranularityDay, DefaultWeekStart))
}

func TestBucketForMonthEndBoundary(t *testing.T) {
	// 23:59:59 on the last day of January belongs to the January bucket
	lastSecond := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	iv := BucketFor(lastSecond, models.GranularityMonth, DefaultWeekStart)
	assert.Equal(t, date(2024, 1, 1), iv.Start)
	assert.Equal(t, date(2024, 2, 1), iv.End)
	assert.True(t, iv.Contains(lastSecond))

	// Midnight of February 1st belongs to February, not January
	feb := date(2024, 2, 1)
	assert.False(t, iv.Contains(feb))
	assert.Equal(t, date(2024, 2, 1), BucketFor(feb, models.GranularityMonth, DefaultWeekStart).Start)
}

func TestEveryDateFallsInExactlyOneBucket(t *testing.T) {
	starts := Buckets(date(2024, 1, 1), date(2024, 3, 15), models.GranularityWeek, time.Monday)
	require.NotEmpty(t, starts)

	for day := date(2024, 1, 1); day.Before(date(2024, 3, 16)); day = day.AddDate(0, 0, 1) {
		matches := 0
		for _, bs := range starts {
			iv := Interval{Start: bs, End: nextBucket(bs, models.GranularityWeek)}
			if iv.Contains(day) {
				matches++
			}
		}
		assert.Equalf(t, 1, matches, "date %s matched %d buckets", day.Format("2006-01-02"), matches)
	}
}

func TestLabelPerGranularity(t *testing.T) {
	d := date(2024, 3, 5)
	assert.Equal(t, "Mar 05", Label(d, models.GranularityDay))
	assert.Equal(t, "Week of Mar 05", Label(d, models.GranularityWeek))
	assert.Equal(t, "Mar 2024", Label(d, models.GranularityMonth))
}
