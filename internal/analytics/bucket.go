package analytics

import (
	"time"

	"github.com/lumen-app/lumen/backend/internal/models"
)

// DefaultWeekStart is the week boundary used when no locale preference is
// configured, matching the tracker's default calendar.
const DefaultWeekStart = time.Sunday

// Interval is a half-open calendar bucket [Start, End). Closing the start
// and opening the end means a point on a boundary belongs to exactly one
// bucket: the one it chronologically starts.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the interval
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	d := startOfDay(t)
	offset := (int(d.Weekday()) - int(weekStart) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// BucketStart truncates t to the start of the bucket containing it
func BucketStart(t time.Time, g models.Granularity, weekStart time.Weekday) time.Time {
	switch g {
	case models.GranularityWeek:
		return startOfWeek(t, weekStart)
	case models.GranularityMonth:
		return startOfMonth(t)
	default:
		return startOfDay(t)
	}
}

func nextBucket(start time.Time, g models.Granularity) time.Time {
	switch g {
	case models.GranularityWeek:
		return start.AddDate(0, 0, 7)
	case models.GranularityMonth:
		return start.AddDate(0, 1, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}

// BucketFor maps an arbitrary date to the interval it falls in for the
// given granularity
func BucketFor(t time.Time, g models.Granularity, weekStart time.Weekday) Interval {
	start := BucketStart(t, g, weekStart)
	return Interval{Start: start, End: nextBucket(start, g)}
}

// Buckets returns the ordered bucket start times covering [start, end]
// inclusive. The first bucket may begin before start; the last always
// begins on or before end.
func Buckets(start, end time.Time, g models.Granularity, weekStart time.Weekday) []time.Time {
	if end.Before(start) {
		return nil
	}
	var out []time.Time
	for cur := BucketStart(start, g, weekStart); !cur.After(end); cur = nextBucket(cur, g) {
		out = append(out, cur)
	}
	return out
}

// Label renders a bucket start for display. Labels are informational only
// and must never be used for sorting or equality.
func Label(start time.Time, g models.Granularity) string {
	switch g {
	case models.GranularityWeek:
		return "Week of " + start.Format("Jan 02")
	case models.GranularityMonth:
		return start.Format("Jan 2006")
	default:
		return start.Format("Jan 02")
	}
}
