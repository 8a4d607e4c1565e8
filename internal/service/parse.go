package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/lumen-app/lumen/backend/internal/models"
)

// ErrMalformedDate reports a date string that is neither an ISO-8601
// calendar date nor an RFC 3339 timestamp. Handlers map it to a 400.
var ErrMalformedDate = errors.New("malformed date")

const dateLayout = "2006-01-02"

// parseDate parses a wire date strictly. No lenient fallbacks: anything
// besides the two supported layouts is rejected.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
}

func parsePoints(raw []models.RawPoint) ([]models.TimeSeriesPoint, error) {
	points := make([]models.TimeSeriesPoint, len(raw))
	for i, r := range raw {
		d, err := parseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points[i] = models.TimeSeriesPoint{Date: d, Value: r.Value, Label: r.Label, Category: r.Category}
	}
	return points, nil
}

func parseRecords(raw []models.RawCheckRecord) ([]models.CheckRecord, error) {
	records := make([]models.CheckRecord, len(raw))
	for i, r := range raw {
		d, err := parseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records[i] = models.CheckRecord{Date: d, Completed: r.Completed}
	}
	return records, nil
}

func parseDates(raw []string) ([]time.Time, error) {
	dates := make([]time.Time, len(raw))
	for i, s := range raw {
		d, err := parseDate(s)
		if err != nil {
			return nil, fmt.Errorf("date %d: %w", i, err)
		}
		dates[i] = d
	}
	return dates, nil
}
