// Package analytics is the pure computation core of the Lumen backend: it
// turns raw time-stamped activity records into bucketed series, streak
// metrics, trend classifications, correlations, statistical summaries and
// heuristic insights.
//
// Every function is a deterministic, side-effect-free transformation of its
// inputs. Nothing here reads the wall clock or mutates an input slice, so
// concurrent callers need no locking and identical inputs always produce
// identical outputs.
package analytics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/lumen-app/lumen/backend/internal/models"
)

// ErrNonFinite is returned when an input value is NaN or infinite. Silent
// coercion would corrupt every downstream aggregate, so this fails fast.
var ErrNonFinite = errors.New("non-finite value")

// checkFinite rejects NaN and infinite point values
func checkFinite(points []models.TimeSeriesPoint) error {
	for i, p := range points {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return fmt.Errorf("%w: point %d (%s)", ErrNonFinite, i, p.Date.Format("2006-01-02"))
		}
	}
	return nil
}

// checkFiniteValues rejects NaN and infinite sample values
func checkFiniteValues(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: value %d", ErrNonFinite, i)
		}
	}
	return nil
}

// sortedByDate returns a date-ascending copy, leaving the input untouched
func sortedByDate(points []models.TimeSeriesPoint) []models.TimeSeriesPoint {
	out := make([]models.TimeSeriesPoint, len(points))
	copy(out, points)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
