package analytics

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/lumen-app/lumen/backend/internal/models"
)

const (
	// minCorrelationPairs is the smallest aligned sample a Pearson
	// coefficient is reported for
	minCorrelationPairs = 3

	// DefaultMovingAverageWindow is used when the caller passes a
	// non-positive window size
	DefaultMovingAverageWindow = 7

	dateKey = "2006-01-02"
)

// Correlate computes the Pearson correlation between two series after
// aligning them by calendar date (inner join; unmatched dates from either
// side are dropped silently). Fewer than 3 aligned pairs yields an
// insufficient_data result rather than an error. A zero denominator (no
// variance on either side) yields r = 0.
func Correlate(a, b []models.TimeSeriesPoint) (models.CorrelationResult, error) {
	if err := checkFinite(a); err != nil {
		return models.CorrelationResult{}, fmt.Errorf("series a: %w", err)
	}
	if err := checkFinite(b); err != nil {
		return models.CorrelationResult{}, fmt.Errorf("series b: %w", err)
	}

	byDate := make(map[string]float64, len(b))
	for _, p := range b {
		byDate[p.Date.Format(dateKey)] = p.Value
	}

	var xs, ys []float64
	for _, p := range sortedByDate(a) {
		if v, ok := byDate[p.Date.Format(dateKey)]; ok {
			xs = append(xs, p.Value)
			ys = append(ys, v)
		}
	}

	if len(xs) < minCorrelationPairs {
		return models.CorrelationResult{
			Correlation:    0,
			Strength:       models.StrengthInsufficientData,
			Interpretation: "Not enough overlapping dates to measure a relationship",
			SampleSize:     len(xs),
		}, nil
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		// No variance on one side, no correlation
		r = 0
	}

	strength := correlationStrength(r)
	return models.CorrelationResult{
		Correlation:    r,
		Strength:       strength,
		Interpretation: interpretCorrelation(r, strength),
		SampleSize:     len(xs),
	}, nil
}

func correlationStrength(r float64) models.CorrelationStrength {
	switch abs := math.Abs(r); {
	case abs >= 0.8:
		return models.StrengthVeryStrong
	case abs >= 0.6:
		return models.StrengthStrong
	case abs >= 0.4:
		return models.StrengthModerate
	case abs >= 0.2:
		return models.StrengthWeak
	default:
		return models.StrengthVeryWeak
	}
}

func interpretCorrelation(r float64, strength models.CorrelationStrength) string {
	if r == 0 {
		return "No linear relationship between the two series"
	}
	sign := "positive"
	if r < 0 {
		sign = "negative"
	}
	label := map[models.CorrelationStrength]string{
		models.StrengthVeryWeak:   "very weak",
		models.StrengthWeak:       "weak",
		models.StrengthModerate:   "moderate",
		models.StrengthStrong:     "strong",
		models.StrengthVeryStrong: "very strong",
	}[strength]
	return fmt.Sprintf("%s %s correlation (r=%.2f)", capitalize(label), sign, r)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// MovingAverage smooths a series with a centered window, clipped
// asymmetrically at the boundaries rather than padded. Dates and labels
// are preserved; only values are replaced.
func MovingAverage(series []models.TimeSeriesPoint, windowSize int) ([]models.TimeSeriesPoint, error) {
	if err := checkFinite(series); err != nil {
		return nil, err
	}
	if windowSize <= 0 {
		windowSize = DefaultMovingAverageWindow
	}

	sorted := sortedByDate(series)
	half := windowSize / 2
	out := make([]models.TimeSeriesPoint, len(sorted))
	for i := range sorted {
		lo := max(0, i-half)
		hi := min(len(sorted), i+half+1)

		var sum float64
		for j := lo; j < hi; j++ {
			sum += sorted[j].Value
		}

		p := sorted[i]
		p.Value = sum / float64(hi-lo)
		out[i] = p
	}
	return out, nil
}

// Summarize computes a descriptive summary of one numeric sample: mean,
// median, mode, population variance/stdev, min/max/range and nearest-rank
// quartiles. An empty sample yields a zeroed summary, not an error.
//
// Mode ties are resolved to the smallest value: the ascending scan only
// replaces the candidate on a strictly greater frequency.
func Summarize(values []float64) (models.StatisticalSummary, error) {
	if err := checkFiniteValues(values); err != nil {
		return models.StatisticalSummary{}, err
	}
	if len(values) == 0 {
		return models.StatisticalSummary{}, nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	slices.Sort(sorted)

	n := len(sorted)
	mean := stat.Mean(sorted, nil)

	var median float64
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	} else {
		median = sorted[n/2]
	}

	counts := make(map[float64]int, n)
	for _, v := range sorted {
		counts[v]++
	}
	mode := sorted[0]
	best := 0
	for _, v := range sorted {
		if c := counts[v]; c > best {
			best = c
			mode = v
		}
	}

	var variance float64
	for _, v := range sorted {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)

	return models.StatisticalSummary{
		Mean:              mean,
		Median:            median,
		Mode:              mode,
		StandardDeviation: math.Sqrt(variance),
		Variance:          variance,
		Min:               sorted[0],
		Max:               sorted[n-1],
		Range:             sorted[n-1] - sorted[0],
		Quartiles: models.Quartiles{
			Q1: sorted[n/4],
			Q2: sorted[n/2],
			Q3: sorted[3*n/4],
		},
	}, nil
}
