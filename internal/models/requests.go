package models

// RawPoint is a time series observation as it arrives over the wire.
// Dates are ISO-8601 calendar dates ("2006-01-02") or RFC 3339 timestamps;
// parsing is strict and happens in the service layer.
type RawPoint struct {
	Date     string  `json:"date" binding:"required"`
	Value    float64 `json:"value"`
	Label    string  `json:"label,omitempty"`
	Category string  `json:"category,omitempty"`
}

// RawCheckRecord is a completion record as it arrives over the wire
type RawCheckRecord struct {
	Date      string `json:"date" binding:"required"`
	Completed bool   `json:"completed"`
}

// AggregateRequest is the body of POST /analytics/aggregate
type AggregateRequest struct {
	Points      []RawPoint      `json:"points" binding:"required,dive"`
	Aggregation AggregationType `json:"aggregation" binding:"required,oneof=sum average count"`
}

// CompletionRatesRequest is the body of POST /analytics/completion-rates.
// The two date lists are filtered independently by the same bucket
// intervals; only dates matter, so no values are carried.
type CompletionRatesRequest struct {
	CompletedDates []string `json:"completed_dates"`
	TotalDates     []string `json:"total_dates"`
}

// TrendRequest is the body of POST /analytics/trend
type TrendRequest struct {
	Points []RawPoint  `json:"points" binding:"required,dive"`
	Period TrendPeriod `json:"period" binding:"omitempty,oneof=recent longterm"`
}

// CorrelationRequest is the body of POST /analytics/correlation
type CorrelationRequest struct {
	SeriesA []RawPoint `json:"series_a" binding:"required,dive"`
	SeriesB []RawPoint `json:"series_b" binding:"required,dive"`
}

// MovingAverageRequest is the body of POST /analytics/moving-average.
// WindowSize defaults to 7 when omitted or non-positive.
type MovingAverageRequest struct {
	Points     []RawPoint `json:"points" binding:"required,dive"`
	WindowSize int        `json:"window_size"`
}

// SummaryRequest is the body of POST /analytics/summary
type SummaryRequest struct {
	Values []float64 `json:"values" binding:"required"`
}

// StreaksRequest is the body of POST /insights/streaks
type StreaksRequest struct {
	Records []RawCheckRecord `json:"records" binding:"dive"`
}

// InsightsRequest is the body of POST /insights/predictive. Limit
// truncates the generated list when positive; 0 returns everything.
type InsightsRequest struct {
	Records []RawCheckRecord `json:"records" binding:"dive"`
	Habits  []Habit          `json:"habits" binding:"dive"`
	Limit   int              `json:"limit" binding:"omitempty,min=0"`
}

// DashboardRequest is the body of POST /insights/dashboard
type DashboardRequest struct {
	Points  []RawPoint       `json:"points" binding:"dive"`
	Records []RawCheckRecord `json:"records" binding:"dive"`
	Habits  []Habit          `json:"habits" binding:"dive"`
}
