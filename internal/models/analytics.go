package models

import "time"

// Granularity represents the calendar resolution of a bucketed series
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// AggregationType represents how point values are folded into a bucket
type AggregationType string

const (
	AggregationSum     AggregationType = "sum"
	AggregationAverage AggregationType = "average"
	AggregationCount   AggregationType = "count"
)

// TrendDirection represents the classified direction of a trend
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// TrendPeriod selects the comparison windows for trend analysis
type TrendPeriod string

const (
	TrendPeriodRecent   TrendPeriod = "recent"
	TrendPeriodLongterm TrendPeriod = "longterm"
)

// Significance is a coarse magnitude label for a percentage change,
// not a statistical p-value
type Significance string

const (
	SignificanceLow    Significance = "low"
	SignificanceMedium Significance = "medium"
	SignificanceHigh   Significance = "high"
)

// CorrelationStrength buckets the absolute Pearson coefficient
type CorrelationStrength string

const (
	StrengthVeryWeak         CorrelationStrength = "very_weak"
	StrengthWeak             CorrelationStrength = "weak"
	StrengthModerate         CorrelationStrength = "moderate"
	StrengthStrong           CorrelationStrength = "strong"
	StrengthVeryStrong       CorrelationStrength = "very_strong"
	StrengthInsufficientData CorrelationStrength = "insufficient_data"
)

// InsightType represents the rule that produced a predictive insight
type InsightType string

const (
	InsightStreakRisk      InsightType = "streak_risk"
	InsightPeakPerformance InsightType = "peak_performance"
	InsightHabitFormation  InsightType = "habit_formation"
	InsightGoalAchievement InsightType = "goal_achievement"
)

// TimeSeriesPoint is a single dated observation. The engine never mutates
// points it is given; derived series are always freshly constructed.
type TimeSeriesPoint struct {
	Date     time.Time `json:"date"`
	Value    float64   `json:"value"`
	Label    string    `json:"label,omitempty"`
	Category string    `json:"category,omitempty"`
}

// AggregatedData holds the three fixed-window series produced by the
// aggregator: last 30 days at day resolution, last 12 weeks at week
// resolution, last 6 months at month resolution. The windows cover
// different historical depths and are not nested subsets of one another.
type AggregatedData struct {
	Daily   []TimeSeriesPoint `json:"daily"`
	Weekly  []TimeSeriesPoint `json:"weekly"`
	Monthly []TimeSeriesPoint `json:"monthly"`
}

// TrendAnalysis classifies a series as trending up, down, or stable.
// Percentage is the absolute percent change; Direction carries the sign.
type TrendAnalysis struct {
	Direction    TrendDirection `json:"direction"`
	Percentage   float64        `json:"percentage"`
	Significance Significance   `json:"significance"`
	Summary      string         `json:"summary"`
}

// CheckRecord is a single dated completion record (habit check-in or
// task completion)
type CheckRecord struct {
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

// StreakPoint is one entry of a streak history or break list
type StreakPoint struct {
	Date         time.Time `json:"date"`
	StreakLength int       `json:"streak_length"`
}

// StreakResult holds the output of the streak analyzer. StreakHistory has
// one entry per input record (zeros included) so callers can plot an
// unbroken line; StreakBreaks records the run length at each break, dated
// at the last completed record of the broken run.
type StreakResult struct {
	CurrentStreak int           `json:"current_streak"`
	LongestStreak int           `json:"longest_streak"`
	StreakHistory []StreakPoint `json:"streak_history"`
	StreakBreaks  []StreakPoint `json:"streak_breaks"`
}

// CorrelationResult holds a Pearson coefficient between two date-aligned
// series plus its categorical strength and a readable interpretation
type CorrelationResult struct {
	Correlation    float64             `json:"correlation"`
	Strength       CorrelationStrength `json:"strength"`
	Interpretation string              `json:"interpretation"`
	SampleSize     int                 `json:"sample_size"`
}

// Quartiles holds the nearest-rank quartile values of a sample
type Quartiles struct {
	Q1 float64 `json:"q1"`
	Q2 float64 `json:"q2"`
	Q3 float64 `json:"q3"`
}

// StatisticalSummary describes a single numeric sample. Variance and
// standard deviation use the population formulas (divisor n).
type StatisticalSummary struct {
	Mean              float64   `json:"mean"`
	Median            float64   `json:"median"`
	Mode              float64   `json:"mode"`
	StandardDeviation float64   `json:"standard_deviation"`
	Variance          float64   `json:"variance"`
	Min               float64   `json:"min"`
	Max               float64   `json:"max"`
	Range             float64   `json:"range"`
	Quartiles         Quartiles `json:"quartiles"`
}

// PredictiveInsight is one heuristic conclusion emitted by the insight
// rule engine, in rule evaluation order with no further ranking
type PredictiveInsight struct {
	Type               InsightType `json:"type"`
	Confidence         float64     `json:"confidence"`
	Prediction         string      `json:"prediction"`
	RecommendedActions []string    `json:"recommended_actions"`
	Timeframe          string      `json:"timeframe"`
}

// Habit carries the habit metadata consumed by the insight rules. Mirrors
// the tracker's habit record: cumulative completions plus graduation
// progress (CurrentDay out of RequiredDays).
type Habit struct {
	ID               string `json:"id"`
	Title            string `json:"title" binding:"required"`
	TotalCompletions int    `json:"total_completions"`
	CurrentDay       int    `json:"current_day"`
	RequiredDays     int    `json:"required_days"`
}

// DashboardResponse bundles the derived views a dashboard renders in one
// round trip
type DashboardResponse struct {
	Aggregates AggregatedData      `json:"aggregates"`
	Trend      TrendAnalysis       `json:"trend"`
	Streaks    StreakResult        `json:"streaks"`
	Insights   []PredictiveInsight `json:"insights"`
	ComputedAt time.Time           `json:"computed_at"`
}
