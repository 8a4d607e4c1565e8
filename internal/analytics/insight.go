package analytics

import (
	"fmt"
	"sort"

	"github.com/lumen-app/lumen/backend/internal/models"
)

// Config holds the tunable thresholds of the insight rules, so the rules
// can be tuned or tested independently of the scanning logic.
type Config struct {
	// streak_risk: fires when the current streak is at least
	// StreakRiskMinStreak and more than StreakRiskMaxMisses of the last
	// StreakRiskWindow records are incomplete
	StreakRiskMinStreak  int
	StreakRiskWindow     int
	StreakRiskMaxMisses  int
	StreakRiskConfidence float64

	// peak_performance: fires when the best weekday's completion rate
	// exceeds PeakRateThreshold (percent)
	PeakRateThreshold float64
	PeakConfidence    float64

	// habit_formation: fires for habits whose cumulative completions fall
	// in [FormationMinDays, FormationMaxDays), the 21–66 day window from
	// Lally et al.
	FormationMinDays    int
	FormationMaxDays    int
	FormationConfidence float64

	// goal_achievement: fires for habits at or past GoalProgressThreshold
	// of their required days with at least GoalConsistency completions
	// per elapsed day
	GoalProgressThreshold float64
	GoalConsistency       float64
	GoalConfidence        float64
}

// DefaultConfig returns the hand-tuned thresholds of the original rules
func DefaultConfig() Config {
	return Config{
		StreakRiskMinStreak:  7,
		StreakRiskWindow:     14,
		StreakRiskMaxMisses:  3,
		StreakRiskConfidence: 0.75,

		PeakRateThreshold: 80,
		PeakConfidence:    0.85,

		FormationMinDays:    21,
		FormationMaxDays:    66,
		FormationConfidence: 0.70,

		GoalProgressThreshold: 0.8,
		GoalConsistency:       0.8,
		GoalConfidence:        0.80,
	}
}

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Insights evaluates every rule against the supplied records and habit
// metadata. Each rule independently emits zero or one insight per subject;
// results keep rule evaluation order, with no ranking or deduplication.
// Callers may truncate the list.
func Insights(records []models.CheckRecord, habits []models.Habit, cfg Config) []models.PredictiveInsight {
	sorted := make([]models.CheckRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	insights := make([]models.PredictiveInsight, 0, 2+len(habits))
	if in, ok := streakRisk(sorted, cfg); ok {
		insights = append(insights, in)
	}
	if in, ok := peakPerformance(sorted, cfg); ok {
		insights = append(insights, in)
	}
	insights = append(insights, habitFormation(habits, cfg)...)
	insights = append(insights, goalAchievement(habits, cfg)...)
	return insights
}

// streakRisk flags a long active streak that recent misses put in danger
func streakRisk(sorted []models.CheckRecord, cfg Config) (models.PredictiveInsight, bool) {
	streaks := Streaks(sorted)
	if streaks.CurrentStreak < cfg.StreakRiskMinStreak {
		return models.PredictiveInsight{}, false
	}

	window := sorted
	if len(window) > cfg.StreakRiskWindow {
		window = window[len(window)-cfg.StreakRiskWindow:]
	}
	misses := 0
	for _, r := range window {
		if !r.Completed {
			misses++
		}
	}
	if misses <= cfg.StreakRiskMaxMisses {
		return models.PredictiveInsight{}, false
	}

	return models.PredictiveInsight{
		Type:       models.InsightStreakRisk,
		Confidence: cfg.StreakRiskConfidence,
		Prediction: fmt.Sprintf("Your %d-day streak is at risk: %d of your last %d check-ins were missed",
			streaks.CurrentStreak, misses, len(window)),
		RecommendedActions: []string{
			"Set a reminder for your usual check-in time",
			"Fall back to the smallest version of the habit on busy days",
			"Plan tomorrow's check-in the night before",
		},
		Timeframe: "next 7 days",
	}, true
}

// peakPerformance finds the weekday with the highest completion rate.
// Ties resolve to the earliest weekday, Sunday first.
func peakPerformance(sorted []models.CheckRecord, cfg Config) (models.PredictiveInsight, bool) {
	var completed, total [7]int
	for _, r := range sorted {
		day := int(r.Date.Weekday())
		total[day]++
		if r.Completed {
			completed[day]++
		}
	}

	bestDay := -1
	bestRate := 0.0
	for day := 0; day < 7; day++ {
		if total[day] == 0 {
			continue
		}
		rate := 100 * float64(completed[day]) / float64(total[day])
		if bestDay < 0 || rate > bestRate {
			bestDay = day
			bestRate = rate
		}
	}
	if bestDay < 0 || bestRate <= cfg.PeakRateThreshold {
		return models.PredictiveInsight{}, false
	}

	name := weekdayNames[bestDay]
	return models.PredictiveInsight{
		Type:       models.InsightPeakPerformance,
		Confidence: cfg.PeakConfidence,
		Prediction: fmt.Sprintf("You complete %.0f%% of your check-ins on %ss, your strongest day",
			bestRate, name),
		RecommendedActions: []string{
			fmt.Sprintf("Schedule your hardest tasks on %ss", name),
			"Use your strongest day to get ahead on weekly goals",
		},
		Timeframe: "weekly",
	}, true
}

// habitFormation surfaces habits inside the formation window, where
// consistency matters most
func habitFormation(habits []models.Habit, cfg Config) []models.PredictiveInsight {
	var out []models.PredictiveInsight
	for _, h := range habits {
		if h.TotalCompletions < cfg.FormationMinDays || h.TotalCompletions >= cfg.FormationMaxDays {
			continue
		}
		remaining := cfg.FormationMaxDays - h.TotalCompletions
		out = append(out, models.PredictiveInsight{
			Type:       models.InsightHabitFormation,
			Confidence: cfg.FormationConfidence,
			Prediction: fmt.Sprintf("%s is %d check-ins into the habit-formation window; around %d more and it should start to feel automatic",
				h.Title, h.TotalCompletions, remaining),
			RecommendedActions: []string{
				"Keep the habit attached to the same daily cue",
				"Do not break the chain twice in a row",
			},
			Timeframe: fmt.Sprintf("next %d days", remaining),
		})
	}
	return out
}

// goalAchievement surfaces habits close to graduating with the
// consistency to make it
func goalAchievement(habits []models.Habit, cfg Config) []models.PredictiveInsight {
	var out []models.PredictiveInsight
	for _, h := range habits {
		if h.RequiredDays <= 0 || h.CurrentDay <= 0 {
			continue
		}
		progress := float64(h.CurrentDay) / float64(h.RequiredDays)
		consistency := float64(h.TotalCompletions) / float64(h.CurrentDay)
		if progress < cfg.GoalProgressThreshold || consistency < cfg.GoalConsistency {
			continue
		}

		remaining := h.RequiredDays - h.CurrentDay
		timeframe := "now"
		if remaining > 0 {
			timeframe = fmt.Sprintf("next %d days", remaining)
		}
		out = append(out, models.PredictiveInsight{
			Type:       models.InsightGoalAchievement,
			Confidence: cfg.GoalConfidence,
			Prediction: fmt.Sprintf("%s is %d of %d days toward graduation and on track to make it",
				h.Title, h.CurrentDay, h.RequiredDays),
			RecommendedActions: []string{
				"Hold your current routine steady",
				"Decide what graduating this habit unlocks next",
			},
			Timeframe: timeframe,
		})
	}
	return out
}
