package analytics

import (
	"sort"
	"time"

	"github.com/lumen-app/lumen/backend/internal/models"
)

// Streaks scans a completion record set and returns the current streak,
// longest streak, a per-record streak history and the break points.
//
// Records need not arrive sorted. The current streak is counted from the
// chronological end backward and only an explicit completed=false record
// breaks it; a trailing gap with no record for today does not. Each break
// is dated at the last completed record of the run it ended.
func Streaks(records []models.CheckRecord) models.StreakResult {
	result := models.StreakResult{
		StreakHistory: []models.StreakPoint{},
		StreakBreaks:  []models.StreakPoint{},
	}
	if len(records) == 0 {
		return result
	}

	sorted := make([]models.CheckRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	for i := len(sorted) - 1; i >= 0; i-- {
		if !sorted[i].Completed {
			break
		}
		result.CurrentStreak++
	}

	run := 0
	var lastCompleted time.Time
	for _, r := range sorted {
		if r.Completed {
			run++
			lastCompleted = r.Date
			if run > result.LongestStreak {
				result.LongestStreak = run
			}
		} else {
			if run > 0 {
				result.StreakBreaks = append(result.StreakBreaks, models.StreakPoint{
					Date:         lastCompleted,
					StreakLength: run,
				})
			}
			run = 0
		}
		result.StreakHistory = append(result.StreakHistory, models.StreakPoint{
			Date:         r.Date,
			StreakLength: run,
		})
	}

	return result
}
