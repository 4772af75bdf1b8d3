package tracker

import (
	"time"

	"github.com/cianmb/hurltrack/internal/models"
)

// WeeklyStats is a derived snapshot over a date range. The by-type
// slices are always sized exactly to the fixed enumerations and indexed
// by SessionType.Index / DrillType.Index. Nothing here aliases the
// tracker's live collections.
type WeeklyStats struct {
	SessionCount   int
	TotalMinutes   int
	TrainingLoad   int // sum of minutes*intensity
	MinutesByType  []int
	RepsByDrill    []int
	SuccessByDrill []int
}

// GetWeeklyStats aggregates sessions dated within [from, to], both ends
// inclusive. Drills join in through their owning session only: a drill
// counts exactly when its session is in range, with no date of its own.
func (t *Tracker) GetWeeklyStats(from, to time.Time) WeeklyStats {
	stats := WeeklyStats{
		MinutesByType:  make([]int, models.NumSessionTypes),
		RepsByDrill:    make([]int, models.NumDrillTypes),
		SuccessByDrill: make([]int, models.NumDrillTypes),
	}

	inRangeIDs := make(map[int]bool)
	for _, s := range t.sessions {
		if !inRange(s.Date, from, to) {
			continue
		}
		stats.SessionCount++
		stats.TotalMinutes += s.Minutes
		stats.TrainingLoad += s.Minutes * s.Intensity
		stats.MinutesByType[s.Type.Index()] += s.Minutes
		inRangeIDs[s.ID] = true
	}

	for _, d := range t.drills {
		if !inRangeIDs[d.SessionID] {
			continue
		}
		stats.RepsByDrill[d.Type.Index()] += d.Reps
		stats.SuccessByDrill[d.Type.Index()] += d.Success
	}

	return stats
}
