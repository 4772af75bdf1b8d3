package tracker

import (
	"testing"
	"time"

	"github.com/cianmb/hurltrack/internal/models"
	"github.com/cianmb/hurltrack/internal/storage"
)

// TestWeeklyStatsExample walks the canonical scenario: one GYM session
// with one wall-ball drill.
func TestWeeklyStatsExample(t *testing.T) {
	tr := New(storage.NewStore(t.TempDir()))

	id := tr.NextSessionID()
	if id != 1 {
		t.Fatalf("session id = %d, want 1", id)
	}
	tr.AddSession(models.NewTrainingSession(id, models.Date(2024, time.January, 10), models.SessionGym, 60, 4, ""))

	drillID := tr.NextDrillID()
	if drillID != 1 {
		t.Fatalf("drill id = %d, want 1", drillID)
	}
	tr.AddDrill(models.NewDrillEntry(drillID, id, models.DrillWallBall, 100, 80, ""))

	stats := tr.GetWeeklyStats(models.Date(2024, time.January, 4), models.Date(2024, time.January, 10))
	if stats.SessionCount != 1 {
		t.Errorf("sessionCount = %d, want 1", stats.SessionCount)
	}
	if stats.TotalMinutes != 60 {
		t.Errorf("totalMinutes = %d, want 60", stats.TotalMinutes)
	}
	if stats.TrainingLoad != 240 {
		t.Errorf("trainingLoad = %d, want 240", stats.TrainingLoad)
	}
	if got := stats.MinutesByType[models.SessionGym.Index()]; got != 60 {
		t.Errorf("minutesByType[GYM] = %d, want 60", got)
	}
	if got := stats.RepsByDrill[models.DrillWallBall.Index()]; got != 100 {
		t.Errorf("repsByDrill[WALL_BALL] = %d, want 100", got)
	}
	if got := stats.SuccessByDrill[models.DrillWallBall.Index()]; got != 80 {
		t.Errorf("successByDrill[WALL_BALL] = %d, want 80", got)
	}
}

// TestWeeklyStatsRangeBounds verifies both ends of the range are
// inclusive and the days just outside are not.
func TestWeeklyStatsRangeBounds(t *testing.T) {
	tr := New(storage.NewStore(t.TempDir()))
	from := models.Date(2024, time.March, 4)
	to := models.Date(2024, time.March, 10)

	dates := []struct {
		day  int
		want bool
	}{
		{3, false},
		{4, true},
		{10, true},
		{11, false},
	}
	for _, d := range dates {
		tr.AddSession(models.NewTrainingSession(tr.NextSessionID(), models.Date(2024, time.March, d.day), models.SessionPitch, 10, 1, ""))
	}

	stats := tr.GetWeeklyStats(from, to)
	if stats.SessionCount != 2 {
		t.Errorf("sessionCount = %d, want 2 (only the 4th and 10th)", stats.SessionCount)
	}
	if stats.TotalMinutes != 20 {
		t.Errorf("totalMinutes = %d, want 20", stats.TotalMinutes)
	}
}

// TestWeeklyStatsSingleSessionLoad pins 60 minutes at intensity 3 = 180.
func TestWeeklyStatsSingleSessionLoad(t *testing.T) {
	tr := New(storage.NewStore(t.TempDir()))
	tr.AddSession(models.NewTrainingSession(tr.NextSessionID(), models.Date(2024, time.May, 6), models.SessionPitch, 60, 3, ""))

	stats := tr.GetWeeklyStats(models.Date(2024, time.May, 1), models.Date(2024, time.May, 7))
	if stats.TrainingLoad != 180 {
		t.Errorf("trainingLoad = %d, want 180", stats.TrainingLoad)
	}
}

// TestWeeklyStatsDrillsJoinThroughSession verifies drills count only
// when their owning session is in range, regardless of any other
// session being in range.
func TestWeeklyStatsDrillsJoinThroughSession(t *testing.T) {
	tr := New(storage.NewStore(t.TempDir()))
	inWeek := models.NewTrainingSession(tr.NextSessionID(), models.Date(2024, time.April, 3), models.SessionPitch, 60, 3, "")
	outOfWeek := models.NewTrainingSession(tr.NextSessionID(), models.Date(2024, time.April, 20), models.SessionGym, 45, 4, "")
	tr.AddSession(inWeek)
	tr.AddSession(outOfWeek)

	tr.AddDrill(models.NewDrillEntry(tr.NextDrillID(), inWeek.ID, models.DrillStrike, 30, 20, ""))
	tr.AddDrill(models.NewDrillEntry(tr.NextDrillID(), outOfWeek.ID, models.DrillStrike, 99, 99, ""))
	// Dangling reference: no such session, so never counted.
	tr.AddDrill(models.NewDrillEntry(tr.NextDrillID(), 42, models.DrillStrike, 7, 7, ""))

	stats := tr.GetWeeklyStats(models.Date(2024, time.April, 1), models.Date(2024, time.April, 7))
	if got := stats.RepsByDrill[models.DrillStrike.Index()]; got != 30 {
		t.Errorf("repsByDrill[STRIKE] = %d, want 30", got)
	}
	if got := stats.SuccessByDrill[models.DrillStrike.Index()]; got != 20 {
		t.Errorf("successByDrill[STRIKE] = %d, want 20", got)
	}
}

// TestWeeklyStatsEmptyRange verifies zeroed, fully sized buckets.
func TestWeeklyStatsEmptyRange(t *testing.T) {
	tr := New(storage.NewStore(t.TempDir()))
	stats := tr.GetWeeklyStats(models.Date(2024, time.January, 1), models.Date(2024, time.January, 7))

	if stats.SessionCount != 0 || stats.TotalMinutes != 0 || stats.TrainingLoad != 0 {
		t.Errorf("totals = %+v, want zeros", stats)
	}
	if len(stats.MinutesByType) != models.NumSessionTypes {
		t.Errorf("len(MinutesByType) = %d, want %d", len(stats.MinutesByType), models.NumSessionTypes)
	}
	if len(stats.RepsByDrill) != models.NumDrillTypes || len(stats.SuccessByDrill) != models.NumDrillTypes {
		t.Error("drill buckets not sized to the enumeration")
	}
}

// TestWeeklyStatsIsSnapshot verifies mutating the tracker afterwards
// does not change an already-returned stats value.
func TestWeeklyStatsIsSnapshot(t *testing.T) {
	tr := New(storage.NewStore(t.TempDir()))
	s := models.NewTrainingSession(tr.NextSessionID(), models.Date(2024, time.June, 5), models.SessionGym, 30, 2, "")
	tr.AddSession(s)

	stats := tr.GetWeeklyStats(models.Date(2024, time.June, 3), models.Date(2024, time.June, 9))
	tr.AddSession(models.NewTrainingSession(tr.NextSessionID(), models.Date(2024, time.June, 6), models.SessionGym, 100, 5, ""))

	if stats.TotalMinutes != 30 {
		t.Errorf("snapshot totalMinutes = %d, want 30", stats.TotalMinutes)
	}
	if got := stats.MinutesByType[models.SessionGym.Index()]; got != 30 {
		t.Errorf("snapshot minutesByType[GYM] = %d, want 30", got)
	}
}
