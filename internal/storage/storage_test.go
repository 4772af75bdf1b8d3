package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cianmb/hurltrack/internal/models"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	return NewStore(dir), dir
}

// TestLoadMissingFiles verifies that absent files mean empty, not failure.
func TestLoadMissingFiles(t *testing.T) {
	st, _ := newTestStore(t)

	sessions, err := st.LoadSessions()
	if err != nil {
		t.Fatalf("LoadSessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("sessions = %v, want empty", sessions)
	}

	drills, err := st.LoadDrills()
	if err != nil {
		t.Fatalf("LoadDrills: %v", err)
	}
	if len(drills) != 0 {
		t.Errorf("drills = %v, want empty", drills)
	}

	_, found, err := st.LoadTargets()
	if err != nil {
		t.Fatalf("LoadTargets: %v", err)
	}
	if found {
		t.Error("LoadTargets found a record in an empty dir")
	}
}

// TestSaveLoadSessions verifies rewrite-whole-file persistence round-trips.
func TestSaveLoadSessions(t *testing.T) {
	st, dir := newTestStore(t)

	want := []models.TrainingSession{
		models.NewTrainingSession(1, models.Date(2024, time.January, 10), models.SessionGym, 60, 4, "heavy legs"),
		models.NewTrainingSession(2, models.Date(2024, time.January, 12), models.SessionPitch, 90, 3, ""),
	}
	if err := st.SaveSessions(want); err != nil {
		t.Fatalf("SaveSessions: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sessions.csv"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	wantFile := "1,2024-01-10,GYM,60,4,heavy legs\n2,2024-01-12,PITCH,90,3,\n"
	if string(data) != wantFile {
		t.Errorf("file = %q, want %q", data, wantFile)
	}

	got, err := st.LoadSessions()
	if err != nil {
		t.Fatalf("LoadSessions: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("loaded %d sessions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("session %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestLoadSkipsBlankLines verifies blank lines are silently ignored.
func TestLoadSkipsBlankLines(t *testing.T) {
	st, dir := newTestStore(t)

	content := "\n1,1,WALL_BALL,100,80,\n\n\n2,1,SPRINT,10,0,\n"
	if err := os.WriteFile(filepath.Join(dir, "drills.csv"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	drills, err := st.LoadDrills()
	if err != nil {
		t.Fatalf("LoadDrills: %v", err)
	}
	if len(drills) != 2 {
		t.Errorf("loaded %d drills, want 2", len(drills))
	}
}

// TestLoadAbortsOnMalformedLine verifies one bad line fails the whole
// load and surfaces the entity's parse error.
func TestLoadAbortsOnMalformedLine(t *testing.T) {
	st, dir := newTestStore(t)

	content := "1,2024-01-10,GYM,60,4,\n2,2024-01-12\n"
	if err := os.WriteFile(filepath.Join(dir, "sessions.csv"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := st.LoadSessions()
	var merr *models.MalformedRecordError
	if !errors.As(err, &merr) {
		t.Fatalf("error = %v, want *MalformedRecordError", err)
	}
}

// TestLoadAbortsOnBadEnum verifies an unknown enum name fails the load.
func TestLoadAbortsOnBadEnum(t *testing.T) {
	st, dir := newTestStore(t)

	content := "1,2024-01-10,YOGA,60,4,\n"
	if err := os.WriteFile(filepath.Join(dir, "sessions.csv"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := st.LoadSessions()
	var ferr *models.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("error = %v, want *FormatError", err)
	}
}

// TestTargetsRoundTrip verifies the single-line targets file.
func TestTargetsRoundTrip(t *testing.T) {
	st, dir := newTestStore(t)

	want := models.Targets{SessionsPerWeek: 5, WallBallRepsPerWeek: 700, GymMinutesPerWeek: 90}
	if err := st.SaveTargets(want); err != nil {
		t.Fatalf("SaveTargets: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "targets.csv"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "5,700,90\n" {
		t.Errorf("file = %q, want %q", data, "5,700,90\n")
	}

	got, found, err := st.LoadTargets()
	if err != nil {
		t.Fatalf("LoadTargets: %v", err)
	}
	if !found {
		t.Fatal("LoadTargets did not find the saved record")
	}
	if got != want {
		t.Errorf("targets = %+v, want %+v", got, want)
	}
}

// TestSaveOverwrites verifies saves replace previous contents entirely.
func TestSaveOverwrites(t *testing.T) {
	st, _ := newTestStore(t)

	first := []models.TrainingSession{
		models.NewTrainingSession(1, models.Date(2024, time.January, 10), models.SessionGym, 60, 4, ""),
		models.NewTrainingSession(2, models.Date(2024, time.January, 11), models.SessionGym, 30, 2, ""),
	}
	if err := st.SaveSessions(first); err != nil {
		t.Fatal(err)
	}

	second := first[:1]
	if err := st.SaveSessions(second); err != nil {
		t.Fatal(err)
	}

	got, err := st.LoadSessions()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("loaded %d sessions after overwrite, want 1", len(got))
	}
}

// TestReadFailureIsStorageError verifies I/O faults wrap in StorageError.
func TestReadFailureIsStorageError(t *testing.T) {
	dir := t.TempDir()
	// A directory where the sessions file should be forces a read error
	// that is not os.IsNotExist.
	if err := os.Mkdir(filepath.Join(dir, "sessions.csv"), 0755); err != nil {
		t.Fatal(err)
	}
	st := NewStore(dir)

	_, err := st.LoadSessions()
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v, want *StorageError", err)
	}
	if serr.Op != "read" {
		t.Errorf("op = %q, want %q", serr.Op, "read")
	}
}
