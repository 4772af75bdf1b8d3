package tracker

import (
	"sort"
	"time"

	"github.com/cianmb/hurltrack/internal/models"
	"github.com/cianmb/hurltrack/internal/storage"
)

// Tracker owns the whole in-memory training log: sessions kept
// newest-first, drills in insertion order, the weekly targets, and the
// id counters for both collections. One Tracker per process; it is not
// safe for concurrent use.
type Tracker struct {
	store *storage.Store

	sessions []models.TrainingSession
	drills   []models.DrillEntry
	targets  models.Targets

	nextSessionID int
	nextDrillID   int
}

func New(store *storage.Store) *Tracker {
	return &Tracker{
		store:         store,
		targets:       models.DefaultTargets(),
		nextSessionID: 1,
		nextDrillID:   1,
	}
}

// Load replaces all in-memory state with the store's contents and
// recomputes both id counters as max(existing)+1, so ids stay consistent
// with externally edited files. Missing targets fall back to defaults.
func (t *Tracker) Load() error {
	sessions, err := t.store.LoadSessions()
	if err != nil {
		return err
	}
	drills, err := t.store.LoadDrills()
	if err != nil {
		return err
	}
	targets, found, err := t.store.LoadTargets()
	if err != nil {
		return err
	}

	t.sessions = sessions
	t.drills = drills
	if found {
		t.targets = targets
	} else {
		t.targets = models.DefaultTargets()
	}
	t.sortSessionsNewestFirst()

	maxSession := 0
	for _, s := range t.sessions {
		if s.ID > maxSession {
			maxSession = s.ID
		}
	}
	t.nextSessionID = maxSession + 1

	maxDrill := 0
	for _, d := range t.drills {
		if d.ID > maxDrill {
			maxDrill = d.ID
		}
	}
	t.nextDrillID = maxDrill + 1

	return nil
}

// Save persists sessions, drills and targets. The writes run in that
// order with no cross-file transaction: a failure aborts the rest, and
// files already written stay written.
func (t *Tracker) Save() error {
	if err := t.store.SaveSessions(t.sessions); err != nil {
		return err
	}
	if err := t.store.SaveDrills(t.drills); err != nil {
		return err
	}
	return t.store.SaveTargets(t.targets)
}

// NextSessionID returns the next session id and advances the counter.
func (t *Tracker) NextSessionID() int {
	id := t.nextSessionID
	t.nextSessionID++
	return id
}

// NextDrillID returns the next drill id and advances the counter.
func (t *Tracker) NextDrillID() int {
	id := t.nextDrillID
	t.nextDrillID++
	return id
}

func (t *Tracker) AddSession(s models.TrainingSession) {
	t.sessions = append(t.sessions, s)
	t.sortSessionsNewestFirst()
}

// AddDrill appends the drill as given. The session reference is the
// caller's contract; it is not validated here.
func (t *Tracker) AddDrill(d models.DrillEntry) {
	t.drills = append(t.drills, d)
}

// GetLastSessions returns up to n sessions, newest first. n <= 0 yields
// an empty slice. The result is a copy.
func (t *Tracker) GetLastSessions(n int) []models.TrainingSession {
	if n <= 0 {
		return nil
	}
	if n > len(t.sessions) {
		n = len(t.sessions)
	}
	out := make([]models.TrainingSession, n)
	copy(out, t.sessions[:n])
	return out
}

// GetSession returns the session with the given id, if present.
func (t *Tracker) GetSession(id int) (models.TrainingSession, bool) {
	for _, s := range t.sessions {
		if s.ID == id {
			return s, true
		}
	}
	return models.TrainingSession{}, false
}

// GetDrillsForSession returns the session's drills in store order.
func (t *Tracker) GetDrillsForSession(sessionID int) []models.DrillEntry {
	var out []models.DrillEntry
	for _, d := range t.drills {
		if d.SessionID == sessionID {
			out = append(out, d)
		}
	}
	return out
}

// DeleteSession removes the session with the given id and every drill
// referencing it. It reports whether a session was actually removed;
// a second call with the same id is a no-op returning false.
func (t *Tracker) DeleteSession(sessionID int) bool {
	idx := -1
	for i, s := range t.sessions {
		if s.ID == sessionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	t.sessions = append(t.sessions[:idx], t.sessions[idx+1:]...)

	kept := t.drills[:0]
	for _, d := range t.drills {
		if d.SessionID != sessionID {
			kept = append(kept, d)
		}
	}
	t.drills = kept
	return true
}

// UpdateSession replaces the stored session sharing updated's id with
// updated, all fields at once, and re-sorts. It reports whether a match
// was found. Drills are left untouched.
func (t *Tracker) UpdateSession(updated models.TrainingSession) bool {
	for i, s := range t.sessions {
		if s.ID == updated.ID {
			t.sessions[i] = updated
			t.sortSessionsNewestFirst()
			return true
		}
	}
	return false
}

// GetTargets returns the current weekly targets.
func (t *Tracker) GetTargets() models.Targets {
	return t.targets
}

// SetTargets replaces the weekly targets wholesale. Values are taken as
// given; nothing clamps negatives.
func (t *Tracker) SetTargets(targets models.Targets) {
	t.targets = targets
}

// sortSessionsNewestFirst keeps sessions ordered by date descending.
// The sort is stable, so sessions sharing a date keep insertion order.
func (t *Tracker) sortSessionsNewestFirst() {
	sort.SliceStable(t.sessions, func(i, j int) bool {
		return t.sessions[i].Date.After(t.sessions[j].Date)
	})
}

func inRange(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}
