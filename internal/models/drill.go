package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cianmb/hurltrack/internal/csvutil"
)

// DrillEntry is one exercise logged under a session. Drill ids live in
// their own id space, independent of session ids. A drill is never
// deleted on its own; it goes when its owning session is deleted.
type DrillEntry struct {
	ID        int
	SessionID int
	Type      DrillType
	Reps      int
	Success   int // 0 means "not tracked"
	Notes     string
}

// NewDrillEntry builds a drill entry. The caller is responsible for
// SessionID referencing a session that exists at the time of the add.
func NewDrillEntry(id, sessionID int, typ DrillType, reps, success int, notes string) DrillEntry {
	return DrillEntry{
		ID:        id,
		SessionID: sessionID,
		Type:      typ,
		Reps:      reps,
		Success:   success,
		Notes:     notes,
	}
}

// ToCSV renders the drill as one record line, commas in notes replaced.
func (d DrillEntry) ToCSV() string {
	return strings.Join([]string{
		strconv.Itoa(d.ID),
		strconv.Itoa(d.SessionID),
		d.Type.String(),
		strconv.Itoa(d.Reps),
		strconv.Itoa(d.Success),
		csvutil.Clean(d.Notes),
	}, ",")
}

// ParseDrillEntry parses one record line into a fully valid drill.
func ParseDrillEntry(line string) (DrillEntry, error) {
	cols := csvutil.Parse(line)
	if len(cols) < 6 {
		return DrillEntry{}, &MalformedRecordError{Kind: "drill", Line: line, Fields: len(cols)}
	}

	id, err := strconv.Atoi(cols[0])
	if err != nil {
		return DrillEntry{}, &FormatError{Kind: "drill", Field: "id", Value: cols[0], Err: err}
	}
	sessionID, err := strconv.Atoi(cols[1])
	if err != nil {
		return DrillEntry{}, &FormatError{Kind: "drill", Field: "sessionId", Value: cols[1], Err: err}
	}
	typ, err := ParseDrillType(cols[2])
	if err != nil {
		return DrillEntry{}, &FormatError{Kind: "drill", Field: "drillType", Value: cols[2], Err: err}
	}
	reps, err := strconv.Atoi(cols[3])
	if err != nil {
		return DrillEntry{}, &FormatError{Kind: "drill", Field: "reps", Value: cols[3], Err: err}
	}
	success, err := strconv.Atoi(cols[4])
	if err != nil {
		return DrillEntry{}, &FormatError{Kind: "drill", Field: "success", Value: cols[4], Err: err}
	}

	return DrillEntry{
		ID:        id,
		SessionID: sessionID,
		Type:      typ,
		Reps:      reps,
		Success:   success,
		Notes:     cols[5],
	}, nil
}

// Neat renders the drill as a single list row.
func (d DrillEntry) Neat() string {
	suc := ""
	if d.Success > 0 {
		suc = fmt.Sprintf(" | success %d", d.Success)
	}
	n := ""
	if strings.TrimSpace(d.Notes) != "" {
		n = " | " + d.Notes
	}
	return fmt.Sprintf("- %s reps %d%s%s | ID %d", d.Type, d.Reps, suc, n, d.ID)
}
