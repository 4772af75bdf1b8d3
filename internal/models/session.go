package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cianmb/hurltrack/internal/csvutil"
)

// TrainingSession is one logged training activity. Values are never
// mutated in place: an edit builds a replacement and swaps it in by ID.
type TrainingSession struct {
	ID        int
	Date      time.Time
	Type      SessionType
	Minutes   int
	Intensity int
	Notes     string
}

// NewTrainingSession builds a session with its date normalized to a
// plain calendar date. Intensity is expected to be 1-5; that range is
// the caller's contract and is not re-checked here, so sessions loaded
// from an externally edited file pass through as written.
func NewTrainingSession(id int, date time.Time, typ SessionType, minutes, intensity int, notes string) TrainingSession {
	return TrainingSession{
		ID:        id,
		Date:      Date(date.Year(), date.Month(), date.Day()),
		Type:      typ,
		Minutes:   minutes,
		Intensity: intensity,
		Notes:     notes,
	}
}

// ToCSV renders the session as one record line. Commas in the notes are
// replaced with spaces so the line always splits back into six fields.
func (s TrainingSession) ToCSV() string {
	return strings.Join([]string{
		strconv.Itoa(s.ID),
		s.Date.Format(DateLayout),
		s.Type.String(),
		strconv.Itoa(s.Minutes),
		strconv.Itoa(s.Intensity),
		csvutil.Clean(s.Notes),
	}, ",")
}

// ParseTrainingSession parses one record line. It returns either a
// fully valid session or an error, never a partial value.
func ParseTrainingSession(line string) (TrainingSession, error) {
	cols := csvutil.Parse(line)
	if len(cols) < 6 {
		return TrainingSession{}, &MalformedRecordError{Kind: "session", Line: line, Fields: len(cols)}
	}

	id, err := strconv.Atoi(cols[0])
	if err != nil {
		return TrainingSession{}, &FormatError{Kind: "session", Field: "id", Value: cols[0], Err: err}
	}
	date, err := ParseDate(cols[1])
	if err != nil {
		return TrainingSession{}, &FormatError{Kind: "session", Field: "date", Value: cols[1], Err: err}
	}
	typ, err := ParseSessionType(cols[2])
	if err != nil {
		return TrainingSession{}, &FormatError{Kind: "session", Field: "type", Value: cols[2], Err: err}
	}
	minutes, err := strconv.Atoi(cols[3])
	if err != nil {
		return TrainingSession{}, &FormatError{Kind: "session", Field: "minutes", Value: cols[3], Err: err}
	}
	intensity, err := strconv.Atoi(cols[4])
	if err != nil {
		return TrainingSession{}, &FormatError{Kind: "session", Field: "intensity", Value: cols[4], Err: err}
	}

	return TrainingSession{
		ID:        id,
		Date:      date,
		Type:      typ,
		Minutes:   minutes,
		Intensity: intensity,
		Notes:     cols[5],
	}, nil
}

// Neat renders the session as a multi-line block for detail views.
func (s TrainingSession) Neat() string {
	notes := s.Notes
	if strings.TrimSpace(notes) == "" {
		notes = "-"
	}
	return s.Date.Format(DateLayout) + "\n" +
		"Type: " + s.Type.String() + "\n" +
		"Minutes: " + strconv.Itoa(s.Minutes) + "\n" +
		"Intensity: " + strconv.Itoa(s.Intensity) + "\n" +
		"Notes: " + notes + "\n" +
		"ID: " + strconv.Itoa(s.ID)
}

// NeatOneLine renders the session as a single list row.
func (s TrainingSession) NeatOneLine() string {
	n := ""
	if strings.TrimSpace(s.Notes) != "" {
		n = " | " + s.Notes
	}
	return fmt.Sprintf("%s | %s | %d min | int %d%s | ID %d",
		s.Date.Format(DateLayout), s.Type, s.Minutes, s.Intensity, n, s.ID)
}
