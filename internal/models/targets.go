package models

import (
	"strconv"
	"strings"

	"github.com/cianmb/hurltrack/internal/csvutil"
)

// Targets holds the weekly goals stats are measured against. There is
// one value per store; updates replace it wholesale. Values are
// persisted as given, negatives included.
type Targets struct {
	SessionsPerWeek     int
	WallBallRepsPerWeek int
	GymMinutesPerWeek   int
}

// DefaultTargets is the value used when no targets have been saved yet.
func DefaultTargets() Targets {
	return Targets{
		SessionsPerWeek:     4,
		WallBallRepsPerWeek: 1000,
		GymMinutesPerWeek:   120,
	}
}

// ToCSV renders the targets as the single line of the targets file.
func (t Targets) ToCSV() string {
	return strings.Join([]string{
		strconv.Itoa(t.SessionsPerWeek),
		strconv.Itoa(t.WallBallRepsPerWeek),
		strconv.Itoa(t.GymMinutesPerWeek),
	}, ",")
}

// ParseTargets parses the targets record line.
func ParseTargets(line string) (Targets, error) {
	cols := csvutil.Parse(line)
	if len(cols) < 3 {
		return Targets{}, &MalformedRecordError{Kind: "targets", Line: line, Fields: len(cols)}
	}

	sessions, err := strconv.Atoi(cols[0])
	if err != nil {
		return Targets{}, &FormatError{Kind: "targets", Field: "sessionsPerWeek", Value: cols[0], Err: err}
	}
	wallBall, err := strconv.Atoi(cols[1])
	if err != nil {
		return Targets{}, &FormatError{Kind: "targets", Field: "wallBallRepsPerWeek", Value: cols[1], Err: err}
	}
	gymMinutes, err := strconv.Atoi(cols[2])
	if err != nil {
		return Targets{}, &FormatError{Kind: "targets", Field: "gymMinutesPerWeek", Value: cols[2], Err: err}
	}

	return Targets{
		SessionsPerWeek:     sessions,
		WallBallRepsPerWeek: wallBall,
		GymMinutesPerWeek:   gymMinutes,
	}, nil
}
