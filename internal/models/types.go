package models

import "fmt"

// SessionType categorizes a training session. Index values are pinned
// because stats buckets are arrays indexed by them and the CSV files
// store the names; neither may shift when members are reordered.
type SessionType int

const (
	SessionGym   SessionType = 0
	SessionPitch SessionType = 1
	SessionMatch SessionType = 2
)

// NumSessionTypes is the size of any bucket array indexed by SessionType.
const NumSessionTypes = 3

// Index returns the pinned bucket index for the type.
func (t SessionType) Index() int {
	return int(t)
}

func (t SessionType) String() string {
	switch t {
	case SessionGym:
		return "GYM"
	case SessionPitch:
		return "PITCH"
	case SessionMatch:
		return "MATCH"
	}
	return fmt.Sprintf("SessionType(%d)", int(t))
}

// SessionTypes returns the fixed member set in index order.
func SessionTypes() []SessionType {
	return []SessionType{SessionGym, SessionPitch, SessionMatch}
}

// ParseSessionType parses the literal serialized name, case-sensitively.
func ParseSessionType(s string) (SessionType, error) {
	switch s {
	case "GYM":
		return SessionGym, nil
	case "PITCH":
		return SessionPitch, nil
	case "MATCH":
		return SessionMatch, nil
	}
	return 0, fmt.Errorf("unknown session type %q", s)
}

// DrillType categorizes a drill entry. Same pinning rules as SessionType.
type DrillType int

const (
	DrillWallBall   DrillType = 0
	DrillSprint     DrillType = 1
	DrillStrike     DrillType = 2
	DrillFreeTaking DrillType = 3
)

// NumDrillTypes is the size of any bucket array indexed by DrillType.
const NumDrillTypes = 4

// Index returns the pinned bucket index for the type.
func (t DrillType) Index() int {
	return int(t)
}

func (t DrillType) String() string {
	switch t {
	case DrillWallBall:
		return "WALL_BALL"
	case DrillSprint:
		return "SPRINT"
	case DrillStrike:
		return "STRIKE"
	case DrillFreeTaking:
		return "FREE_TAKING"
	}
	return fmt.Sprintf("DrillType(%d)", int(t))
}

// DrillTypes returns the fixed member set in index order.
func DrillTypes() []DrillType {
	return []DrillType{DrillWallBall, DrillSprint, DrillStrike, DrillFreeTaking}
}

// ParseDrillType parses the literal serialized name, case-sensitively.
func ParseDrillType(s string) (DrillType, error) {
	switch s {
	case "WALL_BALL":
		return DrillWallBall, nil
	case "SPRINT":
		return DrillSprint, nil
	case "STRIKE":
		return DrillStrike, nil
	case "FREE_TAKING":
		return DrillFreeTaking, nil
	}
	return 0, fmt.Errorf("unknown drill type %q", s)
}
