package models

import "fmt"

// MalformedRecordError reports a persisted line with too few fields.
type MalformedRecordError struct {
	Kind   string // "session", "drill" or "targets"
	Line   string
	Fields int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("bad %s row (%d fields): %s", e.Kind, e.Fields, e.Line)
}

// FormatError reports a field whose text does not convert to its typed
// value: a bad integer, a bad date or an unknown enum name.
type FormatError struct {
	Kind  string
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bad %s field %s=%q: %v", e.Kind, e.Field, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
