package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	sessionsFile = "sessions.csv"
	drillsFile   = "drills.csv"
	targetsFile  = "targets.csv"
)

// Store reads and writes the three record files under one directory.
// Saves rewrite a file's full contents; there is no append path and no
// locking, so two processes sharing a directory are last-writer-wins.
type Store struct {
	sessionsPath string
	drillsPath   string
	targetsPath  string
}

func NewStore(dir string) *Store {
	return &Store{
		sessionsPath: filepath.Join(dir, sessionsFile),
		drillsPath:   filepath.Join(dir, drillsFile),
		targetsPath:  filepath.Join(dir, targetsFile),
	}
}

// StorageError wraps an underlying I/O failure during a read or write.
type StorageError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// readLines returns the non-blank lines of a file, or nil when the file
// does not exist.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StorageError{Op: "read", Path: path, Err: err}
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// writeLines rewrites a file with one record per line, each newline
// terminated.
func writeLines(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	return nil
}
