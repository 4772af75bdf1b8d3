package storage

import "github.com/cianmb/hurltrack/internal/models"

// LoadSessions reads every session record. A missing file is an empty
// log, not an error. One malformed line fails the whole load.
func (st *Store) LoadSessions() ([]models.TrainingSession, error) {
	lines, err := readLines(st.sessionsPath)
	if err != nil {
		return nil, err
	}

	var out []models.TrainingSession
	for _, line := range lines {
		s, err := models.ParseTrainingSession(line)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// SaveSessions rewrites the sessions file from scratch.
func (st *Store) SaveSessions(sessions []models.TrainingSession) error {
	lines := make([]string, 0, len(sessions))
	for _, s := range sessions {
		lines = append(lines, s.ToCSV())
	}
	return writeLines(st.sessionsPath, lines)
}
