package storage

import "github.com/cianmb/hurltrack/internal/models"

// LoadDrills reads every drill record. Same contract as LoadSessions:
// missing file means empty, one bad line aborts the load.
func (st *Store) LoadDrills() ([]models.DrillEntry, error) {
	lines, err := readLines(st.drillsPath)
	if err != nil {
		return nil, err
	}

	var out []models.DrillEntry
	for _, line := range lines {
		d, err := models.ParseDrillEntry(line)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// SaveDrills rewrites the drills file from scratch.
func (st *Store) SaveDrills(drills []models.DrillEntry) error {
	lines := make([]string, 0, len(drills))
	for _, d := range drills {
		lines = append(lines, d.ToCSV())
	}
	return writeLines(st.drillsPath, lines)
}
