package storage

import "github.com/cianmb/hurltrack/internal/models"

// LoadTargets reads the single-line targets file. found is false when
// the file does not exist or holds no record, which the caller treats
// as "use the defaults" - distinct from an explicitly saved value.
func (st *Store) LoadTargets() (targets models.Targets, found bool, err error) {
	lines, err := readLines(st.targetsPath)
	if err != nil {
		return models.Targets{}, false, err
	}
	if len(lines) == 0 {
		return models.Targets{}, false, nil
	}

	t, err := models.ParseTargets(lines[0])
	if err != nil {
		return models.Targets{}, false, err
	}
	return t, true, nil
}

// SaveTargets rewrites the targets file with its single record.
func (st *Store) SaveTargets(t models.Targets) error {
	return writeLines(st.targetsPath, []string{t.ToCSV()})
}
