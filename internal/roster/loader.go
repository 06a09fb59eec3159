package roster

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads recipient names from path. A .csv file is read through its
// header's name column; anything else is treated as a plain newline list.
// Blank lines (after trimming) are skipped. Entries are returned raw, not
// normalized.
func Load(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return loadCSV(path)
	}
	return loadLines(path)
}

func loadLines(path string) ([]string, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer fp.Close()

	var out []string
	sc := bufio.NewScanner(fp)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return out, nil
}

func loadCSV(path string) ([]string, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}

	nameCol := -1
	for i, h := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(h), "name") {
			nameCol = i
			break
		}
	}
	if nameCol < 0 {
		return nil, fmt.Errorf("csv %s has no name column", path)
	}

	var out []string
	for _, row := range rows[1:] {
		if nameCol >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[nameCol])
		if name != "" {
			out = append(out, name)
		}
	}
	return out, nil
}
