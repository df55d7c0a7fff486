package repositories

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// csvTable is a header-indexed CSV file held in memory.
type csvTable struct {
	path    string
	columns map[string]int
	rows    [][]string
}

func readTable(path string, required ...string) (*csvTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read table %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read table %q: missing header row", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read table %q: header: %w", path, err)
	}

	t := &csvTable{path: path, columns: make(map[string]int, len(header))}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		t.columns[h] = i
	}

	for _, col := range required {
		if _, ok := t.columns[strings.ToLower(col)]; !ok {
			return nil, fmt.Errorf("read table %q: missing column %q", path, col)
		}
	}

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read table %q: %w", path, err)
		}
		if isBlank(rec) {
			continue
		}
		t.rows = append(t.rows, rec)
	}

	return t, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// str returns the trimmed cell of column col in row i.
func (t *csvTable) str(i int, col string) (string, error) {
	idx := t.columns[strings.ToLower(col)]
	row := t.rows[i]
	if idx >= len(row) {
		return "", fmt.Errorf("%s row %d: column %q is missing", t.path, i+2, col)
	}
	return strings.TrimSpace(row[idx]), nil
}

func (t *csvTable) int(i int, col string) (int, error) {
	s, err := t.str(i, col)
	if err != nil {
		return 0, err
	}
	n, err := parseInt(s)
	if err != nil {
		return 0, fmt.Errorf("%s row %d: column %q: %w", t.path, i+2, col, err)
	}
	return n, nil
}

func (t *csvTable) float(i int, col string) (float64, error) {
	s, err := t.str(i, col)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s row %d: column %q: %w", t.path, i+2, col, err)
	}
	return f, nil
}

// parseInt accepts integers and integral floats ("12", "12.0").
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return int(f), nil
}

// splitList splits a hyphen-delimited cell; an empty cell is an empty list.
func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, "-")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
