package raceline

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	commentMarker  = "#"
	fieldDelimiter = ","
)

// Row is one data line of the export split into trimmed string fields.
// No numeric conversion happens at parse time; fields are converted on
// access so a partially corrupt row only fails the waypoints that need it.
type Row []string

// Field converts column idx of the row to a float64.
func (r Row) Field(idx int) (float64, error) {
	if idx >= len(r) {
		return 0, fmt.Errorf("row has %d fields, need column %d", len(r), idx)
	}
	v, err := strconv.ParseFloat(r[idx], 64)
	if err != nil {
		return 0, fmt.Errorf("column %d: %w", idx, err)
	}
	return v, nil
}

// ParseRows reads the raw CSV text and returns the surviving data rows
// in file order. Blank lines, comment lines and lines without a single
// digit (stray nan-only rows) are dropped.
func ParseRows(r io.Reader) ([]Row, error) {
	var rows []Row

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		if !strings.ContainsAny(line, "0123456789") {
			continue
		}

		fields := strings.Split(line, fieldDelimiter)
		row := make(Row, len(fields))
		for i, f := range fields {
			row[i] = strings.TrimSpace(f)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan raceline csv: %w", err)
	}

	return rows, nil
}
