package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadRows parses CSV into the header row plus one map per record, keyed by
// the raw header names. We use io.Reader so it works with HTTP bodies,
// local files, or strings. Short rows are skipped, not fatal.
func ReadRows(r io.Reader) ([]string, []map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error reading csv record: %w", err)
		}
		if len(record) < len(header) {
			continue
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			row[name] = strings.TrimSpace(record[i])
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}
