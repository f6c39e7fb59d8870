package fantasypros

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadRows reads a CSV sheet with a header line into header -> cell maps.
// Short lines get blank cells for the missing columns.
func ReadRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		key := strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
		header[i] = strings.ToUpper(strings.Trim(key, `"`))
	}

	rows := make([]map[string]string, 0)
	for {
		line, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", len(rows)+2, err)
		}
		row := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(line) {
				row[key] = line[i]
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
