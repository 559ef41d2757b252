package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Column headers recognized in the spreadsheet export.
const (
	columnRiderID  = "rider_id"
	columnDate     = "date"
	columnCount    = "delivery_count"
	columnIsRainy  = "is_rainy"
	columnHasSurge = "has_surge"
	columnDistrict = "district"
)

// CSVSource reads delivery-log records from a CSV export.
// The first row must be a header; columns are matched by name so the ops
// team can reorder or add columns without breaking the feed.
type CSVSource struct {
	path string
}

// NewCSVSource creates a source backed by the CSV file at path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Fetch reads the whole file into records.
func (s *CSVSource) Fetch(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open delivery log file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read delivery log file: %w", err)
	}
	if len(rows) == 0 {
		return []Record{}, nil
	}

	index := headerIndex(rows[0])

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		records = append(records, Record{
			RiderID:  field(row, index, columnRiderID),
			Date:     field(row, index, columnDate),
			Count:    field(row, index, columnCount),
			IsRainy:  field(row, index, columnIsRainy),
			HasSurge: field(row, index, columnHasSurge),
			District: field(row, index, columnDistrict),
			Row:      i + 2, // 1-based, header is row 1
		})
	}
	return records, nil
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return index
}

func field(row []string, index map[string]int, column string) string {
	i, ok := index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
