package timedataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingColumn = errors.New("csv is missing a required column")
	ErrMissingValue  = errors.New("csv row is missing a value")
)

const (
	dateColumn  = "dates"
	valueColumn = "visitors"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006/01/02",
	"01/02/2006",
	time.RFC3339,
}

// FromCSV reads a monthly visitor series from a CSV stream with at least the
// columns "dates" and "visitors". Rows must already be in chronological order;
// the reader does not re-sort.
func FromCSV(r io.Reader) (*TimeDataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("unable to read csv header, %w", err)
	}

	dateIdx, valueIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(strings.ToLower(col)) {
		case dateColumn:
			dateIdx = i
		case valueColumn:
			valueIdx = i
		}
	}
	if dateIdx < 0 {
		return nil, fmt.Errorf("%q, %w", dateColumn, ErrMissingColumn)
	}
	if valueIdx < 0 {
		return nil, fmt.Errorf("%q, %w", valueColumn, ErrMissingColumn)
	}

	var (
		t []time.Time
		y []float64
	)
	for row := 1; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read csv row %d, %w", row, err)
		}
		if dateIdx >= len(record) || valueIdx >= len(record) {
			return nil, fmt.Errorf("row %d, %w", row, ErrMissingValue)
		}

		ts, err := parseDate(record[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d, %w", row, err)
		}
		raw := strings.TrimSpace(record[valueIdx])
		if raw == "" {
			return nil, fmt.Errorf("row %d, %w", row, ErrMissingValue)
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d value %q, %w", row, raw, ErrBadValue)
		}

		t = append(t, ts)
		y = append(y, val)
	}

	return NewMonthlyDataset(t, y)
}

// LoadCSV reads a monthly visitor series from the file at path.
func LoadCSV(path string) (*TimeDataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s, %w", path, err)
	}
	defer f.Close()
	return FromCSV(f)
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			// day resolution in the file, month granularity in the series
			return time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q, %w", raw, ErrBadValue)
}
