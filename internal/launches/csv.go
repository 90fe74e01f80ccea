package launches

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Column names of the published dataset.
const (
	ColumnFlightNumber           = "Flight Number"
	ColumnLaunchSite             = "Launch Site"
	ColumnClass                  = "class"
	ColumnPayloadMass            = "Payload Mass (kg)"
	ColumnBoosterVersion         = "Booster Version"
	ColumnBoosterVersionCategory = "Booster Version Category"
)

var requiredColumns = []string{
	ColumnLaunchSite,
	ColumnClass,
	ColumnPayloadMass,
	ColumnBoosterVersionCategory,
}

var (
	ErrEmptyDataset  = errors.New("launch dataset is empty")
	ErrMissingColumn = errors.New("launch dataset is missing a required column")
)

// ParseCSV parses the launch records CSV. Columns are located by header name;
// unknown columns, including the unnamed index column, are ignored.
func ParseCSV(data []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\ufeff"))))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	var rows []Launch
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		if isBlankRecord(record) {
			continue
		}

		line, _ := r.FieldPos(0)
		launch, err := parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, launch)
	}

	return NewTable(rows), nil
}

func parseRecord(record []string, columns map[string]int) (Launch, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var l Launch
	l.LaunchSite = field(ColumnLaunchSite)
	if l.LaunchSite == "" {
		return l, fmt.Errorf("empty %q", ColumnLaunchSite)
	}
	l.BoosterVersion = field(ColumnBoosterVersion)
	l.BoosterVersionCategory = field(ColumnBoosterVersionCategory)

	class, err := parseNumber(field(ColumnClass))
	if err != nil || (class != 0 && class != 1) {
		return l, fmt.Errorf("invalid %q value %q, want 0 or 1", ColumnClass, field(ColumnClass))
	}
	l.Class = int(class)

	payload, err := parseNumber(field(ColumnPayloadMass))
	if err != nil {
		return l, fmt.Errorf("invalid %q value %q: %w", ColumnPayloadMass, field(ColumnPayloadMass), err)
	}
	if payload < 0 {
		return l, fmt.Errorf("negative %q value %v", ColumnPayloadMass, payload)
	}
	l.PayloadMassKg = payload

	if raw := field(ColumnFlightNumber); raw != "" {
		n, err := parseNumber(raw)
		if err != nil {
			return l, fmt.Errorf("invalid %q value %q: %w", ColumnFlightNumber, raw, err)
		}
		l.FlightNumber = int(n)
	}

	return l, nil
}

// parseNumber accepts integers and floats such as "1" and "1.0".
func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return f, nil
}

func isBlankRecord(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
