package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"baseball-stats-service/internal/domain"
)

// ErrNoHeader is returned for inputs with no header row.
var ErrNoHeader = errors.New("dataset has no header row")

// ParseError reports a malformed cell with its CSV position.
type ParseError struct {
	Row    int // 1-based data row (header excluded)
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d column %q: %v", e.Row, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingColumnsError reports core columns absent from the header.
type MissingColumnsError struct {
	Columns []domain.Column
}

func (e *MissingColumnsError) Error() string {
	names := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		names[i] = string(c)
	}
	return "dataset missing core columns: " + strings.Join(names, ", ")
}

// Options controls decoding.
type Options struct {
	// Strict rejects files whose header lacks any core analysis column.
	Strict bool
	// Source labels where the CSV came from (path or URL) for reporting.
	Source string
}

// Dataset is a decoded batting CSV: the raw rows plus which recognized
// counting columns the file actually carried. Completeness checks only
// consider columns that were present.
type Dataset struct {
	Source  string
	Columns []domain.Column
	Lines   []domain.BattingLine
}

// CompleteLines returns the rows with no missing cell in any column the
// file carried (the complete-case subset the analysis pipeline uses).
func (d *Dataset) CompleteLines() []domain.BattingLine {
	if d == nil {
		return nil
	}
	out := make([]domain.BattingLine, 0, len(d.Lines))
	for i := range d.Lines {
		if d.Lines[i].CompleteFor(d.Columns) {
			out = append(out, d.Lines[i])
		}
	}
	return out
}

// Decode reads a batting CSV. Header matching is case-insensitive and
// order-independent; accidental exporter index columns ("Unnamed: N",
// "index") are dropped; empty and NA cells become missing counts.
func Decode(r io.Reader, opts Options) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := mapHeader(header)
	if opts.Strict {
		if missing := missingCore(cols); len(missing) > 0 {
			return nil, &MissingColumnsError{Columns: missing}
		}
	}

	ds := &Dataset{
		Source:  opts.Source,
		Columns: presentCountColumns(cols),
	}

	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		line, err := decodeLine(record, cols, row)
		if err != nil {
			return nil, err
		}
		ds.Lines = append(ds.Lines, line)
	}

	return ds, nil
}

type headerMap map[int]domain.Column

func mapHeader(header []string) headerMap {
	cols := make(headerMap, len(header))
	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if strings.HasPrefix(name, "Unnamed:") || strings.EqualFold(name, "index") {
			continue
		}
		key := domain.Column(strings.ToLower(name))
		switch key {
		case domain.ColPlayerID, domain.ColYear, domain.ColTeam, domain.ColLeague:
			cols[i] = key
		default:
			if isCountColumn(key) {
				cols[i] = key
			}
			// Unrecognized columns are skipped.
		}
	}
	return cols
}

func isCountColumn(c domain.Column) bool {
	for _, known := range domain.CountColumns() {
		if c == known {
			return true
		}
	}
	return false
}

func missingCore(cols headerMap) []domain.Column {
	present := make(map[domain.Column]bool, len(cols))
	for _, c := range cols {
		present[c] = true
	}
	var missing []domain.Column
	for _, c := range domain.CoreColumns() {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

func presentCountColumns(cols headerMap) []domain.Column {
	present := make(map[domain.Column]bool, len(cols))
	for _, c := range cols {
		present[c] = true
	}
	var out []domain.Column
	for _, c := range domain.CountColumns() {
		if present[c] {
			out = append(out, c)
		}
	}
	return out
}

func decodeLine(record []string, cols headerMap, row int) (domain.BattingLine, error) {
	var line domain.BattingLine
	for i, col := range cols {
		if i >= len(record) {
			continue
		}
		value := strings.TrimSpace(record[i])

		switch col {
		case domain.ColPlayerID:
			line.PlayerID = value
		case domain.ColTeam:
			line.Team = value
		case domain.ColLeague:
			line.League = value
		case domain.ColYear:
			year, err := strconv.Atoi(value)
			if err != nil {
				return line, &ParseError{Row: row, Column: string(col), Err: err}
			}
			line.Year = year
		default:
			cell, err := parseCount(value)
			if err != nil {
				return line, &ParseError{Row: row, Column: string(col), Err: err}
			}
			if target := line.CountCell(col); target != nil {
				*target = cell
			}
		}
	}

	// An empty id or team cell is missing data, not a malformed file:
	// the row still counts toward the raw totals and drops out of the
	// complete-case subset.
	return line, nil
}

// parseCount handles both integer cells and the float rendering pandas
// uses for nullable integer columns ("3.0").
func parseCount(value string) (domain.Count, error) {
	if isMissing(value) {
		return domain.Count{}, nil
	}
	if v, err := strconv.Atoi(value); err == nil {
		return domain.N(v), nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return domain.Count{}, err
	}
	if f != float64(int(f)) {
		return domain.Count{}, fmt.Errorf("non-integral count %q", value)
	}
	return domain.N(int(f)), nil
}

func isMissing(value string) bool {
	switch {
	case value == "":
		return true
	case strings.EqualFold(value, "na"), strings.EqualFold(value, "nan"), strings.EqualFold(value, "null"):
		return true
	}
	return false
}
