package dataset

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/montanaflynn/stats"
)

// NumericSummary describes one numeric column of the raw file.
type NumericSummary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stddev"`
}

// Inspection is a quick exploration of a raw CSV before analysis: shape,
// per-column missing counts, distinct identity values, and numeric
// summaries. Preview holds a rendered frame for terminal output.
type Inspection struct {
	Rows         int                       `json:"rows"`
	Cols         int                       `json:"cols"`
	Columns      []string                  `json:"columns"`
	Missing      map[string]int            `json:"missing"`
	TotalMissing int                       `json:"totalMissing"`
	Players      int                       `json:"players,omitempty"`
	Teams        int                       `json:"teams,omitempty"`
	Leagues      []string                  `json:"leagues,omitempty"`
	Numeric      map[string]NumericSummary `json:"numeric"`
	Preview      string                    `json:"-"`
}

// Inspect explores arbitrary CSV bytes. Unlike Decode it does not
// require the batting schema, so it works on any file being vetted.
func Inspect(data []byte) (*Inspection, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	header := records[0]
	rows := records[1:]

	insp := &Inspection{
		Rows:    len(rows),
		Cols:    len(header),
		Columns: append([]string(nil), header...),
		Missing: make(map[string]int, len(header)),
		Numeric: make(map[string]NumericSummary),
	}

	values := make(map[string][]float64, len(header))
	for col := range header {
		name := header[col]
		numeric := true
		for _, row := range rows {
			if col >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[col])
			if isMissing(cell) {
				insp.Missing[name]++
				insp.TotalMissing++
				continue
			}
			f, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				numeric = false
				continue
			}
			values[name] = append(values[name], f)
		}
		if !numeric {
			delete(values, name)
		}
	}

	for name, data := range values {
		if summary, ok := summarize(data); ok {
			insp.Numeric[name] = summary
		}
	}

	insp.Players = distinct(header, rows, "id")
	insp.Teams = distinct(header, rows, "team")
	insp.Leagues = distinctValues(header, rows, "lg")
	insp.Preview = preview(data)

	return insp, nil
}

func summarize(data []float64) (NumericSummary, bool) {
	if len(data) == 0 {
		return NumericSummary{}, false
	}
	min, err := stats.Min(data)
	if err != nil {
		return NumericSummary{}, false
	}
	max, _ := stats.Max(data)
	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	stddev, _ := stats.StandardDeviation(data)
	return NumericSummary{
		Count:  len(data),
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
		StdDev: stddev,
	}, true
}

func distinct(header []string, rows [][]string, column string) int {
	return len(distinctValues(header, rows, column))
}

func distinctValues(header []string, rows [][]string, column string) []string {
	col := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), column) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil
	}
	seen := make(map[string]struct{})
	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[col])
		if v == "" || isMissing(v) {
			continue
		}
		seen[v] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// preview renders the frame the way a notebook would show it, using the
// gota dataframe's table formatting.
func preview(data []byte) string {
	df := dataframe.ReadCSV(strings.NewReader(string(data)))
	if df.Err != nil {
		return ""
	}
	return df.String()
}
