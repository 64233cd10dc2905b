package domain

import (
	"encoding/json"
	"math"
	"testing"
)

func TestRateMarshalsNaNAsNull(t *testing.T) {
	data, err := json.Marshal(NaNRate())
	if err != nil {
		t.Fatalf("marshal NaN rate: %v", err)
	}
	if string(data) != "null" {
		t.Fatalf("expected null, got %s", data)
	}

	data, err = json.Marshal(Rate(math.Inf(1)))
	if err != nil {
		t.Fatalf("marshal Inf rate: %v", err)
	}
	if string(data) != "null" {
		t.Fatalf("expected null for Inf, got %s", data)
	}
}

func TestRateRoundTrip(t *testing.T) {
	var r Rate
	if err := json.Unmarshal([]byte("0.375"), &r); err != nil {
		t.Fatalf("unmarshal rate: %v", err)
	}
	if float64(r) != 0.375 {
		t.Fatalf("expected 0.375, got %v", r)
	}

	if err := json.Unmarshal([]byte("null"), &r); err != nil {
		t.Fatalf("unmarshal null rate: %v", err)
	}
	if !r.IsNaN() {
		t.Fatalf("expected NaN after null, got %v", r)
	}
}

func TestCountMarshalsMissingAsNull(t *testing.T) {
	data, err := json.Marshal(Count{})
	if err != nil {
		t.Fatalf("marshal missing count: %v", err)
	}
	if string(data) != "null" {
		t.Fatalf("expected null, got %s", data)
	}

	data, err = json.Marshal(N(42))
	if err != nil {
		t.Fatalf("marshal count: %v", err)
	}
	if string(data) != "42" {
		t.Fatalf("expected 42, got %s", data)
	}

	var c Count
	if err := json.Unmarshal([]byte("null"), &c); err != nil {
		t.Fatalf("unmarshal null count: %v", err)
	}
	if c.Valid {
		t.Fatalf("expected missing cell after null")
	}
}

func TestCountCellCoversEveryCountColumn(t *testing.T) {
	var line BattingLine
	for _, col := range CountColumns() {
		cell := line.CountCell(col)
		if cell == nil {
			t.Fatalf("no cell for column %q", col)
		}
		cell.Value = 7
		cell.Valid = true
	}
	if line.Games.Int() != 7 || line.GIDP.Int() != 7 {
		t.Fatalf("cells not wired to struct fields")
	}
	if line.CountCell(ColPlayerID) != nil {
		t.Fatalf("identity column should have no count cell")
	}
}

func TestCompleteFor(t *testing.T) {
	line := BattingLine{
		PlayerID: "ruthba01",
		Team:     "NYA",
		Games:    N(150),
		AtBats:   N(500),
	}
	cols := []Column{ColGames, ColAtBats}

	if !line.CompleteFor(cols) {
		t.Fatalf("expected complete row")
	}
	if !line.CompleteFor(nil) {
		t.Fatalf("row with identity fields should be complete for no columns")
	}

	line.AtBats = Count{}
	if line.CompleteFor(cols) {
		t.Fatalf("expected incomplete row with missing at-bats")
	}

	line.AtBats = N(500)
	line.PlayerID = ""
	if line.CompleteFor(cols) {
		t.Fatalf("expected incomplete row with missing player id")
	}
}

func TestRecordMetricsAreExactlyFourteen(t *testing.T) {
	metrics := RecordMetrics()
	if len(metrics) != 14 {
		t.Fatalf("expected 14 record metrics, got %d", len(metrics))
	}
	seen := make(map[RecordMetric]struct{}, len(metrics))
	for _, m := range metrics {
		if _, dup := seen[m]; dup {
			t.Fatalf("duplicate metric %q", m)
		}
		seen[m] = struct{}{}
	}
}
