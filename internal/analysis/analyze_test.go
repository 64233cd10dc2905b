package analysis

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"baseball-stats-service/internal/dataset"
	"baseball-stats-service/internal/domain"
)

const testHeader = "id,year,team,lg,g,ab,h,hr,rbi,sb,so,bb,hbp,sh,sf"

func decodeFixture(t *testing.T, rows ...string) *dataset.Dataset {
	t.Helper()
	csv := testHeader + "\n" + strings.Join(rows, "\n") + "\n"
	ds, err := dataset.Decode(strings.NewReader(csv), dataset.Options{Strict: true, Source: "fixture.csv"})
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return ds
}

func approx(t *testing.T, got domain.Rate, want float64) {
	t.Helper()
	if math.Abs(float64(got)-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func fixedClock() time.Time {
	return time.Date(2007, 6, 15, 12, 0, 0, 0, time.UTC)
}

func TestSafeDiv(t *testing.T) {
	approx(t, SafeDiv(1, 4), 0.25)
	if !SafeDiv(1, 0).IsNaN() {
		t.Fatalf("expected NaN for zero denominator")
	}
	if !SafeDiv(0, 0).IsNaN() {
		t.Fatalf("expected NaN for 0/0")
	}
	if !SafeDiv(-3, 0).IsNaN() {
		t.Fatalf("expected NaN for negative Inf case")
	}
}

func TestSummarize(t *testing.T) {
	ds := decodeFixture(t,
		"aaa01,1954,ML1,NL,10,30,10,2,5,1,6,4,1,2,3",
		"aaa01,1955,ML1,NL,10,30,15,3,6,2,4,6,0,1,0",
		"bbb01,1927,NYA,AL,15,40,12,1,4,0,8,2,0,0,1",
		"ccc01,1960,HOU,,5,NA,3,0,1,0,2,1,0,0,0",
	)

	summary := Summarize(ds, len(ds.CompleteLines()))
	if summary.RecordCount != 4 {
		t.Fatalf("record count %d", summary.RecordCount)
	}
	if summary.CompleteCases != 3 {
		t.Fatalf("complete cases %d", summary.CompleteCases)
	}
	if summary.Years.Min != 1927 || summary.Years.Max != 1960 {
		t.Fatalf("year range %+v", summary.Years)
	}
	if summary.PlayerCount != 3 || summary.TeamCount != 3 {
		t.Fatalf("distinct counts %+v", summary)
	}
	// Empty league codes do not count as a league.
	if summary.LeagueCount != 2 {
		t.Fatalf("league count %d", summary.LeagueCount)
	}
}

func TestSummarizeSkipsMissingIdentityCells(t *testing.T) {
	ds := decodeFixture(t,
		"aaa01,1954,ML1,NL,10,30,10,2,5,1,6,4,1,2,3",
		",1954,ML1,NL,10,30,10,2,5,1,6,4,1,2,3",
		"bbb01,1955,,AL,15,40,12,1,4,0,8,2,0,0,1",
	)

	summary := Summarize(ds, len(ds.CompleteLines()))
	if summary.RecordCount != 3 {
		t.Fatalf("record count %d", summary.RecordCount)
	}
	// Blank id and team cells count toward the raw rows but not toward
	// the distinct tallies, and drop out of the complete cases.
	if summary.PlayerCount != 2 {
		t.Fatalf("player count %d", summary.PlayerCount)
	}
	if summary.TeamCount != 1 {
		t.Fatalf("team count %d", summary.TeamCount)
	}
	if summary.CompleteCases != 1 {
		t.Fatalf("complete cases %d", summary.CompleteCases)
	}
}

func TestSummarizeEmptyDataset(t *testing.T) {
	summary := Summarize(&dataset.Dataset{}, 0)
	if summary.RecordCount != 0 || summary.Years.Min != 0 || summary.Years.Max != 0 {
		t.Fatalf("unexpected summary for empty dataset: %+v", summary)
	}
}

func TestEnrichDerivesRates(t *testing.T) {
	ds := decodeFixture(t, "aaa01,1954,ML1,NL,10,30,10,2,5,1,6,4,1,2,3")
	enriched := Enrich(ds.CompleteLines())
	if len(enriched) != 1 {
		t.Fatalf("expected one enriched row")
	}
	// obp = (10+4+1)/(30+4+1), pab = (10+4+1+3+2)/(30+4+1+3+2)
	approx(t, enriched[0].OBP, 15.0/35.0)
	approx(t, enriched[0].PAB, 20.0/40.0)
}

func TestEnrichZeroDenominatorsYieldNaN(t *testing.T) {
	ds := decodeFixture(t, "zzz01,1900,BSN,NL,1,0,0,0,0,0,0,0,0,0,0")
	enriched := Enrich(ds.CompleteLines())
	if !enriched[0].OBP.IsNaN() || !enriched[0].PAB.IsNaN() {
		t.Fatalf("expected NaN rates for all-zero row, got %+v", enriched[0])
	}

	// NaN must survive JSON encoding as null, never fail or emit Inf.
	data, err := json.Marshal(enriched[0])
	if err != nil {
		t.Fatalf("marshal enriched row: %v", err)
	}
	if !strings.Contains(string(data), `"obp":null`) {
		t.Fatalf("expected null obp in %s", data)
	}
}

func TestSplitLeague(t *testing.T) {
	ds := decodeFixture(t,
		"aaa01,1954,ML1,NL,10,30,10,2,5,1,6,4,1,2,3",
		"aaa01,1955,ML1,NL,10,30,15,3,6,2,4,6,0,1,0",
		"bbb01,1927,NYA,AL,15,40,12,1,4,0,8,2,0,0,1",
	)
	enriched := Enrich(ds.CompleteLines())

	nl := SplitLeague(enriched, domain.LeagueNL)
	if nl.Rows != 2 || nl.Players != 1 || nl.Teams != 1 {
		t.Fatalf("unexpected NL split %+v", nl)
	}
	for _, line := range nl.Lines {
		if line.League != domain.LeagueNL {
			t.Fatalf("row from wrong league in split: %+v", line)
		}
	}

	al := SplitLeague(enriched, domain.LeagueAL)
	if al.Rows != 1 || al.Players != 1 || al.Teams != 1 {
		t.Fatalf("unexpected AL split %+v", al)
	}
}

func TestRunPipeline(t *testing.T) {
	ds := decodeFixture(t,
		"aaa01,1954,ML1,NL,10,30,10,2,5,1,6,4,1,2,3",
		"aaa01,1955,ML1,NL,10,30,15,3,6,2,4,6,0,1,0",
		"bbb01,1927,NYA,AL,15,40,12,1,4,0,8,2,0,0,1",
	)

	report, err := Run(ds, fixedClock)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Date != "2007-06-15" {
		t.Fatalf("unexpected report date %s", report.Date)
	}
	if report.Source != "fixture.csv" {
		t.Fatalf("unexpected source %s", report.Source)
	}
	if report.Summary.RecordCount != 3 || report.Summary.CompleteCases != 3 {
		t.Fatalf("unexpected summary %+v", report.Summary)
	}

	// Only aaa01 reaches 50 career at-bats.
	if len(report.Careers) != 1 || report.Careers[0].PlayerID != "aaa01" {
		t.Fatalf("unexpected careers %+v", report.Careers)
	}
	if len(report.Records) != 14 {
		t.Fatalf("expected 14 records, got %d", len(report.Records))
	}
	if report.Records[domain.MetricHR].PlayerID != "aaa01" {
		t.Fatalf("unexpected HR record %+v", report.Records[domain.MetricHR])
	}
	approx(t, report.Records[domain.MetricHR].Value, 5)

	if _, err := json.Marshal(report); err != nil {
		t.Fatalf("report must marshal cleanly: %v", err)
	}
}

func TestRunEmptyDataset(t *testing.T) {
	report, err := Run(&dataset.Dataset{}, fixedClock)
	if err != nil {
		t.Fatalf("run empty: %v", err)
	}
	if report.Summary.RecordCount != 0 || len(report.Careers) != 0 {
		t.Fatalf("unexpected report for empty dataset: %+v", report.Summary)
	}
	if len(report.Records) != 14 {
		t.Fatalf("records must be present even when empty, got %d", len(report.Records))
	}
	for metric, entry := range report.Records {
		if entry.PlayerID != "" || !entry.Value.IsNaN() {
			t.Fatalf("expected empty record for %s, got %+v", metric, entry)
		}
	}
}

func TestRunNilDataset(t *testing.T) {
	if _, err := Run(nil, fixedClock); err != ErrNoDataset {
		t.Fatalf("expected ErrNoDataset, got %v", err)
	}
}
