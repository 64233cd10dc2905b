package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// League codes recognized by the league split computation.
const (
	LeagueNL = "NL"
	LeagueAL = "AL"
)

// Count is a missing-aware integer cell. Raw batting files carry NA cells
// in several counting columns; a Count with Valid=false marks one of those.
type Count struct {
	Value int
	Valid bool
}

// N constructs a present Count.
func N(v int) Count {
	return Count{Value: v, Valid: true}
}

// Int returns the value, or zero when the cell is missing.
func (c Count) Int() int {
	if !c.Valid {
		return 0
	}
	return c.Value
}

// MarshalJSON encodes a missing cell as null.
func (c Count) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(c.Value)), nil
}

// UnmarshalJSON decodes null as a missing cell.
func (c *Count) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Count{}
		return nil
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*c = Count{Value: v, Valid: true}
	return nil
}

// Rate is a derived ratio metric. NaN means the metric is undefined
// (zero denominator); it marshals as JSON null since JSON has no NaN.
type Rate float64

// NaNRate returns the undefined rate value.
func NaNRate() Rate {
	return Rate(math.NaN())
}

// IsNaN reports whether the rate is undefined.
func (r Rate) IsNaN() bool {
	return math.IsNaN(float64(r))
}

// MarshalJSON encodes NaN and Inf as null.
func (r Rate) MarshalJSON() ([]byte, error) {
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON decodes null back into NaN.
func (r *Rate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = NaNRate()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = Rate(f)
	return nil
}

// Column identifies a recognized batting CSV column.
type Column string

const (
	ColPlayerID         Column = "id"
	ColYear             Column = "year"
	ColStint            Column = "stint"
	ColTeam             Column = "team"
	ColLeague           Column = "lg"
	ColGames            Column = "g"
	ColAtBats           Column = "ab"
	ColRuns             Column = "r"
	ColHits             Column = "h"
	ColDoubles          Column = "x2b"
	ColTriples          Column = "x3b"
	ColHomeRuns         Column = "hr"
	ColRBI              Column = "rbi"
	ColStolenBases      Column = "sb"
	ColCaughtStealing   Column = "cs"
	ColWalks            Column = "bb"
	ColStrikeouts       Column = "so"
	ColIntentionalWalks Column = "ibb"
	ColHitByPitch       Column = "hbp"
	ColSacHits          Column = "sh"
	ColSacFlies         Column = "sf"
	ColGIDP             Column = "gidp"
)

// CountColumns lists every recognized counting column in canonical order.
func CountColumns() []Column {
	return []Column{
		ColStint, ColGames, ColAtBats, ColRuns, ColHits, ColDoubles,
		ColTriples, ColHomeRuns, ColRBI, ColStolenBases, ColCaughtStealing,
		ColWalks, ColStrikeouts, ColIntentionalWalks, ColHitByPitch,
		ColSacHits, ColSacFlies, ColGIDP,
	}
}

// CoreColumns lists the columns the analysis pipeline cannot run without.
func CoreColumns() []Column {
	return []Column{
		ColPlayerID, ColYear, ColTeam, ColLeague, ColGames, ColAtBats,
		ColHits, ColHomeRuns, ColRBI, ColStolenBases, ColStrikeouts,
		ColWalks, ColHitByPitch, ColSacHits, ColSacFlies,
	}
}

// BattingLine is one player-season row of the batting dataset.
type BattingLine struct {
	PlayerID string `json:"id"`
	Year     int    `json:"year"`
	Stint    Count  `json:"stint"`
	Team     string `json:"team"`
	League   string `json:"lg"`

	Games            Count `json:"g"`
	AtBats           Count `json:"ab"`
	Runs             Count `json:"r"`
	Hits             Count `json:"h"`
	Doubles          Count `json:"x2b"`
	Triples          Count `json:"x3b"`
	HomeRuns         Count `json:"hr"`
	RBI              Count `json:"rbi"`
	StolenBases      Count `json:"sb"`
	CaughtStealing   Count `json:"cs"`
	Walks            Count `json:"bb"`
	Strikeouts       Count `json:"so"`
	IntentionalWalks Count `json:"ibb"`
	HitByPitch       Count `json:"hbp"`
	SacHits          Count `json:"sh"`
	SacFlies         Count `json:"sf"`
	GIDP             Count `json:"gidp"`
}

// CountCell returns a pointer to the cell for a counting column, or nil
// for identity columns. Used by the CSV decoder to fill rows generically.
func (l *BattingLine) CountCell(col Column) *Count {
	switch col {
	case ColStint:
		return &l.Stint
	case ColGames:
		return &l.Games
	case ColAtBats:
		return &l.AtBats
	case ColRuns:
		return &l.Runs
	case ColHits:
		return &l.Hits
	case ColDoubles:
		return &l.Doubles
	case ColTriples:
		return &l.Triples
	case ColHomeRuns:
		return &l.HomeRuns
	case ColRBI:
		return &l.RBI
	case ColStolenBases:
		return &l.StolenBases
	case ColCaughtStealing:
		return &l.CaughtStealing
	case ColWalks:
		return &l.Walks
	case ColStrikeouts:
		return &l.Strikeouts
	case ColIntentionalWalks:
		return &l.IntentionalWalks
	case ColHitByPitch:
		return &l.HitByPitch
	case ColSacHits:
		return &l.SacHits
	case ColSacFlies:
		return &l.SacFlies
	case ColGIDP:
		return &l.GIDP
	}
	return nil
}

// CompleteFor reports whether the row has no missing cells among the
// given counting columns and carries a player id and team. An empty
// league code still counts as present, matching the reference data.
func (l *BattingLine) CompleteFor(cols []Column) bool {
	for _, col := range cols {
		if cell := l.CountCell(col); cell != nil && !cell.Valid {
			return false
		}
	}
	return l.PlayerID != "" && l.Team != ""
}

// BattingStats is a complete-case row enriched with derived rates.
type BattingStats struct {
	BattingLine
	OBP Rate `json:"obp"`
	PAB Rate `json:"pab"`
}

// Career holds per-player totals over the complete-case subset, with
// derived career rates. Only players with enough at-bats are retained.
type Career struct {
	PlayerID    string `json:"id"`
	Games       int    `json:"g"`
	AtBats      int    `json:"ab"`
	Hits        int    `json:"h"`
	HomeRuns    int    `json:"hr"`
	RBI         int    `json:"rbi"`
	StolenBases int    `json:"sb"`
	Strikeouts  int    `json:"so"`
	Walks       int    `json:"bb"`
	HitByPitch  int    `json:"hbp"`
	SacHits     int    `json:"sh"`
	SacFlies    int    `json:"sf"`

	OBP      Rate `json:"obp"`
	PAB      Rate `json:"pab"`
	HRRate   Rate `json:"hrp"`
	HitRate  Rate `json:"hp"`
	SBRate   Rate `json:"sbp"`
	SORate   Rate `json:"sop"`
	SOPerPA  Rate `json:"sopa"`
	WalkRate Rate `json:"bbp"`
}

// RecordMetric names one of the all-time record categories.
type RecordMetric string

const (
	MetricOBP     RecordMetric = "obp"
	MetricPAB     RecordMetric = "pab"
	MetricHR      RecordMetric = "hr"
	MetricHRRate  RecordMetric = "hrp"
	MetricHits    RecordMetric = "h"
	MetricHitRate RecordMetric = "hp"
	MetricSB      RecordMetric = "sb"
	MetricSBRate  RecordMetric = "sbp"
	MetricSO      RecordMetric = "so"
	MetricSORate  RecordMetric = "sop"
	MetricSOPerPA RecordMetric = "sopa"
	MetricWalks   RecordMetric = "bb"
	MetricBBRate  RecordMetric = "bbp"
	MetricGames   RecordMetric = "g"
)

// RecordMetrics lists all record categories in canonical order.
func RecordMetrics() []RecordMetric {
	return []RecordMetric{
		MetricOBP, MetricPAB, MetricHR, MetricHRRate, MetricHits,
		MetricHitRate, MetricSB, MetricSBRate, MetricSO, MetricSORate,
		MetricSOPerPA, MetricWalks, MetricBBRate, MetricGames,
	}
}

// RecordEntry is the holder of one all-time record. An empty PlayerID
// with a null value means no eligible player had the metric defined.
type RecordEntry struct {
	PlayerID string `json:"id"`
	Value    Rate   `json:"value"`
}

// Records maps each record category to its holder.
type Records map[RecordMetric]RecordEntry

// YearRange is the inclusive span of seasons in the raw dataset.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Summary captures dataset-level counts computed over the raw rows.
type Summary struct {
	RecordCount   int       `json:"recordCount"`
	CompleteCases int       `json:"completeCases"`
	Years         YearRange `json:"years"`
	PlayerCount   int       `json:"playerCount"`
	TeamCount     int       `json:"teamCount"`
	LeagueCount   int       `json:"leagueCount"`
}

// LeagueSplit summarizes the complete-case rows of one league.
type LeagueSplit struct {
	League  string         `json:"league"`
	Rows    int            `json:"rows"`
	Players int            `json:"players"`
	Teams   int            `json:"teams"`
	Lines   []BattingStats `json:"lines,omitempty"`
}

// Report is the full analysis output for one ingest of the dataset.
// Date is the analysis day (YYYY-MM-DD) used as the snapshot key.
type Report struct {
	Date        string         `json:"date"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Source      string         `json:"source,omitempty"`
	Summary     Summary        `json:"summary"`
	NL          LeagueSplit    `json:"nl"`
	AL          LeagueSplit    `json:"al"`
	Careers     []Career       `json:"careers,omitempty"`
	Records     Records        `json:"records"`
	Lines       []BattingStats `json:"lines,omitempty"`
}
