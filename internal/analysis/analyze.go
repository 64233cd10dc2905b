package analysis

import (
	"errors"
	"math"
	"time"

	"baseball-stats-service/internal/dataset"
	"baseball-stats-service/internal/domain"
	"baseball-stats-service/internal/timeutil"
)

// ErrNoDataset is returned when Run is handed a nil dataset.
var ErrNoDataset = errors.New("no dataset to analyze")

// SafeDiv divides num by den, yielding NaN instead of Inf or NaN noise
// when the denominator is zero. Derived rates are undefined, never Inf.
func SafeDiv(num, den float64) domain.Rate {
	out := num / den
	if math.IsInf(out, 0) || math.IsNaN(out) {
		return domain.NaNRate()
	}
	return domain.Rate(out)
}

// Run executes the full pipeline on a decoded dataset: raw summary,
// complete-case selection, derived per-row rates, league splits, career
// aggregation, and the all-time records.
func Run(ds *dataset.Dataset, now func() time.Time) (domain.Report, error) {
	if ds == nil {
		return domain.Report{}, ErrNoDataset
	}
	if now == nil {
		now = time.Now
	}

	complete := ds.CompleteLines()
	enriched := Enrich(complete)
	careers := Careers(complete)

	report := domain.Report{
		Date:        timeutil.Today(now),
		GeneratedAt: now().UTC(),
		Source:      ds.Source,
		Summary:     Summarize(ds, len(complete)),
		NL:          SplitLeague(enriched, domain.LeagueNL),
		AL:          SplitLeague(enriched, domain.LeagueAL),
		Careers:     careers,
		Records:     ComputeRecords(careers),
		Lines:       enriched,
	}
	return report, nil
}

// Summarize computes the dataset-level counts over the raw rows.
func Summarize(ds *dataset.Dataset, completeCases int) domain.Summary {
	summary := domain.Summary{
		RecordCount:   len(ds.Lines),
		CompleteCases: completeCases,
	}

	players := make(map[string]struct{})
	teams := make(map[string]struct{})
	leagues := make(map[string]struct{})

	for i := range ds.Lines {
		line := &ds.Lines[i]
		// Distinct counts skip missing cells, the way nunique does.
		if line.PlayerID != "" {
			players[line.PlayerID] = struct{}{}
		}
		if line.Team != "" {
			teams[line.Team] = struct{}{}
		}
		if line.League != "" {
			leagues[line.League] = struct{}{}
		}
		if i == 0 || line.Year < summary.Years.Min {
			summary.Years.Min = line.Year
		}
		if i == 0 || line.Year > summary.Years.Max {
			summary.Years.Max = line.Year
		}
	}

	summary.PlayerCount = len(players)
	summary.TeamCount = len(teams)
	summary.LeagueCount = len(leagues)
	return summary
}

// Enrich derives the per-row rates over complete-case rows:
//
//	obp = (h + bb + hbp) / (ab + bb + hbp)
//	pab = (h + bb + hbp + sf + sh) / (ab + bb + hbp + sf + sh)
func Enrich(lines []domain.BattingLine) []domain.BattingStats {
	out := make([]domain.BattingStats, 0, len(lines))
	for _, line := range lines {
		h := float64(line.Hits.Int())
		bb := float64(line.Walks.Int())
		hbp := float64(line.HitByPitch.Int())
		ab := float64(line.AtBats.Int())
		sf := float64(line.SacFlies.Int())
		sh := float64(line.SacHits.Int())

		out = append(out, domain.BattingStats{
			BattingLine: line,
			OBP:         SafeDiv(h+bb+hbp, ab+bb+hbp),
			PAB:         SafeDiv(h+bb+hbp+sf+sh, ab+bb+hbp+sf+sh),
		})
	}
	return out
}

// SplitLeague filters the enriched rows down to one league and counts
// its distinct players and teams.
func SplitLeague(lines []domain.BattingStats, league string) domain.LeagueSplit {
	split := domain.LeagueSplit{League: league}

	players := make(map[string]struct{})
	teams := make(map[string]struct{})
	for _, line := range lines {
		if line.League != league {
			continue
		}
		split.Lines = append(split.Lines, line)
		players[line.PlayerID] = struct{}{}
		teams[line.Team] = struct{}{}
	}

	split.Rows = len(split.Lines)
	split.Players = len(players)
	split.Teams = len(teams)
	return split
}
