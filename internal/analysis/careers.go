package analysis

import (
	"sort"

	"baseball-stats-service/internal/domain"
)

// MinCareerAtBats is the eligibility floor for career rates and records.
const MinCareerAtBats = 50

// Careers aggregates complete-case rows into per-player career totals,
// keeps players with at least MinCareerAtBats at-bats, and derives the
// career rate metrics. Output is sorted by player id so downstream
// record tie-breaks are deterministic.
func Careers(lines []domain.BattingLine) []domain.Career {
	totals := make(map[string]*domain.Career)
	for i := range lines {
		line := &lines[i]
		c, ok := totals[line.PlayerID]
		if !ok {
			c = &domain.Career{PlayerID: line.PlayerID}
			totals[line.PlayerID] = c
		}
		c.Games += line.Games.Int()
		c.AtBats += line.AtBats.Int()
		c.Hits += line.Hits.Int()
		c.HomeRuns += line.HomeRuns.Int()
		c.RBI += line.RBI.Int()
		c.StolenBases += line.StolenBases.Int()
		c.Strikeouts += line.Strikeouts.Int()
		c.Walks += line.Walks.Int()
		c.HitByPitch += line.HitByPitch.Int()
		c.SacHits += line.SacHits.Int()
		c.SacFlies += line.SacFlies.Int()
	}

	out := make([]domain.Career, 0, len(totals))
	for _, c := range totals {
		if c.AtBats < MinCareerAtBats {
			continue
		}
		deriveRates(c)
		out = append(out, *c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}

func deriveRates(c *domain.Career) {
	ab := float64(c.AtBats)
	h := float64(c.Hits)
	hr := float64(c.HomeRuns)
	sb := float64(c.StolenBases)
	so := float64(c.Strikeouts)
	bb := float64(c.Walks)
	hbp := float64(c.HitByPitch)
	sh := float64(c.SacHits)
	sf := float64(c.SacFlies)

	// Plate appearances for the sopa denominator.
	pa := ab + bb + hbp + sh + sf

	c.OBP = SafeDiv(h+bb+hbp, ab+bb+hbp)
	c.PAB = SafeDiv(h+bb+hbp+sf+sh, ab+bb+hbp+sf+sh)
	c.HRRate = SafeDiv(hr, ab)
	c.HitRate = SafeDiv(h, ab)
	c.SBRate = SafeDiv(sb, ab)
	c.SORate = SafeDiv(so, ab)
	c.SOPerPA = SafeDiv(so, pa)
	c.WalkRate = SafeDiv(bb, ab)
}
