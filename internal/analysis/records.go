package analysis

import "baseball-stats-service/internal/domain"

// ComputeRecords finds the holder of each of the 14 record categories.
// The holder is the eligible player with the highest value; ties go to
// the smallest player id; undefined (NaN) values never hold a record.
// Every category is present in the result even when no player holds it.
func ComputeRecords(careers []domain.Career) domain.Records {
	records := make(domain.Records, len(domain.RecordMetrics()))
	for _, metric := range domain.RecordMetrics() {
		records[metric] = topRecord(careers, metric)
	}
	return records
}

// topRecord scans careers in id order, so keeping only strict
// improvements yields the smallest id among tied values.
func topRecord(careers []domain.Career, metric domain.RecordMetric) domain.RecordEntry {
	best := domain.RecordEntry{Value: domain.NaNRate()}
	for i := range careers {
		value := MetricValue(&careers[i], metric)
		if value.IsNaN() {
			continue
		}
		if best.PlayerID == "" || value > best.Value {
			best = domain.RecordEntry{PlayerID: careers[i].PlayerID, Value: value}
		}
	}
	return best
}

// MetricValue extracts one record metric from a career. Counting
// metrics are widened to Rate so every category compares uniformly.
func MetricValue(c *domain.Career, metric domain.RecordMetric) domain.Rate {
	switch metric {
	case domain.MetricOBP:
		return c.OBP
	case domain.MetricPAB:
		return c.PAB
	case domain.MetricHR:
		return domain.Rate(c.HomeRuns)
	case domain.MetricHRRate:
		return c.HRRate
	case domain.MetricHits:
		return domain.Rate(c.Hits)
	case domain.MetricHitRate:
		return c.HitRate
	case domain.MetricSB:
		return domain.Rate(c.StolenBases)
	case domain.MetricSBRate:
		return c.SBRate
	case domain.MetricSO:
		return domain.Rate(c.Strikeouts)
	case domain.MetricSORate:
		return c.SORate
	case domain.MetricSOPerPA:
		return c.SOPerPA
	case domain.MetricWalks:
		return domain.Rate(c.Walks)
	case domain.MetricBBRate:
		return c.WalkRate
	case domain.MetricGames:
		return domain.Rate(c.Games)
	}
	return domain.NaNRate()
}
