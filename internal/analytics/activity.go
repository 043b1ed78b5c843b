package analytics

import (
	"time"

	"github.com/mydiary/journal-insights/internal/domain"
)

const (
	// HeatmapDays is the trailing window for the activity heatmap.
	HeatmapDays = 90
	// EntryTrendDays is the trailing window for the entries-per-day trend.
	EntryTrendDays = 30
)

// Heatmap counts entries per calendar day over the trailing 90 days and
// reports the highest single-day count for scale normalization. Only days
// with at least one entry are emitted.
func Heatmap(entries []domain.Entry, now time.Time) ([]domain.HeatmapPoint, int, error) {
	perDay, days, err := dailyCounts(entries, now, HeatmapDays)
	if err != nil {
		return nil, 0, err
	}

	points := make([]domain.HeatmapPoint, 0, len(days))
	max := 0
	for _, day := range days {
		count := perDay[day]
		points = append(points, domain.HeatmapPoint{
			Date:  day.Format("2006-01-02"),
			Count: count,
		})
		if count > max {
			max = count
		}
	}
	return points, max, nil
}

// EntryTrend counts entries per calendar day over the trailing 30 days with
// short display labels.
func EntryTrend(entries []domain.Entry, now time.Time) ([]domain.TrendPoint, error) {
	perDay, days, err := dailyCounts(entries, now, EntryTrendDays)
	if err != nil {
		return nil, err
	}

	points := make([]domain.TrendPoint, 0, len(days))
	for _, day := range days {
		points = append(points, domain.TrendPoint{
			Label: day.Format("Jan 02"),
			Count: perDay[day],
		})
	}
	return points, nil
}

// dailyCounts groups entries by UTC date within a trailing window,
// returning counts plus the ascending list of days that have entries.
func dailyCounts(entries []domain.Entry, now time.Time, windowDays int) (map[time.Time]int, []time.Time, error) {
	sorted, err := prepare(entries, now)
	if err != nil {
		return nil, nil, err
	}

	cutoff := now.AddDate(0, 0, -windowDays)
	perDay := make(map[time.Time]int)
	var days []time.Time
	for _, e := range sorted {
		if e.OccurredAt.Before(cutoff) {
			continue
		}
		day := dateOf(e.OccurredAt)
		if _, seen := perDay[day]; !seen {
			days = append(days, day)
		}
		perDay[day]++
	}
	return perDay, days, nil
}
