package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/mydiary/journal-insights/internal/domain"
)

// prepare validates and canonicalizes the input sequence: entries must all
// belong to one user and none may postdate the reference time. Entries with
// a zero timestamp are excluded from temporal computations rather than
// aborting the report. The returned slice is a sorted copy; the input is
// never mutated.
func prepare(entries []domain.Entry, now time.Time) ([]domain.Entry, error) {
	sorted := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if e.OccurredAt.IsZero() {
			continue
		}
		sorted = append(sorted, e)
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i].UserID != sorted[0].UserID {
			return nil, domain.ErrMixedUsers
		}
	}

	// Ascending by occurred_at, ties broken by id for deterministic ordering.
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].OccurredAt.Equal(sorted[j].OccurredAt) {
			return sorted[i].ID.String() < sorted[j].ID.String()
		}
		return sorted[i].OccurredAt.Before(sorted[j].OccurredAt)
	})

	if len(sorted) > 0 && now.Before(sorted[len(sorted)-1].OccurredAt) {
		return nil, domain.ErrClockSkew
	}

	return sorted, nil
}

// dateOf truncates a timestamp to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// distinctDates reduces sorted entries to their ascending distinct UTC dates.
func distinctDates(entries []domain.Entry) []time.Time {
	var dates []time.Time
	for _, e := range entries {
		d := dateOf(e.OccurredAt)
		if len(dates) == 0 || !dates[len(dates)-1].Equal(d) {
			dates = append(dates, d)
		}
	}
	return dates
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
