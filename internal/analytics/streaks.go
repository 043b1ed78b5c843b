package analytics

import (
	"time"

	"github.com/mydiary/journal-insights/internal/domain"
)

// Streaks computes consecutive-day writing streaks from entry timestamps.
// Multiple entries on the same UTC date count as one writing day. The
// current streak is zero when the most recent writing day is more than one
// day before now's date.
func Streaks(entries []domain.Entry, now time.Time, cfg Config) (domain.StreakResult, error) {
	cfg = cfg.withDefaults()

	sorted, err := prepare(entries, now)
	if err != nil {
		return domain.StreakResult{}, err
	}

	dates := distinctDates(sorted)
	result := domain.StreakResult{TotalWritingDays: len(dates)}
	if len(dates) == 0 {
		return result, nil
	}

	// Longest streak: walk ascending distinct dates and track the longest
	// run of day-over-day continuations.
	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	result.LongestStreak = longest

	// Current streak: only alive if the most recent writing day is today or
	// yesterday; a gap of two or more days breaks it.
	today := dateOf(now)
	last := dates[len(dates)-1]
	if !last.Before(today.AddDate(0, 0, -1)) {
		result.CurrentStreak = run
	}

	// Consistency: distinct writing days within the trailing window.
	cutoff := today.AddDate(0, 0, -cfg.TrailingDays)
	daysInWindow := 0
	for _, d := range dates {
		if d.After(cutoff) {
			daysInWindow++
		}
	}
	percent := float64(daysInWindow) / float64(cfg.TrailingDays) * 100
	if percent > 100 {
		percent = 100
	}
	result.ConsistencyPercent = round1(percent)

	return result, nil
}
