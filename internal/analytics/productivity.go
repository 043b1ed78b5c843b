package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/mydiary/journal-insights/internal/domain"
)

// Productivity combines streak, recent volume, entry quality, and goal
// progress into one bounded 0-100 score with a component breakdown, goal
// progress, writing-pattern analysis, and recommendation strings.
func Productivity(entries []domain.Entry, now time.Time, goals GoalConfig, cfg Config) (domain.ProductivityScore, error) {
	cfg = cfg.withDefaults()

	sorted, err := prepare(entries, now)
	if err != nil {
		return domain.ProductivityScore{}, err
	}

	streaks, err := Streaks(sorted, now, cfg)
	if err != nil {
		return domain.ProductivityScore{}, err
	}

	recentCount := 0
	recentCutoff := now.AddDate(0, 0, -cfg.TrailingDays)
	for _, e := range sorted {
		if !e.OccurredAt.Before(recentCutoff) {
			recentCount++
		}
	}

	patterns := writingPatterns(sorted)
	progress := goalProgress(sorted, now, goals)

	components := domain.ScoreComponents{
		Consistency: math.Min(float64(streaks.CurrentStreak*ConsistencyWeight), ConsistencyCap),
		Volume:      math.Min(float64(recentCount*VolumeWeight), VolumeCap),
		Quality:     math.Min(patterns.AvgWordCount/QualityDivisor, QualityCap),
		Goal:        progress.DailyProgress * GoalWeight,
	}

	score := int(components.Consistency + components.Volume + components.Quality + components.Goal)
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	result := domain.ProductivityScore{
		Score:      score,
		Components: components,
		Goals:      progress,
		Patterns:   patterns,
	}
	result.Recommendations = recommendations(sorted, streaks, recentCount, progress, patterns, cfg)

	return result, nil
}

// writingPatterns analyzes when and how much the user writes.
func writingPatterns(entries []domain.Entry) domain.WritingPatterns {
	patterns := domain.WritingPatterns{
		MostProductiveHour: -1,
		HourDistribution:   make(map[int]int),
		DayDistribution:    make(map[string]int),
	}

	totalWords := 0
	for _, e := range entries {
		at := e.OccurredAt.UTC()
		patterns.HourDistribution[at.Hour()]++
		patterns.DayDistribution[at.Weekday().String()]++
		totalWords += e.WordCount
	}

	// Scan hours and weekdays in fixed order so ties resolve
	// deterministically.
	best := 0
	for hour := 0; hour < 24; hour++ {
		if patterns.HourDistribution[hour] > best {
			best = patterns.HourDistribution[hour]
			patterns.MostProductiveHour = hour
		}
	}
	best = 0
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if patterns.DayDistribution[wd.String()] > best {
			best = patterns.DayDistribution[wd.String()]
			patterns.MostProductiveDay = wd.String()
		}
	}

	patterns.TotalWords = totalWords
	if len(entries) > 0 {
		patterns.AvgWordCount = round1(float64(totalWords) / float64(len(entries)))
	}

	return patterns
}

// goalProgress computes progress against the daily and weekly entry goals.
// A zero or negative goal means the goal is not set and contributes zero.
func goalProgress(entries []domain.Entry, now time.Time, goals GoalConfig) domain.GoalProgress {
	today := dateOf(now)
	// Week anchored to Monday 00:00 UTC.
	weekStart := today.AddDate(0, 0, -((int(now.UTC().Weekday()) + 6) % 7))

	progress := domain.GoalProgress{
		DailyGoal:  goals.DailyGoal,
		WeeklyGoal: goals.WeeklyGoal,
	}
	for _, e := range entries {
		at := e.OccurredAt.UTC()
		if !at.Before(weekStart) {
			progress.WeekEntries++
		}
		if dateOf(at).Equal(today) {
			progress.TodayEntries++
		}
	}

	if goals.DailyGoal > 0 {
		progress.DailyProgress = math.Min(float64(progress.TodayEntries)/float64(goals.DailyGoal), 1.0)
	}
	if goals.WeeklyGoal > 0 {
		progress.WeeklyProgress = math.Min(float64(progress.WeekEntries)/float64(goals.WeeklyGoal), 1.0)
	}
	progress.DailyProgress = round2(progress.DailyProgress)
	progress.WeeklyProgress = round2(progress.WeeklyProgress)

	return progress
}

// recommendations picks 1-4 plain-language suggestions by threshold rules.
// The streak, volume, goal, and mood rules take precedence; encouragement
// and scheduling hints fill remaining slots.
func recommendations(entries []domain.Entry, streaks domain.StreakResult, recentCount int, progress domain.GoalProgress, patterns domain.WritingPatterns, cfg Config) []string {
	var recs []string

	if streaks.CurrentStreak == 0 {
		recs = append(recs, "Start with one entry today to build your streak!")
	}
	if recentCount < 10 {
		recs = append(recs, "Try writing more frequently to build consistency.")
	}
	if progress.DailyProgress < 1.0 {
		recs = append(recs, "You're close to your daily goal! Write one more entry.")
	}
	if mood := recentMood(entries, cfg.RecentEntriesWindow); mood != "" {
		recs = append(recs, fmt.Sprintf("Track your %s feelings to understand patterns better.", mood))
	}
	if streaks.CurrentStreak > 0 && streaks.CurrentStreak < 7 {
		recs = append(recs, "Great start! Keep going for a full week to build a strong habit.")
	}
	if patterns.MostProductiveHour >= 0 {
		recs = append(recs, fmt.Sprintf("You write best around %d:00. Schedule your journaling time then!", patterns.MostProductiveHour))
	}

	if len(recs) == 0 {
		recs = append(recs, "Keep up the great journaling habit!")
	}
	if len(recs) > 4 {
		recs = recs[:4]
	}
	return recs
}

// recentMood returns the most common mood among the last window entries,
// ties broken by first occurrence in scan order.
func recentMood(entries []domain.Entry, window int) domain.Mood {
	start := len(entries) - window
	if start < 0 {
		start = 0
	}

	counts := make(map[domain.Mood]int)
	var order []domain.Mood
	for _, e := range entries[start:] {
		if e.Mood == nil {
			continue
		}
		if _, seen := counts[*e.Mood]; !seen {
			order = append(order, *e.Mood)
		}
		counts[*e.Mood]++
	}

	var top domain.Mood
	best := 0
	for _, mood := range order {
		if counts[mood] > best {
			best = counts[mood]
			top = mood
		}
	}
	return top
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
